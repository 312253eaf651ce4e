package assertz

// ThatThrownBy runs fn and starts error assertions on what it panicked with.
// A panic value that is not an error is wrapped in a *PanicError. When fn
// returns normally the check fails.
//
//	assertz.ThatThrownBy(t, func() { parse("") }).HasMessageContaining("empty input")
func ThatThrownBy(t TestingT, fn func()) *ErrorAssert {
	if fn == nil {
		invalidArgument("code must not be nil")
	}
	a := ThatError(t, nil)
	a.t.Helper()
	panicked, value := capturePanic(fn)
	a.check("ThatThrownBy", panicked, func() string {
		return "\nExpecting code to panic."
	})
	a.actual = panicAsError(value)
	return a
}

// CatchPanic runs fn and returns what it panicked with as an error, or nil
// when it returned normally.
func CatchPanic(fn func()) error {
	if fn == nil {
		invalidArgument("code must not be nil")
	}
	_, value := capturePanic(fn)
	return panicAsError(value)
}

// CodeAssert checks whether a function panics.
type CodeAssert struct {
	base
	fn func()
}

// ThatCode starts assertions on a function. The function runs once per
// check.
//
//	assertz.ThatCode(t, func() { _ = cache.Get("k") }).DoesNotPanic()
func ThatCode(t TestingT, fn func()) *CodeAssert {
	if fn == nil {
		invalidArgument("code must not be nil")
	}
	return &CodeAssert{base: newBase(t), fn: fn}
}

// As sets a description shown in front of failure messages.
func (a *CodeAssert) As(description string, args ...any) *CodeAssert {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *CodeAssert) WithFailMessage(format string, args ...any) *CodeAssert {
	a.overrideFailMessage(format, args)
	return a
}

// DoesNotPanic checks that the function returns normally.
func (a *CodeAssert) DoesNotPanic() *CodeAssert {
	a.t.Helper()
	panicked, value := capturePanic(a.fn)
	a.check("DoesNotPanic", !panicked, func() string {
		return "\nExpecting code not to panic but it panicked with:\n  " + indent(a.repr().format(value))
	})
	return a
}

// Panics checks that the function panics.
func (a *CodeAssert) Panics() *CodeAssert {
	a.t.Helper()
	panicked, _ := capturePanic(a.fn)
	a.check("Panics", panicked, func() string {
		return "\nExpecting code to panic."
	})
	return a
}

// PanicsWithValue checks that the function panics with a value equal to
// expected.
func (a *CodeAssert) PanicsWithValue(expected any) *CodeAssert {
	a.t.Helper()
	panicked, value := capturePanic(a.fn)
	a.check("PanicsWithValue", panicked && deepEqual(a.config, value, expected), func() string {
		if !panicked {
			return "\nExpecting code to panic with:\n  " + indent(a.repr().format(expected)) + "\nbut it did not panic"
		}
		return "\nExpecting code to panic with:\n  " + indent(a.repr().format(expected)) +
			"\nbut it panicked with:\n  " + indent(a.repr().format(value))
	})
	return a
}

// capturePanic runs fn, reporting whether it panicked and with what.
// panic(nil) counts as a panic.
func capturePanic(fn func()) (panicked bool, value any) {
	panicked = true
	defer func() {
		if panicked {
			value = recover()
		}
	}()
	fn()
	panicked = false
	return false, nil
}

func panicAsError(value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case error:
		return v
	default:
		return &PanicError{Value: v}
	}
}
