package assertz

import (
	"errors"
	"reflect"
	"strings"
)

// ErrorAssert checks errors and their chains.
type ErrorAssert struct {
	base
	actual error
}

// ThatError starts assertions on an error.
//
//	assertz.ThatError(t, err).Is(fs.ErrNotExist).HasMessageContaining("config.yaml")
func ThatError(t TestingT, actual error) *ErrorAssert {
	return &ErrorAssert{base: newBase(t), actual: actual}
}

// As sets a description shown in front of failure messages.
func (a *ErrorAssert) As(description string, args ...any) *ErrorAssert {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *ErrorAssert) WithFailMessage(format string, args ...any) *ErrorAssert {
	a.overrideFailMessage(format, args)
	return a
}

// Actual returns the error under test.
func (a *ErrorAssert) Actual() error {
	return a.actual
}

// IsNil checks that there is no error.
func (a *ErrorAssert) IsNil() *ErrorAssert {
	a.t.Helper()
	a.check("IsNil", a.actual == nil, func() string {
		return shouldBe(a.repr(), a.actual, "nil")
	})
	return a
}

// IsNotNil checks that there is an error.
func (a *ErrorAssert) IsNotNil() *ErrorAssert {
	a.t.Helper()
	a.check("IsNotNil", a.actual != nil, func() string {
		return "\nExpecting actual not to be nil"
	})
	return a
}

// HasMessage checks the full text of the error.
func (a *ErrorAssert) HasMessage(expected string) *ErrorAssert {
	a.t.Helper()
	return a.checkMessage("HasMessage", func(msg string) bool { return msg == expected }, func(msg string) string {
		return "\nExpecting message:\n  " + a.repr().format(expected) +
			"\nbut was:\n  " + a.repr().format(msg) + equalityDiff(a.config, expected, msg)
	})
}

// HasMessageContaining checks that the error text contains every value.
func (a *ErrorAssert) HasMessageContaining(values ...string) *ErrorAssert {
	a.t.Helper()
	requireValues(len(values))
	return a.checkMessage("HasMessageContaining", func(msg string) bool {
		return len(missingSubstrings(msg, values, strings.Contains)) == 0
	}, func(msg string) string {
		return shouldContain(a.repr(), msg, values, missingSubstrings(msg, values, strings.Contains), "")
	})
}

// HasMessageStartingWith checks the beginning of the error message.
func (a *ErrorAssert) HasMessageStartingWith(prefix string) *ErrorAssert {
	a.t.Helper()
	return a.checkMessage("HasMessageStartingWith", func(msg string) bool { return strings.HasPrefix(msg, prefix) }, func(msg string) string {
		return shouldCompare(a.repr(), msg, "to start with", prefix, "")
	})
}

// HasMessageEndingWith checks the end of the error message.
func (a *ErrorAssert) HasMessageEndingWith(suffix string) *ErrorAssert {
	a.t.Helper()
	return a.checkMessage("HasMessageEndingWith", func(msg string) bool { return strings.HasSuffix(msg, suffix) }, func(msg string) string {
		return shouldCompare(a.repr(), msg, "to end with", suffix, "")
	})
}

// HasMessageMatching checks the whole error text against a regular
// expression.
func (a *ErrorAssert) HasMessageMatching(pattern string) *ErrorAssert {
	a.t.Helper()
	re := compilePattern(pattern)
	return a.checkMessage("HasMessageMatching", re.MatchString, func(msg string) string {
		return shouldCompare(a.repr(), msg, "to match pattern", pattern, "")
	})
}

// Is checks that target is in the chain of the error, as errors.Is does.
func (a *ErrorAssert) Is(target error) *ErrorAssert {
	a.t.Helper()
	a.check("Is", errors.Is(a.actual, target), func() string {
		return shouldCompare(a.repr(), a.actual, "to wrap", target, "")
	})
	return a
}

// IsNot checks that target is not in the chain of the error.
func (a *ErrorAssert) IsNot(target error) *ErrorAssert {
	a.t.Helper()
	a.check("IsNot", !errors.Is(a.actual, target), func() string {
		return shouldCompare(a.repr(), a.actual, "not to wrap", target, "")
	})
	return a
}

// IsInstanceOf checks that the chain holds an error assignable to the value
// target points to, and stores it there as errors.As does. It panics when
// target is not a non-nil pointer to an error or interface type.
//
//	var pathErr *fs.PathError
//	assertz.ThatError(t, err).IsInstanceOf(&pathErr)
func (a *ErrorAssert) IsInstanceOf(target any) *ErrorAssert {
	a.t.Helper()
	typ := asTargetType(target)
	a.check("IsInstanceOf", a.actual != nil && errors.As(a.actual, target), func() string {
		return expectingActual(a.repr(), a.actual) + "\nto be an instance of:\n  " + typ.String() +
			"\nbut was:\n  " + typeName(a.actual)
	})
	return a
}

// HasNoCause checks that the error wraps nothing.
func (a *ErrorAssert) HasNoCause() *ErrorAssert {
	a.t.Helper()
	cause := causeOf(a.actual)
	a.check("HasNoCause", a.actual != nil && cause == nil, func() string {
		if a.actual == nil {
			return "\nExpecting actual not to be nil"
		}
		return expectingActual(a.repr(), a.actual) + "\nto have no cause" + clause(a.repr(), "but had", cause)
	})
	return a
}

// HasCauseMessage checks the text of the directly wrapped error.
func (a *ErrorAssert) HasCauseMessage(expected string) *ErrorAssert {
	a.t.Helper()
	cause := causeOf(a.actual)
	a.check("HasCauseMessage", cause != nil && cause.Error() == expected, func() string {
		return expectingActual(a.repr(), a.actual) + clause(a.repr(), "to have a cause with message", expected) +
			clause(a.repr(), "but cause was", cause)
	})
	return a
}

// HasRootCauseMessage checks the text of the innermost wrapped error.
func (a *ErrorAssert) HasRootCauseMessage(expected string) *ErrorAssert {
	a.t.Helper()
	root := rootCauseOf(a.actual)
	a.check("HasRootCauseMessage", root != nil && root.Error() == expected, func() string {
		return expectingActual(a.repr(), a.actual) + clause(a.repr(), "to have a root cause with message", expected) +
			clause(a.repr(), "but root cause was", root)
	})
	return a
}

// Cause navigates to the directly wrapped error.
func (a *ErrorAssert) Cause() *ErrorAssert {
	return &ErrorAssert{base: a.derive(), actual: causeOf(a.actual)}
}

// RootCause navigates to the innermost wrapped error, or the error itself
// when it wraps nothing.
func (a *ErrorAssert) RootCause() *ErrorAssert {
	return &ErrorAssert{base: a.derive(), actual: rootCauseOf(a.actual)}
}

func (a *ErrorAssert) checkMessage(assertion string, ok func(string) bool, message func(string) string) *ErrorAssert {
	a.t.Helper()
	if a.actual == nil {
		a.check(assertion, false, func() string {
			return "\nExpecting actual not to be nil"
		})
		return a
	}
	msg := a.actual.Error()
	a.check(assertion, ok(msg), func() string {
		return message(msg)
	})
	return a
}

// causeOf returns the error err wraps. For errors joining several, the first
// one is the cause.
func causeOf(err error) error {
	if err == nil {
		return nil
	}
	if cause := errors.Unwrap(err); cause != nil {
		return cause
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if e != nil {
				return e
			}
		}
	}
	return nil
}

// rootCauseOf follows causes until one wraps nothing. A chain that loops back
// on itself ends at the last error not yet visited.
func rootCauseOf(err error) error {
	var visited []error
	for err != nil {
		visited = append(visited, err)
		cause := causeOf(err)
		if cause == nil || containsError(visited, cause) {
			return err
		}
		err = cause
	}
	return nil
}

// containsError compares by identity, skipping errors whose dynamic type
// cannot be compared.
func containsError(errs []error, target error) bool {
	if !reflect.TypeOf(target).Comparable() {
		return false
	}
	for _, e := range errs {
		if reflect.TypeOf(e) == reflect.TypeOf(target) && e == target {
			return true
		}
	}
	return false
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func asTargetType(target any) reflect.Type {
	if target == nil {
		invalidArgument("target must be a non-nil pointer")
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		invalidArgument("target must be a non-nil pointer, got %T", target)
	}
	typ := v.Type().Elem()
	if typ.Kind() != reflect.Interface && !typ.Implements(errorType) {
		invalidArgument("*target must be an interface or implement error, got %s", typ)
	}
	return typ
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
