package assertz

// BoolAssert checks booleans.
type BoolAssert struct {
	base
	actual bool
}

// ThatBool starts assertions on a boolean.
func ThatBool(t TestingT, actual bool) *BoolAssert {
	return &BoolAssert{base: newBase(t), actual: actual}
}

// As sets a description shown in front of failure messages.
func (a *BoolAssert) As(description string, args ...any) *BoolAssert {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *BoolAssert) WithFailMessage(format string, args ...any) *BoolAssert {
	a.overrideFailMessage(format, args)
	return a
}

// IsTrue checks that the actual value is true.
func (a *BoolAssert) IsTrue() *BoolAssert {
	a.t.Helper()
	return a.is("IsTrue", true)
}

// IsFalse checks that the actual value is false.
func (a *BoolAssert) IsFalse() *BoolAssert {
	a.t.Helper()
	return a.is("IsFalse", false)
}

// IsEqualTo checks that the actual value equals expected.
func (a *BoolAssert) IsEqualTo(expected bool) *BoolAssert {
	a.t.Helper()
	return a.is("IsEqualTo", expected)
}

// IsNotEqualTo checks that the actual value differs from other.
func (a *BoolAssert) IsNotEqualTo(other bool) *BoolAssert {
	a.t.Helper()
	a.check("IsNotEqualTo", a.actual != other, func() string {
		return shouldNotBeEqual(a.repr(), a.actual, other, "")
	})
	return a
}

func (a *BoolAssert) is(assertion string, expected bool) *BoolAssert {
	a.t.Helper()
	a.check(assertion, a.actual == expected, func() string {
		return shouldBeEqual(a.repr(), a.actual, expected, "")
	})
	return a
}
