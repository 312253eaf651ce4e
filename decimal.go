package assertz

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DecimalAssert checks arbitrary precision decimals.
type DecimalAssert struct {
	base
	actual decimal.Decimal
}

// ThatDecimal starts assertions on a decimal.
//
//	assertz.ThatDecimal(t, total).IsEqualByComparingTo(decimal.RequireFromString("10.50"))
func ThatDecimal(t TestingT, actual decimal.Decimal) *DecimalAssert {
	return &DecimalAssert{base: newBase(t), actual: actual}
}

// As sets a description shown in front of failure messages.
func (a *DecimalAssert) As(description string, args ...any) *DecimalAssert {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *DecimalAssert) WithFailMessage(format string, args ...any) *DecimalAssert {
	a.overrideFailMessage(format, args)
	return a
}

// IsEqualTo checks value and scale, so 1.0 is not equal to 1.00.
func (a *DecimalAssert) IsEqualTo(expected decimal.Decimal) *DecimalAssert {
	a.t.Helper()
	ok := a.actual.Equal(expected) && a.actual.Exponent() == expected.Exponent()
	a.check("IsEqualTo", ok, func() string {
		return "\nexpected: " + withScale(expected) + "\n but was: " + withScale(a.actual)
	})
	return a
}

// IsEqualByComparingTo checks numeric equality whatever the scale.
func (a *DecimalAssert) IsEqualByComparingTo(expected decimal.Decimal) *DecimalAssert {
	a.t.Helper()
	a.check("IsEqualByComparingTo", a.actual.Cmp(expected) == 0, func() string {
		return shouldBeEqual(a.repr(), a.actual, expected, "")
	})
	return a
}

// IsNotEqualTo is the negation of IsEqualTo, so 1.0 is not equal to 1.00.
func (a *DecimalAssert) IsNotEqualTo(other decimal.Decimal) *DecimalAssert {
	a.t.Helper()
	same := a.actual.Equal(other) && a.actual.Exponent() == other.Exponent()
	a.check("IsNotEqualTo", !same, func() string {
		return "\nExpecting actual:\n  " + withScale(a.actual) + "\nnot to be equal to:\n  " + withScale(other)
	})
	return a
}

// IsZero checks that actual is zero.
func (a *DecimalAssert) IsZero() *DecimalAssert {
	a.t.Helper()
	a.check("IsZero", a.actual.IsZero(), func() string {
		return shouldBeEqual(a.repr(), a.actual, decimal.Zero, "")
	})
	return a
}

// IsNotZero checks that actual is not zero.
func (a *DecimalAssert) IsNotZero() *DecimalAssert {
	a.t.Helper()
	a.check("IsNotZero", !a.actual.IsZero(), func() string {
		return shouldNotBeEqual(a.repr(), a.actual, decimal.Zero, "")
	})
	return a
}

// IsPositive checks that actual is greater than zero.
func (a *DecimalAssert) IsPositive() *DecimalAssert {
	a.t.Helper()
	a.check("IsPositive", a.actual.IsPositive(), func() string {
		return shouldCompare(a.repr(), a.actual, "to be greater than", decimal.Zero, "")
	})
	return a
}

// IsNegative checks that actual is less than zero.
func (a *DecimalAssert) IsNegative() *DecimalAssert {
	a.t.Helper()
	a.check("IsNegative", a.actual.IsNegative(), func() string {
		return shouldCompare(a.repr(), a.actual, "to be less than", decimal.Zero, "")
	})
	return a
}

// IsGreaterThan checks that actual is strictly greater than other.
func (a *DecimalAssert) IsGreaterThan(other decimal.Decimal) *DecimalAssert {
	a.t.Helper()
	a.check("IsGreaterThan", a.actual.GreaterThan(other), func() string {
		return shouldCompare(a.repr(), a.actual, "to be greater than", other, "")
	})
	return a
}

// IsLessThan checks that actual is strictly less than other.
func (a *DecimalAssert) IsLessThan(other decimal.Decimal) *DecimalAssert {
	a.t.Helper()
	a.check("IsLessThan", a.actual.LessThan(other), func() string {
		return shouldCompare(a.repr(), a.actual, "to be less than", other, "")
	})
	return a
}

// IsBetween checks start <= actual <= end. It panics when end < start.
func (a *DecimalAssert) IsBetween(start, end decimal.Decimal) *DecimalAssert {
	a.t.Helper()
	checkBounds(start.Cmp(end), start, end, true)
	ok := a.actual.GreaterThanOrEqual(start) && a.actual.LessThanOrEqual(end)
	a.check("IsBetween", ok, func() string {
		return shouldBeBetween(a.repr(), a.actual, start, end, true, true, "")
	})
	return a
}

// IsStrictlyBetween checks start < actual < end. It panics unless
// start < end.
func (a *DecimalAssert) IsStrictlyBetween(start, end decimal.Decimal) *DecimalAssert {
	a.t.Helper()
	checkBounds(start.Cmp(end), start, end, false)
	ok := a.actual.GreaterThan(start) && a.actual.LessThan(end)
	a.check("IsStrictlyBetween", ok, func() string {
		return shouldBeBetween(a.repr(), a.actual, start, end, false, false, "")
	})
	return a
}

// IsCloseTo checks |actual - expected| <= offset. It panics when offset is
// negative.
func (a *DecimalAssert) IsCloseTo(expected, offset decimal.Decimal) *DecimalAssert {
	a.t.Helper()
	if offset.IsNegative() {
		invalidArgument("offset must be a positive number or zero, got %s", offset)
	}
	diff := a.actual.Sub(expected).Abs()
	a.check("IsCloseTo", diff.LessThanOrEqual(offset), func() string {
		return shouldBeCloseTo(a.repr(), a.actual, expected, offset.String(), diff.String(), false)
	})
	return a
}

// HasScale checks the number of digits after the decimal point.
func (a *DecimalAssert) HasScale(scale int32) *DecimalAssert {
	a.t.Helper()
	got := -a.actual.Exponent()
	a.check("HasScale", got == scale, func() string {
		return shouldHave(a.repr(), withScale(a.actual), "scale", scale, got)
	})
	return a
}

func withScale(d decimal.Decimal) string {
	scale := -d.Exponent()
	if scale < 0 {
		return fmt.Sprintf("%s (scale %d)", d.String(), scale)
	}
	return fmt.Sprintf("%s (scale %d)", d.StringFixed(scale), scale)
}
