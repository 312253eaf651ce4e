package assertz

import (
	"cmp"
	"math"
	"reflect"
)

// NumberAssert checks integers and floating point numbers.
type NumberAssert[N Number] struct {
	base
	actual     N
	comparison comparison[N]
}

// ThatNumber starts assertions on a number.
//
//	assertz.ThatNumber(t, 8).IsBetween(7, 9).IsCloseTo(10, assertz.Within(2))
func ThatNumber[N Number](t TestingT, actual N) *NumberAssert[N] {
	return &NumberAssert[N]{
		base:       newBase(t),
		actual:     actual,
		comparison: orderedComparison[N](),
	}
}

// As sets a description shown in front of failure messages.
func (a *NumberAssert[N]) As(description string, args ...any) *NumberAssert[N] {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *NumberAssert[N]) WithFailMessage(format string, args ...any) *NumberAssert[N] {
	a.overrideFailMessage(format, args)
	return a
}

// UsingComparator compares the actual value with c in subsequent checks.
func (a *NumberAssert[N]) UsingComparator(c Comparator[N]) *NumberAssert[N] {
	requireComparator(c)
	a.comparison = comparison[N]{comparator: c, equal: a.comparison.equal}
	return a
}

// UsingDefaultComparator reverts to the natural ordering.
func (a *NumberAssert[N]) UsingDefaultComparator() *NumberAssert[N] {
	a.comparison = orderedComparison[N]()
	return a
}

func (a *NumberAssert[N]) compare(x, y N) int {
	if a.comparison.comparator != nil {
		return a.comparison.comparator(x, y)
	}
	return cmp.Compare(x, y)
}

// IsEqualTo checks that the actual number equals expected.
func (a *NumberAssert[N]) IsEqualTo(expected N) *NumberAssert[N] {
	a.t.Helper()
	a.check("IsEqualTo", a.comparison.areEqual(a.actual, expected), func() string {
		return shouldBeEqual(a.repr(), a.actual, expected, a.comparison.suffix())
	})
	return a
}

// IsNotEqualTo checks that the actual number differs from other.
func (a *NumberAssert[N]) IsNotEqualTo(other N) *NumberAssert[N] {
	a.t.Helper()
	a.check("IsNotEqualTo", !a.comparison.areEqual(a.actual, other), func() string {
		return shouldNotBeEqual(a.repr(), a.actual, other, a.comparison.suffix())
	})
	return a
}

// IsZero checks that the actual number is 0.
func (a *NumberAssert[N]) IsZero() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsZero", a.compare(a.actual, 0) == 0, func() string {
		return shouldBeEqual(a.repr(), a.actual, N(0), a.comparison.suffix())
	})
	return a
}

// IsNotZero checks that the actual number is not 0.
func (a *NumberAssert[N]) IsNotZero() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsNotZero", a.compare(a.actual, 0) != 0, func() string {
		return shouldNotBeEqual(a.repr(), a.actual, N(0), a.comparison.suffix())
	})
	return a
}

// IsOne checks that the actual number is 1.
func (a *NumberAssert[N]) IsOne() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsOne", a.compare(a.actual, 1) == 0, func() string {
		return shouldBeEqual(a.repr(), a.actual, N(1), a.comparison.suffix())
	})
	return a
}

// IsPositive checks that the actual number is greater than 0.
func (a *NumberAssert[N]) IsPositive() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsPositive", a.compare(a.actual, 0) > 0, func() string {
		return shouldCompare(a.repr(), a.actual, "to be greater than", N(0), a.comparison.suffix())
	})
	return a
}

// IsNegative checks that the actual number is less than 0.
func (a *NumberAssert[N]) IsNegative() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsNegative", a.compare(a.actual, 0) < 0, func() string {
		return shouldCompare(a.repr(), a.actual, "to be less than", N(0), a.comparison.suffix())
	})
	return a
}

// IsNotPositive checks that the actual number is 0 or less.
func (a *NumberAssert[N]) IsNotPositive() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsNotPositive", a.compare(a.actual, 0) <= 0, func() string {
		return shouldCompare(a.repr(), a.actual, "to be less than or equal to", N(0), a.comparison.suffix())
	})
	return a
}

// IsNotNegative checks that the actual number is 0 or more.
func (a *NumberAssert[N]) IsNotNegative() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsNotNegative", a.compare(a.actual, 0) >= 0, func() string {
		return shouldCompare(a.repr(), a.actual, "to be greater than or equal to", N(0), a.comparison.suffix())
	})
	return a
}

// IsEven checks that the actual integer is even. It panics for floats.
func (a *NumberAssert[N]) IsEven() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsEven", remainder(a.actual, "IsEven") == 0, func() string {
		return shouldBe(a.repr(), a.actual, "even")
	})
	return a
}

// IsOdd checks that the actual integer is odd. It panics for floats.
func (a *NumberAssert[N]) IsOdd() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsOdd", remainder(a.actual, "IsOdd") != 0, func() string {
		return shouldBe(a.repr(), a.actual, "odd")
	})
	return a
}

// IsGreaterThan checks that actual > other.
func (a *NumberAssert[N]) IsGreaterThan(other N) *NumberAssert[N] {
	a.t.Helper()
	a.check("IsGreaterThan", a.compare(a.actual, other) > 0, func() string {
		return shouldCompare(a.repr(), a.actual, "to be greater than", other, a.comparison.suffix())
	})
	return a
}

// IsGreaterThanOrEqualTo checks that actual >= other.
func (a *NumberAssert[N]) IsGreaterThanOrEqualTo(other N) *NumberAssert[N] {
	a.t.Helper()
	a.check("IsGreaterThanOrEqualTo", a.compare(a.actual, other) >= 0, func() string {
		return shouldCompare(a.repr(), a.actual, "to be greater than or equal to", other, a.comparison.suffix())
	})
	return a
}

// IsLessThan checks that actual < other.
func (a *NumberAssert[N]) IsLessThan(other N) *NumberAssert[N] {
	a.t.Helper()
	a.check("IsLessThan", a.compare(a.actual, other) < 0, func() string {
		return shouldCompare(a.repr(), a.actual, "to be less than", other, a.comparison.suffix())
	})
	return a
}

// IsLessThanOrEqualTo checks that actual <= other.
func (a *NumberAssert[N]) IsLessThanOrEqualTo(other N) *NumberAssert[N] {
	a.t.Helper()
	a.check("IsLessThanOrEqualTo", a.compare(a.actual, other) <= 0, func() string {
		return shouldCompare(a.repr(), a.actual, "to be less than or equal to", other, a.comparison.suffix())
	})
	return a
}

// IsBetween checks that start <= actual <= end. It panics when end is less
// than start.
func (a *NumberAssert[N]) IsBetween(start, end N) *NumberAssert[N] {
	a.t.Helper()
	return a.between("IsBetween", start, end, true, true)
}

// IsStrictlyBetween checks that start < actual < end. It panics unless start
// is less than end.
func (a *NumberAssert[N]) IsStrictlyBetween(start, end N) *NumberAssert[N] {
	a.t.Helper()
	return a.between("IsStrictlyBetween", start, end, false, false)
}

func (a *NumberAssert[N]) between(assertion string, start, end N, inclusiveStart, inclusiveEnd bool) *NumberAssert[N] {
	a.t.Helper()
	checkBounds(a.compare(start, end), start, end, inclusiveStart && inclusiveEnd)

	lower := a.compare(start, a.actual)
	upper := a.compare(a.actual, end)
	ok := (lower < 0 || (inclusiveStart && lower == 0)) && (upper < 0 || (inclusiveEnd && upper == 0))
	a.check(assertion, ok, func() string {
		return shouldBeBetween(a.repr(), a.actual, start, end, inclusiveStart, inclusiveEnd, a.comparison.suffix())
	})
	return a
}

// IsCloseTo checks that the difference between actual and expected fits the
// offset. With Within a difference equal to the offset passes.
//
//	assertz.ThatNumber(t, 8.1).IsCloseTo(8.0, assertz.Within(0.1))
func (a *NumberAssert[N]) IsCloseTo(expected N, offset Offset[N]) *NumberAssert[N] {
	a.t.Helper()
	ok, diff := a.closeTo(expected, offset)
	a.check("IsCloseTo", ok, func() string {
		return shouldBeCloseTo(a.repr(), a.actual, expected, a.repr().format(offset.value), diff.text, offset.strict)
	})
	return a
}

// IsNotCloseTo checks that the difference between actual and expected is
// outside the offset.
func (a *NumberAssert[N]) IsNotCloseTo(expected N, offset Offset[N]) *NumberAssert[N] {
	a.t.Helper()
	ok, diff := a.closeTo(expected, offset)
	a.check("IsNotCloseTo", !ok, func() string {
		return shouldNotBeCloseTo(a.repr(), a.actual, expected, a.repr().format(offset.value), diff.text)
	})
	return a
}

func (a *NumberAssert[N]) closeTo(expected N, offset Offset[N]) (bool, difference) {
	if a.actual == expected {
		return true, difference{text: "0"}
	}
	diff := distance(a.actual, expected)
	if isNaN(a.actual) || isNaN(expected) {
		return false, diff
	}
	return offset.allows(diff), diff
}

// IsCloseToPercentage checks that the difference between actual and expected
// is at most the given percentage of expected.
//
//	assertz.ThatNumber(t, 11).IsCloseToPercentage(10, assertz.WithinPercentage(10))
func (a *NumberAssert[N]) IsCloseToPercentage(expected N, p Percentage) *NumberAssert[N] {
	a.t.Helper()
	ok, diff := a.closeToPercentage(expected, p)
	a.check("IsCloseToPercentage", ok, func() string {
		return shouldBeCloseTo(a.repr(), a.actual, expected, p.String(), diff, false)
	})
	return a
}

// IsNotCloseToPercentage checks that the difference between actual and
// expected is greater than the given percentage of expected.
func (a *NumberAssert[N]) IsNotCloseToPercentage(expected N, p Percentage) *NumberAssert[N] {
	a.t.Helper()
	ok, diff := a.closeToPercentage(expected, p)
	a.check("IsNotCloseToPercentage", !ok, func() string {
		return shouldNotBeCloseTo(a.repr(), a.actual, expected, p.String(), diff)
	})
	return a
}

func (a *NumberAssert[N]) closeToPercentage(expected N, p Percentage) (bool, string) {
	if a.actual == expected {
		return true, "0%"
	}
	if isNaN(a.actual) || isNaN(expected) {
		return false, "NaN"
	}
	diff := distance(a.actual, expected).value()
	relative := diff / math.Abs(float64(expected)) * 100
	return diff <= p.tolerance(float64(expected)), formatFloat(relative) + "%"
}

// IsNaN checks that the actual number is NaN.
func (a *NumberAssert[N]) IsNaN() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsNaN", isNaN(a.actual), func() string {
		return shouldBe(a.repr(), a.actual, "NaN")
	})
	return a
}

// IsNotNaN checks that the actual number is not NaN.
func (a *NumberAssert[N]) IsNotNaN() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsNotNaN", !isNaN(a.actual), func() string {
		return shouldNotBe(a.repr(), a.actual, "NaN")
	})
	return a
}

// IsFinite checks that the actual number is neither infinite nor NaN.
func (a *NumberAssert[N]) IsFinite() *NumberAssert[N] {
	a.t.Helper()
	f := float64(a.actual)
	a.check("IsFinite", !math.IsInf(f, 0) && !math.IsNaN(f), func() string {
		return shouldBe(a.repr(), a.actual, "finite")
	})
	return a
}

// IsInfinite checks that the actual number is positive or negative infinity.
func (a *NumberAssert[N]) IsInfinite() *NumberAssert[N] {
	a.t.Helper()
	a.check("IsInfinite", math.IsInf(float64(a.actual), 0), func() string {
		return shouldBe(a.repr(), a.actual, "infinite")
	})
	return a
}

// checkBounds panics on a range that cannot contain any value. order is the
// comparison of start with end.
func checkBounds(order int, start, end any, inclusive bool) {
	if inclusive && order > 0 {
		invalidArgument("the end value <%v> must not be less than the start value <%v>", end, start)
	}
	if !inclusive && order >= 0 {
		invalidArgument("the end value <%v> must not be less than or equal to the start value <%v>", end, start)
	}
}

// remainder returns n modulo 2 for integer kinds and panics otherwise.
func remainder[N Number](n N, assertion string) int64 {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() % 2
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(v.Uint() % 2)
	default:
		invalidArgument("%s requires an integer, got %T", assertion, n)
		return 0
	}
}
