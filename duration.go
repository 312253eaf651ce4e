package assertz

import (
	"cmp"
	"math"
	"time"
)

// DurationAssert checks time.Duration values. The Has* checks look at the
// whole duration expressed in the unit, truncated, so 90 minutes has 1 hour
// and 90 minutes.
type DurationAssert struct {
	base
	actual time.Duration
}

// ThatDuration starts assertions on a duration.
func ThatDuration(t TestingT, actual time.Duration) *DurationAssert {
	return &DurationAssert{base: newBase(t), actual: actual}
}

// As sets a description shown in front of failure messages.
func (a *DurationAssert) As(description string, args ...any) *DurationAssert {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *DurationAssert) WithFailMessage(format string, args ...any) *DurationAssert {
	a.overrideFailMessage(format, args)
	return a
}

// IsEqualTo checks that actual equals expected.
func (a *DurationAssert) IsEqualTo(expected time.Duration) *DurationAssert {
	a.t.Helper()
	a.check("IsEqualTo", a.actual == expected, func() string {
		return shouldBeEqual(a.repr(), a.actual, expected, "")
	})
	return a
}

// IsZero checks that actual is zero.
func (a *DurationAssert) IsZero() *DurationAssert {
	a.t.Helper()
	a.check("IsZero", a.actual == 0, func() string {
		return shouldBe(a.repr(), a.actual, "zero")
	})
	return a
}

// IsPositive checks that actual is greater than zero.
func (a *DurationAssert) IsPositive() *DurationAssert {
	a.t.Helper()
	a.check("IsPositive", a.actual > 0, func() string {
		return shouldBe(a.repr(), a.actual, "positive")
	})
	return a
}

// IsNegative checks that actual is less than zero.
func (a *DurationAssert) IsNegative() *DurationAssert {
	a.t.Helper()
	a.check("IsNegative", a.actual < 0, func() string {
		return shouldBe(a.repr(), a.actual, "negative")
	})
	return a
}

// HasHours checks the number of whole hours in actual.
func (a *DurationAssert) HasHours(hours int64) *DurationAssert {
	a.t.Helper()
	return a.hasUnits("HasHours", "hours", hours, int64(a.actual/time.Hour))
}

// HasMinutes checks the number of whole minutes in actual.
func (a *DurationAssert) HasMinutes(minutes int64) *DurationAssert {
	a.t.Helper()
	return a.hasUnits("HasMinutes", "minutes", minutes, int64(a.actual/time.Minute))
}

// HasSeconds checks the number of whole seconds in actual.
func (a *DurationAssert) HasSeconds(seconds int64) *DurationAssert {
	a.t.Helper()
	return a.hasUnits("HasSeconds", "seconds", seconds, int64(a.actual/time.Second))
}

// HasMillis checks the number of whole milliseconds in actual.
func (a *DurationAssert) HasMillis(millis int64) *DurationAssert {
	a.t.Helper()
	return a.hasUnits("HasMillis", "milliseconds", millis, a.actual.Milliseconds())
}

// HasNanos checks actual in nanoseconds.
func (a *DurationAssert) HasNanos(nanos int64) *DurationAssert {
	a.t.Helper()
	return a.hasUnits("HasNanos", "nanoseconds", nanos, a.actual.Nanoseconds())
}

// IsGreaterThan checks that actual is strictly longer than other.
func (a *DurationAssert) IsGreaterThan(other time.Duration) *DurationAssert {
	a.t.Helper()
	a.check("IsGreaterThan", a.actual > other, func() string {
		return shouldCompare(a.repr(), a.actual, "to be greater than", other, "")
	})
	return a
}

// IsLessThan checks that actual is strictly shorter than other.
func (a *DurationAssert) IsLessThan(other time.Duration) *DurationAssert {
	a.t.Helper()
	a.check("IsLessThan", a.actual < other, func() string {
		return shouldCompare(a.repr(), a.actual, "to be less than", other, "")
	})
	return a
}

// IsBetween checks start <= actual <= end. It panics when end < start.
func (a *DurationAssert) IsBetween(start, end time.Duration) *DurationAssert {
	a.t.Helper()
	checkBounds(cmp.Compare(start, end), start, end, true)
	a.check("IsBetween", a.actual >= start && a.actual <= end, func() string {
		return shouldBeBetween(a.repr(), a.actual, start, end, true, true, "")
	})
	return a
}

// IsCloseTo checks that actual and expected are at most tolerance apart.
func (a *DurationAssert) IsCloseTo(expected, tolerance time.Duration) *DurationAssert {
	a.t.Helper()
	if tolerance < 0 {
		invalidArgument("tolerance must not be negative, got %s", tolerance)
	}
	diff := distance(a.actual, expected)
	a.check("IsCloseTo", diff.magnitude <= uint64(tolerance), func() string {
		return shouldBeCloseTo(a.repr(), a.actual, expected, tolerance.String(), durationText(diff), false)
	})
	return a
}

func (a *DurationAssert) hasUnits(assertion, unit string, expected, got int64) *DurationAssert {
	a.t.Helper()
	a.check(assertion, expected == got, func() string {
		return shouldHave(a.repr(), a.actual, unit, expected, got)
	})
	return a
}

func durationText(d difference) string {
	if d.magnitude > math.MaxInt64 {
		return d.text + "ns"
	}
	return time.Duration(d.magnitude).String()
}
