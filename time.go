package assertz

import (
	"time"

	"github.com/zoobzio/clockz"
)

// TimeAssert checks time instants. Equality is by instant, so the same
// moment in two locations is equal.
type TimeAssert struct {
	base
	actual time.Time
	clock  clockz.Clock
}

// ThatTime starts assertions on a time instant.
func ThatTime(t TestingT, actual time.Time) *TimeAssert {
	b := newBase(t)
	return &TimeAssert{base: b, actual: actual, clock: b.config.clock()}
}

// As sets a description shown in front of failure messages.
func (a *TimeAssert) As(description string, args ...any) *TimeAssert {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *TimeAssert) WithFailMessage(format string, args ...any) *TimeAssert {
	a.overrideFailMessage(format, args)
	return a
}

// WithClock sets the clock IsInThePast, IsInTheFuture and IsToday read the
// current time from.
func (a *TimeAssert) WithClock(clock clockz.Clock) *TimeAssert {
	if clock == nil {
		invalidArgument("clock must not be nil")
	}
	a.clock = clock
	return a
}

// IsEqualTo checks that both values denote the same instant.
func (a *TimeAssert) IsEqualTo(expected time.Time) *TimeAssert {
	a.t.Helper()
	a.check("IsEqualTo", a.actual.Equal(expected), func() string {
		return shouldBeEqual(a.repr(), a.actual, expected, "")
	})
	return a
}

// IsNotEqualTo checks that the values denote different instants.
func (a *TimeAssert) IsNotEqualTo(other time.Time) *TimeAssert {
	a.t.Helper()
	a.check("IsNotEqualTo", !a.actual.Equal(other), func() string {
		return shouldNotBeEqual(a.repr(), a.actual, other, "")
	})
	return a
}

// IsZero checks that the actual value is the zero time.
func (a *TimeAssert) IsZero() *TimeAssert {
	a.t.Helper()
	a.check("IsZero", a.actual.IsZero(), func() string {
		return shouldBe(a.repr(), a.actual, "the zero time")
	})
	return a
}

// IsBefore checks that actual is strictly before other.
func (a *TimeAssert) IsBefore(other time.Time) *TimeAssert {
	a.t.Helper()
	a.check("IsBefore", a.actual.Before(other), func() string {
		return shouldCompare(a.repr(), a.actual, "to be strictly before", other, "")
	})
	return a
}

// IsBeforeOrEqualTo checks that actual is not after other.
func (a *TimeAssert) IsBeforeOrEqualTo(other time.Time) *TimeAssert {
	a.t.Helper()
	a.check("IsBeforeOrEqualTo", !a.actual.After(other), func() string {
		return shouldCompare(a.repr(), a.actual, "to be before or equal to", other, "")
	})
	return a
}

// IsAfter checks that actual is strictly after other.
func (a *TimeAssert) IsAfter(other time.Time) *TimeAssert {
	a.t.Helper()
	a.check("IsAfter", a.actual.After(other), func() string {
		return shouldCompare(a.repr(), a.actual, "to be strictly after", other, "")
	})
	return a
}

// IsAfterOrEqualTo checks that actual is not before other.
func (a *TimeAssert) IsAfterOrEqualTo(other time.Time) *TimeAssert {
	a.t.Helper()
	a.check("IsAfterOrEqualTo", !a.actual.Before(other), func() string {
		return shouldCompare(a.repr(), a.actual, "to be after or equal to", other, "")
	})
	return a
}

// IsBetween checks start <= actual <= end. It panics when end is before
// start.
func (a *TimeAssert) IsBetween(start, end time.Time) *TimeAssert {
	a.t.Helper()
	checkBounds(start.Compare(end), start, end, true)
	ok := !a.actual.Before(start) && !a.actual.After(end)
	a.check("IsBetween", ok, func() string {
		return shouldBeBetween(a.repr(), a.actual, start, end, true, true, "")
	})
	return a
}

// IsStrictlyBetween checks start < actual < end. It panics unless start is
// before end.
func (a *TimeAssert) IsStrictlyBetween(start, end time.Time) *TimeAssert {
	a.t.Helper()
	checkBounds(start.Compare(end), start, end, false)
	ok := a.actual.After(start) && a.actual.Before(end)
	a.check("IsStrictlyBetween", ok, func() string {
		return shouldBeBetween(a.repr(), a.actual, start, end, false, false, "")
	})
	return a
}

// IsCloseTo checks that actual and other are at most tolerance apart.
func (a *TimeAssert) IsCloseTo(other time.Time, tolerance time.Duration) *TimeAssert {
	a.t.Helper()
	if tolerance < 0 {
		invalidArgument("tolerance must not be negative, got %s", tolerance)
	}
	diff := a.actual.Sub(other).Abs()
	a.check("IsCloseTo", diff <= tolerance, func() string {
		return shouldBeCloseTo(a.repr(), a.actual, other, tolerance.String(), diff.String(), false)
	})
	return a
}

// IsInThePast checks that actual is before the clock's current time.
func (a *TimeAssert) IsInThePast() *TimeAssert {
	a.t.Helper()
	now := a.clock.Now()
	a.check("IsInThePast", a.actual.Before(now), func() string {
		return shouldBe(a.repr(), a.actual, "in the past")
	})
	return a
}

// IsInTheFuture checks that actual is after the clock's current time.
func (a *TimeAssert) IsInTheFuture() *TimeAssert {
	a.t.Helper()
	now := a.clock.Now()
	a.check("IsInTheFuture", a.actual.After(now), func() string {
		return shouldBe(a.repr(), a.actual, "in the future")
	})
	return a
}

// IsToday checks that actual falls on the current date in its own location.
func (a *TimeAssert) IsToday() *TimeAssert {
	a.t.Helper()
	now := a.clock.Now().In(a.actual.Location())
	a.check("IsToday", sameDay(a.actual, now), func() string {
		return shouldBe(a.repr(), a.actual, "today")
	})
	return a
}

// IsInSameDayAs compares calendar dates in the location of actual.
func (a *TimeAssert) IsInSameDayAs(other time.Time) *TimeAssert {
	a.t.Helper()
	a.check("IsInSameDayAs", sameDay(a.actual, other.In(a.actual.Location())), func() string {
		return shouldCompare(a.repr(), a.actual, "to be on same year, month and day as", other, "")
	})
	return a
}

// IsInSameYearAs compares calendar years in the location of actual.
func (a *TimeAssert) IsInSameYearAs(other time.Time) *TimeAssert {
	a.t.Helper()
	a.check("IsInSameYearAs", a.actual.Year() == other.In(a.actual.Location()).Year(), func() string {
		return shouldCompare(a.repr(), a.actual, "to be on same year as", other, "")
	})
	return a
}

// HasYear checks the year of actual.
func (a *TimeAssert) HasYear(year int) *TimeAssert {
	a.t.Helper()
	return a.hasField("HasYear", "year", year, a.actual.Year())
}

// HasMonth checks the month of actual.
func (a *TimeAssert) HasMonth(month time.Month) *TimeAssert {
	a.t.Helper()
	a.check("HasMonth", a.actual.Month() == month, func() string {
		return shouldHave(a.repr(), a.actual, "month", month, a.actual.Month())
	})
	return a
}

// HasDayOfMonth checks the day of the month of actual.
func (a *TimeAssert) HasDayOfMonth(day int) *TimeAssert {
	a.t.Helper()
	return a.hasField("HasDayOfMonth", "day of month", day, a.actual.Day())
}

// HasWeekday checks the day of the week of actual.
func (a *TimeAssert) HasWeekday(day time.Weekday) *TimeAssert {
	a.t.Helper()
	a.check("HasWeekday", a.actual.Weekday() == day, func() string {
		return shouldHave(a.repr(), a.actual, "weekday", day, a.actual.Weekday())
	})
	return a
}

// HasHour checks the hour of actual.
func (a *TimeAssert) HasHour(hour int) *TimeAssert {
	a.t.Helper()
	return a.hasField("HasHour", "hour", hour, a.actual.Hour())
}

// HasMinute checks the minute of actual.
func (a *TimeAssert) HasMinute(minute int) *TimeAssert {
	a.t.Helper()
	return a.hasField("HasMinute", "minute", minute, a.actual.Minute())
}

// HasSecond checks the second of actual.
func (a *TimeAssert) HasSecond(second int) *TimeAssert {
	a.t.Helper()
	return a.hasField("HasSecond", "second", second, a.actual.Second())
}

// HasNanosecond checks the nanosecond within the second of actual.
func (a *TimeAssert) HasNanosecond(nanos int) *TimeAssert {
	a.t.Helper()
	return a.hasField("HasNanosecond", "nanosecond", nanos, a.actual.Nanosecond())
}

// IsEqualToIgnoringNanos compares instants truncated to the second.
func (a *TimeAssert) IsEqualToIgnoringNanos(expected time.Time) *TimeAssert {
	a.t.Helper()
	ok := a.actual.Truncate(time.Second).Equal(expected.Truncate(time.Second))
	a.check("IsEqualToIgnoringNanos", ok, func() string {
		return shouldCompare(a.repr(), a.actual, "to have same year, month, day, hour, minute and second as", expected, "")
	})
	return a
}

func (a *TimeAssert) hasField(assertion, field string, expected, got int) *TimeAssert {
	a.t.Helper()
	a.check(assertion, expected == got, func() string {
		return shouldHave(a.repr(), a.actual, field, expected, got)
	})
	return a
}

func sameDay(x, y time.Time) bool {
	xy, xm, xd := x.Date()
	yy, ym, yd := y.Date()
	return xy == yy && xm == ym && xd == yd
}
