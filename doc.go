// Package assertz provides fluent, type-safe assertions for Go tests.
//
// # Overview
//
// Each entry point takes the test's TestingT and the value under test and
// returns an assertion object whose checks chain:
//
//	assertz.ThatNumber(t, 8).IsPositive().IsBetween(7, 9)
//	assertz.ThatString(t, name).StartsWith("Fro").EndsWith("do")
//	assertz.ThatSlice(t, ids).HasSize(3).DoesNotHaveDuplicates()
//
// Failure messages show the actual value and each expectation on its own
// indented line, followed by a diff when comparing strings over several lines
// or composite values.
//
// # Entry Points
//
//   - That: any value, compared structurally with go-cmp
//   - ThatNumber: integers and floats, with offsets and percentages
//   - ThatString, ThatBool, ThatTime, ThatDuration
//   - ThatSlice, ThatMap
//   - ThatError, ThatThrownBy, ThatCode: error chains and panics
//   - ThatPointer: a pointer seen as an optional value
//   - ThatPredicate: a func(T) bool
//   - ThatChannel: a channel seen as a future result
//   - ThatDecimal, ThatUUID
//
// # Hard and Soft Assertions
//
// By default the first failing check reports to t and stops the test with
// FailNow, so later checks of the chain never run.
//
// A SoftAssertions session collects failures instead. It satisfies TestingT,
// so it is handed to entry points in place of t:
//
//	soft := assertz.NewSoftAssertions(t)
//	assertz.ThatNumber(soft, resp.Code).IsEqualTo(200)
//	assertz.ThatString(soft, resp.Body).Contains("ok")
//	soft.AssertAll()
//
// AssertAll reports a single aggregate failure listing every collected
// failure in order. AssertSoftly and Softly wrap the session lifecycle.
// Sessions expose metrics, spans and hooks for tooling built on top.
//
// # Tolerances
//
// Within and WithinPercentage are inclusive: a difference equal to the
// tolerance passes. ByLessThan is strict. Invalid tolerances and inverted
// ranges are programmer errors and panic with ErrInvalidArgument.
//
// # Configuration
//
// Config controls printing limits, unexported field comparison, diffs and
// the clock. It is passed explicitly with WithConfig or WithSoftConfig, or
// loaded from ASSERTZ_* environment variables with LoadConfig. There is no
// global state.
package assertz
