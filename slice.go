package assertz

import (
	"cmp"
	"fmt"
	"reflect"
)

// SliceAssert checks slices. Element equality is structural unless an
// element comparator is set.
type SliceAssert[E any] struct {
	base
	actual     []E
	comparison comparison[E]
}

// ThatSlice starts assertions on a slice.
//
//	assertz.ThatSlice(t, []int{1, 2, 3}).HasSize(3).ContainsExactly(1, 2, 3)
func ThatSlice[S ~[]E, E any](t TestingT, actual S) *SliceAssert[E] {
	b := newBase(t)
	return &SliceAssert[E]{
		base:       b,
		actual:     actual,
		comparison: standardComparison[E](b.config),
	}
}

// As sets a description shown in front of failure messages.
func (a *SliceAssert[E]) As(description string, args ...any) *SliceAssert[E] {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *SliceAssert[E]) WithFailMessage(format string, args ...any) *SliceAssert[E] {
	a.overrideFailMessage(format, args)
	return a
}

// UsingElementComparator compares elements with c in subsequent checks,
// including ordering checks.
func (a *SliceAssert[E]) UsingElementComparator(c Comparator[E]) *SliceAssert[E] {
	requireComparator(c)
	a.comparison = comparison[E]{comparator: c}
	return a
}

// UsingDefaultElementComparator reverts to structural equality and natural
// ordering.
func (a *SliceAssert[E]) UsingDefaultElementComparator() *SliceAssert[E] {
	a.comparison = standardComparison[E](a.config)
	return a
}

// IsNil checks that the actual slice is nil.
func (a *SliceAssert[E]) IsNil() *SliceAssert[E] {
	a.t.Helper()
	a.check("IsNil", a.actual == nil, func() string {
		return shouldBe(a.repr(), a.actual, "nil")
	})
	return a
}

// IsEmpty checks that the actual slice has no elements. A nil slice is
// empty.
func (a *SliceAssert[E]) IsEmpty() *SliceAssert[E] {
	a.t.Helper()
	a.check("IsEmpty", len(a.actual) == 0, func() string {
		return shouldBe(a.repr(), a.actual, "empty")
	})
	return a
}

// IsNotEmpty checks that the actual slice has elements.
func (a *SliceAssert[E]) IsNotEmpty() *SliceAssert[E] {
	a.t.Helper()
	a.check("IsNotEmpty", len(a.actual) > 0, func() string {
		return "\nExpecting actual not to be empty"
	})
	return a
}

// IsNullOrEmpty checks that the actual slice is nil or empty.
func (a *SliceAssert[E]) IsNullOrEmpty() *SliceAssert[E] {
	a.t.Helper()
	a.check("IsNullOrEmpty", len(a.actual) == 0, func() string {
		return shouldBe(a.repr(), a.actual, "nil or empty")
	})
	return a
}

// HasSize checks the number of elements.
func (a *SliceAssert[E]) HasSize(expected int) *SliceAssert[E] {
	a.t.Helper()
	a.check("HasSize", len(a.actual) == expected, func() string {
		return shouldHaveSize(a.repr(), a.actual, len(a.actual), expected)
	})
	return a
}

// HasSizeGreaterThan checks that the size is strictly greater than boundary.
func (a *SliceAssert[E]) HasSizeGreaterThan(boundary int) *SliceAssert[E] {
	a.t.Helper()
	a.check("HasSizeGreaterThan", len(a.actual) > boundary, func() string {
		return shouldHave(a.repr(), a.actual, "size greater than", boundary, len(a.actual))
	})
	return a
}

// HasSizeLessThan checks that the size is strictly less than boundary.
func (a *SliceAssert[E]) HasSizeLessThan(boundary int) *SliceAssert[E] {
	a.t.Helper()
	a.check("HasSizeLessThan", len(a.actual) < boundary, func() string {
		return shouldHave(a.repr(), a.actual, "size less than", boundary, len(a.actual))
	})
	return a
}

// HasSizeBetween checks that lower <= size <= higher. It panics when higher
// is less than lower.
func (a *SliceAssert[E]) HasSizeBetween(lower, higher int) *SliceAssert[E] {
	a.t.Helper()
	checkBounds(cmp.Compare(lower, higher), lower, higher, true)
	n := len(a.actual)
	a.check("HasSizeBetween", n >= lower && n <= higher, func() string {
		return shouldHave(a.repr(), a.actual, "size between", fmt.Sprintf("[%d, %d]", lower, higher), n)
	})
	return a
}

// HasSameSizeAs checks the size against another slice, array, map, string or
// channel. It panics for other kinds.
func (a *SliceAssert[E]) HasSameSizeAs(other any) *SliceAssert[E] {
	a.t.Helper()
	n := sizeOf(other)
	a.check("HasSameSizeAs", len(a.actual) == n, func() string {
		return shouldHaveSize(a.repr(), a.actual, len(a.actual), n)
	})
	return a
}

// Contains checks that every value is an element, in any order. Looking for
// no values is only allowed on an empty slice.
func (a *SliceAssert[E]) Contains(values ...E) *SliceAssert[E] {
	a.t.Helper()
	if len(a.actual) > 0 {
		requireValues(len(values))
	}
	missing := a.missing(values)
	a.check("Contains", len(missing) == 0, func() string {
		return shouldContain(a.repr(), a.actual, values, missing, a.comparison.suffix())
	})
	return a
}

// ContainsOnly checks that the actual slice contains the values and nothing
// else, in any order and regardless of duplicates.
func (a *SliceAssert[E]) ContainsOnly(values ...E) *SliceAssert[E] {
	a.t.Helper()
	missing := a.missing(values)
	var unexpected []E
	for _, e := range a.actual {
		if !a.comparison.contains(values, e) {
			unexpected = append(unexpected, e)
		}
	}
	a.check("ContainsOnly", len(missing) == 0 && len(unexpected) == 0, func() string {
		return expectingActual(a.repr(), a.actual) + clause(a.repr(), "to contain only", values) +
			a.difference(missing, unexpected) + a.comparison.suffix()
	})
	return a
}

// ContainsExactly checks that the actual slice holds exactly the values in
// the same order.
func (a *SliceAssert[E]) ContainsExactly(values ...E) *SliceAssert[E] {
	a.t.Helper()
	ok := len(a.actual) == len(values)
	mismatch := -1
	for i := 0; ok && i < len(values); i++ {
		if !a.comparison.areEqual(a.actual[i], values[i]) {
			ok = false
			mismatch = i
		}
	}
	a.check("ContainsExactly", ok, func() string {
		msg := expectingActual(a.repr(), a.actual) + clause(a.repr(), "to contain exactly (and in same order)", values)
		missing, unexpected := a.multisetDifference(values)
		switch {
		case len(missing) > 0 || len(unexpected) > 0:
			msg += a.difference(missing, unexpected)
		case mismatch >= 0:
			msg += fmt.Sprintf("\nbut there were differences at these indexes:\n  element at index %d: expected %s but was %s",
				mismatch, a.repr().format(values[mismatch]), a.repr().format(a.actual[mismatch]))
		}
		return msg + a.comparison.suffix()
	})
	return a
}

// ContainsExactlyInAnyOrder checks that the actual slice holds exactly the
// values, duplicates included, in any order.
func (a *SliceAssert[E]) ContainsExactlyInAnyOrder(values ...E) *SliceAssert[E] {
	a.t.Helper()
	missing, unexpected := a.multisetDifference(values)
	a.check("ContainsExactlyInAnyOrder", len(missing) == 0 && len(unexpected) == 0, func() string {
		return expectingActual(a.repr(), a.actual) + clause(a.repr(), "to contain exactly in any order", values) +
			a.difference(missing, unexpected) + a.comparison.suffix()
	})
	return a
}

// ContainsAnyOf checks that at least one value is an element.
func (a *SliceAssert[E]) ContainsAnyOf(values ...E) *SliceAssert[E] {
	a.t.Helper()
	requireValues(len(values))
	ok := false
	for _, v := range values {
		if a.comparison.contains(a.actual, v) {
			ok = true
			break
		}
	}
	a.check("ContainsAnyOf", ok, func() string {
		return expectingActual(a.repr(), a.actual) + clause(a.repr(), "to contain at least one of the following elements", values) +
			"\nbut none were found" + a.comparison.suffix()
	})
	return a
}

// ContainsSequence checks that the values appear consecutively and in order.
func (a *SliceAssert[E]) ContainsSequence(values ...E) *SliceAssert[E] {
	a.t.Helper()
	requireValues(len(values))
	a.check("ContainsSequence", a.indexOfSequence(values) >= 0, func() string {
		return shouldCompare(a.repr(), a.actual, "to contain sequence", values, a.comparison.suffix())
	})
	return a
}

// ContainsSubsequence checks that the values appear in order, possibly with
// other elements in between.
func (a *SliceAssert[E]) ContainsSubsequence(values ...E) *SliceAssert[E] {
	a.t.Helper()
	requireValues(len(values))
	j := 0
	for i := 0; i < len(a.actual) && j < len(values); i++ {
		if a.comparison.areEqual(a.actual[i], values[j]) {
			j++
		}
	}
	a.check("ContainsSubsequence", j == len(values), func() string {
		return shouldCompare(a.repr(), a.actual, "to contain subsequence", values, a.comparison.suffix())
	})
	return a
}

// DoesNotContain checks that no value is an element.
func (a *SliceAssert[E]) DoesNotContain(values ...E) *SliceAssert[E] {
	a.t.Helper()
	requireValues(len(values))
	var found []E
	for _, v := range values {
		if a.comparison.contains(a.actual, v) {
			found = append(found, v)
		}
	}
	a.check("DoesNotContain", len(found) == 0, func() string {
		return shouldNotContain(a.repr(), a.actual, values, found, a.comparison.suffix())
	})
	return a
}

// DoesNotHaveDuplicates checks that no two elements are equal.
func (a *SliceAssert[E]) DoesNotHaveDuplicates() *SliceAssert[E] {
	a.t.Helper()
	var duplicates []E
	for i, e := range a.actual {
		if a.comparison.indexOf(a.actual[:i], e) >= 0 && !a.comparison.contains(duplicates, e) {
			duplicates = append(duplicates, e)
		}
	}
	a.check("DoesNotHaveDuplicates", len(duplicates) == 0, func() string {
		return expectingActual(a.repr(), a.actual) + "\nnot to have duplicates" +
			clause(a.repr(), "but found", duplicates) + a.comparison.suffix()
	})
	return a
}

// StartsWith checks the first elements.
func (a *SliceAssert[E]) StartsWith(values ...E) *SliceAssert[E] {
	a.t.Helper()
	requireValues(len(values))
	ok := len(values) <= len(a.actual) && a.equalSlices(a.actual[:len(values)], values)
	a.check("StartsWith", ok, func() string {
		return shouldCompare(a.repr(), a.actual, "to start with", values, a.comparison.suffix())
	})
	return a
}

// EndsWith checks the last elements.
func (a *SliceAssert[E]) EndsWith(values ...E) *SliceAssert[E] {
	a.t.Helper()
	requireValues(len(values))
	ok := len(values) <= len(a.actual) && a.equalSlices(a.actual[len(a.actual)-len(values):], values)
	a.check("EndsWith", ok, func() string {
		return shouldCompare(a.repr(), a.actual, "to end with", values, a.comparison.suffix())
	})
	return a
}

// IsSorted checks ascending order using the element comparator or, without
// one, the natural ordering. It panics when elements have no natural order.
func (a *SliceAssert[E]) IsSorted() *SliceAssert[E] {
	a.t.Helper()
	at := -1
	for i := 1; i < len(a.actual); i++ {
		c, ok := a.comparison.compare(a.actual[i-1], a.actual[i])
		if !ok {
			invalidArgument("elements of %T are not mutually comparable", a.actual)
		}
		if c > 0 {
			at = i - 1
			break
		}
	}
	a.check("IsSorted", at < 0, func() string {
		return a.unsortedMessage(at) + a.comparison.suffix()
	})
	return a
}

// IsSortedAccordingTo checks ascending order according to c.
func (a *SliceAssert[E]) IsSortedAccordingTo(c Comparator[E]) *SliceAssert[E] {
	a.t.Helper()
	requireComparator(c)
	at := -1
	for i := 1; i < len(a.actual); i++ {
		if c(a.actual[i-1], a.actual[i]) > 0 {
			at = i - 1
			break
		}
	}
	a.check("IsSortedAccordingTo", at < 0, func() string {
		return a.unsortedMessage(at) + comparatorSuffix
	})
	return a
}

// AllMatch checks that predicate accepts every element.
func (a *SliceAssert[E]) AllMatch(predicate func(E) bool, description ...string) *SliceAssert[E] {
	a.t.Helper()
	requirePredicate(predicate)
	var rejected []E
	for _, e := range a.actual {
		if !predicate(e) {
			rejected = append(rejected, e)
		}
	}
	a.check("AllMatch", len(rejected) == 0, func() string {
		return expectingActual(a.repr(), a.actual) + "\nto all match " + predicateName(description) +
			clause(a.repr(), "but these elements did not", rejected)
	})
	return a
}

// AnyMatch checks that predicate accepts at least one element.
func (a *SliceAssert[E]) AnyMatch(predicate func(E) bool, description ...string) *SliceAssert[E] {
	a.t.Helper()
	requirePredicate(predicate)
	ok := false
	for _, e := range a.actual {
		if predicate(e) {
			ok = true
			break
		}
	}
	a.check("AnyMatch", ok, func() string {
		return expectingActual(a.repr(), a.actual) + "\nto have at least one element matching " + predicateName(description)
	})
	return a
}

// NoneMatch checks that predicate rejects every element.
func (a *SliceAssert[E]) NoneMatch(predicate func(E) bool, description ...string) *SliceAssert[E] {
	a.t.Helper()
	requirePredicate(predicate)
	var accepted []E
	for _, e := range a.actual {
		if predicate(e) {
			accepted = append(accepted, e)
		}
	}
	a.check("NoneMatch", len(accepted) == 0, func() string {
		return expectingActual(a.repr(), a.actual) + "\nnot to have any element matching " + predicateName(description) +
			clause(a.repr(), "but these elements did", accepted)
	})
	return a
}

// AllSatisfy runs requirement on every element and fails once with the
// failures of all elements that did not satisfy it.
func (a *SliceAssert[E]) AllSatisfy(requirement func(TestingT, E)) *SliceAssert[E] {
	a.t.Helper()
	if requirement == nil {
		invalidArgument("requirement must not be nil")
	}
	var errs []*AssertionError
	for i, e := range a.actual {
		for _, err := range evaluate(a.config, e, []func(TestingT, E){requirement}) {
			errs = append(errs, &AssertionError{
				Assertion:   err.Assertion,
				Description: fmt.Sprintf("element at index %d", i),
				Message:     err.Message,
			})
		}
	}
	a.check("AllSatisfy", len(errs) == 0, func() string {
		return expectingActual(a.repr(), a.actual) + "\nto have all elements satisfy the requirement, but:" +
			indent((&MultipleFailuresError{Heading: "Unsatisfied requirements", Errors: errs}).Error())
	})
	return a
}

// Filtered navigates to the elements accepted by predicate.
//
//	assertz.ThatSlice(t, users).Filtered(isAdmin).HasSize(1)
func (a *SliceAssert[E]) Filtered(predicate func(E) bool) *SliceAssert[E] {
	requirePredicate(predicate)
	filtered := make([]E, 0, len(a.actual))
	for _, e := range a.actual {
		if predicate(e) {
			filtered = append(filtered, e)
		}
	}
	return &SliceAssert[E]{
		base:       a.derive(),
		actual:     filtered,
		comparison: a.comparison,
	}
}

func (a *SliceAssert[E]) missing(values []E) []E {
	var missing []E
	for _, v := range values {
		if !a.comparison.contains(a.actual, v) {
			missing = append(missing, v)
		}
	}
	return missing
}

// multisetDifference pairs every expected value with one unused actual
// element, returning what stayed unpaired on each side.
func (a *SliceAssert[E]) multisetDifference(values []E) (missing, unexpected []E) {
	used := make([]bool, len(a.actual))
	for _, v := range values {
		found := false
		for i, e := range a.actual {
			if !used[i] && a.comparison.areEqual(e, v) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, v)
		}
	}
	for i, e := range a.actual {
		if !used[i] {
			unexpected = append(unexpected, e)
		}
	}
	return missing, unexpected
}

func (a *SliceAssert[E]) difference(missing, unexpected []E) string {
	var msg string
	if len(missing) > 0 {
		msg += clause(a.repr(), "but could not find the following element(s)", missing)
	}
	if len(unexpected) > 0 {
		msg += clause(a.repr(), "and the following element(s) were unexpected", unexpected)
	}
	return msg
}

func (a *SliceAssert[E]) indexOfSequence(values []E) int {
	for i := 0; i+len(values) <= len(a.actual); i++ {
		if a.equalSlices(a.actual[i:i+len(values)], values) {
			return i
		}
	}
	return -1
}

func (a *SliceAssert[E]) equalSlices(x, y []E) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !a.comparison.areEqual(x[i], y[i]) {
			return false
		}
	}
	return true
}

func (a *SliceAssert[E]) unsortedMessage(at int) string {
	return fmt.Sprintf("%s\nto be sorted, but element at index %d:\n  %s\nis not less than or equal to element at index %d:\n  %s",
		expectingActual(a.repr(), a.actual), at, a.repr().format(a.actual[at]), at+1, a.repr().format(a.actual[at+1]))
}

// sizeOf returns the length of a sized value and panics for other kinds.
func sizeOf(v any) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return rv.Len()
	default:
		invalidArgument("%T has no size", v)
		return 0
	}
}
