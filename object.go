package assertz

import (
	"fmt"
	"reflect"
	"strings"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ObjectAssert checks values of any type.
type ObjectAssert[T any] struct {
	base
	actual     T
	comparison comparison[T]
}

// That starts assertions on an arbitrary value. Equality is structural.
//
//	assertz.That(t, got).IsEqualTo(want)
func That[T any](t TestingT, actual T) *ObjectAssert[T] {
	b := newBase(t)
	return &ObjectAssert[T]{
		base:       b,
		actual:     actual,
		comparison: standardComparison[T](b.config),
	}
}

// Extracting navigates from the value under test to a value derived from it.
// The description of a carries over.
//
//	assertz.Extracting(assertz.That(t, user), func(u User) string { return u.Name }).
//		IsEqualTo("Frodo")
func Extracting[T, R any](a *ObjectAssert[T], extract func(T) R) *ObjectAssert[R] {
	if extract == nil {
		invalidArgument("extractor must not be nil")
	}
	b := a.derive()
	return &ObjectAssert[R]{
		base:       b,
		actual:     extract(a.actual),
		comparison: standardComparison[R](b.config),
	}
}

// Actual returns the value under test.
func (a *ObjectAssert[T]) Actual() T {
	return a.actual
}

// As sets a description shown in front of failure messages.
func (a *ObjectAssert[T]) As(description string, args ...any) *ObjectAssert[T] {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *ObjectAssert[T]) WithFailMessage(format string, args ...any) *ObjectAssert[T] {
	a.overrideFailMessage(format, args)
	return a
}

// UsingComparator compares values with c instead of structural equality.
func (a *ObjectAssert[T]) UsingComparator(c Comparator[T]) *ObjectAssert[T] {
	requireComparator(c)
	a.comparison = comparison[T]{comparator: c}
	return a
}

// UsingDefaultComparator reverts to structural equality.
func (a *ObjectAssert[T]) UsingDefaultComparator() *ObjectAssert[T] {
	a.comparison = standardComparison[T](a.config)
	return a
}

// IsEqualTo checks that the actual value equals expected.
func (a *ObjectAssert[T]) IsEqualTo(expected T) *ObjectAssert[T] {
	a.t.Helper()
	a.check("IsEqualTo", a.comparison.areEqual(a.actual, expected), func() string {
		msg := shouldBeEqual(a.repr(), a.actual, expected, a.comparison.suffix())
		if a.comparison.comparator == nil {
			msg += equalityDiff(a.config, expected, a.actual)
		}
		return msg
	})
	return a
}

// IsNotEqualTo checks that the actual value differs from other.
func (a *ObjectAssert[T]) IsNotEqualTo(other T) *ObjectAssert[T] {
	a.t.Helper()
	a.check("IsNotEqualTo", !a.comparison.areEqual(a.actual, other), func() string {
		return shouldNotBeEqual(a.repr(), a.actual, other, a.comparison.suffix())
	})
	return a
}

// IsNil checks that the actual value is nil, typed nils included.
func (a *ObjectAssert[T]) IsNil() *ObjectAssert[T] {
	a.t.Helper()
	a.check("IsNil", isNil(any(a.actual)), func() string {
		return shouldBe(a.repr(), a.actual, "nil")
	})
	return a
}

// IsNotNil checks that the actual value is not nil.
func (a *ObjectAssert[T]) IsNotNil() *ObjectAssert[T] {
	a.t.Helper()
	a.check("IsNotNil", !isNil(any(a.actual)), func() string {
		return "\nExpecting actual not to be nil"
	})
	return a
}

// IsZero checks that the actual value is the zero value of its type.
func (a *ObjectAssert[T]) IsZero() *ObjectAssert[T] {
	a.t.Helper()
	a.check("IsZero", isZero(any(a.actual)), func() string {
		return shouldBe(a.repr(), a.actual, "the zero value")
	})
	return a
}

// IsNotZero checks that the actual value is not the zero value of its type.
func (a *ObjectAssert[T]) IsNotZero() *ObjectAssert[T] {
	a.t.Helper()
	a.check("IsNotZero", !isZero(any(a.actual)), func() string {
		return shouldNotBe(a.repr(), a.actual, "the zero value")
	})
	return a
}

// IsSameAs checks that the actual value is the very same reference as
// other: same pointer, map, channel or slice backing array.
func (a *ObjectAssert[T]) IsSameAs(other T) *ObjectAssert[T] {
	a.t.Helper()
	a.check("IsSameAs", sameAs(any(a.actual), any(other)), func() string {
		return expectingActual(a.repr(), a.actual) + "\nto refer to the same value as:\n  " + indent(a.repr().format(other))
	})
	return a
}

// IsNotSameAs checks that the actual value is not the same reference as
// other.
func (a *ObjectAssert[T]) IsNotSameAs(other T) *ObjectAssert[T] {
	a.t.Helper()
	a.check("IsNotSameAs", !sameAs(any(a.actual), any(other)), func() string {
		return expectingActual(a.repr(), a.actual) + "\nnot to refer to the same value as:\n  " + indent(a.repr().format(other))
	})
	return a
}

// IsIn checks that the actual value equals one of values.
func (a *ObjectAssert[T]) IsIn(values ...T) *ObjectAssert[T] {
	a.t.Helper()
	a.check("IsIn", a.comparison.contains(values, a.actual), func() string {
		return shouldCompare(a.repr(), a.actual, "to be in", values, a.comparison.suffix())
	})
	return a
}

// IsNotIn checks that the actual value equals none of values.
func (a *ObjectAssert[T]) IsNotIn(values ...T) *ObjectAssert[T] {
	a.t.Helper()
	a.check("IsNotIn", !a.comparison.contains(values, a.actual), func() string {
		return shouldCompare(a.repr(), a.actual, "not to be in", values, a.comparison.suffix())
	})
	return a
}

// Matches checks that predicate accepts the actual value. An optional
// description names the predicate in the failure message.
func (a *ObjectAssert[T]) Matches(predicate func(T) bool, description ...string) *ObjectAssert[T] {
	a.t.Helper()
	requirePredicate(predicate)
	a.check("Matches", predicate(a.actual), func() string {
		return expectingActual(a.repr(), a.actual) + "\nto match " + predicateName(description) + "."
	})
	return a
}

// DoesNotMatch checks that predicate rejects the actual value.
func (a *ObjectAssert[T]) DoesNotMatch(predicate func(T) bool, description ...string) *ObjectAssert[T] {
	a.t.Helper()
	requirePredicate(predicate)
	a.check("DoesNotMatch", !predicate(a.actual), func() string {
		return expectingActual(a.repr(), a.actual) + "\nnot to match " + predicateName(description) + "."
	})
	return a
}

// Satisfies runs every requirement against the actual value and fails once
// with all the failures they produced. Requirements must make their
// assertions on the TestingT they are given.
//
//	assertz.That(t, user).Satisfies(
//		func(t assertz.TestingT, u User) { assertz.ThatString(t, u.Name).IsNotEmpty() },
//		func(t assertz.TestingT, u User) { assertz.ThatNumber(t, u.Age).IsPositive() },
//	)
func (a *ObjectAssert[T]) Satisfies(requirements ...func(TestingT, T)) *ObjectAssert[T] {
	a.t.Helper()
	errs := evaluate(a.config, a.actual, requirements)
	a.check("Satisfies", len(errs) == 0, func() string {
		return expectingActual(a.repr(), a.actual) + "\nto satisfy all requirements, but:" +
			indent((&MultipleFailuresError{Heading: "Unsatisfied requirements", Errors: errs}).Error())
	})
	return a
}

// SatisfiesAnyOf checks that at least one requirement holds.
func (a *ObjectAssert[T]) SatisfiesAnyOf(requirements ...func(TestingT, T)) *ObjectAssert[T] {
	a.t.Helper()
	if len(requirements) == 0 {
		invalidArgument("at least one requirement must be given")
	}
	var all []*AssertionError
	ok := false
	for _, requirement := range requirements {
		errs := evaluate(a.config, a.actual, []func(TestingT, T){requirement})
		if len(errs) == 0 {
			ok = true
			break
		}
		all = append(all, errs...)
	}
	a.check("SatisfiesAnyOf", ok, func() string {
		return expectingActual(a.repr(), a.actual) + "\nto satisfy any of the requirements, but none did:" +
			indent((&MultipleFailuresError{Heading: "Unsatisfied requirements", Errors: all}).Error())
	})
	return a
}

// HasString checks the fmt.Sprint rendering of the actual value.
func (a *ObjectAssert[T]) HasString(expected string) *ObjectAssert[T] {
	a.t.Helper()
	got := fmt.Sprint(a.actual)
	a.check("HasString", got == expected, func() string {
		return shouldHave(a.repr(), a.actual, "string representation", expected, got)
	})
	return a
}

// IsEqualToIgnoringFields compares struct values field by field, skipping
// the named fields. Nested fields use dotted names such as "Address.Zip".
// It panics when T is not a struct or a pointer to one, or when a field
// does not exist.
func (a *ObjectAssert[T]) IsEqualToIgnoringFields(expected T, fields ...string) *ObjectAssert[T] {
	a.t.Helper()
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		invalidArgument("IsEqualToIgnoringFields requires a struct, got %s", typ)
	}
	for _, name := range fields {
		if _, ok := typ.FieldByName(strings.Split(name, ".")[0]); !ok {
			invalidArgument("%s has no field %q", typ, name)
		}
	}

	opts := append(cmpOptions(a.config, a.actual, expected),
		cmpopts.IgnoreFields(reflect.New(typ).Elem().Interface(), fields...))
	ok := gocmp.Equal(expected, a.actual, opts...)
	a.check("IsEqualToIgnoringFields", ok, func() string {
		msg := shouldBeEqual(a.repr(), a.actual, expected, "") +
			"\nwhen ignoring fields:\n  " + a.repr().format(fields)
		if a.config.ShowDiff {
			if d := gocmp.Diff(expected, a.actual, opts...); d != "" {
				msg += "\n\ndiff (-expected +actual):\n" + strings.TrimRight(d, "\n")
			}
		}
		return msg
	})
	return a
}

// evaluate runs requirements against v, collecting their failures in order.
func evaluate[T any](cfg Config, v T, requirements []func(TestingT, T)) []*AssertionError {
	g := newGroup(cfg)
	for _, requirement := range requirements {
		if requirement == nil {
			invalidArgument("requirement must not be nil")
		}
		requirement(g, v)
	}
	return g.Errors()
}

func requirePredicate[T any](predicate func(T) bool) {
	if predicate == nil {
		invalidArgument("predicate must not be nil")
	}
}

func predicateName(description []string) string {
	if len(description) > 0 && description[0] != "" {
		return description[0]
	}
	return "given predicate"
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}

// sameAs reports reference identity for reference kinds and plain equality
// for comparable values.
func sameAs(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer, reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if va.Comparable() {
		return va.Equal(vb)
	}
	return false
}
