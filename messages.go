package assertz

import (
	"fmt"
	"reflect"
	"strings"
)

// Failure messages follow one layout: the actual value first, then each
// expectation as an indented clause.
//
//	Expecting actual:
//	  8
//	to be greater than:
//	  10

func expectingActual(r representation, actual any) string {
	return "\nExpecting actual:\n  " + indent(r.format(actual))
}

func clause(r representation, text string, v any) string {
	return "\n" + text + ":\n  " + indent(r.format(v))
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}

func shouldBeEqual(r representation, actual, expected any, suffix string) string {
	a, e := r.format(actual), r.format(expected)
	if a == e && reflect.TypeOf(actual) != reflect.TypeOf(expected) {
		a = fmt.Sprintf("%s (%T)", a, actual)
		e = fmt.Sprintf("%s (%T)", e, expected)
	}
	return "\nexpected: " + e + "\n but was: " + a + suffix
}

func shouldNotBeEqual(r representation, actual, other any, suffix string) string {
	return expectingActual(r, actual) + clause(r, "not to be equal to", other) + suffix
}

func shouldBe(r representation, actual any, what string) string {
	return expectingActual(r, actual) + "\nto be " + what
}

func shouldNotBe(r representation, actual any, what string) string {
	return expectingActual(r, actual) + "\nnot to be " + what
}

func shouldCompare(r representation, actual any, relation string, other any, suffix string) string {
	return expectingActual(r, actual) + clause(r, relation, other) + suffix
}

func shouldBeBetween(r representation, actual, start, end any, inclusiveStart, inclusiveEnd bool, suffix string) string {
	open, closing := "]", "["
	if inclusiveStart {
		open = "["
	}
	if inclusiveEnd {
		closing = "]"
	}
	return expectingActual(r, actual) + "\nto be between:\n  " +
		open + r.format(start) + ", " + r.format(end) + closing + suffix
}

func shouldBeCloseTo(r representation, actual, expected any, tolerance string, difference string, strict bool) string {
	msg := expectingActual(r, actual) + clause(r, "to be close to", expected) +
		"\nby less than " + tolerance + " but difference was " + difference + "."
	if !strict {
		msg += "\n(a difference of exactly " + tolerance + " being considered valid)"
	}
	return msg
}

func shouldNotBeCloseTo(r representation, actual, expected any, tolerance string, difference string) string {
	return expectingActual(r, actual) + clause(r, "not to be close to", expected) +
		"\nby less than " + tolerance + " but difference was " + difference + "."
}

func shouldHaveSize(r representation, actual any, actualSize, expectedSize int) string {
	return fmt.Sprintf("%s\nto have size:\n  %d\nbut had:\n  %d", expectingActual(r, actual), expectedSize, actualSize)
}

func shouldContain(r representation, actual, expected, notFound any, suffix string) string {
	return expectingActual(r, actual) + clause(r, "to contain", expected) +
		clause(r, "but could not find the following element(s)", notFound) + suffix
}

func shouldNotContain(r representation, actual, unexpected, found any, suffix string) string {
	return expectingActual(r, actual) + clause(r, "not to contain", unexpected) +
		clause(r, "but found", found) + suffix
}

func shouldHave(r representation, actual any, property string, expected, got any) string {
	return expectingActual(r, actual) + clause(r, "to have "+property, expected) + clause(r, "but had", got)
}
