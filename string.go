package assertz

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep state, so each call builds its own.
func fold(s string) string  { return cases.Fold().String(s) }
func lower(s string) string { return cases.Lower(language.Und).String(s) }
func upper(s string) string { return cases.Upper(language.Und).String(s) }

// StringAssert checks strings.
type StringAssert struct {
	base
	actual string
}

// ThatString starts assertions on a string.
func ThatString(t TestingT, actual string) *StringAssert {
	return &StringAssert{base: newBase(t), actual: actual}
}

// As sets a description shown in front of failure messages.
func (a *StringAssert) As(description string, args ...any) *StringAssert {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *StringAssert) WithFailMessage(format string, args ...any) *StringAssert {
	a.overrideFailMessage(format, args)
	return a
}

// IsEqualTo checks that the actual string equals expected. Multi-line
// strings get a line diff.
func (a *StringAssert) IsEqualTo(expected string) *StringAssert {
	a.t.Helper()
	a.check("IsEqualTo", a.actual == expected, func() string {
		return shouldBeEqual(a.repr(), a.actual, expected, "") + equalityDiff(a.config, expected, a.actual)
	})
	return a
}

// IsNotEqualTo checks that the actual string differs from other.
func (a *StringAssert) IsNotEqualTo(other string) *StringAssert {
	a.t.Helper()
	a.check("IsNotEqualTo", a.actual != other, func() string {
		return shouldNotBeEqual(a.repr(), a.actual, other, "")
	})
	return a
}

// IsEmpty checks that the actual string is "".
func (a *StringAssert) IsEmpty() *StringAssert {
	a.t.Helper()
	a.check("IsEmpty", a.actual == "", func() string {
		return shouldBe(a.repr(), a.actual, "empty")
	})
	return a
}

// IsNotEmpty checks that the actual string is not "".
func (a *StringAssert) IsNotEmpty() *StringAssert {
	a.t.Helper()
	a.check("IsNotEmpty", a.actual != "", func() string {
		return "\nExpecting actual not to be empty"
	})
	return a
}

// IsBlank checks that the actual string holds only whitespace.
func (a *StringAssert) IsBlank() *StringAssert {
	a.t.Helper()
	a.check("IsBlank", strings.TrimSpace(a.actual) == "", func() string {
		return shouldBe(a.repr(), a.actual, "blank")
	})
	return a
}

// IsNotBlank checks that the actual string holds a non-whitespace character.
func (a *StringAssert) IsNotBlank() *StringAssert {
	a.t.Helper()
	a.check("IsNotBlank", strings.TrimSpace(a.actual) != "", func() string {
		return shouldNotBe(a.repr(), a.actual, "blank")
	})
	return a
}

// HasSize checks the length of the actual string in runes.
func (a *StringAssert) HasSize(expected int) *StringAssert {
	a.t.Helper()
	size := utf8.RuneCountInString(a.actual)
	a.check("HasSize", size == expected, func() string {
		return shouldHaveSize(a.repr(), a.actual, size, expected)
	})
	return a
}

// HasLineCount checks the number of lines. A trailing line break does not
// start a new line.
func (a *StringAssert) HasLineCount(expected int) *StringAssert {
	a.t.Helper()
	count := lineCount(a.actual)
	a.check("HasLineCount", count == expected, func() string {
		return shouldHave(a.repr(), a.actual, "line count", expected, count)
	})
	return a
}

// Contains checks that every value is a substring of the actual string.
func (a *StringAssert) Contains(values ...string) *StringAssert {
	a.t.Helper()
	requireValues(len(values))
	missing := missingSubstrings(a.actual, values, strings.Contains)
	a.check("Contains", len(missing) == 0, func() string {
		return shouldContain(a.repr(), a.actual, values, missing, "")
	})
	return a
}

// ContainsIgnoringCase checks that every value is a substring of the actual
// string under Unicode case folding.
func (a *StringAssert) ContainsIgnoringCase(values ...string) *StringAssert {
	a.t.Helper()
	requireValues(len(values))
	missing := missingSubstrings(a.actual, values, func(s, sub string) bool {
		return strings.Contains(fold(s), fold(sub))
	})
	a.check("ContainsIgnoringCase", len(missing) == 0, func() string {
		return shouldContain(a.repr(), a.actual, values, missing, "\nwhen ignoring case")
	})
	return a
}

// DoesNotContain checks that no value is a substring of the actual string.
func (a *StringAssert) DoesNotContain(values ...string) *StringAssert {
	a.t.Helper()
	requireValues(len(values))
	var found []string
	for _, v := range values {
		if strings.Contains(a.actual, v) {
			found = append(found, v)
		}
	}
	a.check("DoesNotContain", len(found) == 0, func() string {
		return shouldNotContain(a.repr(), a.actual, values, found, "")
	})
	return a
}

// ContainsSequence checks that the values appear in order with nothing in
// between.
func (a *StringAssert) ContainsSequence(values ...string) *StringAssert {
	a.t.Helper()
	requireValues(len(values))
	a.check("ContainsSequence", strings.Contains(a.actual, strings.Join(values, "")), func() string {
		return shouldCompare(a.repr(), a.actual, "to contain sequence", values, "")
	})
	return a
}

// StartsWith checks the prefix of the actual string.
func (a *StringAssert) StartsWith(prefix string) *StringAssert {
	a.t.Helper()
	a.check("StartsWith", strings.HasPrefix(a.actual, prefix), func() string {
		return shouldCompare(a.repr(), a.actual, "to start with", prefix, "")
	})
	return a
}

// EndsWith checks the suffix of the actual string.
func (a *StringAssert) EndsWith(suffix string) *StringAssert {
	a.t.Helper()
	a.check("EndsWith", strings.HasSuffix(a.actual, suffix), func() string {
		return shouldCompare(a.repr(), a.actual, "to end with", suffix, "")
	})
	return a
}

// Matches checks that the regular expression matches the whole actual
// string. It panics when pattern does not compile.
func (a *StringAssert) Matches(pattern string) *StringAssert {
	a.t.Helper()
	re := compilePattern(pattern)
	a.check("Matches", re.MatchString(a.actual), func() string {
		return shouldCompare(a.repr(), a.actual, "to match pattern", pattern, "")
	})
	return a
}

// DoesNotMatch checks that the regular expression does not match the whole
// actual string.
func (a *StringAssert) DoesNotMatch(pattern string) *StringAssert {
	a.t.Helper()
	re := compilePattern(pattern)
	a.check("DoesNotMatch", !re.MatchString(a.actual), func() string {
		return shouldCompare(a.repr(), a.actual, "not to match pattern", pattern, "")
	})
	return a
}

// IsEqualToIgnoringCase compares under Unicode case folding.
func (a *StringAssert) IsEqualToIgnoringCase(expected string) *StringAssert {
	a.t.Helper()
	a.check("IsEqualToIgnoringCase", fold(a.actual) == fold(expected), func() string {
		return shouldCompare(a.repr(), a.actual, "to be equal to", expected, "\nwhen ignoring case")
	})
	return a
}

// IsEqualToIgnoringWhitespace compares with every whitespace character
// removed from both strings.
func (a *StringAssert) IsEqualToIgnoringWhitespace(expected string) *StringAssert {
	a.t.Helper()
	ok := strings.Join(strings.Fields(a.actual), "") == strings.Join(strings.Fields(expected), "")
	a.check("IsEqualToIgnoringWhitespace", ok, func() string {
		return shouldCompare(a.repr(), a.actual, "to be equal to", expected, "\nwhen ignoring whitespace differences")
	})
	return a
}

// IsLowerCase checks that lower-casing leaves the actual string unchanged.
func (a *StringAssert) IsLowerCase() *StringAssert {
	a.t.Helper()
	a.check("IsLowerCase", lower(a.actual) == a.actual, func() string {
		return shouldBe(a.repr(), a.actual, "lower case")
	})
	return a
}

// IsUpperCase checks that upper-casing leaves the actual string unchanged.
func (a *StringAssert) IsUpperCase() *StringAssert {
	a.t.Helper()
	a.check("IsUpperCase", upper(a.actual) == a.actual, func() string {
		return shouldBe(a.repr(), a.actual, "upper case")
	})
	return a
}

// ContainsOnlyDigits checks that the actual string is non-empty and made of
// decimal digits.
func (a *StringAssert) ContainsOnlyDigits() *StringAssert {
	a.t.Helper()
	ok := a.actual != "" && strings.IndexFunc(a.actual, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
	a.check("ContainsOnlyDigits", ok, func() string {
		return expectingActual(a.repr(), a.actual) + "\nto contain only digits"
	})
	return a
}

// IsUUID checks that the actual string parses as a UUID.
func (a *StringAssert) IsUUID() *StringAssert {
	a.t.Helper()
	_, err := uuid.Parse(a.actual)
	a.check("IsUUID", err == nil, func() string {
		return shouldBe(a.repr(), a.actual, "a valid UUID")
	})
	return a
}

// IsGreaterThan compares lexicographically.
func (a *StringAssert) IsGreaterThan(other string) *StringAssert {
	a.t.Helper()
	a.check("IsGreaterThan", a.actual > other, func() string {
		return shouldCompare(a.repr(), a.actual, "to be greater than", other, "")
	})
	return a
}

// IsLessThan compares lexicographically.
func (a *StringAssert) IsLessThan(other string) *StringAssert {
	a.t.Helper()
	a.check("IsLessThan", a.actual < other, func() string {
		return shouldCompare(a.repr(), a.actual, "to be less than", other, "")
	})
	return a
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Count(s, "\n") + 1
}

func missingSubstrings(s string, values []string, contains func(s, sub string) bool) []string {
	var missing []string
	for _, v := range values {
		if !contains(s, v) {
			missing = append(missing, v)
		}
	}
	return missing
}

// compilePattern anchors pattern so that it must match the whole input.
func compilePattern(pattern string) *regexp.Regexp {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		invalidArgument("invalid regular expression %q: %v", pattern, err)
	}
	return re
}

func requireValues(n int) {
	if n == 0 {
		invalidArgument("the values to look for must not be empty")
	}
}
