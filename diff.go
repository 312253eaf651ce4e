package assertz

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// stringDiff returns a unified diff between two multi-line strings. Single
// line strings return an empty diff since the message already shows both.
func stringDiff(expected, actual string) string {
	if !strings.Contains(expected, "\n") && !strings.Contains(actual, "\n") {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if err != nil {
		return ""
	}
	return diff
}

// equalityDiff picks the diff shown under an equality failure: a line diff
// for strings, a structural diff for composite values and nothing for
// scalars.
func equalityDiff(cfg Config, expected, actual any) string {
	if !cfg.ShowDiff {
		return ""
	}

	if es, ok := expected.(string); ok {
		if as, ok := actual.(string); ok {
			if d := stringDiff(es, as); d != "" {
				return "\n\ndiff:\n" + d
			}
		}
		return ""
	}

	if !isComposite(expected) || !isComposite(actual) {
		return ""
	}
	if d := deepDiff(cfg, expected, actual); d != "" {
		return "\n\ndiff (-expected +actual):\n" + strings.TrimRight(d, "\n")
	}
	return ""
}

// isComposite reports whether v is worth a structural diff: structs,
// collections and pointers that do not render themselves as text.
func isComposite(v any) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case fmt.Stringer, error:
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map, reflect.Pointer:
		return true
	default:
		return false
	}
}
