package assertz

import (
	"strings"
	"testing"
	"time"
)

type address struct {
	City string
	zip  string
}

type resident struct {
	Name    string
	Address *address
}

func TestDeepEqual(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("Structs Including Unexported Fields", func(t *testing.T) {
		a := resident{Name: "Frodo", Address: &address{City: "Hobbiton", zip: "1"}}
		b := resident{Name: "Frodo", Address: &address{City: "Hobbiton", zip: "2"}}
		if deepEqual(cfg, a, b) {
			t.Error("expected nested unexported difference to count")
		}

		lenient := cfg
		lenient.CompareUnexportedFields = false
		if !deepEqual(lenient, a, b) {
			t.Error("expected nested unexported difference to be ignored")
		}
	})

	t.Run("Nil Values", func(t *testing.T) {
		if !deepEqual(cfg, nil, nil) {
			t.Error("expected nil to equal nil")
		}
		if deepEqual(cfg, nil, (*int)(nil)) {
			t.Error("expected untyped nil to differ from typed nil")
		}
		if deepEqual(cfg, []int(nil), []int{}) {
			t.Error("expected nil slice to differ from empty slice")
		}
	})

	t.Run("Mismatched Types", func(t *testing.T) {
		if deepEqual(cfg, int32(1), int64(1)) {
			t.Error("expected different types to be unequal")
		}
	})
}

func TestNaturalCompare(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		a, b any
		want int
		ok   bool
	}{
		{"Ints", 1, 2, -1, true},
		{"Unsigned", uint8(9), uint8(3), 1, true},
		{"Floats", 1.5, 1.5, 0, true},
		{"Strings", "b", "a", 1, true},
		{"Times", now, now.Add(time.Second), -1, true},
		{"Mixed Kinds", 1, "1", 0, false},
		{"Mixed Int Types", int32(1), int64(1), 0, false},
		{"Structs", address{}, address{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := naturalCompare(tt.a, tt.b)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestComparison(t *testing.T) {
	t.Run("Comparator Wins", func(t *testing.T) {
		c := comparison[string]{comparator: func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		}}
		if !c.areEqual("Frodo", "FRODO") {
			t.Error("expected comparator equality")
		}
		if c.suffix() != comparatorSuffix {
			t.Error("expected comparator suffix")
		}
		if c.indexOf([]string{"sam", "frodo"}, "FRODO") != 1 {
			t.Error("expected index 1")
		}
	})

	t.Run("Standard Comparison", func(t *testing.T) {
		c := standardComparison[[]int](DefaultConfig())
		if !c.areEqual([]int{1, 2}, []int{1, 2}) {
			t.Error("expected structural equality")
		}
		if c.suffix() != "" {
			t.Error("expected no suffix")
		}
		if _, ok := c.compare([]int{1}, []int{2}); ok {
			t.Error("expected slices to have no natural order")
		}
	})
}

func TestEqualityDiff(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("Scalars Have No Diff", func(t *testing.T) {
		if d := equalityDiff(cfg, 1, 2); d != "" {
			t.Errorf("expected no diff, got %q", d)
		}
		if d := equalityDiff(cfg, "a", "b"); d != "" {
			t.Errorf("expected no diff for single-line strings, got %q", d)
		}
	})

	t.Run("Multi-line Strings", func(t *testing.T) {
		d := equalityDiff(cfg, "one\ntwo\n", "one\nthree\n")
		for _, fragment := range []string{"diff:", "-two", "+three"} {
			if !strings.Contains(d, fragment) {
				t.Errorf("expected %q in diff:\n%s", fragment, d)
			}
		}
	})

	t.Run("Structs", func(t *testing.T) {
		d := equalityDiff(cfg, resident{Name: "Frodo"}, resident{Name: "Sam"})
		if !strings.HasPrefix(d, "\n\ndiff (-expected +actual):\n") {
			t.Errorf("unexpected diff header in %q", d)
		}
		if !strings.Contains(d, "Frodo") || !strings.Contains(d, "Sam") {
			t.Errorf("expected both values in diff:\n%s", d)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		off := cfg
		off.ShowDiff = false
		if d := equalityDiff(off, resident{Name: "Frodo"}, resident{Name: "Sam"}); d != "" {
			t.Errorf("expected no diff, got %q", d)
		}
	})

	t.Run("Self Rendering Values Have No Diff", func(t *testing.T) {
		if d := equalityDiff(cfg, time.Unix(0, 0), time.Unix(1, 0)); d != "" {
			t.Errorf("expected no diff, got %q", d)
		}
	})
}
