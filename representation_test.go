package assertz

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRepresentation(t *testing.T) {
	r := DefaultConfig().representation()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"Nil", nil, "nil"},
		{"Typed Nil Pointer", (*hobbit)(nil), "nil"},
		{"Nil Slice", []int(nil), "nil"},
		{"String Is Quoted", "Frodo", `"Frodo"`},
		{"Escapes", "a\nb", `"a\nb"`},
		{"Integer", 42, "42"},
		{"Float", 1.5, "1.5"},
		{"Bool", true, "true"},
		{"Duration", 90 * time.Second, "1m30s"},
		{"Time", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02T03:04:05Z"},
		{"Error", errors.New("boom"), `"boom"`},
		{"Slice", []int{1, 2, 3}, "[1, 2, 3]"},
		{"Empty Slice", []string{}, "[]"},
		{"Array", [2]string{"a", "b"}, `["a", "b"]`},
		{"Map Sorted By Key", map[int]string{3: "c", 1: "a", 2: "b"}, `{1="a", 2="b", 3="c"}`},
		{"Channel Shows Type", make(chan int), "chan int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.format(tt.value); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("Struct", func(t *testing.T) {
		got := r.format(hobbit{Name: "Frodo", Age: 50})
		if !strings.Contains(got, "Name") || !strings.Contains(got, "Frodo") || !strings.Contains(got, "50") {
			t.Errorf("expected fields in %s", got)
		}
	})
}

func TestRepresentationLimits(t *testing.T) {
	t.Run("Elides Long Sequences", func(t *testing.T) {
		r := representation{maxElements: 4, maxSingleLineLen: 80}
		got := r.format([]int{1, 2, 3, 4, 5, 6, 7})
		if got != "[1, 2, ..., 6, 7]" {
			t.Errorf("expected [1, 2, ..., 6, 7], got %s", got)
		}
	})

	t.Run("Elides Long Maps", func(t *testing.T) {
		r := representation{maxElements: 2, maxSingleLineLen: 80}
		got := r.format(map[int]int{1: 1, 2: 2, 3: 3})
		if got != "{1=1, ..., 3=3}" {
			t.Errorf("expected {1=1, ..., 3=3}, got %s", got)
		}
	})

	t.Run("Breaks Long Lines", func(t *testing.T) {
		r := representation{maxElements: 10, maxSingleLineLen: 10}
		got := r.format([]string{"aaaa", "bbbb", "cccc"})
		want := "[\"aaaa\",\n    \"bbbb\",\n    \"cccc\"]"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("Truncates Strings On Rune Boundary", func(t *testing.T) {
		r := representation{maxStringLen: 2}
		got := r.format("héllo")
		if got != `"h"... (truncated 5 chars)` {
			t.Errorf("unexpected truncation %s", got)
		}
	})

	t.Run("Zero Limit Means Unlimited Strings", func(t *testing.T) {
		r := representation{}
		long := strings.Repeat("x", 500)
		if got := r.format(long); got != `"`+long+`"` {
			t.Error("expected the whole string")
		}
	})
}

func TestIsNil(t *testing.T) {
	var p *int
	var m map[string]int
	var fn func()
	var err error

	for name, v := range map[string]any{"pointer": p, "map": m, "func": fn, "interface": err} {
		if !isNil(v) {
			t.Errorf("expected %s to be nil", name)
		}
	}
	if isNil(0) || isNil("") || isNil(struct{}{}) {
		t.Error("expected value kinds never to be nil")
	}
}
