package assertz

import (
	"errors"
	"strings"
	"testing"
)

// expectInvalidArgument fails t unless fn panics with an error wrapping
// ErrInvalidArgument.
func expectInvalidArgument(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected panic wrapping ErrInvalidArgument, got %v", r)
		}
	}()
	fn()
}

func TestAssertionError(t *testing.T) {
	t.Run("Renders Message", func(t *testing.T) {
		err := &AssertionError{Assertion: "IsEqualTo", Message: "\nexpected: 1\n but was: 2"}
		if err.Error() != "\nexpected: 1\n but was: 2" {
			t.Errorf("unexpected rendering %q", err.Error())
		}
	})

	t.Run("Prefixes Description", func(t *testing.T) {
		err := &AssertionError{Description: "age", Message: "boom"}
		if err.Error() != "[age] boom" {
			t.Errorf("expected '[age] boom', got %q", err.Error())
		}
	})

	t.Run("Appends Location", func(t *testing.T) {
		err := &AssertionError{Message: "boom", Location: "pkg.TestX (x_test.go:10)"}
		if err.Error() != "boom\nat pkg.TestX (x_test.go:10)" {
			t.Errorf("unexpected rendering %q", err.Error())
		}
	})

	t.Run("Unwraps To Sentinel", func(t *testing.T) {
		var err error = &AssertionError{Message: "boom"}
		if !errors.Is(err, ErrAssertionFailed) {
			t.Error("expected errors.Is to find ErrAssertionFailed")
		}
	})
}

func TestMultipleFailuresError(t *testing.T) {
	t.Run("Numbers Failures In Order", func(t *testing.T) {
		err := &MultipleFailuresError{Errors: []*AssertionError{
			{Message: "\nfirst"},
			{Message: "second"},
		}}

		want := "\nMultiple Failures (2 failures)\n-- failure 1 --\nfirst\n-- failure 2 --\nsecond"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("Uses Singular For One Failure", func(t *testing.T) {
		err := &MultipleFailuresError{Errors: []*AssertionError{{Message: "only"}}}
		if !strings.Contains(err.Error(), "(1 failure)") {
			t.Errorf("expected singular heading, got %q", err.Error())
		}
	})

	t.Run("Custom Heading", func(t *testing.T) {
		err := &MultipleFailuresError{Heading: "Unsatisfied requirements", Errors: []*AssertionError{{Message: "x"}}}
		if !strings.HasPrefix(err.Error(), "\nUnsatisfied requirements (1 failure)") {
			t.Errorf("unexpected heading in %q", err.Error())
		}
	})

	t.Run("Exposes Entries To errors.As", func(t *testing.T) {
		inner := &AssertionError{Assertion: "IsTrue", Message: "x"}
		var err error = &MultipleFailuresError{Errors: []*AssertionError{inner}}

		var target *AssertionError
		if !errors.As(err, &target) || target != inner {
			t.Error("expected errors.As to find the collected failure")
		}
		if !errors.Is(err, ErrAssertionFailed) {
			t.Error("expected errors.Is to reach the sentinel through the entries")
		}
	})
}

func TestPanicError(t *testing.T) {
	err := &PanicError{Value: 42}
	if err.Error() != "panic: 42" {
		t.Errorf("expected 'panic: 42', got %q", err.Error())
	}
}
