package assertz

import (
	"testing"

	asserttest "github.com/zoobzio/assertz/testing"
)

func TestCollector(t *testing.T) {
	t.Run("Keeps Insertion Order", func(t *testing.T) {
		var c Collector
		first := &AssertionError{Assertion: "IsTrue"}
		second := &AssertionError{Assertion: "IsFalse"}
		c.Collect(first)
		c.Collect(second)

		errs := c.Errors()
		if len(errs) != 2 || errs[0] != first || errs[1] != second {
			t.Errorf("expected [first second], got %v", errs)
		}
	})

	t.Run("Ignores Nil", func(t *testing.T) {
		var c Collector
		c.Collect(nil)
		if c.Len() != 0 {
			t.Errorf("expected 0 errors, got %d", c.Len())
		}
		if !c.WasSuccess() {
			t.Error("expected nil collection not to mark a failure")
		}
	})

	t.Run("Errors Returns A Copy", func(t *testing.T) {
		var c Collector
		c.Collect(&AssertionError{Assertion: "IsTrue"})
		errs := c.Errors()
		errs[0] = nil

		if c.Errors()[0] == nil {
			t.Error("expected internal slice to be unaffected")
		}
	})

	t.Run("Was Success", func(t *testing.T) {
		var c Collector
		if !c.WasSuccess() {
			t.Error("expected a fresh collector to report success")
		}
		c.Collect(&AssertionError{})
		if c.WasSuccess() {
			t.Error("expected failure after collect")
		}
		c.Succeeded()
		if !c.WasSuccess() {
			t.Error("expected success after a passing check")
		}
	})

	t.Run("Reset", func(t *testing.T) {
		var c Collector
		c.Collect(&AssertionError{})
		c.Reset()
		if c.Len() != 0 || !c.WasSuccess() {
			t.Error("expected reset collector to be empty and successful")
		}
	})

	t.Run("Concurrent Collect", func(t *testing.T) {
		var c Collector
		asserttest.Parallel(50, func(int) {
			c.Collect(&AssertionError{Assertion: "IsTrue"})
			c.Succeeded()
			_ = c.Errors()
		})
		if c.Len() != 50 {
			t.Errorf("expected 50 errors, got %d", c.Len())
		}
	})
}

func TestGroup(t *testing.T) {
	t.Run("Records Without Location", func(t *testing.T) {
		g := newGroup(DefaultConfig())
		ThatNumber(g, 1).IsZero().IsNegative()

		errs := g.Errors()
		if len(errs) != 2 {
			t.Fatalf("expected 2 errors, got %d", len(errs))
		}
		for _, err := range errs {
			if err.Location != "" {
				t.Errorf("expected no location, got %q", err.Location)
			}
		}
	})

	t.Run("Collects Errorf", func(t *testing.T) {
		g := newGroup(DefaultConfig())
		g.Errorf("raw %s", "failure")
		g.FailNow()

		errs := g.Errors()
		if len(errs) != 1 || errs[0].Message != "raw failure" {
			t.Errorf("expected [raw failure], got %v", errs)
		}
	})

	t.Run("Carries Config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxStringLength = 7
		g := newGroup(cfg)
		if g.AssertionConfig().MaxStringLength != 7 {
			t.Error("expected config to be carried")
		}
		if g.AssertionConfig().PrintCallerLocation {
			t.Error("expected caller location to be off")
		}
	})
}
