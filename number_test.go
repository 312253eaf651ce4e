package assertz

import (
	"math"
	"testing"

	asserttest "github.com/zoobzio/assertz/testing"
)

func TestNumberComparisons(t *testing.T) {
	t.Run("Passing Chain", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).
				IsPositive().
				IsNotZero().
				IsEven().
				IsGreaterThan(7).
				IsGreaterThanOrEqualTo(8).
				IsLessThan(9).
				IsLessThanOrEqualTo(8).
				IsEqualTo(8).
				IsNotEqualTo(9)
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Greater Than Message", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsGreaterThan(10)
		})
		asserttest.AssertStopped(t, m, "\nExpecting actual:\n  8\nto be greater than:\n  10")
	})

	t.Run("Equality Message", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsEqualTo(10)
		})
		asserttest.AssertStopped(t, m, "\nexpected: 10\n but was: 8")
	})

	t.Run("First Failure Stops The Chain", func(t *testing.T) {
		reached := false
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsGreaterThan(10).IsNegative()
			reached = true
		})

		if reached {
			t.Error("expected the chain to stop at the first failure")
		}
		if n := len(m.Messages()); n != 1 {
			t.Errorf("expected 1 reported failure, got %d", n)
		}
	})

	t.Run("Marks Itself As Helper", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 1).IsOne()
		})
		if m.HelperCalls() == 0 {
			t.Error("expected Helper to be called")
		}
	})

	t.Run("Sign Checks", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, -3).IsNegative().IsNotPositive().IsOdd()
			ThatNumber(m, 0).IsZero().IsNotPositive().IsNotNegative()
			ThatNumber(m, uint8(1)).IsOne().IsOdd()
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Parity Of Floats Is A Usage Error", func(t *testing.T) {
		expectInvalidArgument(t, func() {
			ThatNumber(&asserttest.MockT{}, 2.0).IsEven()
		})
	})
}

func TestNumberRanges(t *testing.T) {
	t.Run("Between Is Inclusive", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsBetween(7, 9).IsBetween(8, 9).IsBetween(7, 8).IsBetween(8, 8)
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Strictly Between Excludes Bounds", func(t *testing.T) {
		passing := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsStrictlyBetween(7, 9)
		})
		asserttest.AssertPassed(t, passing)

		failing := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsStrictlyBetween(8, 9)
		})
		asserttest.AssertStopped(t, failing, "to be between:\n  ]8, 9[")
	})

	t.Run("Between Message Shows Inclusive Bounds", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 10).IsBetween(7, 9)
		})
		asserttest.AssertStopped(t, m, "to be between:\n  [7, 9]")
	})

	t.Run("Inverted Bounds Are A Usage Error", func(t *testing.T) {
		expectInvalidArgument(t, func() {
			ThatNumber(&asserttest.MockT{}, 8).IsBetween(9, 7)
		})
		expectInvalidArgument(t, func() {
			ThatNumber(&asserttest.MockT{}, 8).IsStrictlyBetween(8, 8)
		})
	})
}

func TestNumberCloseTo(t *testing.T) {
	t.Run("Offset Boundary Is Inclusive", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsCloseTo(10, Within(2))
			ThatNumber(m, 12).IsCloseTo(10, Within(2))
			ThatNumber(m, 8.0).IsCloseTo(10.0, Within(2.0))
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Marginally Larger Difference Fails", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 7.999).IsCloseTo(10.0, Within(2.0))
		})
		asserttest.AssertStopped(t, m,
			"to be close to:\n  10",
			"(a difference of exactly 2 being considered valid)")
	})

	t.Run("Strict Offset Excludes Boundary", func(t *testing.T) {
		failing := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsCloseTo(10, ByLessThan(2))
		})
		asserttest.AssertStopped(t, failing, "by less than 2 but difference was 2.")

		passing := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsCloseTo(10, ByLessThan(3))
		})
		asserttest.AssertPassed(t, passing)
	})

	t.Run("Not Close To", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsNotCloseTo(10, Within(1))
		})
		asserttest.AssertPassed(t, m)

		failing := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsNotCloseTo(10, Within(2))
		})
		asserttest.AssertStopped(t, failing, "not to be close to")
	})

	t.Run("Unsigned Difference Does Not Wrap", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, uint(3)).IsCloseTo(5, Within(uint(2)))
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Signed Extremes Do Not Wrap", func(t *testing.T) {
		tests := []struct {
			name string
			run  func(m *asserttest.MockT)
			want string
		}{
			{"Int8", func(m *asserttest.MockT) {
				ThatNumber(m, int8(127)).IsCloseTo(-128, Within(int8(1)))
			}, "difference was 255."},
			{"Int64", func(m *asserttest.MockT) {
				ThatNumber(m, int64(math.MaxInt64)).IsCloseTo(math.MinInt64, Within(int64(5)))
			}, "difference was 18446744073709551615."},
			{"Percentage", func(m *asserttest.MockT) {
				ThatNumber(m, int8(100)).IsCloseToPercentage(-100, WithinPercentage(10))
			}, "but difference was 200%."},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				asserttest.AssertStopped(t, asserttest.Run(tt.run), tt.want)
			})
		}

		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, int8(100)).IsNotCloseTo(-100, Within(int8(5)))
			ThatNumber(m, int64(math.MinInt64)).IsNotCloseTo(math.MaxInt64, ByLessThan(int64(math.MaxInt64)))
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Equal Infinities Are Close", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, math.Inf(1)).IsCloseTo(math.Inf(1), Within(0.1))
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("NaN Is Never Close", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, math.NaN()).IsCloseTo(1.0, Within(1e9))
		})
		asserttest.AssertStopped(t, m, "to be close to")
	})

	t.Run("Invalid Offsets Are Usage Errors", func(t *testing.T) {
		expectInvalidArgument(t, func() { Within(-1) })
		expectInvalidArgument(t, func() { Within(math.NaN()) })
		expectInvalidArgument(t, func() { ByLessThan(0) })
		expectInvalidArgument(t, func() { WithinPercentage(-5) })
	})
}

func TestNumberCloseToPercentage(t *testing.T) {
	t.Run("Boundary Is Inclusive", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsCloseToPercentage(10, WithinPercentage(20))
			ThatNumber(m, 11).IsCloseToPercentage(10, WithinPercentage(10))
			ThatNumber(m, 10).IsCloseToPercentage(10, WithinPercentage(0))
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Outside Percentage Fails", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsCloseToPercentage(10, WithinPercentage(5))
		})
		asserttest.AssertStopped(t, m, "by less than 5% but difference was 20%.")
	})

	t.Run("Not Close To Percentage", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsNotCloseToPercentage(10, WithinPercentage(5))
		})
		asserttest.AssertPassed(t, m)

		failing := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 8).IsNotCloseToPercentage(10, WithinPercentage(20))
		})
		asserttest.AssertStopped(t, failing, "not to be close to")
	})

	t.Run("Negative Expected Uses Absolute Tolerance", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, -9).IsCloseToPercentage(-10, WithinPercentage(10))
		})
		asserttest.AssertPassed(t, m)
	})
}

func TestNumberFloatingPoint(t *testing.T) {
	t.Run("NaN And Infinity", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, math.NaN()).IsNaN()
			ThatNumber(m, 1.5).IsNotNaN().IsFinite()
			ThatNumber(m, math.Inf(-1)).IsInfinite()
			ThatNumber(m, 42).IsFinite()
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Finite Fails For Infinity", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, math.Inf(1)).IsFinite()
		})
		asserttest.AssertStopped(t, m, "to be finite")
	})
}

func TestNumberComparator(t *testing.T) {
	byMagnitude := func(a, b int) int { return absInt(a) - absInt(b) }

	t.Run("Uses Given Comparator", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, -5).UsingComparator(byMagnitude).IsEqualTo(5).IsGreaterThan(4)
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Message Names The Comparator", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, -5).UsingComparator(byMagnitude).IsEqualTo(6)
		})
		asserttest.AssertStopped(t, m, "when comparing values using the given comparator")
	})

	t.Run("Default Comparator Restored", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, -5).UsingComparator(byMagnitude).UsingDefaultComparator().IsEqualTo(5)
		})
		asserttest.AssertStopped(t, m, "\nexpected: 5\n but was: -5")
	})

	t.Run("Nil Comparator Is A Usage Error", func(t *testing.T) {
		expectInvalidArgument(t, func() {
			ThatNumber(&asserttest.MockT{}, 1).UsingComparator(nil)
		})
	})
}

func TestNumberLabels(t *testing.T) {
	t.Run("Description Prefixes Message", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 17).As("age of %s", "Frodo").IsGreaterThan(33)
		})
		asserttest.AssertStopped(t, m, "[age of Frodo] \nExpecting actual:\n  17")
	})

	t.Run("Fail Message Replaces Generated One", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatNumber(m, 17).WithFailMessage("too young: %d", 17).IsGreaterThan(33)
		})
		if got := m.Output(); got != "too young: 17" {
			t.Errorf("expected 'too young: 17', got %q", got)
		}
	})
}

func TestTolerances(t *testing.T) {
	t.Run("Offsets Describe Themselves", func(t *testing.T) {
		within := Within(0.5)
		if within.Value() != 0.5 || within.Strict() || within.String() != "offset 0.5" {
			t.Errorf("unexpected inclusive offset %v", within)
		}
		strict := ByLessThan(2)
		if !strict.Strict() || strict.String() != "strict offset 2" {
			t.Errorf("unexpected strict offset %v", strict)
		}
	})

	t.Run("Percentage", func(t *testing.T) {
		p := WithinPercentage(12.5)
		if p.Value() != 12.5 || p.String() != "12.5%" {
			t.Errorf("unexpected percentage %v", p)
		}
		if got := p.tolerance(-8); got != 1 {
			t.Errorf("expected tolerance 1, got %v", got)
		}
	})

	t.Run("Usage Errors", func(t *testing.T) {
		expectInvalidArgument(t, func() { Within(-1) })
		expectInvalidArgument(t, func() { ByLessThan(0) })
		expectInvalidArgument(t, func() { WithinPercentage(math.NaN()) })
	})
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
