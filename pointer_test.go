package assertz

import (
	"testing"
	"time"

	asserttest "github.com/zoobzio/assertz/testing"
)

func TestPointerAssert(t *testing.T) {
	timeout := 30 * time.Second

	t.Run("Passing Chain", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatPointer(m, &timeout).
				IsNotNil().
				PointsTo(30*time.Second).
				HasValueMatching(func(d time.Duration) bool { return d > 0 }).
				HasValueSatisfying(func(t TestingT, d time.Duration) {
					ThatDuration(t, d).HasSeconds(30)
				})
			ThatPointer[int](m, nil).IsNil()
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Nil Message Shows Pointee", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatPointer(m, &timeout).IsNil()
		})
		asserttest.AssertStopped(t, m, "Expecting pointer to be nil but it pointed to:\n  30s")
	})

	t.Run("Checks On Nil Pointer Fail", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatPointer[string](m, nil).PointsTo("x")
		})
		asserttest.AssertStopped(t, m, "Expecting pointer not to be nil")
	})

	t.Run("Points To Other Value", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatPointer(m, &timeout).PointsTo(time.Minute)
		})
		asserttest.AssertStopped(t, m, "to point to:\n  1m0s\nbut it pointed to:\n  30s")
	})

	t.Run("Requirement Failures Are Reported Together", func(t *testing.T) {
		name := "Gollum"
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatPointer(m, &name).HasValueSatisfying(func(t TestingT, s string) {
				ThatString(t, s).StartsWith("F")
			})
		})
		asserttest.AssertStopped(t, m, "to satisfy the requirement", "(1 failure)", "to start with")
	})

	t.Run("Value Navigates", func(t *testing.T) {
		h := &hobbit{Name: "Frodo"}
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatPointer(m, h).Value().IsEqualTo(hobbit{Name: "Frodo"})
		})
		asserttest.AssertPassed(t, m)

		failing := asserttest.Run(func(m *asserttest.MockT) {
			ThatPointer[hobbit](m, nil).Value().IsZero()
		})
		asserttest.AssertStopped(t, failing, "Expecting pointer not to be nil")
	})
}

func TestPredicateAssert(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	t.Run("Passing Chain", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatPredicate(m, even).
				Accepts(2, 4).
				AcceptsAll([]int{0, -2}).
				Rejects(1).
				RejectsAll([]int{3, 5})
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Lists Rejected Values", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatPredicate(m, even).Accepts(1, 2, 3)
		})
		asserttest.AssertStopped(t, m, "to accept:\n  [1, 2, 3]\nbut it rejected:\n  [1, 3]")
	})

	t.Run("Lists Accepted Values", func(t *testing.T) {
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatPredicate(m, even).Rejects(1, 2)
		})
		asserttest.AssertStopped(t, m, "but it accepted:\n  [2]")
	})

	t.Run("Usage Errors", func(t *testing.T) {
		expectInvalidArgument(t, func() {
			ThatPredicate[int](&asserttest.MockT{}, nil)
		})
		expectInvalidArgument(t, func() {
			ThatPredicate(&asserttest.MockT{}, even).Accepts()
		})
	})
}

func TestChannelAssert(t *testing.T) {
	t.Run("Buffer Checks", func(t *testing.T) {
		ch := make(chan int, 3)
		ch <- 1
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatChannel[int](m, ch).IsBuffered().HasCapacity(3).HasLen(1)
			ThatChannel[int](m, make(chan int)).IsEmpty()
			ThatChannel[int](m, nil).IsNil()
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Succeeds Within Navigates To Value", func(t *testing.T) {
		ch := make(chan string)
		go func() { ch <- "done" }()
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatChannel[string](m, ch).SucceedsWithin(time.Second).IsEqualTo("done")
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Succeeds Within Times Out", func(t *testing.T) {
		ch := make(chan string)
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatChannel[string](m, ch).SucceedsWithin(20 * time.Millisecond)
		})
		asserttest.AssertStopped(t, m, "within 20ms\nbut it timed out")
	})

	t.Run("Succeeds Within Fails On Close", func(t *testing.T) {
		ch := make(chan string)
		close(ch)
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatChannel[string](m, ch).SucceedsWithin(time.Second)
		})
		asserttest.AssertStopped(t, m, "but it was closed")
	})

	t.Run("Closed Within Drains Values", func(t *testing.T) {
		ch := make(chan int, 2)
		ch <- 1
		ch <- 2
		close(ch)
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatChannel[int](m, ch).IsClosedWithin(time.Second)
		})
		asserttest.AssertPassed(t, m)
	})

	t.Run("Still Open", func(t *testing.T) {
		ch := make(chan int)
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatChannel[int](m, ch).IsClosedWithin(20 * time.Millisecond)
		})
		asserttest.AssertStopped(t, m, "but it was still open")
	})

	t.Run("Does Not Receive", func(t *testing.T) {
		quiet := make(chan int)
		m := asserttest.Run(func(m *asserttest.MockT) {
			ThatChannel[int](m, quiet).DoesNotReceiveWithin(20 * time.Millisecond)
		})
		asserttest.AssertPassed(t, m)

		noisy := make(chan int, 1)
		noisy <- 7
		failing := asserttest.Run(func(m *asserttest.MockT) {
			ThatChannel[int](m, noisy).DoesNotReceiveWithin(time.Second)
		})
		asserttest.AssertStopped(t, failing, "but it delivered:\n  7")
	})

	t.Run("Waiting On Nil Channel Is A Usage Error", func(t *testing.T) {
		expectInvalidArgument(t, func() {
			ThatChannel[int](&asserttest.MockT{}, nil).SucceedsWithin(time.Millisecond)
		})
	})
}
