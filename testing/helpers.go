// Package testing provides helpers for testing assertions built with assertz.
//
// MockT records what an assertion reports instead of failing the enclosing
// test, so failing checks can themselves be tested:
//
//	func TestMyAssertion(t *testing.T) {
//		mock := asserttest.Run(func(m *asserttest.MockT) {
//			assertz.ThatNumber(m, 8).IsGreaterThan(10)
//		})
//		asserttest.AssertStopped(t, mock, "to be greater than")
//	}
//
// The package does not import assertz; MockT satisfies assertz.TestingT
// structurally.
package testing

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

// MockT is a TestingT that records failures. Like *testing.T, FailNow stops
// the calling goroutine, so assertions under test must run inside Run.
type MockT struct {
	mu       sync.Mutex
	messages []string
	cleanups []func()
	helpers  int
	failed   bool
	stopped  bool
	panicked any
}

// Helper counts calls so tests can check that assertions mark themselves as
// helpers.
func (m *MockT) Helper() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.helpers++
}

// Errorf records a failure message.
func (m *MockT) Errorf(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = true
	m.messages = append(m.messages, fmt.Sprintf(format, args...))
}

// FailNow marks the mock failed and exits the calling goroutine.
func (m *MockT) FailNow() {
	m.mu.Lock()
	m.failed = true
	m.stopped = true
	m.mu.Unlock()
	runtime.Goexit()
}

// Cleanup registers fn to run, in reverse order of registration, when Run
// returns.
func (m *MockT) Cleanup(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleanups = append(m.cleanups, fn)
}

// Failed reports whether Errorf or FailNow was called.
func (m *MockT) Failed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failed
}

// Stopped reports whether FailNow was called.
func (m *MockT) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// Messages returns the recorded failure messages in order.
func (m *MockT) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.messages))
	copy(out, m.messages)
	return out
}

// Output joins every recorded message.
func (m *MockT) Output() string {
	return strings.Join(m.Messages(), "\n")
}

// HelperCalls returns how many times Helper was called.
func (m *MockT) HelperCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.helpers
}

// Panic returns the value fn panicked with inside Run, or nil.
func (m *MockT) Panic() any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.panicked
}

// Run calls fn with a fresh MockT on its own goroutine, waits for it to
// return or stop, runs the registered cleanups and returns the mock. A panic
// in fn is recovered and available through Panic.
func Run(fn func(m *MockT)) *MockT {
	m := &MockT{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				m.mu.Lock()
				m.panicked = r
				m.mu.Unlock()
			}
		}()
		fn(m)
	}()
	<-done

	m.mu.Lock()
	cleanups := m.cleanups
	m.cleanups = nil
	m.mu.Unlock()
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	return m
}

// AssertPassed fails t when the mock recorded any failure.
func AssertPassed(t *testing.T, m *MockT) {
	t.Helper()
	if m.Failed() {
		t.Errorf("expected no failure, got:\n%s", m.Output())
	}
	if p := m.Panic(); p != nil {
		t.Errorf("expected no panic, got %v", p)
	}
}

// AssertFailed fails t unless the mock recorded a failure whose messages
// contain every fragment.
func AssertFailed(t *testing.T, m *MockT, fragments ...string) {
	t.Helper()
	if !m.Failed() {
		t.Errorf("expected a failure, got none")
		return
	}
	output := m.Output()
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			t.Errorf("expected failure output to contain %q, got:\n%s", fragment, output)
		}
	}
}

// AssertStopped is AssertFailed that also requires FailNow to have been
// called.
func AssertStopped(t *testing.T, m *MockT, fragments ...string) {
	t.Helper()
	AssertFailed(t, m, fragments...)
	if !m.Stopped() {
		t.Errorf("expected the failure to stop the test")
	}
}

// WaitFor polls cond until it holds or timeout elapses. It returns whether
// cond held.
func WaitFor(cond func() bool, timeout time.Duration) bool {
	start := time.Now()
	for time.Since(start) < timeout {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

// Parallel runs fn on the given number of goroutines and waits for all of
// them. Each call receives its goroutine index.
func Parallel(goroutines int, fn func(id int)) {
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			fn(id)
		}(i)
	}
	wg.Wait()
}
