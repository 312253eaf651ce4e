package assertz

import (
	"fmt"
	"sync"
)

// Collector accumulates assertion failures in the order they happen. It is
// safe for concurrent use.
type Collector struct {
	errors     []*AssertionError
	mu         sync.Mutex
	lastFailed bool
}

// Collect appends err, marks the most recent check as failed and returns the
// number of collected errors including err. A nil err is ignored.
func (c *Collector) Collect(err *AssertionError) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		return len(c.errors)
	}
	c.errors = append(c.errors, err)
	c.lastFailed = true
	return len(c.errors)
}

// Succeeded marks the most recent check as passed.
func (c *Collector) Succeeded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastFailed = false
}

// WasSuccess reports whether the most recent check passed. A collector that
// has seen no checks reports true.
func (c *Collector) WasSuccess() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.lastFailed
}

// Errors returns a copy of the collected failures in insertion order.
func (c *Collector) Errors() []*AssertionError {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*AssertionError, len(c.errors))
	copy(out, c.errors)
	return out
}

// Len returns the number of collected failures.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// Reset drops every collected failure.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = nil
	c.lastFailed = false
}

// group gathers the failures of requirements evaluated together, as done by
// Satisfies, without observability or location decoration.
type group struct {
	Collector
	config Config
}

func newGroup(cfg Config) *group {
	cfg.PrintCallerLocation = false
	return &group{config: cfg}
}

func (*group) Helper() {}

func (g *group) Errorf(format string, args ...any) {
	g.Collect(&AssertionError{Assertion: "Errorf", Message: fmt.Sprintf(format, args...)})
}

func (*group) FailNow() {}

func (g *group) RecordFailure(err *AssertionError) {
	g.Collect(err)
}

func (g *group) RecordSuccess(string) {
	g.Succeeded()
}

func (g *group) AssertionConfig() Config {
	return g.config
}
