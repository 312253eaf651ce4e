package assertz

import "fmt"

// TestingT is the part of *testing.T that assertions report to. A failed
// hard assertion calls Errorf followed by FailNow, which stops the test
// goroutine and with it the rest of the chain.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// FailureRecorder is implemented by reporters that keep failures instead of
// stopping the test. When the TestingT given to an entry point is also a
// FailureRecorder, failed checks are recorded and the chain continues.
type FailureRecorder interface {
	RecordFailure(err *AssertionError)
	RecordSuccess(assertion string)
}

// ConfigProvider is implemented by reporters that carry their own Config.
type ConfigProvider interface {
	AssertionConfig() Config
}

// WithConfig returns a TestingT that makes every assertion created from it
// use cfg. Recording behaviour of t, such as a soft assertion session, is
// preserved.
//
//	t2 := assertz.WithConfig(t, cfg)
//	assertz.ThatSlice(t2, values).Contains(3)
func WithConfig(t TestingT, cfg Config) TestingT {
	if t == nil {
		invalidArgument("TestingT must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		invalidArgument("%v", err)
	}
	return &configuredT{TestingT: t, config: cfg}
}

type configuredT struct {
	TestingT
	config Config
}

func (c *configuredT) AssertionConfig() Config {
	return c.config
}

// Fail fails unconditionally with the given message.
func Fail(t TestingT, format string, args ...any) {
	t.Helper()
	b := newBase(t)
	b.failWith("Fail", fmt.Sprintf(format, args...))
}

// resolve unwraps configuration wrappers, returning the reporter that
// receives failures, its recorder if any and the configuration in effect.
func resolve(t TestingT) (TestingT, FailureRecorder, Config) {
	cfg := DefaultConfig()
	configured := false
	for {
		if p, ok := t.(ConfigProvider); ok && !configured {
			cfg = p.AssertionConfig()
			configured = true
		}
		c, ok := t.(*configuredT)
		if !ok {
			break
		}
		t = c.TestingT
	}
	recorder, _ := t.(FailureRecorder)
	return t, recorder, cfg
}
