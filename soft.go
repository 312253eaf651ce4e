package assertz

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
	"go.uber.org/zap"
)

// Metric keys for soft assertion sessions.
const (
	SoftChecksTotal     = metricz.Key("soft.checks.total")
	SoftSuccessesTotal  = metricz.Key("soft.successes.total")
	SoftFailuresTotal   = metricz.Key("soft.failures.total")
	SoftErrorsCollected = metricz.Key("soft.errors.collected")
)

// Span names for soft assertion sessions.
const (
	SoftCheckSpan     = tracez.Key("soft.check")
	SoftAssertAllSpan = tracez.Key("soft.assert_all")
)

// Span tags for soft assertion sessions.
const (
	SoftTagAssertion = tracez.Tag("soft.assertion")
	SoftTagSuccess   = tracez.Tag("soft.success")
	SoftTagFailures  = tracez.Tag("soft.failures")

	// Hook event keys.
	SoftEventCollected = hookz.Key("soft.collected")
	SoftEventAsserted  = hookz.Key("soft.asserted")
)

// SoftEvent is emitted via hookz when a session collects a failure and when
// it is asserted.
type SoftEvent struct {
	Error     *AssertionError // Collected failure, nil for asserted events
	Err       error           // Aggregate error of an asserted session, nil when it passed
	Assertion string          // Name of the failed check
	Index     int             // Position of the collected failure, from 1
	Failures  int             // Failures collected so far
	Timestamp time.Time
}

// SoftAssertions collects the failures of every assertion created from it
// instead of stopping at the first one. It satisfies TestingT, so any entry
// point accepts it:
//
//	soft := assertz.NewSoftAssertions(t)
//	assertz.ThatNumber(soft, 8).IsGreaterThan(10)
//	assertz.ThatString(soft, "abc").StartsWith("x")
//	soft.AssertAll() // reports both failures
//
// A session is safe for use from several goroutines.
type SoftAssertions struct {
	t         TestingT
	config    Config
	logger    *zap.Logger
	collector Collector

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[SoftEvent]
}

// SoftOption configures a SoftAssertions session.
type SoftOption func(*SoftAssertions)

// WithSoftConfig sets the configuration used by assertions of the session.
func WithSoftConfig(cfg Config) SoftOption {
	return func(s *SoftAssertions) {
		if err := cfg.Validate(); err != nil {
			invalidArgument("%v", err)
		}
		s.config = cfg
	}
}

// WithLogger logs every collected failure at debug level.
func WithLogger(logger *zap.Logger) SoftOption {
	return func(s *SoftAssertions) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSoftAssertions starts a session reporting to t when asserted. t may be
// nil when the caller only inspects Errors or Err. When t carries a Config
// through WithConfig the session uses it.
func NewSoftAssertions(t TestingT, opts ...SoftOption) *SoftAssertions {
	cfg := DefaultConfig()
	if t != nil {
		_, _, cfg = resolve(t)
	}

	registry := metricz.New()
	registry.Counter(SoftChecksTotal)
	registry.Counter(SoftSuccessesTotal)
	registry.Counter(SoftFailuresTotal)
	registry.Gauge(SoftErrorsCollected)

	s := &SoftAssertions{
		t:       t,
		config:  cfg,
		logger:  zap.NewNop(),
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[SoftEvent](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AssertSoftly runs fn with a new session and asserts it afterwards.
//
//	assertz.AssertSoftly(t, func(s *assertz.SoftAssertions) {
//		assertz.ThatNumber(s, got.Count).IsEqualTo(3)
//		assertz.ThatString(s, got.Name).IsNotEmpty()
//	})
func AssertSoftly(t TestingT, fn func(s *SoftAssertions), opts ...SoftOption) error {
	if t == nil {
		invalidArgument("TestingT must not be nil")
	}
	t.Helper()
	s := NewSoftAssertions(t, opts...)
	defer s.Close() //nolint:errcheck
	fn(s)
	return s.AssertAll()
}

// Softly returns a session asserted automatically when the test and its
// subtests complete.
func Softly(t interface {
	TestingT
	Cleanup(func())
}, opts ...SoftOption) *SoftAssertions {
	s := NewSoftAssertions(t, opts...)
	t.Cleanup(func() {
		_ = s.AssertAll() //nolint:errcheck
		_ = s.Close()     //nolint:errcheck
	})
	return s
}

// Helper does nothing; locations of soft failures are captured on record.
func (*SoftAssertions) Helper() {}

// Errorf collects a free-form failure.
func (s *SoftAssertions) Errorf(format string, args ...any) {
	s.RecordFailure(&AssertionError{Assertion: "Errorf", Message: fmt.Sprintf(format, args...)})
}

// FailNow does nothing so that a soft session never stops the test.
func (*SoftAssertions) FailNow() {}

// Fail collects an unconditional failure.
func (s *SoftAssertions) Fail(format string, args ...any) {
	s.RecordFailure(&AssertionError{Assertion: "Fail", Message: sprintf(format, args)})
}

// AssertionConfig returns the configuration of the session.
func (s *SoftAssertions) AssertionConfig() Config {
	return s.config
}

// RecordFailure collects err, decorating it with the caller location when
// the configuration asks for it.
func (s *SoftAssertions) RecordFailure(err *AssertionError) {
	if err == nil {
		return
	}
	if s.config.PrintCallerLocation && err.Location == "" {
		err.Location = callerLocation()
	}

	ctx, span := s.tracer.StartSpan(context.Background(), SoftCheckSpan)
	defer span.Finish()
	span.SetTag(SoftTagAssertion, err.Assertion)
	span.SetTag(SoftTagSuccess, "false")

	count := s.collector.Collect(err)

	s.metrics.Counter(SoftChecksTotal).Inc()
	s.metrics.Counter(SoftFailuresTotal).Inc()
	s.metrics.Gauge(SoftErrorsCollected).Set(float64(count))

	s.logger.Debug("soft assertion failed",
		zap.String("assertion", err.Assertion),
		zap.String("location", err.Location),
		zap.Int("index", count),
	)

	_ = s.hooks.Emit(ctx, SoftEventCollected, SoftEvent{ //nolint:errcheck
		Error:     err,
		Assertion: err.Assertion,
		Index:     count,
		Failures:  count,
		Timestamp: s.config.clock().Now(),
	})
}

// RecordSuccess marks the most recent check as passed.
func (s *SoftAssertions) RecordSuccess(assertion string) {
	_, span := s.tracer.StartSpan(context.Background(), SoftCheckSpan)
	defer span.Finish()
	span.SetTag(SoftTagAssertion, assertion)
	span.SetTag(SoftTagSuccess, "true")

	s.collector.Succeeded()
	s.metrics.Counter(SoftChecksTotal).Inc()
	s.metrics.Counter(SoftSuccessesTotal).Inc()
}

// Errors returns the failures collected so far in the order they happened.
func (s *SoftAssertions) Errors() []*AssertionError {
	return s.collector.Errors()
}

// WasSuccess reports whether the most recent check passed.
func (s *SoftAssertions) WasSuccess() bool {
	return s.collector.WasSuccess()
}

// Err returns nil when nothing failed and a *MultipleFailuresError holding
// every collected failure otherwise.
func (s *SoftAssertions) Err() error {
	errs := s.collector.Errors()
	if len(errs) == 0 {
		return nil
	}
	return &MultipleFailuresError{Errors: errs}
}

// AssertAll reports every collected failure to the session's TestingT as a
// single aggregate failure and returns it. Nothing is reported when all
// checks passed.
func (s *SoftAssertions) AssertAll() error {
	ctx, span := s.tracer.StartSpan(context.Background(), SoftAssertAllSpan)
	defer span.Finish()

	err := s.Err()
	failures := s.collector.Len()
	span.SetTag(SoftTagFailures, strconv.Itoa(failures))
	span.SetTag(SoftTagSuccess, strconv.FormatBool(err == nil))

	_ = s.hooks.Emit(ctx, SoftEventAsserted, SoftEvent{ //nolint:errcheck
		Err:       err,
		Failures:  failures,
		Timestamp: s.config.clock().Now(),
	})

	if err != nil && s.t != nil {
		s.t.Helper()
		s.t.Errorf("%s", err.Error())
	}
	return err
}

// Metrics returns the metrics registry of the session.
func (s *SoftAssertions) Metrics() *metricz.Registry {
	return s.metrics
}

// Tracer returns the tracer of the session.
func (s *SoftAssertions) Tracer() *tracez.Tracer {
	return s.tracer
}

// OnCollected registers a handler called asynchronously for every collected
// failure.
func (s *SoftAssertions) OnCollected(handler func(context.Context, SoftEvent) error) error {
	_, err := s.hooks.Hook(SoftEventCollected, handler)
	return err
}

// OnAsserted registers a handler called asynchronously when the session is
// asserted.
func (s *SoftAssertions) OnAsserted(handler func(context.Context, SoftEvent) error) error {
	_, err := s.hooks.Hook(SoftEventAsserted, handler)
	return err
}

// Close shuts down the observability components of the session.
func (s *SoftAssertions) Close() error {
	if s.tracer != nil {
		s.tracer.Close()
	}
	s.hooks.Close()
	return nil
}

const libraryPackage = "github.com/zoobzio/assertz"

// callerLocation returns the first frame outside the library, or in a test
// file, formatted as "pkg.Func (file.go:42)".
func callerLocation() string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !internalFrame(frame) {
			return frame.Function + " (" + filepath.Base(frame.File) + ":" + strconv.Itoa(frame.Line) + ")"
		}
		if !more {
			return ""
		}
	}
}

func internalFrame(frame runtime.Frame) bool {
	if strings.HasSuffix(frame.File, "_test.go") {
		return false
	}
	fn := frame.Function
	return strings.HasPrefix(fn, libraryPackage+".") ||
		strings.HasPrefix(fn, libraryPackage+"/") ||
		strings.HasPrefix(fn, "runtime.") ||
		strings.HasPrefix(fn, "testing.")
}
