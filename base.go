package assertz

import "fmt"

// base holds what every assertion object shares: where failures go, the
// configuration in effect, and the labels given by the test author.
type base struct {
	t           TestingT
	recorder    FailureRecorder
	config      Config
	description string
	failMessage string
}

func newBase(t TestingT) base {
	if t == nil {
		invalidArgument("TestingT must not be nil")
	}
	reporter, recorder, cfg := resolve(t)
	return base{t: reporter, recorder: recorder, config: cfg}
}

// derive returns the base of an assertion navigated to from this one. The
// description carries over; an overriding message does not.
func (b *base) derive() base {
	return base{
		t:           b.t,
		recorder:    b.recorder,
		config:      b.config,
		description: b.description,
	}
}

func (b *base) repr() representation {
	return b.config.representation()
}

func (b *base) describe(format string, args []any) {
	b.description = sprintf(format, args)
}

func (b *base) overrideFailMessage(format string, args []any) {
	b.failMessage = sprintf(format, args)
}

// check passes when ok holds and fails with the lazily built message
// otherwise.
func (b *base) check(assertion string, ok bool, message func() string) {
	b.t.Helper()
	if ok {
		b.succeed(assertion)
		return
	}
	b.failWith(assertion, message())
}

func (b *base) succeed(assertion string) {
	if b.recorder != nil {
		b.recorder.RecordSuccess(assertion)
	}
}

// failWith reports a failed check. Recorders keep the error and the chain
// goes on; plain reporters get the message and stop the test.
func (b *base) failWith(assertion, message string) {
	b.t.Helper()
	if b.failMessage != "" {
		message = b.failMessage
	}
	err := &AssertionError{
		Assertion:   assertion,
		Description: b.description,
		Message:     message,
	}
	if b.recorder != nil {
		b.recorder.RecordFailure(err)
		return
	}
	b.t.Errorf("%s", err.Error())
	b.t.FailNow()
}

func sprintf(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
