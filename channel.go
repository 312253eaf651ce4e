package assertz

import (
	"time"

	"github.com/zoobzio/clockz"
)

// ChannelAssert checks a channel, treating it as the future result of an
// asynchronous computation.
type ChannelAssert[T any] struct {
	base
	actual <-chan T
	clock  clockz.Clock
}

// ThatChannel starts assertions on a channel.
//
//	assertz.ThatChannel(t, results).SucceedsWithin(time.Second).IsEqualTo(42)
func ThatChannel[T any](t TestingT, actual <-chan T) *ChannelAssert[T] {
	b := newBase(t)
	return &ChannelAssert[T]{base: b, actual: actual, clock: b.config.clock()}
}

// As sets a description shown in front of failure messages.
func (a *ChannelAssert[T]) As(description string, args ...any) *ChannelAssert[T] {
	a.describe(description, args)
	return a
}

// WithFailMessage replaces the generated failure message.
func (a *ChannelAssert[T]) WithFailMessage(format string, args ...any) *ChannelAssert[T] {
	a.overrideFailMessage(format, args)
	return a
}

// WithClock sets the clock timeouts are measured with.
func (a *ChannelAssert[T]) WithClock(clock clockz.Clock) *ChannelAssert[T] {
	if clock == nil {
		invalidArgument("clock must not be nil")
	}
	a.clock = clock
	return a
}

// IsNil checks that the channel is nil.
func (a *ChannelAssert[T]) IsNil() *ChannelAssert[T] {
	a.t.Helper()
	a.check("IsNil", a.actual == nil, func() string {
		return "\nExpecting channel to be nil"
	})
	return a
}

// IsEmpty checks that no value is buffered.
func (a *ChannelAssert[T]) IsEmpty() *ChannelAssert[T] {
	a.t.Helper()
	n := len(a.actual)
	a.check("IsEmpty", n == 0, func() string {
		return shouldHave(a.repr(), a.actual, "no buffered values", 0, n)
	})
	return a
}

// HasLen checks the number of buffered values.
func (a *ChannelAssert[T]) HasLen(expected int) *ChannelAssert[T] {
	a.t.Helper()
	n := len(a.actual)
	a.check("HasLen", n == expected, func() string {
		return shouldHave(a.repr(), a.actual, "buffered values", expected, n)
	})
	return a
}

// HasCapacity checks the buffer capacity of the channel.
func (a *ChannelAssert[T]) HasCapacity(expected int) *ChannelAssert[T] {
	a.t.Helper()
	c := cap(a.actual)
	a.check("HasCapacity", c == expected, func() string {
		return shouldHave(a.repr(), a.actual, "capacity", expected, c)
	})
	return a
}

// IsBuffered checks that the channel has a buffer.
func (a *ChannelAssert[T]) IsBuffered() *ChannelAssert[T] {
	a.t.Helper()
	a.check("IsBuffered", cap(a.actual) > 0, func() string {
		return shouldBe(a.repr(), a.actual, "buffered")
	})
	return a
}

// SucceedsWithin waits up to timeout for a value and navigates to it. A
// timeout or a closed channel fails the check and yields assertions on the
// zero value.
func (a *ChannelAssert[T]) SucceedsWithin(timeout time.Duration) *ObjectAssert[T] {
	a.t.Helper()
	a.requireChannel()
	var value T
	select {
	case v, ok := <-a.actual:
		if ok {
			value = v
			a.succeed("SucceedsWithin")
		} else {
			a.failWith("SucceedsWithin", "\nExpecting channel to deliver a value within "+timeout.String()+
				"\nbut it was closed")
		}
	case <-a.clock.After(timeout):
		a.failWith("SucceedsWithin", "\nExpecting channel to deliver a value within "+timeout.String()+
			"\nbut it timed out")
	}
	b := a.derive()
	return &ObjectAssert[T]{base: b, actual: value, comparison: standardComparison[T](b.config)}
}

// IsClosedWithin waits up to timeout for the channel to be closed, discarding
// the values received meanwhile.
func (a *ChannelAssert[T]) IsClosedWithin(timeout time.Duration) *ChannelAssert[T] {
	a.t.Helper()
	a.requireChannel()
	deadline := a.clock.After(timeout)
	for {
		select {
		case _, ok := <-a.actual:
			if ok {
				continue
			}
			a.succeed("IsClosedWithin")
		case <-deadline:
			a.failWith("IsClosedWithin", "\nExpecting channel to be closed within "+timeout.String()+
				"\nbut it was still open")
		}
		return a
	}
}

// DoesNotReceiveWithin checks that the channel delivers nothing, and is not
// closed, for the whole duration.
func (a *ChannelAssert[T]) DoesNotReceiveWithin(d time.Duration) *ChannelAssert[T] {
	a.t.Helper()
	a.requireChannel()
	select {
	case v, ok := <-a.actual:
		if ok {
			a.failWith("DoesNotReceiveWithin", "\nExpecting channel not to deliver a value within "+d.String()+
				"\nbut it delivered:\n  "+indent(a.repr().format(v)))
		} else {
			a.failWith("DoesNotReceiveWithin", "\nExpecting channel not to deliver a value within "+d.String()+
				"\nbut it was closed")
		}
	case <-a.clock.After(d):
		a.succeed("DoesNotReceiveWithin")
	}
	return a
}

func (a *ChannelAssert[T]) requireChannel() {
	if a.actual == nil {
		invalidArgument("cannot wait on a nil channel")
	}
}
