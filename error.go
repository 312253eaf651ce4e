package assertz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAssertionFailed is the sentinel every assertion failure unwraps to.
var ErrAssertionFailed = errors.New("assertion failed")

// ErrInvalidArgument marks programmer errors such as a nil comparator or a
// negative tolerance. These are raised as panics whatever the reporting mode.
var ErrInvalidArgument = errors.New("invalid argument")

// AssertionError describes a single failed check. It carries the name of
// the check, the optional description label given with As, the formatted
// message and, for soft assertions, the location of the failing call.
type AssertionError struct {
	Assertion   string
	Description string
	Message     string
	Location    string
}

// Error renders the failure the way it is shown to the test author.
func (e *AssertionError) Error() string {
	if e == nil {
		return ErrAssertionFailed.Error()
	}

	var sb strings.Builder
	if e.Description != "" {
		sb.WriteString("[")
		sb.WriteString(e.Description)
		sb.WriteString("] ")
	}
	sb.WriteString(e.Message)
	if e.Location != "" {
		sb.WriteString("\nat ")
		sb.WriteString(e.Location)
	}
	return sb.String()
}

// Unwrap returns ErrAssertionFailed so callers can use errors.Is.
func (*AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// MultipleFailuresError aggregates the failures collected by a soft
// assertion session or by Satisfies, preserving collection order.
type MultipleFailuresError struct {
	Heading string
	Errors  []*AssertionError
}

// Error enumerates every collected failure, numbered from 1.
func (e *MultipleFailuresError) Error() string {
	heading := e.Heading
	if heading == "" {
		heading = "Multiple Failures"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d %s)", heading, len(e.Errors), pluralize(len(e.Errors), "failure", "failures"))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n-- failure %d --", i+1)
		msg := err.Error()
		if !strings.HasPrefix(msg, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString(msg)
	}
	return sb.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *MultipleFailuresError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// PanicError wraps a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// invalidArgument panics with an error wrapping ErrInvalidArgument.
func invalidArgument(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)))
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
