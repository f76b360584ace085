package middlewares

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnexpectedFile rejects a file part in a text-only form.
	ErrUnexpectedFile = errors.New("upload: unexpected file in text form")
	// ErrMalformedForm wraps a body that could not be parsed as a form.
	ErrMalformedForm = errors.New("upload: malformed form body")
)

// PanicError is what Recover returns in place of a panic.
// Stack is nil when stack capture is disabled.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// TimeoutError reports a request that ran past its deadline without answering.
type TimeoutError struct {
	Err      error
	Duration time.Duration
}

func (e *TimeoutError) Error() string { return "request timeout after " + e.Duration.String() }
func (e *TimeoutError) Unwrap() error { return e.Err }

func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	ok := errors.As(err, &pe)
	return pe, ok
}

func AsTimeoutError(err error) (*TimeoutError, bool) {
	var te *TimeoutError
	ok := errors.As(err, &te)
	return te, ok
}
