// Package errors classifies the failures of predicate synthesis.
//
// Fatal errors are internal invariant violations: a template or the
// specialization pass produced a tree the next stage cannot handle.
// They are bugs, never a synthesis outcome. Exhausted errors report
// that no predicate exists within the configured search budget. Backend
// errors report a failure of the constraint solver itself; the session
// that produced one must not be reused.
package errors

import (
	"errors"
	"fmt"
)

// FatalError wraps an internal invariant violation.
type FatalError struct {
	error
}

// NewFatalError returns err marked as fatal.
func NewFatalError(err error) FatalError {
	return FatalError{error: err}
}

// Unwrap returns the underlying error.
func (e FatalError) Unwrap() error {
	return e.error
}

// IsFatal reports whether err is, or wraps, a FatalError.
func IsFatal(err error) bool {
	var target FatalError
	return errors.As(err, &target)
}

// BackendError wraps a failure of the solver backend.
type BackendError struct {
	error
}

// NewBackendError returns err marked as a backend failure.
func NewBackendError(err error) BackendError {
	return BackendError{error: err}
}

// Unwrap returns the underlying error.
func (e BackendError) Unwrap() error {
	return e.error
}

// IsBackend reports whether err is, or wraps, a BackendError.
func IsBackend(err error) bool {
	var target BackendError
	return errors.As(err, &target)
}

// ExhaustedError reports that no predicate for Label was found before
// the search budget ran out. Depth and Width are the last grammar size
// attempted.
type ExhaustedError struct {
	Label    string
	Depth    int
	Width    int
	Attempts int
}

func (e ExhaustedError) Error() string {
	return fmt.Sprintf("no predicate found for label %q within budget (%d attempts, last depth %d, width %d)",
		e.Label, e.Attempts, e.Depth, e.Width)
}

// IsExhausted reports whether err is, or wraps, an ExhaustedError.
func IsExhausted(err error) bool {
	var target ExhaustedError
	return errors.As(err, &target)
}
