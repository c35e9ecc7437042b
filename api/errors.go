// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-thpool.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrPoolClosed is returned by submissions after Destroy has begun.
	ErrPoolClosed = fmt.Errorf("thread pool is closed")
	// ErrNilTask is returned when a nil callable is submitted.
	ErrNilTask = fmt.Errorf("task must not be nil")
	// ErrNilSignal is returned when a completion-tracked submission carries
	// a nil countdown signal. Kept distinct from ErrNilTask so callers can
	// tell the two precondition failures apart.
	ErrNilSignal = fmt.Errorf("completion signal must not be nil")
	// ErrNotSupported reports a platform without CPU affinity control.
	ErrNotSupported = fmt.Errorf("operation not supported")
	// ErrInvalidCore reports a core index outside the detected topology.
	ErrInvalidCore = fmt.Errorf("core index out of range")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeClosed
	ErrCodeNotSupported
	ErrCodeInternal
)

// Error represents a structured error with code and context.
// The fail-fast reporting policy panics with one of these.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
