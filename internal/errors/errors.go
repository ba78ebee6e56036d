// Package errors provides sentinel errors for the zpodtg CLI.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for known failure categories. Every fatal error wraps
// exactly one of these so callers can assert the category with errors.Is.
var (
	// ErrConnection indicates the zpodapi host could not be reached.
	ErrConnection = errors.New("cannot connect")

	// ErrAuth indicates the API rejected the access token.
	ErrAuth = errors.New("authentication failed")

	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrAPI indicates an unexpected API response (status or body).
	ErrAPI = errors.New("api error")

	// ErrInput indicates invalid user input: missing flags, malformed
	// or non-object extra-vars JSON.
	ErrInput = errors.New("invalid input")

	// ErrTemplate indicates a template load or render failure.
	ErrTemplate = errors.New("template error")
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed marks errors already reported by the command layer,
	// so main does not print them twice.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// Wrapf wraps an underlying error with a sentinel and a message.
func Wrapf(sentinel, err error, message string) error {
	return fmt.Errorf("%s: %w: %w", message, sentinel, err)
}
