// Package errors provides the error types shared by the mfe commands.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrUsage indicates missing or malformed command-line input.
	ErrUsage = errors.New("usage error")

	// ErrAborted indicates the operator cancelled an interactive prompt.
	ErrAborted = errors.New("aborted")

	// ErrExists indicates a target that must be new is already present.
	ErrExists = errors.New("already exists")

	// ErrNotFound indicates a microfrontend, template, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a manifest or configuration check failed.
	ErrValidation = errors.New("validation error")
)

// Exit codes. Every failure of the scaffolding tools exits with 1; the
// reason travels on the ExitError instead of the numeric code.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates the command failed for any reason.
	ExitFailure = 1
)

// Reason classifies why a command failed.
type Reason string

const (
	ReasonUsage      Reason = "usage"
	ReasonAborted    Reason = "aborted"
	ReasonExists     Reason = "exists"
	ReasonNotFound   Reason = "not-found"
	ReasonValidation Reason = "validation"
	ReasonIO         Reason = "io"
)

// ExitError is the result type commands return on failure. Only the process
// entry point turns it into an exit status.
type ExitError struct {
	// Code is the process exit status.
	Code int

	// Reason classifies the failure.
	Reason Reason

	// Err is the underlying error.
	Err error

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err into an ExitError, deriving the reason from the
// sentinel it carries.
func NewExitError(err error) *ExitError {
	return &ExitError{Code: ExitFailure, Reason: ReasonFromError(err), Err: err}
}

// ReasonFromError maps an error chain to a Reason.
func ReasonFromError(err error) Reason {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Reason
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ReasonUsage
	case errors.Is(err, ErrAborted):
		return ReasonAborted
	case errors.Is(err, ErrExists):
		return ReasonExists
	case errors.Is(err, ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, ErrValidation):
		return ReasonValidation
	default:
		return ReasonIO
	}
}

// ExitCodeFromError determines the exit status for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Message returns a printable message for err, falling back to
// "unknown error" when the error carries no text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return "unknown error"
	}
	return msg
}

// DetailError captures structured error information for the operator.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending path (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}

	if e.Hint != "" {
		b.WriteString("\n  Hint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates a usage error carrying the command's usage text as hint.
func NewUsageError(message, usage string) error {
	return &DetailError{
		Type:    "usage",
		Message: message,
		Hint:    usage,
		Cause:   ErrUsage,
	}
}

// NewExistsError reports that path already exists.
func NewExistsError(message, path, hint string) error {
	return &DetailError{
		Type:     "already exists",
		Message:  message,
		Location: path,
		Hint:     hint,
		Cause:    ErrExists,
	}
}

// NewNotFoundError reports that path does not exist.
func NewNotFoundError(message, path, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: path,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
