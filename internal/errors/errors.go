// Package errors provides error types with actionable suggestions for mixadd.
// Errors carry a Kind so callers can decide whether a failure aborts the run
// or is only reported as a warning.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrUsage indicates the command was invoked incorrectly.
	ErrUsage = errors.New("usage error")
	// ErrRegistry indicates the package registry could not serve a search.
	ErrRegistry = errors.New("registry error")
	// ErrManifest indicates the dependency manifest could not be read or written.
	ErrManifest = errors.New("manifest error")
	// ErrLockInfo indicates locked versions could not be listed.
	ErrLockInfo = errors.New("lock info error")
	// ErrPatch indicates a manifest edit found nothing to change.
	ErrPatch = errors.New("patch error")
	// ErrBuildTool indicates a fetch or format command failed.
	ErrBuildTool = errors.New("build tool error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrTerminal indicates an interactive terminal was required but missing.
	ErrTerminal = errors.New("terminal error")
)

// Error is the base error type for mixadd errors.
// It wraps an underlying error and provides additional context.
type Error struct {
	// Kind is the category of error (e.g., ErrRegistry, ErrManifest).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, command output).
	Details map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's Kind matches the target.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
func (e *Error) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *Error) WithDetails(key, value string) *Error {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// New creates a new Error with the given kind and message.
func New(kind error, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *Error {
	return &Error{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// FormatAny formats err for display, using Format for *Error values.
func FormatAny(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Format()
	}
	return "Error: " + err.Error() + "\n"
}

// IsFatal returns true if the error must abort the run.
// Discovery and edit failures are fatal; lock listing, patch misses and
// build tool failures are reported as warnings.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return true
	}
	switch {
	case errors.Is(e.Kind, ErrLockInfo), errors.Is(e.Kind, ErrPatch), errors.Is(e.Kind, ErrBuildTool):
		return false
	default:
		return true
	}
}

// IsUserError returns true if the error is due to user input or misconfiguration.
func IsUserError(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return errors.Is(e.Kind, ErrUsage) || errors.Is(e.Kind, ErrConfig) || errors.Is(e.Kind, ErrTerminal)
}
