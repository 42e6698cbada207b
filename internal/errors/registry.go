// Package errors provides error types for mixadd.
// This file contains registry and usage errors.
package errors

import (
	"fmt"
	"time"
)

// UsageError creates an error for a command invoked with missing or bad arguments.
func UsageError(message, usage string) *Error {
	err := &Error{
		Kind:    ErrUsage,
		Message: message,
	}
	if usage != "" {
		err.Suggestion = "Usage: " + usage
	}
	return err
}

// RegistryUnavailable creates an error for a failed registry search.
func RegistryUnavailable(url string, cause error) *Error {
	err := &Error{
		Kind:    ErrRegistry,
		Message: "package registry unavailable",
		Cause:   cause,
		Suggestion: `Check your network connection:

  1. Verify internet connectivity
  2. Check if VPN or firewall is blocking access
  3. Try: curl -I https://hex.pm/api/packages

If you're behind a proxy:
  export HTTP_PROXY=http://proxy:port
  export HTTPS_PROXY=http://proxy:port`,
	}
	if url != "" {
		err.Details = map[string]string{"url": url}
	}
	return err
}

// RegistryStatus creates an error for a registry response with a non-success status.
func RegistryStatus(url string, status int, body string) *Error {
	err := RegistryUnavailable(url, fmt.Errorf("registry returned HTTP %d", status))
	err.WithDetails("status", fmt.Sprintf("%d", status))
	if body != "" {
		err.WithDetails("body", body)
	}
	return err
}

// RegistryRateLimited creates an error for registry rate limiting.
func RegistryRateLimited(url string, retryAfter time.Duration) *Error {
	suggestion := "Wait before searching again."
	if retryAfter > 0 {
		suggestion = fmt.Sprintf("Wait %v before searching again.", retryAfter.Round(time.Second))
	}
	err := &Error{
		Kind:       ErrRegistry,
		Message:    "registry rate limit exceeded",
		Suggestion: suggestion,
	}
	if url != "" {
		err.Details = map[string]string{"url": url}
	}
	return err
}

// NotInteractive creates an error for a prompt started without a terminal.
func NotInteractive() *Error {
	return &Error{
		Kind:    ErrTerminal,
		Message: "an interactive terminal is required to select packages",
		Suggestion: `Run mixadd from a terminal, or choose packages up front:
  mixadd install <query> --select name1,name2`,
	}
}
