// Package errors provides error types for mixadd.
// This file contains manifest, lock listing and build tool errors.
package errors

import (
	"fmt"
)

// ManifestNotFound creates an error for a missing dependency manifest.
func ManifestNotFound(path string) *Error {
	return &Error{
		Kind:    ErrManifest,
		Message: fmt.Sprintf("manifest not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Run mixadd from the root of a Mix project, or point it at one:
  mixadd install <query> --dir path/to/project`,
	}
}

// ManifestReadFailed creates an error for a manifest that exists but cannot be read.
func ManifestReadFailed(path string, cause error) *Error {
	return &Error{
		Kind:    ErrManifest,
		Message: fmt.Sprintf("failed to read manifest: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
	}
}

// ManifestWriteFailed creates an error for a failed manifest write.
func ManifestWriteFailed(path string, cause error) *Error {
	return &Error{
		Kind:    ErrManifest,
		Message: fmt.Sprintf("failed to write manifest: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the file and its directory are writable.",
	}
}

// DependencyNotFound creates a warning for an upgrade whose tuple was not found.
func DependencyNotFound(name, path string) *Error {
	return &Error{
		Kind:    ErrPatch,
		Message: fmt.Sprintf("dependency %s not found in %s", name, path),
		Details: map[string]string{
			"package": name,
			"path":    path,
		},
		Suggestion: fmt.Sprintf(`The dependency may be declared in a form mixadd does not edit
(e.g. a variable or a git source). Update its version in %s by hand.`, path),
	}
}

// DepsListNotFound creates a warning for an install with no deps list to insert into.
func DepsListNotFound(name, path string) *Error {
	return &Error{
		Kind:    ErrPatch,
		Message: fmt.Sprintf("no deps list found in %s for %s", path, name),
		Details: map[string]string{
			"package": name,
			"path":    path,
		},
		Suggestion: `mixadd inserts new dependencies after "defp deps do [".
Add the dependency by hand or restore the standard deps function.`,
	}
}

// LockInfoUnavailable creates a warning for a dependency listing that failed.
func LockInfoUnavailable(command string, cause error) *Error {
	return &Error{
		Kind:    ErrLockInfo,
		Message: "could not list locked dependencies",
		Cause:   cause,
		Details: map[string]string{
			"command": command,
		},
		Suggestion: "All results will be offered as new installs. Check that mix is on your PATH.",
	}
}

// BuildToolFailed creates a warning for a fetch or format command failure.
func BuildToolFailed(command string, cause error) *Error {
	return &Error{
		Kind:    ErrBuildTool,
		Message: fmt.Sprintf("%s failed", command),
		Cause:   cause,
		Details: map[string]string{
			"command": command,
		},
		Suggestion: fmt.Sprintf("The manifest was updated. Run %q yourself once the problem is fixed.", command),
	}
}
