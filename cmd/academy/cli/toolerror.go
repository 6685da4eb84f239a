// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/cps-academy/academy/lib/strapi"
)

// ErrorCategory classifies command errors so that wrappers (scripts,
// exit-code mapping) can make programmatic decisions without parsing
// error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing required arguments, wrong argument count, unparseable
	// values. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// unknown course document ID, missing session file. Retrying with
	// the same parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryUnauthorized indicates the session is missing or no
	// longer valid. The caller should log in again.
	CategoryUnauthorized ErrorCategory = "unauthorized"

	// CategoryForbidden indicates the caller lacks permission for the
	// requested operation. The caller should escalate or request access.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout. The caller should back off and retry.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, malformed responses from the repository. The caller
	// should report the error rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands. The main
// function maps the category to an exit code; the category travels
// separately from the human-readable text.
//
// ToolError wraps an inner error, preserving the full error chain for
// debugging while adding category metadata. Use the category-specific
// constructors (Validation, NotFound, etc.) rather than constructing
// ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Unauthorized creates an unauthorized error: the session is missing or dead.
func Unauthorized(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryUnauthorized, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error: the caller lacks permission.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// FromAPIError maps a repository client error to a categorized command
// error, preserving the original error in the chain. Non-repository
// errors map to CategoryInternal.
func FromAPIError(err error) *ToolError {
	category := CategoryInternal
	switch {
	case strapi.IsValidation(err):
		category = CategoryValidation
	case strapi.IsNotFound(err):
		category = CategoryNotFound
	case strapi.IsUnauthorized(err):
		category = CategoryUnauthorized
	case strapi.IsForbidden(err):
		category = CategoryForbidden
	case strapi.IsNetworkFailure(err):
		category = CategoryTransient
	}
	return &ToolError{Category: category, Err: err}
}
