// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package strapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a repository call failure. The set is closed:
// every error the client returns carries exactly one of these kinds,
// and callers branch on the kind rather than on status codes or
// message text.
type ErrorKind string

const (
	// KindUnauthorized is an HTTP 401: the session token is invalid
	// or expired. Terminal for the session — the guard destroys the
	// persisted session when it sees this.
	KindUnauthorized ErrorKind = "unauthorized"

	// KindForbidden is an HTTP 403: the authenticated user lacks
	// permission. The session itself remains valid.
	KindForbidden ErrorKind = "forbidden"

	// KindNotFound is an HTTP 404: the requested entity does not
	// exist. No session impact.
	KindNotFound ErrorKind = "not_found"

	// KindNetworkFailure is a transport-level failure: connection
	// refused, timeout, DNS error. The request may never have reached
	// the repository.
	KindNetworkFailure ErrorKind = "network_failure"

	// KindMalformed is a contract violation: a response body that
	// does not match the repository's envelope, required fields that
	// are absent, or a status code outside the documented surface.
	KindMalformed ErrorKind = "malformed"

	// KindValidation is a client-side precondition failure (raised
	// before any network call) or an HTTP 400 input rejection from
	// the repository.
	KindValidation ErrorKind = "validation"
)

// APIError is the error type for every failed repository call.
// StatusCode is zero for failures that never produced an HTTP
// response (local validation, transport errors).
type APIError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// StatusCode is the HTTP response status code, when there was one.
	StatusCode int

	// Message is the human-readable description: the repository's
	// {error:{message}} when parseable, otherwise a summary of the
	// raw failure.
	Message string
}

func (err *APIError) Error() string {
	if err.StatusCode != 0 {
		return fmt.Sprintf("strapi: HTTP %d (%s): %s", err.StatusCode, err.Kind, err.Message)
	}
	return fmt.Sprintf("strapi: %s: %s", err.Kind, err.Message)
}

// IsUnauthorized reports whether err is a 401 session failure.
func IsUnauthorized(err error) bool { return kindOf(err) == KindUnauthorized }

// IsForbidden reports whether err is a 403 permission denial.
func IsForbidden(err error) bool { return kindOf(err) == KindForbidden }

// IsNotFound reports whether err is a 404 missing-entity response.
func IsNotFound(err error) bool { return kindOf(err) == KindNotFound }

// IsNetworkFailure reports whether err is a transport-level failure.
func IsNetworkFailure(err error) bool { return kindOf(err) == KindNetworkFailure }

// IsMalformed reports whether err is a contract violation.
func IsMalformed(err error) bool { return kindOf(err) == KindMalformed }

// IsValidation reports whether err is an input rejection (local or
// repository-side).
func IsValidation(err error) bool { return kindOf(err) == KindValidation }

// kindOf extracts the ErrorKind from an error chain, or "" when the
// chain contains no *APIError.
func kindOf(err error) ErrorKind {
	var apiError *APIError
	if errors.As(err, &apiError) {
		return apiError.Kind
	}
	return ""
}

// classifyStatus maps an HTTP status code to an ErrorKind. Statuses
// outside the repository's documented surface are contract violations.
func classifyStatus(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindMalformed
	}
}

// parseAPIError builds an *APIError from a non-2xx response. The
// status code alone drives classification; the body contributes only
// the message, and an absent or unparseable body falls back to the
// status text.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{
		Kind:       classifyStatus(statusCode),
		StatusCode: statusCode,
	}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Error.Message != "" {
		apiError.Message = envelope.Error.Message
	} else {
		apiError.Message = http.StatusText(statusCode)
	}

	return apiError
}

// networkError wraps a transport failure.
func networkError(err error) *APIError {
	return &APIError{Kind: KindNetworkFailure, Message: err.Error()}
}

// malformedError reports a response that violates the repository
// contract.
func malformedError(format string, args ...any) *APIError {
	return &APIError{Kind: KindMalformed, Message: fmt.Sprintf(format, args...)}
}

// validationError reports a client-side precondition failure.
func validationError(format string, args ...any) *APIError {
	return &APIError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}
