// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package apierrors defines typed errors with categories for API outcomes.
// Every failure the core produces is one of three kinds: a local validation
// error that never reached the network, a business error reported by the
// backend (carrying its error code), or a transport-level failure
// (connectivity, timeout, malformed body). Callers branch on the kind via
// errors.As and the helpers below instead of string matching.
package apierrors

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Validation indicates a local pre-network validation failure.
	Validation Kind = "validation"
	// APIFailure indicates a business error reported by the backend envelope.
	APIFailure Kind = "api_failure"
	// Transport indicates a connectivity, timeout or malformed-body failure.
	Transport Kind = "transport"
)

// E wraps an error with kind, backend code and human-friendly message.
// Code is only set for APIFailure errors.
type E struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *E) Error() string {
	switch {
	case e.Code != "" && e.Err != nil:
		return fmt.Sprintf("%s [%s]: %s: %v", e.Kind, e.Code, e.Message, e.Err)
	case e.Code != "":
		return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Code, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *E) Unwrap() error { return e.Err }

// NewValidation returns a local validation error.
func NewValidation(msg string) *E { return &E{Kind: Validation, Message: msg} }

// NewFailure returns a backend business error with its envelope code.
func NewFailure(code, msg string) *E { return &E{Kind: APIFailure, Code: code, Message: msg} }

// NewTransport returns a transport-level error.
func NewTransport(msg string, err error) *E { return &E{Kind: Transport, Message: msg, Err: err} }

// KindOf reports the kind of err, or "" when err is not an *E.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// CodeOf reports the backend error code of err, or "" when absent.
func CodeOf(err error) string {
	var e *E
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// MessageOf reports the human-facing message of err, falling back to Error().
func MessageOf(err error) string {
	var e *E
	if errors.As(err, &e) {
		return e.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// IsValidation reports whether err is a local validation error.
func IsValidation(err error) bool { return KindOf(err) == Validation }

// IsTransport reports whether err is a transport-level error.
func IsTransport(err error) bool { return KindOf(err) == Transport }

// IsFailure reports whether err is a backend business error.
func IsFailure(err error) bool { return KindOf(err) == APIFailure }
