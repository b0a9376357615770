// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors maps API outcomes onto user-friendly terminal output.
// Known backend error codes resolve through a static table, falling back to
// the raw backend message, then to a generic message when both are absent.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"learndash/admincli/internal/apierrors"
	"learndash/admincli/internal/logging"
)

// genericMessage is the last-resort user-facing text.
const genericMessage = "An unexpected error occurred. Please try again."

// codeMessages maps the backend's known error code vocabulary to text
// suitable for an operator. Unknown codes fall back to the raw message.
var codeMessages = map[string]string{
	"INVALID_CREDENTIALS": "Invalid email or password. Please try again.",
	"INVALID_OTP":         "Invalid verification code. Please check and try again.",
	"OTP_EXPIRED":         "Verification code has expired. Please request a new one.",
	"OTP_MAX_ATTEMPTS":    "Too many failed attempts. Please request a new code.",
	"ACCOUNT_SUSPENDED":   "Your account has been suspended. Please contact support.",
	"ACCOUNT_PENDING":     "Your account is pending approval. Please wait for admin activation.",
	"ACCOUNT_INACTIVE":    "Your account is inactive. Please contact support.",
	"EMAIL_EXISTS":        "This email is already registered. Try logging in instead.",
	"USER_NOT_FOUND":      "No account found with this email address.",
	"EMAIL_NOT_FOUND":     "No account found with this email address.",
	"INVALID_TOKEN":       "Invalid or expired token. Please try again.",
	"INVALID_PASSWORD":    "Current password is incorrect.",
	"WEAK_PASSWORD":       "Password is too weak. Use at least 8 characters with letters and numbers.",
	"RATE_LIMITED":        "Too many requests. Please wait a moment and try again.",
	"NETWORK_ERROR":       "Unable to connect. Please check your internet connection.",
	"SERVER_ERROR":        "Server error. Please try again later.",
}

// UserMessage resolves an error code and raw message to user-facing text.
func UserMessage(code, message string) string {
	if text, ok := codeMessages[code]; ok {
		return text
	}
	if message != "" {
		return message
	}
	return genericMessage
}

// Describe converts any outcome error into a single user-facing line with
// secrets masked. Validation errors pass through as-is since they were
// written for the operator in the first place.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var e *apierrors.E
	if errors.As(err, &e) {
		switch e.Kind {
		case apierrors.Validation:
			return e.Message
		case apierrors.APIFailure:
			return UserMessage(e.Code, e.Message)
		default:
			return logging.Mask(e.Message)
		}
	}
	return logging.Mask(err.Error())
}

// ShowNetworkError prints troubleshooting guidance for a transport-level
// failure, classified by cause. Returns a wrapped error for logging.
func ShowNetworkError(err error, context string) error {
	if err == nil {
		return nil
	}

	switch {
	case isTimeoutError(err):
		pterm.Error.Printf("Connection timeout while %s\n", context)
		pterm.Println("The server took too long to respond. Please try again in a few moments.")
	case isDNSError(err):
		pterm.Error.Printf("Cannot resolve server address while %s\n", context)
		pterm.Println("Please check your internet connection and DNS settings.")
	case isConnectionRefusedError(err):
		pterm.Error.Printf("Connection refused while %s\n", context)
		pterm.Println("The server is not accepting connections. Please try again later.")
	case isTLSError(err):
		pterm.Error.Printf("Secure connection failed while %s\n", context)
		pterm.Println("Check your system clock and any network proxy interfering with HTTPS.")
	default:
		pterm.Error.Printf("Cannot reach the Learndash backend while %s\n", context)
		pterm.Debug.Printf("Technical details: %s\n", logging.Mask(err.Error()))
	}

	return fmt.Errorf("network error: %w", err)
}

// isTimeoutError checks for deadline or client timeout failures.
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded")
}

// isDNSError checks for name resolution failures.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks for refused TCP connections.
func isConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isTLSError checks for TLS handshake and certificate failures. These are
// surfaced as diagnostics; the transport itself decides whether to fail.
func isTLSError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "tls") ||
		strings.Contains(msg, "certificate") ||
		strings.Contains(msg, "handshake")
}
