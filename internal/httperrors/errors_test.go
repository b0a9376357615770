// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"errors"
	"strings"
	"testing"

	"learndash/admincli/internal/apierrors"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		message string
		want    string
	}{
		{
			name: "known code wins over raw message",
			code: "INVALID_CREDENTIALS", message: "raw backend text",
			want: "Invalid email or password. Please try again.",
		},
		{
			name: "unknown code falls back to message",
			code: "SOMETHING_NEW", message: "A new kind of problem",
			want: "A new kind of problem",
		},
		{
			name: "unknown code without message",
			code: "SOMETHING_NEW", message: "",
			want: genericMessage,
		},
		{
			name: "no code no message",
			code: "", message: "",
			want: genericMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.code, tt.message); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKnownCodesCovered(t *testing.T) {
	codes := []string{
		"INVALID_CREDENTIALS", "INVALID_OTP", "OTP_EXPIRED", "OTP_MAX_ATTEMPTS",
		"ACCOUNT_SUSPENDED", "ACCOUNT_PENDING", "ACCOUNT_INACTIVE",
		"EMAIL_EXISTS", "USER_NOT_FOUND", "EMAIL_NOT_FOUND",
		"INVALID_TOKEN", "INVALID_PASSWORD", "WEAK_PASSWORD",
		"RATE_LIMITED", "NETWORK_ERROR", "SERVER_ERROR",
	}
	for _, code := range codes {
		if UserMessage(code, "") == genericMessage {
			t.Errorf("code %s has no dedicated message", code)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "validation passes through",
			err:  apierrors.NewValidation("please enter your email address"),
			want: "please enter your email address",
		},
		{
			name: "api failure resolves code",
			err:  apierrors.NewFailure("OTP_EXPIRED", "expired"),
			want: "Verification code has expired. Please request a new one.",
		},
		{
			name: "transport message is masked",
			err:  apierrors.NewTransport("request timed out", nil),
			want: "request timed out",
		},
		{
			name: "plain error is masked",
			err:  errors.New("dial failed with token=abc123"),
			want: "dial failed with token=***",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.err); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeNeverLeaksSecrets(t *testing.T) {
	err := apierrors.NewTransport(`read response body: {"accessToken":"eyJabc.def"}`, nil)
	got := Describe(err)
	if strings.Contains(got, "eyJabc") {
		t.Errorf("Describe() leaked a token: %q", got)
	}
}
