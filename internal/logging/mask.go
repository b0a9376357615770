// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error
// presentation. Credentials, bearer tokens and passwords must never leak
// into terminal output or logs, even when embedded in error chains from
// lower layers.
package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)("?(?:password|newPassword|currentPassword)"?\s*[:=]\s*"?)([^\s",;]+)`)
	reBearer   = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
	reToken    = regexp.MustCompile(`(?i)("?(?:accessToken|refreshToken|sessionToken|token)"?\s*[:=]\s*"?)([A-Za-z0-9._-]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	return out
}
