// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"encoding/json"
	"fmt"

	"learndash/admincli/internal/apierrors"
)

// envelope is the backend's uniform JSON wrapper. Some endpoints report the
// error code under "code", others under "error"; both are tolerated. An
// absent success field is treated as falsy, never as an exception.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
	ErrCode string          `json:"error"`
	Message string          `json:"message"`
}

// code returns the error code, preferring "code" over "error".
func (e *envelope) code() string {
	if e.Code != "" {
		return e.Code
	}
	return e.ErrCode
}

// bare reports whether none of the envelope fields were present: the body
// parsed as JSON but carries nothing we recognize.
func (e *envelope) bare() bool {
	return e.Success == nil && len(e.Data) == 0 && e.Code == "" && e.ErrCode == "" && e.Message == ""
}

// interpret normalizes a raw response body and status into either the
// envelope's data payload or a categorized error.
//
// Non-2xx responses may still carry a structured error body (the
// forgot-password endpoint does); those become business failures. A body
// that fails to parse is "malformed response body", while one that parses
// but contains no envelope fields is "empty response"; broken payloads and
// graceful non-JSON error bodies stay distinguishable.
func interpret(raw []byte, status int) (json.RawMessage, *apierrors.E) {
	var env envelope
	parseErr := json.Unmarshal(raw, &env)

	if status < 200 || status >= 300 {
		if parseErr == nil && (env.code() != "" || env.Message != "") {
			return nil, apierrors.NewFailure(env.code(), env.Message)
		}
		return nil, apierrors.NewTransport(fmt.Sprintf("server returned status %d", status), nil)
	}

	if parseErr != nil {
		return nil, apierrors.NewTransport("malformed response body", parseErr)
	}
	if env.bare() {
		return nil, apierrors.NewTransport("empty response", nil)
	}

	if env.Success != nil && *env.Success {
		if len(env.Data) > 0 {
			return env.Data, nil
		}
		// Some endpoints put the payload at the top level alongside success.
		return json.RawMessage(raw), nil
	}

	return nil, apierrors.NewFailure(env.code(), env.Message)
}
