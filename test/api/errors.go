/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrMissingAccessToken is raised when authentication succeeds at the HTTP
	// level but the body carries no usable token.
	ErrMissingAccessToken = errors.New("response has no accessToken")

	// ErrContractViolation is raised when a response does not match the
	// published API description.
	ErrContractViolation = errors.New("response violates the API description")
)

// AuthenticationError is returned when the suite cannot obtain a token.
// It is fatal to the whole run.
type AuthenticationError struct {
	Username   string
	StatusCode int
	Err        error
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("authenticating as %q (status: %d): %v", e.Username, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("authenticating as %q: %v", e.Username, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// MalformedResponseError is returned when a body cannot be decoded into the
// expected shape.
type MalformedResponseError struct {
	Body string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v, body: %s", e.Err, truncate(e.Body, 256))
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// AssertionFailure describes an expectation the API did not meet.
type AssertionFailure struct {
	Check    string
	Expected any
	Actual   any
	Body     string
	TraceID  string
}

func (e *AssertionFailure) Error() string {
	msg := fmt.Sprintf("%s: expected %v, got %v", e.Check, e.Expected, e.Actual)

	if e.Body != "" {
		msg += ", body: " + truncate(e.Body, 256)
	}

	if e.TraceID != "" {
		msg += " (trace ID: " + e.TraceID + ")"
	}

	return msg
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n] + "..."
}
