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
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

// ExpectStatus fails unless the response has the wanted status code.
func ExpectStatus(resp *Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}

	return &AssertionFailure{
		Check:    "status code",
		Expected: statusText(want),
		Actual:   statusText(resp.StatusCode),
		Body:     resp.BodyString(),
		TraceID:  resp.TraceID,
	}
}

// ExpectBodyContains fails unless the raw body contains substr.
func ExpectBodyContains(resp *Response, substr string) error {
	if strings.Contains(resp.BodyString(), substr) {
		return nil
	}

	return &AssertionFailure{
		Check:    "body",
		Expected: fmt.Sprintf("substring %q", substr),
		Actual:   "no match",
		Body:     resp.BodyString(),
		TraceID:  resp.TraceID,
	}
}

// ExpectEqual fails unless got deep-equals want.
func ExpectEqual(resp *Response, check string, want, got any) error {
	if reflect.DeepEqual(want, got) {
		return nil
	}

	return &AssertionFailure{
		Check:    check,
		Expected: want,
		Actual:   got,
		Body:     resp.BodyString(),
		TraceID:  resp.TraceID,
	}
}

// ExpectNotEmpty fails when value is the empty string.
func ExpectNotEmpty(resp *Response, check, value string) error {
	if value != "" {
		return nil
	}

	return &AssertionFailure{
		Check:    check,
		Expected: "non-empty value",
		Actual:   `""`,
		Body:     resp.BodyString(),
		TraceID:  resp.TraceID,
	}
}

func statusText(code int) string {
	return strings.TrimSpace(fmt.Sprintf("%d %s", code, http.StatusText(code)))
}
