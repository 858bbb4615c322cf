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
	"encoding/json"
)

// DecodeEnvelope decodes a single response envelope. Missing fields are left
// empty; only invalid JSON or a non-object body is an error.
func DecodeEnvelope(body []byte) (*APIResponse, error) {
	var envelope APIResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &MalformedResponseError{Body: string(body), Err: err}
	}

	return &envelope, nil
}

// DecodeEnvelopeList decodes a JSON array of response envelopes.
func DecodeEnvelopeList(body []byte) ([]APIResponse, error) {
	var envelopes []APIResponse
	if err := json.Unmarshal(body, &envelopes); err != nil {
		return nil, &MalformedResponseError{Body: string(body), Err: err}
	}

	return envelopes, nil
}
