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
	"net/http"
	"time"
)

// Credentials identify the account the suite authenticates as.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthenticationResponse is the body returned by the authentication endpoint.
// Only the token is interpreted.
type AuthenticationResponse struct {
	AccessToken *string `json:"accessToken"`
}

// FoodCreateRequest is the body of a create call.
// A nil Name drops the field from the JSON entirely, which the API must reject.
type FoodCreateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
}

// PatchOp names a JSON patch operation.
type PatchOp string

const (
	PatchOpAdd     PatchOp = "add"
	PatchOpRemove  PatchOp = "remove"
	PatchOpReplace PatchOp = "replace"
)

// PatchOperation is one entry of a JSON patch document.
type PatchOperation struct {
	Path  string  `json:"path"`
	Op    PatchOp `json:"op"`
	Value string  `json:"value"`
}

// PatchDocument is an ordered list of patch operations, applied in order.
type PatchDocument []PatchOperation

// APIResponse is the generic envelope returned by create, edit and list.
// Both fields are optional; foodId is only populated on creation.
type APIResponse struct {
	Msg    string `json:"msg,omitempty"`
	FoodID string `json:"foodId,omitempty"`
}

// Response is the raw outcome of a single API call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string
	Duration   time.Duration
}

// BodyString returns the response body as text.
func (r *Response) BodyString() string {
	if r == nil {
		return ""
	}

	return string(r.Body)
}
