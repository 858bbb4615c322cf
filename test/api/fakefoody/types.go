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

package fakefoody

import (
	"net/http"
	"sync"
)

// Messages returned by the backend. The scenario asserts on these verbatim.
const (
	MessageCreated       = "Successfully created!"
	MessageEdited        = "Successfully edited"
	MessageDeleted       = "Deleted successfully!"
	MessageEditNotFound  = "No food revues..."
	MessageDeleteFailure = "Unable to delete this food revue!"
)

// Food is a stored food review.
type Food struct {
	ID          string `json:"foodId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// RecordedRequest is one request as the backend saw it.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	Body          []byte
}

// envelope mirrors the {msg, foodId} response shape.
type envelope struct {
	Msg    string `json:"msg"`
	FoodID string `json:"foodId,omitempty"`
}

type createRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

type patchOperation struct {
	Path  string `json:"path"`
	Op    string `json:"op"`
	Value string `json:"value"`
}

// injectedFailure forces the next matching request to fail.
type injectedFailure struct {
	method string
	path   string
	status int
}

// state holds everything the backend knows, guarded by mu.
type state struct {
	mu       sync.RWMutex
	foods    map[string]*Food
	order    []string
	requests []RecordedRequest
	failures []injectedFailure
}

func newState() *state {
	return &state{
		foods: make(map[string]*Food),
	}
}

// takeFailure pops the first failure matching the request, if any.
func (s *state) takeFailure(r *http.Request) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.failures {
		if f.method == r.Method && f.path == r.URL.Path {
			s.failures = append(s.failures[:i], s.failures[i+1:]...)
			return f.status, true
		}
	}

	return 0, false
}
