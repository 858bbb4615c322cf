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
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// validationProblem is the body returned when model binding fails.
type validationProblem struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// handleAuthenticate handles POST /api/User/Authentication.
func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Msg: "Invalid request body"})
		return
	}

	if credentials.Username != s.username || credentials.Password != s.password {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"username":    credentials.Username,
		"accessToken": s.token,
	})
}

// handleCreate handles POST /api/Food/Create.
// Name and description are required; url may be empty.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationProblem(w, "$", "The request body is not valid JSON.")
		return
	}

	if req.Name == nil || *req.Name == "" {
		writeValidationProblem(w, "Name", "The Name field is required.")
		return
	}

	if req.Description == nil || *req.Description == "" {
		writeValidationProblem(w, "Description", "The Description field is required.")
		return
	}

	var url string
	if req.URL != nil {
		url = *req.URL
	}

	s.state.mu.Lock()
	id := s.state.insert(*req.Name, *req.Description, url)
	s.state.mu.Unlock()

	writeJSON(w, http.StatusCreated, envelope{Msg: MessageCreated, FoodID: id})
}

// handleEdit handles PATCH /api/Food/Edit/{id}.
// Operations are applied in order; only replace on known fields is supported.
func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var ops []patchOperation
	if err := json.NewDecoder(r.Body).Decode(&ops); err != nil {
		writeValidationProblem(w, "$", "The patch document is not valid JSON.")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	food, ok := s.state.foods[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, envelope{Msg: MessageEditNotFound})
		return
	}

	edited := *food

	for _, op := range ops {
		if op.Op != "replace" {
			writeValidationProblem(w, "op", "Only replace operations are supported.")
			return
		}

		switch op.Path {
		case "/name":
			edited.Name = op.Value
		case "/description":
			edited.Description = op.Value
		case "/url":
			edited.URL = op.Value
		default:
			writeValidationProblem(w, "path", "The target location specified by path '"+op.Path+"' was not found.")
			return
		}
	}

	*food = edited

	writeJSON(w, http.StatusOK, envelope{Msg: MessageEdited})
}

// handleList handles GET /api/Food/All.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	foods := make([]Food, 0, len(s.state.order))
	for _, id := range s.state.order {
		foods = append(foods, *s.state.foods[id])
	}

	writeJSON(w, http.StatusOK, foods)
}

// handleDelete handles DELETE /api/Food/Delete/{id}.
// An unknown id is a bad request, not a not-found.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.state.mu.Lock()
	removed := s.state.remove(id)
	s.state.mu.Unlock()

	if !removed {
		writeJSON(w, http.StatusBadRequest, envelope{Msg: MessageDeleteFailure})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Msg: MessageDeleted})
}

func writeValidationProblem(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusBadRequest, validationProblem{
		Title:  "One or more validation errors occurred.",
		Status: http.StatusBadRequest,
		Errors: map[string][]string{field: {message}},
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}
