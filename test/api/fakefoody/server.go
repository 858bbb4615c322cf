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

// Package fakefoody provides an in-process Foody backend for testing the
// scenario harness itself. It is never used by the live suites.
package fakefoody

import (
	"net/http/httptest"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

const (
	DefaultUsername = "emi12"
	DefaultPassword = "12348765"
)

// Server is a fake Foody API server.
type Server struct {
	*httptest.Server

	state    *state
	username string
	password string
	token    string
	log      logr.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithCredentials sets the only account the server accepts.
func WithCredentials(username, password string) Option {
	return func(s *Server) {
		s.username = username
		s.password = password
	}
}

// WithToken sets the bearer token issued on login.
func WithToken(token string) Option {
	return func(s *Server) {
		s.token = token
	}
}

// WithLogger logs every request and response.
func WithLogger(log logr.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// New starts a fake Foody API server. Close it when done.
func New(opts ...Option) *Server {
	s := &Server{
		state:    newState(),
		username: DefaultUsername,
		password: DefaultPassword,
		token:    uuid.NewString(),
		log:      logr.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.recordMiddleware)
	r.Use(loggingMiddleware(s.log))
	r.Use(s.failureMiddleware)

	r.Post("/api/User/Authentication", s.handleAuthenticate)

	r.Group(func(r chi.Router) {
		r.Use(s.bearerAuthMiddleware)

		r.Post("/api/Food/Create", s.handleCreate)
		r.Patch("/api/Food/Edit/{id}", s.handleEdit)
		r.Get("/api/Food/All", s.handleList)
		r.Delete("/api/Food/Delete/{id}", s.handleDelete)
	})

	s.Server = httptest.NewServer(r)

	return s
}

// URL returns the base URL of the server.
func (s *Server) URL() string {
	return s.Server.URL
}

// Token returns the token the server issues and accepts.
func (s *Server) Token() string {
	return s.token
}

// Seed stores a food review directly and returns its ID.
func (s *Server) Seed(name, description string) string {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return s.state.insert(name, description, "")
}

// Foods returns the stored food reviews in creation order.
func (s *Server) Foods() []Food {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	foods := make([]Food, 0, len(s.state.order))
	for _, id := range s.state.order {
		foods = append(foods, *s.state.foods[id])
	}

	return foods
}

// Requests returns every request received so far, in arrival order.
func (s *Server) Requests() []RecordedRequest {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	return slices.Clone(s.state.requests)
}

// FailNext makes the next request for method and path answer with status.
func (s *Server) FailNext(method, path string, status int) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.failures = append(s.state.failures, injectedFailure{
		method: method,
		path:   path,
		status: status,
	})
}

// insert adds a food review. The caller must hold the write lock.
func (st *state) insert(name, description, url string) string {
	id := uuid.NewString()

	st.foods[id] = &Food{
		ID:          id,
		Name:        name,
		Description: description,
		URL:         url,
	}
	st.order = append(st.order, id)

	return id
}

// remove deletes a food review. The caller must hold the write lock.
func (st *state) remove(id string) bool {
	if _, ok := st.foods[id]; !ok {
		return false
	}

	delete(st.foods, id)
	st.order = slices.DeleteFunc(st.order, func(s string) bool { return s == id })

	return true
}
