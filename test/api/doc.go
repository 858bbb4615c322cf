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

// Package api provides integration test utilities for the Foody API.
//
// # Separate Client Implementation
//
// The Foody service publishes no client library, so this package carries a
// small hand-written HTTP client (APIClient) that speaks the five endpoints
// the scenario exercises. Keeping it independent of any generated code means
// every change to the remote contract has to show up here, where it is
// reviewed alongside the assertions that depend on it.
//
// The client is tailored for integration testing:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - A single bearer token resolved once per run
//   - Direct access to HTTP status codes and response bodies
//   - Optional validation of responses against openapi/foody.yaml
//
// # Layout
//
// Configuration, endpoints, the credential resolver, the client, decoders and
// assertion helpers live here. The ordered scenario lives in the scenario
// sub-package, the live ginkgo suites in suites, and an in-process fake of the
// remote API used by the harness' own unit tests in fakefoody.
package api
