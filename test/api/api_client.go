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

//nolint:err113,revive // dynamic errors and naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2"
)

// Operation names used for logging and metrics labels.
const (
	OperationAuthenticate = "authenticate"
	OperationCreateFood   = "create"
	OperationEditFood     = "edit"
	OperationListFoods    = "list"
	OperationDeleteFood   = "delete"
)

type APIClient struct {
	baseURL   string
	client    *http.Client
	authToken string
	config    *TestConfig
	endpoints *Endpoints
	log       logr.Logger
	metrics   *Metrics
	validator *ContractValidator
}

// ClientOption customises an APIClient.
type ClientOption func(*APIClient)

// WithLogger replaces the default ginkgo logger.
func WithLogger(log logr.Logger) ClientOption {
	return func(c *APIClient) {
		c.log = log
	}
}

// WithMetrics records every request in the given collectors.
func WithMetrics(metrics *Metrics) ClientOption {
	return func(c *APIClient) {
		c.metrics = metrics
	}
}

// WithContractValidator checks every response against the API description.
func WithContractValidator(validator *ContractValidator) ClientOption {
	return func(c *APIClient) {
		c.validator = validator
	}
}

// WithHTTPClient sets a custom HTTP client, e.g. one bound to an httptest server.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *APIClient) {
		c.client = client
	}
}

// WithAuthToken attaches a bearer token to every request.
func WithAuthToken(token string) ClientOption {
	return func(c *APIClient) {
		c.authToken = token
	}
}

// NewAPIClient loads configuration from the environment and creates an
// unauthenticated client. An empty baseURL uses the configured one.
func NewAPIClient(baseURL string, opts ...ClientOption) (*APIClient, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, err
	}

	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL, opts...), nil
}

func NewAPIClientWithConfig(config *TestConfig, opts ...ClientOption) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL, opts...)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string, opts ...ClientOption) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
		log:       ginkgo.GinkgoLogr,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *APIClient) SetAuthToken(token string) {
	c.authToken = token
}

// Authenticated reports whether a bearer token will be sent.
func (c *APIClient) Authenticated() bool {
	return c.authToken != ""
}

// Close releases any idle keep-alive connections held by the client.
func (c *APIClient) Close() {
	c.client.CloseIdleConnections()
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.log.Error(err, context, "method", method, "path", path, "duration", duration, "traceID", extractTraceID(traceParent))
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	c.log.Error(err, context, "method", method, "path", path, "duration", duration, "status", statusCode, "traceID", extractTraceID(traceParent))
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	c.log.Info("unexpected status", "method", method, "path", path, "expected", expectedStatus, "status", actualStatus, "body", body, "traceID", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// A fresh trace per request lets a failing call be found in the backend logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest performs a single call. A positive expectedStatus turns any other
// status into an error; the response is returned either way once received.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, operation, method, path string, body io.Reader, expectedStatus int) (*Response, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=foody")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.metrics.observe(operation, method, 0, duration)
		c.logError(method, path, duration, traceParent, err, "http request failed")

		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	c.metrics.observe(operation, method, resp.StatusCode, duration)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    extractTraceID(traceParent),
		Duration:   duration,
	}

	if c.config.LogRequests || c.config.DebugLogging {
		c.log.Info("request completed", "operation", operation, "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceID", result.TraceID)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		c.log.Info("response body", "method", method, "path", path, "body", string(respBody))
	}

	if c.validator != nil {
		if err := c.validator.Validate(ctx, req, result); err != nil {
			c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "contract validation failed")

			return result, &MalformedResponseError{
				Body: string(respBody),
				Err:  fmt.Errorf("%w: %w", ErrContractViolation, err),
			}
		}
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)
		return result, fmt.Errorf("unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", expectedStatus, resp.StatusCode, string(respBody), result.TraceID)
	}

	return result, nil
}

// doJSONRequest marshals body and performs the call.
func (c *APIClient) doJSONRequest(ctx context.Context, operation, method, path string, body any, expectedStatus int) (*Response, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return c.doRequest(ctx, operation, method, path, bytes.NewReader(bodyBytes), expectedStatus)
}

// Authenticate exchanges credentials for a token response. Any status other
// than 200 is an error.
func (c *APIClient) Authenticate(ctx context.Context, credentials Credentials) (*Response, error) {
	resp, err := c.doJSONRequest(ctx, OperationAuthenticate, http.MethodPost, c.endpoints.Authenticate(), credentials, http.StatusOK)
	if err != nil {
		return resp, fmt.Errorf("authenticating: %w", err)
	}

	return resp, nil
}

// CreateFood creates a new food review.
func (c *APIClient) CreateFood(ctx context.Context, request FoodCreateRequest) (*Response, error) {
	resp, err := c.doJSONRequest(ctx, OperationCreateFood, http.MethodPost, c.endpoints.CreateFood(), request, 0)
	if err != nil {
		return resp, fmt.Errorf("creating food: %w", err)
	}

	return resp, nil
}

// EditFood applies a patch document to an existing food review.
func (c *APIClient) EditFood(ctx context.Context, foodID string, patch PatchDocument) (*Response, error) {
	resp, err := c.doJSONRequest(ctx, OperationEditFood, http.MethodPatch, c.endpoints.EditFood(foodID), patch, 0)
	if err != nil {
		return resp, fmt.Errorf("editing food '%s': %w", foodID, err)
	}

	return resp, nil
}

// ListFoods lists all food reviews.
func (c *APIClient) ListFoods(ctx context.Context) (*Response, error) {
	resp, err := c.doRequest(ctx, OperationListFoods, http.MethodGet, c.endpoints.ListFoods(), nil, 0)
	if err != nil {
		return resp, fmt.Errorf("listing foods: %w", err)
	}

	return resp, nil
}

// DeleteFood deletes a food review.
func (c *APIClient) DeleteFood(ctx context.Context, foodID string) (*Response, error) {
	resp, err := c.doRequest(ctx, OperationDeleteFood, http.MethodDelete, c.endpoints.DeleteFood(foodID), nil, 0)
	if err != nil {
		return resp, fmt.Errorf("deleting food '%s': %w", foodID, err)
	}

	return resp, nil
}
