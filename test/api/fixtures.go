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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"
)

// NewAuthenticatedClient resolves a bearer token once and returns the client
// every scenario step shares. The caller owns the client and must Close it.
func NewAuthenticatedClient(ctx context.Context, config *TestConfig, opts ...ClientOption) (*APIClient, error) {
	token, err := ResolveToken(ctx, config, config.Credentials(), opts...)
	if err != nil {
		return nil, err
	}

	return NewAPIClientWithConfig(config, append(slices.Clone(opts), WithAuthToken(token))...), nil
}

// CreateFoodWithCleanup creates a food review and schedules its deletion.
func CreateFoodWithCleanup(client *APIClient, ctx context.Context, payload FoodCreateRequest) (*APIResponse, string) {
	resp, err := client.CreateFood(ctx, payload)
	Expect(err).NotTo(HaveOccurred())
	VerifyStatus(resp, http.StatusCreated)

	envelope, err := DecodeEnvelope(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	Expect(envelope.FoodID).NotTo(BeEmpty(), "create response should carry a foodId")

	foodID := envelope.FoodID

	GinkgoWriter.Printf("Created food with ID: %s\n", foodID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Cleaning up food: %s\n", foodID)

		resp, deleteErr := client.DeleteFood(ctx, foodID)

		switch {
		case deleteErr != nil:
			GinkgoWriter.Printf("Warning: Failed to delete food %s: %v\n", foodID, deleteErr)
		case resp.StatusCode != http.StatusOK:
			GinkgoWriter.Printf("Warning: Failed to delete food %s: status %d\n", foodID, resp.StatusCode)
		default:
			GinkgoWriter.Printf("Successfully deleted food: %s\n", foodID)
		}
	})

	return envelope, foodID
}

// VerifyStatus verifies the response status code, showing the body on failure.
func VerifyStatus(resp *Response, expected int) {
	ExpectWithOffset(1, resp).NotTo(BeNil())
	ExpectWithOffset(1, resp.StatusCode).To(Equal(expected), "unexpected status, body: %s (trace ID: %s)", resp.BodyString(), resp.TraceID)
}

// VerifyBodyContains verifies the raw response body contains substr.
func VerifyBodyContains(resp *Response, substr string) {
	ExpectWithOffset(1, resp.BodyString()).To(ContainSubstring(substr), "trace ID: %s", resp.TraceID)
}

// VerifyMessage verifies the envelope message of a response.
func VerifyMessage(resp *Response, expected string) {
	envelope, err := DecodeEnvelope(resp.Body)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	ExpectWithOffset(1, envelope.Msg).To(Equal(expected))
}

// ListSnapshot is one decoded listing of all food reviews.
type ListSnapshot struct {
	Items []map[string]any
	IDs   set.Set[string]
}

// TakeListSnapshot lists all food reviews and verifies the listing succeeded.
func TakeListSnapshot(client *APIClient, ctx context.Context) *ListSnapshot {
	resp, err := client.ListFoods(ctx)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	VerifyStatus(resp, http.StatusOK)

	var items []map[string]any
	ExpectWithOffset(1, json.Unmarshal(resp.Body, &items)).To(Succeed(), "list body should be a JSON array")

	envelopes, err := DecodeEnvelopeList(resp.Body)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	return &ListSnapshot{
		Items: items,
		IDs:   set.New[string](extractFoodIDs(envelopes)...),
	}
}

// VerifyFoodIDsStable verifies two listings taken without mutations in between
// are non-empty and identical.
func VerifyFoodIDsStable(first, second *ListSnapshot) {
	ExpectWithOffset(1, first.Items).NotTo(BeEmpty())
	ExpectWithOffset(1, second.Items).To(Equal(first.Items))

	added := slices.Collect(second.IDs.Difference(first.IDs).All())
	removed := slices.Collect(first.IDs.Difference(second.IDs).All())

	ExpectWithOffset(1, added).To(BeEmpty(), "food IDs appeared between listings")
	ExpectWithOffset(1, removed).To(BeEmpty(), "food IDs disappeared between listings")
}

// extractFoodIDs extracts the non-empty food IDs from a listing.
func extractFoodIDs(envelopes []APIResponse) []string {
	ids := make([]string, 0, len(envelopes))

	for _, envelope := range envelopes {
		if envelope.FoodID != "" {
			ids = append(ids, envelope.FoodID)
		}
	}

	return ids
}
