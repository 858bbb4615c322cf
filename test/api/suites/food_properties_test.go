//go:build integration

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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/foody/test/api"
	"github.com/unikorn-cloud/foody/test/api/scenario"
)

var _ = Describe("Food Review Properties", Ordered, func() {
	var client *api.APIClient

	BeforeAll(func(ctx SpecContext) {
		var err error

		client, err = api.NewAuthenticatedClient(ctx, config, clientOptions(ctx)...)
		Expect(err).NotTo(HaveOccurred())

		DeferCleanup(client.Close)
	})

	Context("When listing food reviews", func() {
		It("should return the same non-empty listing twice", func(ctx SpecContext) {
			api.CreateFoodWithCleanup(client, ctx, api.NewFoodPayload().WithUniqueName("stable").Build())

			first := api.TakeListSnapshot(client, ctx)
			second := api.TakeListSnapshot(client, ctx)

			api.VerifyFoodIDsStable(first, second)
		})
	})

	Context("When creating a food review", func() {
		It("should round trip the created ID through edit and delete", func(ctx SpecContext) {
			_, foodID := api.CreateFoodWithCleanup(client, ctx, api.NewFoodPayload().WithUniqueName("roundtrip").Build())

			resp, err := client.EditFood(ctx, foodID, api.RenamePatch(api.EditedFoodName))
			Expect(err).NotTo(HaveOccurred())
			api.VerifyStatus(resp, http.StatusOK)
			api.VerifyMessage(resp, scenario.MessageEdited)

			resp, err = client.DeleteFood(ctx, foodID)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyStatus(resp, http.StatusOK)
			api.VerifyBodyContains(resp, scenario.MessageDeleted)

			// A second delete of the same ID is rejected.
			resp, err = client.DeleteFood(ctx, foodID)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyStatus(resp, http.StatusBadRequest)
		})

		It("should reject a review without a name", func(ctx SpecContext) {
			resp, err := client.CreateFood(ctx, api.NewFoodPayload().WithoutName().Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).NotTo(Equal(http.StatusCreated))
			api.VerifyStatus(resp, http.StatusBadRequest)
		})
	})

	Context("When addressing a food review that does not exist", func() {
		It("should not find it for editing", func(ctx SpecContext) {
			resp, err := client.EditFood(ctx, config.FakeFoodID, api.RenamePatch(api.EditedFoodName))
			Expect(err).NotTo(HaveOccurred())
			api.VerifyStatus(resp, http.StatusNotFound)
			api.VerifyBodyContains(resp, scenario.MessageEditNotFound)
		})

		It("should refuse to delete it", func(ctx SpecContext) {
			resp, err := client.DeleteFood(ctx, config.FakeFoodID)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyStatus(resp, http.StatusBadRequest)
			api.VerifyBodyContains(resp, scenario.MessageDeleteFailure)
		})
	})

	Context("When calling without a token", func() {
		It("should be unauthorized", func(ctx SpecContext) {
			anonymous := api.NewAPIClientWithConfig(config)
			DeferCleanup(anonymous.Close)

			resp, err := anonymous.ListFoods(ctx)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyStatus(resp, http.StatusUnauthorized)
		})
	})
})
