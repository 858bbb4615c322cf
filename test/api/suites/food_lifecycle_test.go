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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/foody/test/api"
	"github.com/unikorn-cloud/foody/test/api/scenario"
)

var _ = Describe("Food Review Lifecycle", Ordered, func() {
	var client *api.APIClient

	BeforeAll(func(ctx SpecContext) {
		var err error

		client, err = api.NewAuthenticatedClient(ctx, config, clientOptions(ctx)...)
		Expect(err).NotTo(HaveOccurred(), "authentication failed, no step can run")

		DeferCleanup(client.Close)
	})

	Context("When running the scenario against the live API", func() {
		It("should pass every step in order", func(ctx SpecContext) {
			state := scenario.NewState()

			runner := scenario.NewRunner(client, scenario.FoodLifecycle(config.FakeFoodID),
				scenario.WithFailFast(config.FailFast),
				scenario.WithObserver(byObserver{}),
				scenario.WithRunnerLogger(GinkgoLogr),
			)

			result := runner.Run(ctx, state)

			for _, step := range result.Steps {
				AddReportEntry(step.Name, string(step.Result))
			}

			Expect(result.Err()).NotTo(HaveOccurred())
			Expect(result.Passed()).To(BeTrue())
			Expect(result.Steps).To(HaveLen(7))

			foodID, err := state.FoodID()
			Expect(err).NotTo(HaveOccurred())
			GinkgoWriter.Printf("Scenario created and deleted food: %s\n", foodID)
		})
	})
})
