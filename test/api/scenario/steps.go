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

package scenario

import (
	"context"
	"net/http"

	"github.com/unikorn-cloud/foody/test/api"
)

// Step names, in execution order.
const (
	StepCreateRequiredFields = "create-required-fields"
	StepEditTitle            = "edit-title"
	StepListAll              = "list-all"
	StepDeleteCreated        = "delete-created"
	StepCreateMissingName    = "create-missing-name"
	StepEditNonexistent      = "edit-nonexistent"
	StepDeleteNonexistent    = "delete-nonexistent"
)

// Messages the API is expected to return.
const (
	MessageEdited        = "Successfully edited"
	MessageDeleted       = "Deleted successfully!"
	MessageEditNotFound  = "No food revues..."
	MessageDeleteFailure = "Unable to delete this food revue!"
)

// FoodLifecycle returns the food review scenario: the happy path create,
// edit, list and delete of one review, followed by the negative paths.
// fakeID must be an identifier the backend never issues.
func FoodLifecycle(fakeID string) []Step {
	return []Step{
		{
			Name:        StepCreateRequiredFields,
			Description: "create a food review with the required fields",
			Run:         createRequiredFields,
		},
		{
			Name:        StepEditTitle,
			Description: "rename the created food review",
			DependsOn:   []string{StepCreateRequiredFields},
			Run:         editTitle,
		},
		{
			Name:        StepListAll,
			Description: "list all food reviews",
			Run:         listAll,
		},
		{
			Name:        StepDeleteCreated,
			Description: "delete the created food review",
			DependsOn:   []string{StepCreateRequiredFields},
			Run:         deleteCreated,
		},
		{
			Name:        StepCreateMissingName,
			Description: "create a food review without a name",
			Run:         createMissingName,
		},
		{
			Name:        StepEditNonexistent,
			Description: "edit a food review that does not exist",
			Run: func(ctx context.Context, client FoodAPI, _ *State) error {
				return editNonexistent(ctx, client, fakeID)
			},
		},
		{
			Name:        StepDeleteNonexistent,
			Description: "delete a food review that does not exist",
			Run: func(ctx context.Context, client FoodAPI, _ *State) error {
				return deleteNonexistent(ctx, client, fakeID)
			},
		},
	}
}

func createRequiredFields(ctx context.Context, client FoodAPI, state *State) error {
	resp, err := client.CreateFood(ctx, api.NewFoodPayload().Build())
	if err != nil {
		return err
	}

	if err := api.ExpectStatus(resp, http.StatusCreated); err != nil {
		return err
	}

	envelope, err := api.DecodeEnvelope(resp.Body)
	if err != nil {
		return err
	}

	if err := api.ExpectNotEmpty(resp, "foodId", envelope.FoodID); err != nil {
		return err
	}

	state.SetFoodID(envelope.FoodID)

	return nil
}

func editTitle(ctx context.Context, client FoodAPI, state *State) error {
	foodID, err := state.FoodID()
	if err != nil {
		return err
	}

	resp, err := client.EditFood(ctx, foodID, api.RenamePatch(api.EditedFoodName))
	if err != nil {
		return err
	}

	if err := api.ExpectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	envelope, err := api.DecodeEnvelope(resp.Body)
	if err != nil {
		return err
	}

	return api.ExpectEqual(resp, "msg", MessageEdited, envelope.Msg)
}

func listAll(ctx context.Context, client FoodAPI, _ *State) error {
	resp, err := client.ListFoods(ctx)
	if err != nil {
		return err
	}

	if err := api.ExpectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	foods, err := api.DecodeEnvelopeList(resp.Body)
	if err != nil {
		return err
	}

	if len(foods) == 0 {
		return &api.AssertionFailure{
			Check:    "food list",
			Expected: "at least one food review",
			Actual:   "empty list",
			Body:     resp.BodyString(),
			TraceID:  resp.TraceID,
		}
	}

	return nil
}

func deleteCreated(ctx context.Context, client FoodAPI, state *State) error {
	foodID, err := state.FoodID()
	if err != nil {
		return err
	}

	resp, err := client.DeleteFood(ctx, foodID)
	if err != nil {
		return err
	}

	if err := api.ExpectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	return api.ExpectBodyContains(resp, MessageDeleted)
}

func createMissingName(ctx context.Context, client FoodAPI, _ *State) error {
	resp, err := client.CreateFood(ctx, api.NewFoodPayload().WithoutName().Build())
	if err != nil {
		return err
	}

	return api.ExpectStatus(resp, http.StatusBadRequest)
}

func editNonexistent(ctx context.Context, client FoodAPI, fakeID string) error {
	resp, err := client.EditFood(ctx, fakeID, api.RenamePatch(api.EditedFoodName))
	if err != nil {
		return err
	}

	if err := api.ExpectStatus(resp, http.StatusNotFound); err != nil {
		return err
	}

	return api.ExpectBodyContains(resp, MessageEditNotFound)
}

func deleteNonexistent(ctx context.Context, client FoodAPI, fakeID string) error {
	resp, err := client.DeleteFood(ctx, fakeID)
	if err != nil {
		return err
	}

	if err := api.ExpectStatus(resp, http.StatusBadRequest); err != nil {
		return err
	}

	return api.ExpectBodyContains(resp, MessageDeleteFailure)
}
