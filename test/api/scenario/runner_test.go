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

package scenario_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/unikorn-cloud/foody/test/api"
	"github.com/unikorn-cloud/foody/test/api/scenario"
	"github.com/unikorn-cloud/foody/test/api/scenario/mock"
)

const (
	createdID = "5f0c7a52-9d4e-4a4a-8a57-0f7f5b1c2d3e"
	fakeID    = "123"
)

var errConnectionRefused = errors.New("connection refused")

func response(status int, body string) *api.Response {
	return &api.Response{
		StatusCode: status,
		Body:       []byte(body),
	}
}

func renamePatch() api.PatchDocument {
	return api.RenamePatch(api.EditedFoodName)
}

// expectHappyPath registers the calls a correct backend answers, in order.
func expectHappyPath(client *mock.MockFoodAPI) {
	gomock.InOrder(
		client.EXPECT().CreateFood(gomock.Any(), api.NewFoodPayload().Build()).Return(response(http.StatusCreated, `{"msg":"Successfully created!","foodId":"`+createdID+`"}`), nil),
		client.EXPECT().EditFood(gomock.Any(), createdID, renamePatch()).Return(response(http.StatusOK, `{"msg":"Successfully edited"}`), nil),
		client.EXPECT().ListFoods(gomock.Any()).Return(response(http.StatusOK, `[{"foodId":"`+createdID+`","name":"Update Food Name"}]`), nil),
		client.EXPECT().DeleteFood(gomock.Any(), createdID).Return(response(http.StatusOK, `{"msg":"Deleted successfully!"}`), nil),
		client.EXPECT().CreateFood(gomock.Any(), api.NewFoodPayload().WithoutName().Build()).Return(response(http.StatusBadRequest, `{"errors":{"Name":["The Name field is required."]}}`), nil),
		client.EXPECT().EditFood(gomock.Any(), fakeID, renamePatch()).Return(response(http.StatusNotFound, `{"msg":"No food revues..."}`), nil),
		client.EXPECT().DeleteFood(gomock.Any(), fakeID).Return(response(http.StatusBadRequest, `{"msg":"Unable to delete this food revue!"}`), nil),
	)
}

func results(result *scenario.SuiteResult) []scenario.Result {
	out := make([]scenario.Result, 0, len(result.Steps))

	for _, step := range result.Steps {
		out = append(out, step.Result)
	}

	return out
}

// TestRunAllStepsPass ensures a correct backend passes every step in order,
// and the created ID flows into the edit and delete calls.
func TestRunAllStepsPass(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)
	expectHappyPath(client)

	state := scenario.NewState()

	result := scenario.NewRunner(client, scenario.FoodLifecycle(fakeID), scenario.WithRunnerLogger(testr.New(t))).Run(t.Context(), state)

	require.True(t, result.Passed(), result.Err())
	require.NoError(t, result.Err())
	require.Len(t, result.Steps, 7)

	names := make([]string, 0, len(result.Steps))
	for _, step := range result.Steps {
		names = append(names, step.Name)
	}

	require.Equal(t, []string{
		scenario.StepCreateRequiredFields,
		scenario.StepEditTitle,
		scenario.StepListAll,
		scenario.StepDeleteCreated,
		scenario.StepCreateMissingName,
		scenario.StepEditNonexistent,
		scenario.StepDeleteNonexistent,
	}, names)

	foodID, err := state.FoodID()
	require.NoError(t, err)
	require.Equal(t, createdID, foodID)
}

// TestRunFailedCreateSkipsDependents ensures a failed create skips the steps
// that need its ID but still runs the independent ones.
func TestRunFailedCreateSkipsDependents(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)

	gomock.InOrder(
		client.EXPECT().CreateFood(gomock.Any(), api.NewFoodPayload().Build()).Return(response(http.StatusInternalServerError, `{"msg":"boom"}`), nil),
		client.EXPECT().ListFoods(gomock.Any()).Return(response(http.StatusOK, `[{"foodId":"x"}]`), nil),
		client.EXPECT().CreateFood(gomock.Any(), api.NewFoodPayload().WithoutName().Build()).Return(response(http.StatusBadRequest, `{}`), nil),
		client.EXPECT().EditFood(gomock.Any(), fakeID, renamePatch()).Return(response(http.StatusNotFound, `{"msg":"No food revues..."}`), nil),
		client.EXPECT().DeleteFood(gomock.Any(), fakeID).Return(response(http.StatusBadRequest, `{"msg":"Unable to delete this food revue!"}`), nil),
	)

	result := scenario.NewRunner(client, scenario.FoodLifecycle(fakeID)).Run(t.Context(), scenario.NewState())

	require.False(t, result.Passed())
	require.Equal(t, []scenario.Result{
		scenario.ResultFailed,
		scenario.ResultSkipped,
		scenario.ResultPassed,
		scenario.ResultSkipped,
		scenario.ResultPassed,
		scenario.ResultPassed,
		scenario.ResultPassed,
	}, results(result))

	create, ok := result.Step(scenario.StepCreateRequiredFields)
	require.True(t, ok)

	var failure *api.AssertionFailure
	require.ErrorAs(t, create.Err, &failure)
	require.Equal(t, "status code", failure.Check)
	require.Contains(t, failure.Body, "boom")

	edit, ok := result.Step(scenario.StepEditTitle)
	require.True(t, ok)
	require.NoError(t, edit.Err)
	require.Contains(t, edit.Reason, scenario.StepCreateRequiredFields)

	require.ErrorContains(t, result.Err(), "step "+scenario.StepCreateRequiredFields)
}

// TestRunFailFast ensures nothing runs after the first step that does not pass.
func TestRunFailFast(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)
	client.EXPECT().CreateFood(gomock.Any(), gomock.Any()).Return(nil, errConnectionRefused)

	result := scenario.NewRunner(client, scenario.FoodLifecycle(fakeID), scenario.WithFailFast(true)).Run(t.Context(), scenario.NewState())

	require.Equal(t, scenario.ResultError, result.Steps[0].Result)
	require.ErrorIs(t, result.Steps[0].Err, errConnectionRefused)

	for _, step := range result.Steps[1:] {
		require.Equal(t, scenario.ResultSkipped, step.Result, step.Name)
	}

	require.Equal(t, 6, result.Counts()[scenario.ResultSkipped])
}

// TestRunMalformedBodyIsError ensures undecodable bodies are errors, not
// assertion failures.
func TestRunMalformedBodyIsError(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)
	client.EXPECT().CreateFood(gomock.Any(), gomock.Any()).Return(response(http.StatusCreated, `<html>`), nil)

	steps := scenario.FoodLifecycle(fakeID)[:1]

	result := scenario.NewRunner(client, steps).Run(t.Context(), scenario.NewState())

	require.Equal(t, scenario.ResultError, result.Steps[0].Result)

	var malformed *api.MalformedResponseError
	require.ErrorAs(t, result.Steps[0].Err, &malformed)
	require.Equal(t, "<html>", malformed.Body)
}

// TestRunMissingFoodIDIsFailure ensures a create response without an ID is
// an assertion failure and nothing is stored.
func TestRunMissingFoodIDIsFailure(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)
	client.EXPECT().CreateFood(gomock.Any(), gomock.Any()).Return(response(http.StatusCreated, `{"msg":"Successfully created!"}`), nil)

	state := scenario.NewState()

	result := scenario.NewRunner(client, scenario.FoodLifecycle(fakeID)[:1]).Run(t.Context(), state)

	require.Equal(t, scenario.ResultFailed, result.Steps[0].Result)

	_, err := state.FoodID()
	require.ErrorIs(t, err, scenario.ErrNoFoodID)
}

// TestRunWithInjectedState ensures dependent steps can run against a state
// prepared by the caller.
func TestRunWithInjectedState(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)
	client.EXPECT().EditFood(gomock.Any(), "seeded", renamePatch()).Return(response(http.StatusOK, `{"msg":"Successfully edited"}`), nil)

	steps := scenario.FoodLifecycle(fakeID)
	edit := steps[1]
	edit.DependsOn = nil

	result := scenario.NewRunner(client, []scenario.Step{edit}).Run(t.Context(), scenario.NewStateWithFoodID("seeded"))

	require.True(t, result.Passed(), result.Err())
}

// TestRunEditWithoutStateIsError ensures reading an unset ID surfaces
// ErrNoFoodID when no dependency guards the step.
func TestRunEditWithoutStateIsError(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)

	edit := scenario.FoodLifecycle(fakeID)[1]
	edit.DependsOn = nil

	result := scenario.NewRunner(client, []scenario.Step{edit}).Run(t.Context(), scenario.NewState())

	require.Equal(t, scenario.ResultError, result.Steps[0].Result)
	require.ErrorIs(t, result.Steps[0].Err, scenario.ErrNoFoodID)
}

// TestRunWrongMessageIsFailure ensures the edit message is compared exactly.
func TestRunWrongMessageIsFailure(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)
	client.EXPECT().EditFood(gomock.Any(), createdID, renamePatch()).Return(response(http.StatusOK, `{"msg":"Edited"}`), nil)

	edit := scenario.FoodLifecycle(fakeID)[1]
	edit.DependsOn = nil

	result := scenario.NewRunner(client, []scenario.Step{edit}).Run(t.Context(), scenario.NewStateWithFoodID(createdID))

	var failure *api.AssertionFailure
	require.ErrorAs(t, result.Steps[0].Err, &failure)
	require.Equal(t, scenario.MessageEdited, failure.Expected)
	require.Equal(t, "Edited", failure.Actual)
}

// TestRunEmptyListIsFailure ensures an empty listing fails the list step.
func TestRunEmptyListIsFailure(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)
	client.EXPECT().ListFoods(gomock.Any()).Return(response(http.StatusOK, `[]`), nil)

	list := scenario.FoodLifecycle(fakeID)[2]

	result := scenario.NewRunner(client, []scenario.Step{list}).Run(t.Context(), scenario.NewState())

	require.Equal(t, scenario.ResultFailed, result.Steps[0].Result)
}

// TestRunCancelledContext ensures a cancelled run reports the remaining steps
// without calling the API.
func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	result := scenario.NewRunner(client, scenario.FoodLifecycle(fakeID)).Run(ctx, scenario.NewState())

	require.Equal(t, scenario.ResultError, result.Steps[0].Result)
	require.ErrorIs(t, result.Steps[0].Err, context.Canceled)

	for _, step := range result.Steps[1:] {
		require.Equal(t, scenario.ResultSkipped, step.Result)
	}
}

// TestRunNotifiesObservers ensures observers see every step, skipped ones included.
func TestRunNotifiesObservers(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	client := mock.NewMockFoodAPI(c)
	client.EXPECT().CreateFood(gomock.Any(), gomock.Any()).Return(nil, errConnectionRefused)

	observer := mock.NewMockObserver(c)

	gomock.InOrder(
		observer.EXPECT().StepStarted(gomock.Any()),
		observer.EXPECT().StepFinished(gomock.Any()).Do(func(result scenario.StepResult) {
			require.Equal(t, scenario.ResultError, result.Result)
		}),
	)
	observer.EXPECT().StepStarted(gomock.Any()).Times(6)
	observer.EXPECT().StepFinished(gomock.Any()).Times(6)

	scenario.NewRunner(client, scenario.FoodLifecycle(fakeID), scenario.WithFailFast(true), scenario.WithObserver(observer)).Run(t.Context(), scenario.NewState())
}

func TestValidateSteps(t *testing.T) {
	t.Parallel()

	require.NoError(t, scenario.ValidateSteps(scenario.FoodLifecycle(fakeID)))

	noop := func(context.Context, scenario.FoodAPI, *scenario.State) error { return nil }

	tests := []struct {
		name  string
		steps []scenario.Step
	}{
		{
			name:  "empty name",
			steps: []scenario.Step{{Run: noop}},
		},
		{
			name:  "duplicate",
			steps: []scenario.Step{{Name: "a", Run: noop}, {Name: "a", Run: noop}},
		},
		{
			name:  "forward dependency",
			steps: []scenario.Step{{Name: "a", DependsOn: []string{"b"}, Run: noop}, {Name: "b", Run: noop}},
		},
		{
			name:  "no run function",
			steps: []scenario.Step{{Name: "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Error(t, scenario.ValidateSteps(tt.steps))
		})
	}
}
