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
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/foody/test/api"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

//go:generate go tool mockgen -source=runner.go -destination=mock/interfaces.go -package=mock

// FoodAPI is the surface of the Foody API the steps drive.
type FoodAPI interface {
	CreateFood(ctx context.Context, request api.FoodCreateRequest) (*api.Response, error)
	EditFood(ctx context.Context, foodID string, patch api.PatchDocument) (*api.Response, error)
	ListFoods(ctx context.Context) (*api.Response, error)
	DeleteFood(ctx context.Context, foodID string) (*api.Response, error)
}

// Result is the outcome of a single step.
type Result string

const (
	ResultPassed  Result = "PASSED"
	ResultFailed  Result = "FAILED"
	ResultSkipped Result = "SKIPPED"
	ResultError   Result = "ERROR"
)

// Step is one ordered call of the scenario.
type Step struct {
	// Name uniquely identifies the step and is what DependsOn refers to.
	Name string
	// Description is a human readable summary for reports.
	Description string
	// DependsOn lists earlier steps that must pass for this one to run.
	DependsOn []string
	// Run performs the call and its assertions.
	Run func(ctx context.Context, client FoodAPI, state *State) error
}

// StepResult records what happened to a step.
type StepResult struct {
	Name        string
	Description string
	Result      Result
	// Err is set for FAILED and ERROR results.
	Err error
	// Reason explains a SKIPPED result.
	Reason   string
	Duration time.Duration
}

// SuiteResult is the outcome of a whole run.
type SuiteResult struct {
	Steps []StepResult
	// SetupErr is set when the run could not start, e.g. authentication failed.
	SetupErr error
	Duration time.Duration
}

// Passed is true only when setup succeeded and every step passed.
func (r *SuiteResult) Passed() bool {
	if r.SetupErr != nil || len(r.Steps) == 0 {
		return false
	}

	for i := range r.Steps {
		if r.Steps[i].Result != ResultPassed {
			return false
		}
	}

	return true
}

// Err aggregates the setup error and every step error, or returns nil.
func (r *SuiteResult) Err() error {
	var errs []error

	if r.SetupErr != nil {
		errs = append(errs, fmt.Errorf("setup: %w", r.SetupErr))
	}

	for i := range r.Steps {
		if r.Steps[i].Err != nil {
			errs = append(errs, fmt.Errorf("step %s: %w", r.Steps[i].Name, r.Steps[i].Err))
		}
	}

	return utilerrors.NewAggregate(errs)
}

// Step returns the result of the named step.
func (r *SuiteResult) Step(name string) (StepResult, bool) {
	for i := range r.Steps {
		if r.Steps[i].Name == name {
			return r.Steps[i], true
		}
	}

	return StepResult{}, false
}

// Counts returns how many steps ended with each result.
func (r *SuiteResult) Counts() map[Result]int {
	counts := map[Result]int{}

	for i := range r.Steps {
		counts[r.Steps[i].Result]++
	}

	return counts
}

// Observer is notified around every step, including skipped ones.
type Observer interface {
	StepStarted(step Step)
	StepFinished(result StepResult)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithFailFast skips every remaining step after the first one that does not pass.
func WithFailFast(failFast bool) RunnerOption {
	return func(r *Runner) {
		r.failFast = failFast
	}
}

// WithObserver adds an observer.
func WithObserver(observer Observer) RunnerOption {
	return func(r *Runner) {
		r.observers = append(r.observers, observer)
	}
}

// WithRunnerLogger sets the runner's logger.
func WithRunnerLogger(log logr.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = log
	}
}

// Runner executes steps in order against one client.
type Runner struct {
	client    FoodAPI
	steps     []Step
	failFast  bool
	observers []Observer
	log       logr.Logger
}

// NewRunner creates a runner for the given steps.
func NewRunner(client FoodAPI, steps []Step, opts ...RunnerOption) *Runner {
	r := &Runner{
		client: client,
		steps:  steps,
		log:    logr.Discard(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes every step in slice order and returns one result per step.
// It never stops early unless fail-fast is set or ctx is done; in both
// cases the remaining steps are reported as skipped.
func (r *Runner) Run(ctx context.Context, state *State) *SuiteResult {
	start := time.Now()

	result := &SuiteResult{
		Steps: make([]StepResult, 0, len(r.steps)),
	}

	passed := make(map[string]bool, len(r.steps))

	var abortReason string

	for _, step := range r.steps {
		r.notifyStarted(step)

		var stepResult StepResult

		switch {
		case abortReason != "":
			stepResult = skipped(step, abortReason)
		case ctx.Err() != nil:
			abortReason = "run aborted: " + ctx.Err().Error()
			stepResult = StepResult{
				Name:        step.Name,
				Description: step.Description,
				Result:      ResultError,
				Err:         ctx.Err(),
			}
		default:
			if dep, ok := failedDependency(step, passed); ok {
				stepResult = skipped(step, fmt.Sprintf("dependency %q did not pass", dep))
				break
			}

			stepResult = r.runStep(ctx, step, state)
		}

		passed[step.Name] = stepResult.Result == ResultPassed

		if r.failFast && abortReason == "" && stepResult.Result != ResultPassed {
			abortReason = fmt.Sprintf("fail fast after step %q", step.Name)
		}

		r.log.V(1).Info("step finished", "step", step.Name, "result", stepResult.Result, "duration", stepResult.Duration, "reason", stepResult.Reason, "error", errString(stepResult.Err))

		result.Steps = append(result.Steps, stepResult)

		r.notifyFinished(stepResult)
	}

	result.Duration = time.Since(start)

	return result
}

func (r *Runner) runStep(ctx context.Context, step Step, state *State) StepResult {
	start := time.Now()
	err := step.Run(ctx, r.client, state)

	result := StepResult{
		Name:        step.Name,
		Description: step.Description,
		Result:      classify(err),
		Err:         err,
		Duration:    time.Since(start),
	}

	return result
}

func (r *Runner) notifyStarted(step Step) {
	for _, o := range r.observers {
		o.StepStarted(step)
	}
}

func (r *Runner) notifyFinished(result StepResult) {
	for _, o := range r.observers {
		o.StepFinished(result)
	}
}

// classify maps a step error onto a result. Only assertion failures are
// FAILED; anything else means the step could not be evaluated.
func classify(err error) Result {
	if err == nil {
		return ResultPassed
	}

	var failure *api.AssertionFailure
	if errors.As(err, &failure) {
		return ResultFailed
	}

	return ResultError
}

// failedDependency returns the first dependency that has not passed.
// Unknown and later steps count as not passed.
func failedDependency(step Step, passed map[string]bool) (string, bool) {
	for _, dep := range step.DependsOn {
		if !passed[dep] {
			return dep, true
		}
	}

	return "", false
}

func skipped(step Step, reason string) StepResult {
	return StepResult{
		Name:        step.Name,
		Description: step.Description,
		Result:      ResultSkipped,
		Reason:      reason,
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

// ValidateSteps checks that step names are unique and every dependency
// names an earlier step.
func ValidateSteps(steps []Step) error {
	seen := make(map[string]bool, len(steps))

	var errs []error

	for _, step := range steps {
		if step.Name == "" {
			errs = append(errs, errors.New("step with empty name"))
			continue
		}

		if seen[step.Name] {
			errs = append(errs, fmt.Errorf("duplicate step %q", step.Name))
		}

		for _, dep := range step.DependsOn {
			if !seen[dep] {
				errs = append(errs, fmt.Errorf("step %q depends on %q which does not run before it", step.Name, dep))
			}
		}

		if step.Run == nil {
			errs = append(errs, fmt.Errorf("step %q has no run function", step.Name))
		}

		seen[step.Name] = true
	}

	return utilerrors.NewAggregate(errs)
}
