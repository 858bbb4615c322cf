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
	"fmt"
	"slices"
	"time"

	"github.com/unikorn-cloud/foody/test/api"
)

type suiteOptions struct {
	clientOpts []api.ClientOption
	runnerOpts []RunnerOption
	state      *State
}

// SuiteOption configures RunSuite.
type SuiteOption func(*suiteOptions)

// WithClientOptions are applied to both the login and the scenario client.
func WithClientOptions(opts ...api.ClientOption) SuiteOption {
	return func(o *suiteOptions) {
		o.clientOpts = append(o.clientOpts, opts...)
	}
}

// WithRunnerOptions are applied to the runner after the configured defaults.
func WithRunnerOptions(opts ...RunnerOption) SuiteOption {
	return func(o *suiteOptions) {
		o.runnerOpts = append(o.runnerOpts, opts...)
	}
}

// WithState runs the scenario against a pre-populated state.
func WithState(state *State) SuiteOption {
	return func(o *suiteOptions) {
		o.state = state
	}
}

// RunSuite authenticates once, runs the food lifecycle with one shared
// client and closes the client on every path.
//
// A non-nil error means the run never started. The returned result is
// still usable in that case: SetupErr is set and every step is skipped.
func RunSuite(ctx context.Context, config *api.TestConfig, opts ...SuiteOption) (*SuiteResult, error) {
	start := time.Now()

	o := &suiteOptions{
		state: NewState(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if config.TestTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, config.TestTimeout)
		defer cancel()
	}

	steps := FoodLifecycle(config.FakeFoodID)

	if err := ValidateSteps(steps); err != nil {
		return setupFailed(steps, err, start), err
	}

	clientOpts := slices.Clone(o.clientOpts)

	if config.ValidateContract {
		validator, err := api.NewContractValidator(ctx)
		if err != nil {
			err = fmt.Errorf("loading contract validator: %w", err)
			return setupFailed(steps, err, start), err
		}

		clientOpts = append(clientOpts, api.WithContractValidator(validator))
	}

	client, err := api.NewAuthenticatedClient(ctx, config, clientOpts...)
	if err != nil {
		return setupFailed(steps, err, start), err
	}

	defer client.Close()

	runnerOpts := append([]RunnerOption{WithFailFast(config.FailFast)}, o.runnerOpts...)

	result := NewRunner(client, steps, runnerOpts...).Run(ctx, o.state)
	result.Duration = time.Since(start)

	return result, nil
}

func setupFailed(steps []Step, err error, start time.Time) *SuiteResult {
	result := &SuiteResult{
		Steps:    make([]StepResult, 0, len(steps)),
		SetupErr: err,
	}

	for _, step := range steps {
		result.Steps = append(result.Steps, skipped(step, "setup failed"))
	}

	result.Duration = time.Since(start)

	return result
}
