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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unikorn-cloud/foody/test/api"
	"github.com/unikorn-cloud/foody/test/api/scenario"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Process exit codes.
const (
	exitPassed      = 0
	exitStepFailure = 1
	exitSetup       = 2
	exitConfig      = 3
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// options are command line overrides for the environment configuration.
type options struct {
	baseURL          string
	username         string
	password         string
	fakeID           string
	failFast         bool
	validateContract bool
	output           string
	metricsFile      string
	debug            bool
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.baseURL, "base-url", "", "Foody API base URL, overrides FOODY_BASE_URL.")
	f.StringVar(&o.username, "username", "", "Account to authenticate as, overrides FOODY_USERNAME.")
	f.StringVar(&o.password, "password", "", "Account password, overrides FOODY_PASSWORD.")
	f.StringVar(&o.fakeID, "fake-id", "", "Food ID that is known not to exist, overrides FAKE_FOOD_ID.")
	f.BoolVar(&o.failFast, "fail-fast", false, "Skip the remaining steps after the first one that does not pass.")
	f.BoolVar(&o.validateContract, "validate-contract", false, "Validate every response against the bundled API description.")
	f.StringVar(&o.output, "output", outputTable, "Report format, one of table or json.")
	f.StringVar(&o.metricsFile, "metrics-file", "", "Write client metrics in Prometheus text format to this file.")
	f.BoolVar(&o.debug, "debug", false, "Enable debug logging.")
}

// apply overrides config with every flag that was set explicitly.
func (o *options) apply(f *pflag.FlagSet, config *api.TestConfig) {
	if f.Changed("base-url") {
		config.BaseURL = o.baseURL
	}

	if f.Changed("username") {
		config.Username = o.username
	}

	if f.Changed("password") {
		config.Password = o.password
	}

	if f.Changed("fake-id") {
		config.FakeFoodID = o.fakeID
	}

	if f.Changed("fail-fast") {
		config.FailFast = o.failFast
	}

	if f.Changed("validate-contract") {
		config.ValidateContract = o.validateContract
	}

	if f.Changed("debug") {
		config.DebugLogging = o.debug
	}
}

func (o *options) validate() error {
	if o.output != outputTable && o.output != outputJSON {
		return fmt.Errorf("unsupported output format %q", o.output)
	}

	return nil
}

// loadConfig reads the environment and applies flag overrides before validating.
func (o *options) loadConfig(f *pflag.FlagSet) (*api.TestConfig, error) {
	config := api.ReadTestConfig()

	o.apply(f, config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func newLogger(debug bool) (logr.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	if debug {
		// logr V(1) maps to zap's debug level.
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), err
	}

	return zapr.NewLogger(zl), nil
}

func render(w io.Writer, format string, result *scenario.SuiteResult) error {
	if format == outputJSON {
		return scenario.RenderJSON(w, result)
	}

	scenario.RenderTable(w, result)

	return nil
}

// exitCode maps the outcome of a run onto the process exit status.
func exitCode(result *scenario.SuiteResult, err error) int {
	if err != nil {
		var authErr *api.AuthenticationError
		if errors.As(err, &authErr) {
			return exitSetup
		}

		return exitConfig
	}

	if !result.Passed() {
		return exitStepFailure
	}

	return exitPassed
}

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	pflag.Parse()

	if err := o.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}

	config, err := o.loadConfig(pflag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}

	logger, err := newLogger(config.DebugLogging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}

	log.SetLogger(logger)

	logger = log.Log.WithName("foody-scenario")

	logger.Info("scenario starting", "baseURL", config.BaseURL, "username", config.Username, "failFast", config.FailFast, "validateContract", config.ValidateContract)

	ctx := cr.SetupSignalHandler()

	registry := prometheus.NewRegistry()
	metrics := api.NewMetrics(registry)

	result, runErr := scenario.RunSuite(ctx, config,
		scenario.WithClientOptions(
			api.WithLogger(logger.WithName("client")),
			api.WithMetrics(metrics),
		),
		scenario.WithRunnerOptions(
			scenario.WithRunnerLogger(logger.WithName("runner")),
			scenario.WithObserver(scenario.NewLogObserver(logger.WithName("scenario"))),
		),
	)
	if runErr != nil {
		logger.Error(runErr, "scenario could not start")
	}

	if result != nil {
		if err := render(os.Stdout, o.output, result); err != nil {
			logger.Error(err, "rendering report")
		}
	}

	if o.metricsFile != "" {
		if err := prometheus.WriteToTextfile(o.metricsFile, registry); err != nil {
			logger.Error(err, "writing metrics", "path", o.metricsFile)
		}
	}

	os.Exit(exitCode(result, runErr))
}
