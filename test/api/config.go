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

package api

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the shared QA deployment of the Foody API.
	DefaultBaseURL = "http://softuni-qa-loadbalancer-2137572849.eu-north-1.elb.amazonaws.com:86"

	// DefaultUsername and DefaultPassword are the QA account the suite was
	// written against. Override them with FOODY_USERNAME and FOODY_PASSWORD.
	DefaultUsername = "emi12"
	DefaultPassword = "12348765"

	// DefaultFakeFoodID is an identifier the backend never issues.
	DefaultFakeFoodID = "123"
)

type TestConfig struct {
	BaseURL          string
	Username         string
	Password         string
	FakeFoodID       string
	RequestTimeout   time.Duration
	TestTimeout      time.Duration
	SkipIntegration  bool
	FailFast         bool
	ValidateContract bool
	DebugLogging     bool
	LogRequests      bool
	LogResponses     bool
}

// Credentials returns the username and password pair used to authenticate.
func (c *TestConfig) Credentials() Credentials {
	return Credentials{
		Username: c.Username,
		Password: c.Password,
	}
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a configuration value is missing or malformed.
func LoadTestConfig() (*TestConfig, error) {
	config := ReadTestConfig()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ReadTestConfig reads configuration like LoadTestConfig but leaves validation
// to the caller, so overrides can be applied first.
func ReadTestConfig() *TestConfig {
	loadEnvFile()

	return &TestConfig{
		BaseURL:          getStringWithDefault("FOODY_BASE_URL", DefaultBaseURL),
		Username:         getStringWithDefault("FOODY_USERNAME", DefaultUsername),
		Password:         getStringWithDefault("FOODY_PASSWORD", DefaultPassword),
		FakeFoodID:       getStringWithDefault("FAKE_FOOD_ID", DefaultFakeFoodID),
		RequestTimeout:   getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:      getDurationWithDefault("TEST_TIMEOUT", 5*time.Minute),
		SkipIntegration:  getBoolWithDefault("SKIP_INTEGRATION", false),
		FailFast:         getBoolWithDefault("FAIL_FAST", false),
		ValidateContract: getBoolWithDefault("VALIDATE_CONTRACT", false),
		DebugLogging:     getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:      getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:     getBoolWithDefault("LOG_RESPONSES", false),
	}
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		os.Getenv("FOODY_ENV_FILE"),
		"../../../test/.env", // From test/api/suites directory
		"test/.env",          // From the repository root
	}

	var envPath string

	for _, path := range envPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Load does not override variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// Validate checks that all configuration values are usable.
func (c *TestConfig) Validate() error {
	var problems []string

	required := map[string]string{
		"FOODY_USERNAME": c.Username,
		"FOODY_PASSWORD": c.Password,
		"FAKE_FOOD_ID":   c.FakeFoodID,
	}

	for envVar, value := range required {
		if value == "" {
			problems = append(problems, envVar+" is empty")
		}
	}

	if u, err := url.Parse(c.BaseURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		problems = append(problems, fmt.Sprintf("FOODY_BASE_URL %q is not an absolute http(s) URL", c.BaseURL))
	}

	if c.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		// map iteration order is random, keep the message stable
		slices.Sort(problems)

		return fmt.Errorf("invalid configuration: %s. Please set these environment variables or add them to a .env file", strings.Join(problems, ", "))
	}

	return nil
}
