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
	"context"
	"encoding/json"
)

// ResolveToken performs one unauthenticated login and returns the bearer
// token from the response. Every failure is an *AuthenticationError.
// Options are applied to the login client, so the same logger and metrics
// as the suite client can be used.
func ResolveToken(ctx context.Context, config *TestConfig, credentials Credentials, opts ...ClientOption) (string, error) {
	loginClient := NewAPIClientWithConfig(config, opts...)
	defer loginClient.Close()

	// The login call itself must never carry a token.
	loginClient.SetAuthToken("")

	resp, err := loginClient.Authenticate(ctx, credentials)
	if err != nil {
		authErr := &AuthenticationError{
			Username: credentials.Username,
			Err:      err,
		}

		if resp != nil {
			authErr.StatusCode = resp.StatusCode
		}

		return "", authErr
	}

	var body AuthenticationResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return "", &AuthenticationError{
			Username:   credentials.Username,
			StatusCode: resp.StatusCode,
			Err:        &MalformedResponseError{Body: resp.BodyString(), Err: err},
		}
	}

	if body.AccessToken == nil || *body.AccessToken == "" {
		return "", &AuthenticationError{
			Username:   credentials.Username,
			StatusCode: resp.StatusCode,
			Err:        ErrMissingAccessToken,
		}
	}

	loginClient.log.Info("authenticated", "username", credentials.Username, "token", redactToken(*body.AccessToken), "traceID", resp.TraceID)

	return *body.AccessToken, nil
}

// redactToken shows only the first and last 4 characters of a token.
// Tokens shorter than 12 characters are masked entirely.
func redactToken(token string) string {
	if len(token) < 12 {
		return "****"
	}

	return token[:4] + "..." + token[len(token)-4:]
}
