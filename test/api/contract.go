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
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
)

//go:embed openapi/foody.yaml
var foodyDescription []byte

// ContractValidator checks responses against the Foody API description.
type ContractValidator struct {
	router routers.Router
}

// NewContractValidator loads and validates the embedded API description.
func NewContractValidator(ctx context.Context) (*ContractValidator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(foodyDescription)
	if err != nil {
		return nil, fmt.Errorf("loading API description: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating API description: %w", err)
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building router: %w", err)
	}

	return &ContractValidator{
		router: router,
	}, nil
}

// Validate checks that the status, content type and body of resp are
// documented for the operation req was sent to. Undocumented statuses fail.
func (v *ContractValidator) Validate(ctx context.Context, req *http.Request, resp *Response) error {
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("finding route for %s %s: %w", req.Method, req.URL.Path, err)
	}

	options := &openapi3filter.Options{
		IncludeResponseStatus: true,
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		},
		Status:  resp.StatusCode,
		Header:  resp.Header,
		Options: options,
	}

	input.SetBodyBytes(resp.Body)

	return openapi3filter.ValidateResponse(ctx, input)
}
