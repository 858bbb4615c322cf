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

	"k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/utils/ptr"
)

const (
	DefaultFoodName        = "Test2"
	DefaultFoodDescription = "Test2"
	EditedFoodName         = "Update Food Name"
)

func generateRandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, rand.String(8))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// FoodPayloadBuilder builds create payloads for testing.
type FoodPayloadBuilder struct {
	payload FoodCreateRequest
}

// NewFoodPayload creates a payload with every required field set.
func NewFoodPayload() *FoodPayloadBuilder {
	return &FoodPayloadBuilder{
		payload: FoodCreateRequest{
			Name:        ptr.To(DefaultFoodName),
			Description: DefaultFoodDescription,
			URL:         "",
		},
	}
}

// WithName sets the food name.
func (b *FoodPayloadBuilder) WithName(name string) *FoodPayloadBuilder {
	b.payload.Name = ptr.To(name)
	return b
}

// WithUniqueName sets a random name so concurrent runs don't collide.
func (b *FoodPayloadBuilder) WithUniqueName(prefix string) *FoodPayloadBuilder {
	return b.WithName(generateRandomName(prefix))
}

// WithoutName drops the name from the payload entirely.
func (b *FoodPayloadBuilder) WithoutName() *FoodPayloadBuilder {
	b.payload.Name = nil
	return b
}

// WithDescription sets the food description.
func (b *FoodPayloadBuilder) WithDescription(desc string) *FoodPayloadBuilder {
	b.payload.Description = desc
	return b
}

// WithURL sets the picture URL.
func (b *FoodPayloadBuilder) WithURL(url string) *FoodPayloadBuilder {
	b.payload.URL = url
	return b
}

// Build returns the completed payload.
func (b *FoodPayloadBuilder) Build() FoodCreateRequest {
	return b.payload
}

// PatchBuilder builds JSON patch documents.
type PatchBuilder struct {
	ops PatchDocument
}

func NewPatch() *PatchBuilder {
	return &PatchBuilder{}
}

// Replace appends a replace operation.
func (b *PatchBuilder) Replace(path, value string) *PatchBuilder {
	b.ops = append(b.ops, PatchOperation{
		Path:  path,
		Op:    PatchOpReplace,
		Value: value,
	})

	return b
}

// Build returns the operations in the order they were added.
func (b *PatchBuilder) Build() PatchDocument {
	return b.ops
}

// RenamePatch is the patch document that replaces a food's name.
func RenamePatch(name string) PatchDocument {
	return NewPatch().Replace("/name", name).Build()
}
