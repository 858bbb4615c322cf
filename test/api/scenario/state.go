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
	"errors"
)

// ErrNoFoodID is returned when a step reads the created food ID before any
// step stored one.
var ErrNoFoodID = errors.New("no food has been created in this run")

// State is the mutable context shared by the steps of one run.
// It is not safe for concurrent use.
type State struct {
	foodID string
}

// NewState returns an empty State.
func NewState() *State {
	return &State{}
}

// NewStateWithFoodID returns a State that already holds a created food ID.
func NewStateWithFoodID(foodID string) *State {
	return &State{
		foodID: foodID,
	}
}

// SetFoodID records the identifier of the most recently created review.
func (s *State) SetFoodID(foodID string) {
	s.foodID = foodID
}

// FoodID returns the most recently created review's identifier.
func (s *State) FoodID() (string, error) {
	if s.foodID == "" {
		return "", ErrNoFoodID
	}

	return s.foodID, nil
}

// Reset forgets the created food ID.
func (s *State) Reset() {
	s.foodID = ""
}
