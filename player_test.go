// SPDX-License-Identifier: Apache-2.0
// Copyright 2020,2021 Marcus Soll
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpposite(t *testing.T) {
	assert.Equal(t, DirectionDown, DirectionUp.Opposite())
	assert.Equal(t, DirectionUp, DirectionDown.Opposite())
	assert.Equal(t, DirectionRight, DirectionLeft.Opposite())
	assert.Equal(t, DirectionLeft, DirectionRight.Opposite())
}

func TestUpdateDirection(t *testing.T) {
	tests := []struct {
		name    string
		current Direction
		in      Input
		want    Direction
	}{
		{"nothing pressed", DirectionUp, Input{}, DirectionUp},
		{"down while up", DirectionUp, Input{Down: true}, DirectionUp},
		{"up while down", DirectionDown, Input{Up: true}, DirectionDown},
		{"left while right", DirectionRight, Input{Left: true}, DirectionRight},
		{"right while left", DirectionLeft, Input{Right: true}, DirectionLeft},
		{"lateral from up", DirectionUp, Input{Left: true}, DirectionLeft},
		{"lateral from left", DirectionLeft, Input{Down: true}, DirectionDown},
		{"same direction", DirectionRight, Input{Right: true}, DirectionRight},
		// Checked in the order up, down, right, left against the updated direction.
		{"up and down from left", DirectionLeft, Input{Up: true, Down: true}, DirectionUp},
		{"up and down from down", DirectionDown, Input{Up: true, Down: true}, DirectionDown},
		{"left and right from up", DirectionUp, Input{Left: true, Right: true}, DirectionRight},
		{"up and left from right", DirectionRight, Input{Up: true, Left: true}, DirectionLeft},
		{"all pressed from down", DirectionDown, Input{Up: true, Down: true, Left: true, Right: true}, DirectionRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UpdateDirection(tc.current, tc.in))
		})
	}
}
