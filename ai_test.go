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

func TestAutopilotResumes(t *testing.T) {
	a := newAutopilot()
	in := a.Poll(Frame{Paused: true, Body: []Cell{Center()}, Direction: DirectionDown})
	assert.Equal(t, Input{TogglePause: true}, in)
}

func TestAutopilotHeadsForFruit(t *testing.T) {
	tests := []struct {
		name  string
		head  Cell
		d     Direction
		fruit Cell
		want  Input
	}{
		{"straight ahead", Cell{15, 15}, DirectionRight, Cell{20, 15}, Input{Right: true}},
		{"turn up", Cell{15, 15}, DirectionRight, Cell{15, 10}, Input{Up: true}},
		{"turn down", Cell{15, 15}, DirectionLeft, Cell{15, 25}, Input{Down: true}},
		{"shorter over the edge", Cell{2, 15}, DirectionUp, Cell{28, 15}, Input{Left: true}},
		{"behind keeps going", Cell{15, 15}, DirectionDown, Cell{15, 10}, Input{Down: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Frame{Body: []Cell{tc.head}, Direction: tc.d, Fruit: tc.fruit}
			assert.Equal(t, tc.want, newAutopilot().Poll(f))
		})
	}
}

func TestAutopilotAvoidsBody(t *testing.T) {
	f := Frame{
		Body:      []Cell{{5, 5}, {4, 5}, {4, 6}, {5, 6}, {6, 6}, {6, 5}, {6, 4}},
		Direction: DirectionRight,
		Fruit:     Cell{10, 5},
	}
	assert.Equal(t, Input{Up: true}, newAutopilot().Poll(f))
}

func TestAutopilotIgnoresTail(t *testing.T) {
	f := Frame{
		Body:      []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}},
		Direction: DirectionUp,
		Fruit:     Cell{10, 5},
	}
	assert.Equal(t, Input{Right: true}, newAutopilot().Poll(f))
}

func TestWrappedDistance(t *testing.T) {
	assert.Equal(t, 0, wrappedDistance(Cell{3, 3}, Cell{3, 3}))
	assert.Equal(t, 7, wrappedDistance(Cell{0, 0}, Cell{3, 4}))
	assert.Equal(t, 1, wrappedDistance(Cell{0, 0}, Cell{Columns, 0}))
	assert.Equal(t, 2, wrappedDistance(Cell{0, 1}, Cell{Columns - 1, 1}))
	assert.Equal(t, 1, wrappedDistance(Cell{4, Rows}, Cell{4, 0}))
}
