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

// Direction is the direction the snake is heading.
type Direction string

const (
	// DirectionUp contains the string value representing "up"
	DirectionUp Direction = "up"
	// DirectionDown contains the string value representing "down"
	DirectionDown Direction = "down"
	// DirectionLeft contains the string value representing "left"
	DirectionLeft Direction = "left"
	// DirectionRight contains the string value representing "right"
	DirectionRight Direction = "right"
)

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Step returns c moved one cell along d. No wraparound is applied.
func (d Direction) Step(c Cell) Cell {
	switch d {
	case DirectionUp:
		c.Y--
	case DirectionDown:
		c.Y++
	case DirectionLeft:
		c.X--
	case DirectionRight:
		c.X++
	}
	return c
}

// Input holds the logical inputs active during one loop iteration.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	TogglePause bool
	Quit        bool
}

// UpdateDirection applies the pressed directions to current.
//
// Requests are evaluated in the order up, down, right, left. Each one is
// accepted unless it reverses the direction as updated by the earlier checks:
// a later lateral request overrides an earlier one, while a request opposite
// to an already accepted one is dropped.
func UpdateDirection(current Direction, in Input) Direction {
	for _, r := range []struct {
		pressed bool
		d       Direction
	}{
		{in.Up, DirectionUp},
		{in.Down, DirectionDown},
		{in.Right, DirectionRight},
		{in.Left, DirectionLeft},
	} {
		if r.pressed && current != r.d.Opposite() {
			current = r.d
		}
	}
	return current
}
