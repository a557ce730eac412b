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
	"github.com/kamstrup/intmap"
)

// autopilot is an InputSource that plays on its own.
// It heads for the fruit on the shortest wrapped path and avoids cells
// occupied by the body. A paused game is resumed.
type autopilot struct{}

func newAutopilot() *autopilot {
	return &autopilot{}
}

func (a *autopilot) Poll(last Frame) Input {
	if last.Paused {
		return Input{TogglePause: true}
	}

	// The tail moves away during the next tick, so it is not an obstacle.
	occupied := intmap.New[int, struct{}](len(last.Body))
	for i := 0; i < len(last.Body)-1; i++ {
		occupied.Put(cellKey(last.Body[i]), struct{}{})
	}

	head := last.Head()
	best := last.Direction
	bestDistance := -1
	for _, d := range []Direction{last.Direction, DirectionUp, DirectionDown, DirectionRight, DirectionLeft} {
		if d == last.Direction.Opposite() {
			continue
		}
		next := Wrap(d.Step(head))
		if occupied.Has(cellKey(next)) {
			continue
		}
		distance := wrappedDistance(next, last.Fruit)
		if bestDistance == -1 || distance < bestDistance {
			best = d
			bestDistance = distance
		}
	}

	return directionInput(best)
}

func directionInput(d Direction) Input {
	switch d {
	case DirectionUp:
		return Input{Up: true}
	case DirectionDown:
		return Input{Down: true}
	case DirectionLeft:
		return Input{Left: true}
	case DirectionRight:
		return Input{Right: true}
	}
	return Input{}
}

// cellKey maps a cell, including the one-past-the-edge positions, to an int.
func cellKey(c Cell) int {
	return c.Y*(Columns+1) + c.X
}

// wrappedDistance returns the number of ticks needed to move from a to b.
// Wrap keeps Columns and Rows as positions, so an axis has Columns+1 (Rows+1) steps.
func wrappedDistance(a, b Cell) int {
	return ringDistance(a.X, b.X, Columns+1) + ringDistance(a.Y, b.Y, Rows+1)
}

func ringDistance(a, b, size int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > size-d {
		d = size - d
	}
	return d
}
