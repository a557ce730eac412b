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
	"errors"
)

// BodyCapacity is the maximum number of segments a snake can have.
const BodyCapacity = 100

// ErrCapacityExceeded is returned when the body would grow beyond BodyCapacity.
var ErrCapacityExceeded = errors.New("body capacity exceeded")

// Cell is a single grid coordinate.
type Cell struct {
	X int
	Y int
}

// Body is a fixed-capacity sequence of cells. Index 0 is the head.
// Only the first Len() cells are part of the snake.
//
// The cell directly behind the tail is kept up to date by Follow so that Grow
// can extend the snake onto the position the tail just left.
type Body struct {
	cells  [BodyCapacity]Cell
	length int
}

// NewBody returns a body of length 1 with the head at the given cell.
func NewBody(head Cell) Body {
	b := Body{length: 1}
	b.cells[0] = head
	return b
}

// Len returns the number of live segments.
func (b *Body) Len() int {
	return b.length
}

// Head returns the first segment.
func (b *Body) Head() Cell {
	return b.cells[0]
}

// Follow moves every segment onto the previous position of the segment ahead of it.
// The head itself is left untouched.
func (b *Body) Follow() {
	// Must run from the tail towards the head, otherwise the head position
	// would be copied through the whole body in one tick.
	i := b.length
	if i >= BodyCapacity {
		i = BodyCapacity - 1
	}
	for ; i > 0; i-- {
		b.cells[i] = b.cells[i-1]
	}
}

// MoveHead sets the head to c.
func (b *Body) MoveHead(c Cell) {
	b.cells[0] = c
}

// Grow adds one segment at the tail.
func (b *Body) Grow() error {
	if b.length >= BodyCapacity {
		return ErrCapacityExceeded
	}
	b.length++
	return nil
}

// Truncate shrinks the body to a single segment at head.
// Cells behind the head are not cleared.
func (b *Body) Truncate(head Cell) {
	b.length = 1
	b.cells[0] = head
}

// HitsHead returns the index of the first follower on the head cell, or -1.
func (b *Body) HitsHead() int {
	head := b.cells[0]
	for i := 1; i < b.length; i++ {
		if b.cells[i] == head {
			return i
		}
	}
	return -1
}

// Cells returns a copy of the live segments, head first.
func (b *Body) Cells() []Cell {
	c := make([]Cell, b.length)
	copy(c, b.cells[:b.length])
	return c
}
