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
	"github.com/stretchr/testify/require"
)

// scriptedRoller returns the given values in order, wrapping around.
type scriptedRoller struct {
	values []int
	next   int
}

func (r *scriptedRoller) Intn(n int) int {
	v := r.values[r.next%len(r.values)] % n
	r.next++
	return v
}

func roller(values ...int) *scriptedRoller {
	return &scriptedRoller{values: values}
}

func bodyOf(cells ...Cell) Body {
	var b Body
	copy(b.cells[:], cells)
	b.length = len(cells)
	return b
}

func TestNewBody(t *testing.T) {
	b := NewBody(Cell{X: 3, Y: 4})
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, Cell{X: 3, Y: 4}, b.Head())
	assert.Equal(t, []Cell{{X: 3, Y: 4}}, b.Cells())
}

func TestBodyFollowShiftsFromTail(t *testing.T) {
	b := bodyOf(Cell{4, 0}, Cell{3, 0}, Cell{2, 0}, Cell{1, 0})
	b.Follow()
	b.MoveHead(Cell{5, 0})

	assert.Equal(t, []Cell{{5, 0}, {4, 0}, {3, 0}, {2, 0}}, b.Cells())
}

func TestBodyGrowTakesOverOldTail(t *testing.T) {
	b := bodyOf(Cell{4, 0}, Cell{3, 0}, Cell{2, 0})
	b.Follow()
	b.MoveHead(Cell{5, 0})
	require.NoError(t, b.Grow())

	assert.Equal(t, []Cell{{5, 0}, {4, 0}, {3, 0}, {2, 0}}, b.Cells())
}

func TestBodyGrowAtCapacity(t *testing.T) {
	var b Body
	b.length = BodyCapacity

	err := b.Grow()
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, BodyCapacity, b.Len())

	// Follow must stay inside the backing array.
	assert.NotPanics(t, b.Follow)
}

func TestBodyHitsHead(t *testing.T) {
	b := bodyOf(Cell{1, 1}, Cell{1, 2}, Cell{2, 2}, Cell{1, 1})
	assert.Equal(t, 3, b.HitsHead())

	b = bodyOf(Cell{1, 1}, Cell{1, 2})
	assert.Equal(t, -1, b.HitsHead())
}

func TestBodyTruncate(t *testing.T) {
	b := bodyOf(Cell{1, 1}, Cell{1, 2}, Cell{2, 2})
	b.Truncate(Cell{15, 15})
	assert.Equal(t, []Cell{{15, 15}}, b.Cells())
}

func TestBodyCellsIsCopy(t *testing.T) {
	b := bodyOf(Cell{1, 1}, Cell{1, 2})
	c := b.Cells()
	c[0] = Cell{9, 9}
	assert.Equal(t, Cell{1, 1}, b.Head())
}
