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
	"time"

	"golang.org/x/exp/rand"
)

const (
	// Columns holds the width of the field in cells.
	Columns = 30
	// Rows holds the height of the field in cells.
	Rows = 30
	// SquareSize contains the size of a cell in pixels.
	SquareSize = 18
	// InitialDelay is the tick duration at the start of a session.
	InitialDelay = 100 * time.Millisecond
	// MinDelay is the shortest tick duration. Faster is next to uncontrollable.
	MinDelay = 60 * time.Millisecond
	// DelayStep is subtracted from the tick duration for every fruit eaten.
	DelayStep = 10 * time.Millisecond
	// FruitReward holds the points for a single fruit.
	FruitReward = 10
)

// Roller is a source of random integers in [0, n).
// *rand.Rand satisfies it; tests provide scripted sequences.
type Roller interface {
	Intn(n int) int
}

// NewRoller returns a seeded pseudo-random Roller.
func NewRoller(seed uint64) Roller {
	return rand.New(rand.NewSource(seed))
}

// Game holds the complete simulation state of one session.
// It is owned by a single loop and must not be shared between goroutines.
type Game struct {
	Body      Body
	Fruit     Cell
	Direction Direction
	Score     int
	Highscore int
	Delay     time.Duration
	Paused    bool

	rng Roller
}

// StepResult describes what happened during a single Step.
type StepResult struct {
	Ate   bool
	Reset bool
}

// NewGame returns a paused game with the head in the middle of the field.
func NewGame(rng Roller) *Game {
	g := &Game{
		Body:      NewBody(Center()),
		Direction: DirectionDown,
		Delay:     InitialDelay,
		Paused:    true,
		rng:       rng,
	}
	g.Fruit = g.rollFruit()
	return g
}

// Center returns the starting cell of the head.
func Center() Cell {
	return Cell{X: Columns / 2, Y: Rows / 2}
}

// Step advances the simulation by one tick.
//
// ErrCapacityExceeded is returned if the fruit is reached while the body is
// already at BodyCapacity. In that case the head has moved but nothing else
// of the tick is applied.
func (g *Game) Step() (StepResult, error) {
	var r StepResult

	g.Body.Follow()
	g.Body.MoveHead(Wrap(g.Direction.Step(g.Body.Head())))

	if g.Body.Head() == g.Fruit {
		err := g.Body.Grow()
		if err != nil {
			return r, err
		}
		r.Ate = true
		g.Score += FruitReward
		g.Fruit = g.rollFruit()
		if g.Delay > MinDelay {
			g.Delay -= DelayStep
			if g.Delay < MinDelay {
				g.Delay = MinDelay
			}
		}
	}

	if g.Body.HitsHead() != -1 {
		g.Reset()
		r.Reset = true
	}

	return r, nil
}

// Reset starts a new round. The highscore is updated, direction and delay are kept.
func (g *Game) Reset() {
	if g.Score > g.Highscore {
		g.Highscore = g.Score
	}
	g.Score = 0
	g.Body.Truncate(Center())
	g.Fruit = g.rollFruit()
	g.Paused = true
}

// Wrap moves a cell that left the field to the opposite side.
//
// Columns and Rows themselves are accepted as positions. They lie one past the
// last visible column and row, so a head crossing an edge spends one tick
// outside the field.
func Wrap(c Cell) Cell {
	if c.X < 0 {
		c.X = Columns
	}
	if c.X > Columns {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = Rows
	}
	if c.Y > Rows {
		c.Y = 0
	}
	return c
}

func (g *Game) rollFruit() Cell {
	x := g.rng.Intn(Columns)
	y := g.rng.Intn(Rows)
	return Cell{X: x, Y: y}
}
