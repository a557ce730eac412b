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
	"fmt"
	"strings"
	"time"
)

var colours = map[rune]string{
	runeEmpty: "\033[32m",
	runeBody:  "\033[33m",
	runeFruit: "\033[31m",
}
var colourHead = "\033[93m"
var colourReset = "\033[0m"

const (
	runeEmpty = '·'
	runeBody  = '●'
	runeFruit = '◆'
)

// The UI interface allows the usage of different UIs.
//
// NewRound is called at the start of the session and after every reset,
// NewFrame once per loop iteration. Both are called from the loop goroutine.
type UI interface {
	Initialise() error
	NewRound(round int)
	NewFrame(f Frame)
	Finish(s Summary) error
	Wait()
}

// InputSource supplies the logical inputs for one loop iteration.
type InputSource interface {
	Poll(last Frame) Input
}

// Frame is a snapshot of the game published after each loop iteration.
type Frame struct {
	Body      []Cell
	Fruit     Cell
	Direction Direction
	Score     int
	Highscore int
	Delay     time.Duration
	Paused    bool

	Tick  int
	Round int

	Stepped bool
	Ate     bool
	Reset   bool
}

// Head returns the head cell of the frame.
func (f Frame) Head() Cell {
	if len(f.Body) == 0 {
		return Cell{}
	}
	return f.Body[0]
}

// Summary holds the result of a session.
type Summary struct {
	Session   string
	Score     int
	Highscore int
	Ticks     int
	Rounds    int
	Runtime   time.Duration
}

// Best returns the best score of the session, including the unfinished round.
func (s Summary) Best() int {
	if s.Score > s.Highscore {
		return s.Score
	}
	return s.Highscore
}

func (s Summary) String() string {
	return fmt.Sprintf("session %s: highscore %d, score %d, %d ticks, %d rounds, %s", s.Session, s.Best(), s.Score, s.Ticks, s.Rounds, s.Runtime.Truncate(time.Second))
}

func headRune(d Direction) rune {
	switch d {
	case DirectionUp:
		return '⮉'
	case DirectionRight:
		return '⮊'
	case DirectionDown:
		return '⮋'
	case DirectionLeft:
		return '⮈'
	}
	return runeBody
}

// field returns the visible field as runes, indexed [y][x].
// Cells outside the field are not shown.
func (f Frame) field() [][]rune {
	field := make([][]rune, Rows)
	for y := range field {
		field[y] = make([]rune, Columns)
		for x := range field[y] {
			field[y][x] = runeEmpty
		}
	}
	set := func(c Cell, r rune) {
		if c.X < 0 || c.X >= Columns || c.Y < 0 || c.Y >= Rows {
			return
		}
		field[c.Y][c.X] = r
	}
	set(f.Fruit, runeFruit)
	// Tail first so the head stays visible on a collision.
	for i := len(f.Body) - 1; i >= 0; i-- {
		if i == 0 {
			set(f.Body[i], headRune(f.Direction))
		} else {
			set(f.Body[i], runeBody)
		}
	}
	return field
}

// PrintGame returns a string representation of the field.
func (f Frame) PrintGame(colour bool) string {
	var s strings.Builder
	field := f.field()
	for y := range field {
		for _, r := range field[y] {
			if colour {
				c, ok := colours[r]
				if !ok {
					c = colourHead
				}
				s.WriteString(c)
			}
			s.WriteRune(r)
			if colour {
				s.WriteString(colourReset)
			}
		}
		if y < len(field)-1 {
			s.WriteRune('\n')
		}
	}
	return s.String()
}

func buildOverviewStrings(f Frame) []string {
	ss := make([]string, 0, 10)
	ss = append(ss, fmt.Sprintf("round: %d", f.Round))
	ss = append(ss, fmt.Sprintf("tick: %d", f.Tick))
	ss = append(ss, fmt.Sprintf("score: %d", f.Score))
	ss = append(ss, fmt.Sprintf("highscore: %d", f.Highscore))
	ss = append(ss, fmt.Sprintf("length: %d/%d", len(f.Body), BodyCapacity))
	ss = append(ss, fmt.Sprintf("delay: %s", f.Delay))
	ss = append(ss, fmt.Sprintf("direction: %s", f.Direction))
	h := f.Head()
	ss = append(ss, fmt.Sprintf("head: %d,%d", h.X, h.Y))
	ss = append(ss, fmt.Sprintf("fruit: %d,%d", f.Fruit.X, f.Fruit.Y))
	if f.Paused {
		ss = append(ss, "paused")
	} else {
		ss = append(ss, "running")
	}
	return ss
}
