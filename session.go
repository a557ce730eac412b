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
	"log"
	"time"

	"github.com/google/uuid"
)

// Session owns a game and runs one loop iteration per Advance.
// All state is owned by the goroutine calling Advance.
type Session struct {
	ID string

	game  *Game
	gate  Gate
	ui    UI
	tick  int
	round int
	start time.Time
	last  Frame
}

// NewSession returns a session for game reporting to ui.
func NewSession(game *Game, ui UI) *Session {
	s := &Session{
		ID:    uuid.NewString(),
		game:  game,
		ui:    ui,
		round: 1,
		start: time.Now(),
	}
	s.last = s.frame(StepResult{}, false)
	return s
}

// Start announces the first round and the initial frame to the UI.
func (s *Session) Start() {
	s.ui.NewRound(s.round)
	s.ui.NewFrame(s.last)
}

// Advance runs one loop iteration with the time elapsed since the previous one.
//
// Time only accumulates while the game is running, and direction changes
// are ignored while paused. At most one tick is simulated per call.
// ErrQuit is returned after the frame is published if in.Quit is set.
func (s *Session) Advance(elapsed time.Duration, in Input) error {
	g := s.game

	if !g.Paused {
		s.gate.Accumulate(elapsed)
	}
	if in.TogglePause {
		g.Paused = !g.Paused
	}
	if !g.Paused {
		g.Direction = UpdateDirection(g.Direction, in)
	}

	var r StepResult
	stepped := s.gate.Ready(g.Delay)
	if stepped {
		s.tick++
		var err error
		r, err = g.Step()
		if err != nil {
			// Only a full body ends up here, the round is over.
			log.Println("session:", s.ID, "round", s.round, "ended:", err)
			g.Reset()
			r.Reset = true
		}
	}

	if r.Reset {
		log.Println("session:", s.ID, "round", s.round, "reset with highscore", g.Highscore)
		s.round++
		s.ui.NewRound(s.round)
	}

	s.last = s.frame(r, stepped)
	s.ui.NewFrame(s.last)

	if in.Quit {
		return ErrQuit
	}
	return nil
}

// Last returns the most recently published frame.
func (s *Session) Last() Frame {
	return s.last
}

// Ticks returns the number of simulated ticks.
func (s *Session) Ticks() int {
	return s.tick
}

// Summary returns the current result of the session.
func (s *Session) Summary() Summary {
	return Summary{
		Session:   s.ID,
		Score:     s.game.Score,
		Highscore: s.game.Highscore,
		Ticks:     s.tick,
		Rounds:    s.round,
		Runtime:   time.Since(s.start),
	}
}

func (s *Session) frame(r StepResult, stepped bool) Frame {
	g := s.game
	return Frame{
		Body:      g.Body.Cells(),
		Fruit:     g.Fruit,
		Direction: g.Direction,
		Score:     g.Score,
		Highscore: g.Highscore,
		Delay:     g.Delay,
		Paused:    g.Paused,
		Tick:      s.tick,
		Round:     s.round,
		Stepped:   stepped,
		Ate:       r.Ate,
		Reset:     r.Reset,
	}
}
