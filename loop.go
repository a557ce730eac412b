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
	"context"
	"errors"
	"time"
)

// A clock paces the loop. Wait blocks until the next iteration is due and
// returns the time elapsed since the previous one.
type clock interface {
	Wait(ctx context.Context) (time.Duration, error)
}

type tickerClock struct {
	ticker *time.Ticker
	last   time.Time
}

func newTickerClock(fps int) *tickerClock {
	return &tickerClock{
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
		last:   time.Now(),
	}
}

func (c *tickerClock) Wait(ctx context.Context) (time.Duration, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case now := <-c.ticker.C:
		elapsed := now.Sub(c.last)
		c.last = now
		return elapsed, nil
	}
}

func (c *tickerClock) Stop() {
	c.ticker.Stop()
}

// fastClock does not wait at all. Every iteration is reported as one frame.
type fastClock struct {
	frame time.Duration
}

func (c fastClock) Wait(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.frame, nil
}

// quitter reports a quit request made outside of the InputSource in use.
type quitter interface {
	QuitRequested() bool
}

// withQuit takes the inputs of Input and adds the quit requests of Keys.
type withQuit struct {
	Input InputSource
	Keys  quitter
}

func (w withQuit) Poll(last Frame) Input {
	in := w.Input.Poll(last)
	if w.Keys.QuitRequested() {
		in.Quit = true
	}
	return in
}

// runLoop advances s until the player quits, ctx is done or maxTicks ticks
// have been simulated. maxTicks <= 0 disables the limit.
func runLoop(ctx context.Context, s *Session, in InputSource, c clock, maxTicks int) error {
	for {
		elapsed, err := c.Wait(ctx)
		if err != nil {
			// Cancelled from outside, not an error of the game.
			return nil
		}

		err = s.Advance(elapsed, in.Poll(s.Last()))
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		if maxTicks > 0 && s.Ticks() >= maxTicks {
			return nil
		}
	}
}
