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

// snake is a single-player snake game.
// The snake grows with every fruit, wraps around the edges of the field
// and starts over when it runs into itself.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	err = run(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg Config) (err error) {
	logFile, err := setupLogging(cfg.Log, cfg.UI)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	var UI UI
	var input InputSource
	var window *windowUI
	var tui *terminalUI
	switch cfg.UI {
	case uiQuiet:
		UI = quietUI{}
	case uiCmd:
		UI = cmdUI{}
	case uiWindow:
		window = &windowUI{TexturePath: cfg.Texture, MaxTicks: cfg.Ticks}
		UI = window
		input = window
	default:
		tui = new(terminalUI)
		UI = tui
		input = tui
	}

	if cfg.Autopilot {
		input = newAutopilot()
		if tui != nil {
			// The keyboard can still quit.
			input = withQuit{Input: input, Keys: tui}
		}
	}
	if window != nil {
		window.Input = input
	}

	if cfg.Profile != "" {
		f, err := os.Create(cfg.Profile)
		if err != nil {
			return err
		}
		defer f.Close()
		err = pprof.StartCPUProfile(f)
		if err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	if cfg.Sound {
		UI = &soundUI{UI: UI}
	}

	if cfg.Print != "" {
		UI = &teeUI{File: cfg.Print, UI: UI}
	}

	if cfg.Dump != "" {
		UI = &dumpUI{File: cfg.Dump, UI: UI}
	}

	if cfg.PrintScore != "" {
		UI = &printScoreUI{File: cfg.PrintScore, UI: UI}
	}

	err = UI.Initialise()
	if err != nil {
		return err
	}

	var session *Session
	defer func() {
		r := recover()
		if r != nil {
			// Clearly close UI
			if session != nil {
				UI.Finish(session.Summary())
				UI.Wait()
			}
			err = fmt.Errorf("%v", r)
		}
	}()

	session = NewSession(NewGame(NewRoller(cfg.Seed)), UI)
	log.Println("session:", session.ID, "seed", cfg.Seed)
	session.Start()

	if window != nil {
		err = window.Run(session)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var c clock
		if cfg.Fast {
			c = fastClock{frame: time.Second / time.Duration(cfg.FPS)}
		} else {
			tc := newTickerClock(cfg.FPS)
			defer tc.Stop()
			c = tc
		}
		err = runLoop(ctx, session, input, c, cfg.Ticks)
		if ctx.Err() != nil && tui != nil {
			tui.Interrupt()
		}
	}

	finishErr := UI.Finish(session.Summary())
	UI.Wait()
	return errors.Join(err, finishErr)
}
