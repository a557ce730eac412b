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
	"fmt"
	"sync"

	"github.com/gdamore/tcell"
)

const (
	pauseText1 = "Paused"
	pauseText2 = "Press 'Space' to continue"
)

// terminalUI draws the game with tcell and reads the keyboard.
// It is both a UI and an InputSource.
type terminalUI struct {
	// NewScreen creates the screen. nil means tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)

	screen          tcell.Screen
	styles          map[rune]tcell.Style
	ctx             context.Context
	done            context.CancelFunc
	positionRunning int
	once            *sync.Once
	closeOnce       *sync.Once

	mu            sync.Mutex
	pending       Input
	quitRequested bool
	finished      bool
	summary       *Summary
}

func (tui *terminalUI) Initialise() error {
	var err error

	tui.ctx, tui.done = context.WithCancel(context.Background())
	tui.once = new(sync.Once)
	tui.closeOnce = new(sync.Once)

	newScreen := tui.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	tui.screen, err = newScreen()
	if err != nil {
		return &InitializationError{Asset: "terminal screen", Err: err}
	}

	err = tui.screen.Init()
	if err != nil {
		return &InitializationError{Asset: "terminal screen", Err: err}
	}

	tui.styles = map[rune]tcell.Style{
		runeEmpty: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		runeBody:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
		runeFruit: tcell.StyleDefault.Foreground(tcell.ColorRed),
	}

	tui.drawString(0, 0, "Waiting for game")
	tui.positionRunning = Columns + 2
	tui.screen.Show()

	go tui.mainLoop()

	return nil
}

func (tui *terminalUI) NewRound(round int) {
	tui.once.Do(func() {
		tui.screen.Clear()
	})
}

func (tui *terminalUI) NewFrame(f Frame) {
	tui.drawFrame(f)
}

func (tui *terminalUI) Poll(last Frame) Input {
	tui.mu.Lock()
	defer tui.mu.Unlock()
	in := tui.pending
	tui.pending = Input{}
	return in
}

func (tui *terminalUI) Finish(s Summary) error {
	tui.mu.Lock()
	tui.finished = true
	tui.summary = &s
	quit := tui.quitRequested
	tui.mu.Unlock()

	if quit {
		tui.close()
		return nil
	}

	tui.drawString(tui.positionRunning, Rows+1, "finished - press 'q' to exit")
	tui.screen.Show()
	return nil
}

// Interrupt ends the session as if the player had quit.
// It is used when the process is stopped by a signal.
func (tui *terminalUI) Interrupt() {
	tui.mu.Lock()
	tui.requestQuit()
	finished := tui.finished
	tui.mu.Unlock()
	if finished {
		tui.close()
	}
}

// QuitRequested reports whether the player asked to quit.
func (tui *terminalUI) QuitRequested() bool {
	tui.mu.Lock()
	defer tui.mu.Unlock()
	return tui.quitRequested
}

func (tui *terminalUI) Wait() {
	<-tui.ctx.Done()
}

func (tui *terminalUI) close() {
	tui.closeOnce.Do(func() {
		tui.screen.Fini()
		tui.mu.Lock()
		s := tui.summary
		tui.mu.Unlock()
		if s != nil {
			fmt.Println(s.String())
		}
		tui.done()
	})
}

func (tui *terminalUI) drawString(x, y int, v string) {
	for i, r := range []rune(v) {
		tui.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func (tui *terminalUI) drawFrame(f Frame) {
	tui.drawString(0, 0, fmt.Sprintf("%-*s", Columns, fmt.Sprintf("Highscore: %d", f.Highscore)))
	score := fmt.Sprintf("Score: %d", f.Score)
	tui.drawString(Columns-len(score), 0, score)

	field := f.field()
	for y := range field {
		for x, r := range field[y] {
			style, ok := tui.styles[r]
			if !ok {
				style = tui.styles[runeBody].Bold(true)
			}
			tui.screen.SetContent(x, y+1, r, nil, style)
		}
	}

	if f.Paused {
		tui.drawString((Columns-len(pauseText1))/2, Rows/2, pauseText1)
		tui.drawString((Columns-len(pauseText2))/2, Rows/2+1, pauseText2)
	}

	ss := buildOverviewStrings(f)
	for i, s := range ss {
		tui.drawString(tui.positionRunning, i+1, fmt.Sprintf("%-30s", s))
	}
	tui.screen.Show()
}

func (tui *terminalUI) mainLoop() {
	for {
		e := tui.screen.PollEvent()
		if e == nil {
			// Screen finalised
			return
		}
		switch ev := e.(type) {
		case *tcell.EventResize:
			tui.screen.Sync()
		case *tcell.EventKey:
			tui.mu.Lock()
			switch ev.Key() {
			case tcell.KeyUp:
				tui.pending.Up = true
			case tcell.KeyDown:
				tui.pending.Down = true
			case tcell.KeyLeft:
				tui.pending.Left = true
			case tcell.KeyRight:
				tui.pending.Right = true
			case tcell.KeyEscape, tcell.KeyCtrlC:
				tui.requestQuit()
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'w', 'W':
					tui.pending.Up = true
				case 's', 'S':
					tui.pending.Down = true
				case 'a', 'A':
					tui.pending.Left = true
				case 'd', 'D':
					tui.pending.Right = true
				case ' ':
					tui.pending.TogglePause = !tui.pending.TogglePause
				case 'q':
					tui.requestQuit()
				}
			}
			finished := tui.finished && tui.quitRequested
			tui.mu.Unlock()
			if finished {
				tui.close()
				return
			}
		}
	}
}

// requestQuit must be called with tui.mu held.
func (tui *terminalUI) requestQuit() {
	tui.pending.Quit = true
	tui.quitRequested = true
}
