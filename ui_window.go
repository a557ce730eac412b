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
	"fmt"
	"image/color"
	_ "image/png"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	windowWidth  = Columns * SquareSize
	windowHeight = Rows*SquareSize + SquareSize
)

var (
	backgroundColour = color.RGBA{0, 128, 0, 255}
	snakeColour      = color.RGBA{255, 255, 0, 255}
	fruitColour      = color.RGBA{255, 0, 0, 255}
)

// windowUI draws the game into a window using ebiten. Other than the terminal
// based UIs it owns the loop: Run drives the session from ebiten's Update.
//
// Input is read from the keyboard unless Input is set.
type windowUI struct {
	TexturePath string
	MaxTicks    int
	Input       InputSource

	texture *ebiten.Image
	session *Session
	frame   Frame
	last    time.Time
}

func (w *windowUI) Initialise() error {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Snake Game!")

	if w.TexturePath == "" {
		w.texture = ebiten.NewImage(8, 8)
		w.texture.Fill(color.White)
		return nil
	}

	img, _, err := ebitenutil.NewImageFromFile(w.TexturePath)
	if err != nil {
		return &InitializationError{Asset: fmt.Sprintf("texture %s", w.TexturePath), Err: err}
	}
	w.texture = img
	return nil
}

func (w *windowUI) NewRound(round int) {}

func (w *windowUI) NewFrame(f Frame) {
	w.frame = f
}

func (w *windowUI) Finish(s Summary) error {
	fmt.Println(s.String())
	return nil
}

func (w *windowUI) Wait() {}

// Poll reads the keyboard. Arrow keys and WASD steer, space toggles pause.
// Escape is handled by Update for every input source.
func (w *windowUI) Poll(last Frame) Input {
	return Input{
		Up:          ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:        ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

// Run blocks until the window is closed or the session ends.
func (w *windowUI) Run(s *Session) error {
	w.session = s
	w.last = time.Now()
	if w.Input == nil {
		w.Input = w
	}
	return ebiten.RunGame(w)
}

func (w *windowUI) Update() error {
	now := time.Now()
	elapsed := now.Sub(w.last)
	w.last = now

	in := w.Input.Poll(w.frame)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Quit = true
	}

	err := w.session.Advance(elapsed, in)
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}
	if w.MaxTicks > 0 && w.session.Ticks() >= w.MaxTicks {
		return ebiten.Termination
	}
	return nil
}

func (w *windowUI) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for x := 0; x < Columns; x++ {
		for y := 0; y < Rows; y++ {
			w.drawCell(screen, Cell{X: x, Y: y}, backgroundColour)
		}
	}
	for _, c := range w.frame.Body {
		w.drawCell(screen, c, snakeColour)
	}
	w.drawCell(screen, w.frame.Fruit, fruitColour)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Highscore: %d", w.frame.Highscore), 0, 0)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", w.frame.Score), windowWidth-4*SquareSize, 0)

	if w.frame.Paused {
		ebitenutil.DebugPrintAt(screen, pauseText1+"\n"+pauseText2, windowWidth/2-len(pauseText2)*3, windowHeight/2)
	}
}

func (w *windowUI) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

// drawCell draws the texture scaled to a single cell. The first row of the
// window is reserved for the score line.
func (w *windowUI) drawCell(screen *ebiten.Image, c Cell, clr color.Color) {
	b := w.texture.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(SquareSize)/float64(b.Dx()), float64(SquareSize)/float64(b.Dy()))
	op.GeoM.Translate(float64(c.X*SquareSize), float64(c.Y*SquareSize+SquareSize))
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(w.texture, op)
}
