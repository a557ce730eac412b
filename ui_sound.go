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

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	soundSampleRate = beep.SampleRate(44100)
	fruitTone       = 880
	fruitToneLength = 50 * time.Millisecond
	resetTone       = 220
	resetToneLength = 300 * time.Millisecond
)

// soundUI plays a short tone whenever a fruit is eaten and a low one on reset.
// A missing audio device is not fatal, the game then runs without sound.
type soundUI struct {
	UI      UI
	enabled bool
}

func (s *soundUI) Initialise() error {
	err := speaker.Init(soundSampleRate, soundSampleRate.N(time.Second/10))
	if err != nil {
		log.Println("sound:", "audio initialisation failed:", err)
	} else {
		s.enabled = true
	}

	if s.UI != nil {
		return s.UI.Initialise()
	}
	return nil
}

func (s *soundUI) NewRound(round int) {
	if s.UI != nil {
		s.UI.NewRound(round)
	}
}

func (s *soundUI) NewFrame(f Frame) {
	switch {
	case f.Reset:
		s.play(resetTone, resetToneLength)
	case f.Ate:
		s.play(fruitTone, fruitToneLength)
	}

	if s.UI != nil {
		s.UI.NewFrame(f)
	}
}

func (s *soundUI) Finish(sum Summary) error {
	if s.enabled {
		speaker.Close()
		s.enabled = false
	}
	if s.UI != nil {
		return s.UI.Finish(sum)
	}
	return nil
}

func (s *soundUI) Wait() {
	if s.UI != nil {
		s.UI.Wait()
	}
}

func (s *soundUI) play(freq float64, d time.Duration) {
	if !s.enabled {
		return
	}
	sine, err := generators.SineTone(soundSampleRate, freq)
	if err != nil {
		log.Println("sound:", err)
		return
	}
	speaker.Play(beep.Take(soundSampleRate.N(d), sine))
}
