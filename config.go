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
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

const (
	uiTerminal = "terminal"
	uiWindow   = "window"
	uiCmd      = "cmd"
	uiQuiet    = "quiet"
)

// Config holds the command line configuration.
// The rules of the game are fixed and not part of it.
type Config struct {
	UI         string
	Autopilot  bool
	Seed       uint64
	FPS        int
	Fast       bool
	Ticks      int
	Texture    string
	Sound      bool
	Print      string
	Dump       string
	PrintScore string
	Profile    string
	Log        string
}

// parseConfig parses the flags in args. SNAKE_SEED and SNAKE_TEXTURE
// replace the matching flags if set.
func parseConfig(args []string, getenv func(string) string) (Config, error) {
	var c Config

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.StringVar(&c.UI, "ui", uiTerminal, "User interface: terminal, window, cmd or quiet")
	fs.BoolVar(&c.Autopilot, "autopilot", false, "Let the computer play")
	fs.Uint64Var(&c.Seed, "seed", 0, "Seed for fruit placement. 0 uses the current time")
	fs.IntVar(&c.FPS, "fps", 60, "Loop iterations per second")
	fs.BoolVar(&c.Fast, "fast", false, "Simulate as fast as possible instead of real time. Needs -autopilot")
	fs.IntVar(&c.Ticks, "ticks", 0, "Stop after this many ticks. 0 disables the limit")
	fs.StringVar(&c.Texture, "texture", "", "Sprite texture for the window ui (png)")
	fs.BoolVar(&c.Sound, "sound", false, "Enables sound effects")
	fs.StringVar(&c.Print, "print", "", "Prints output into file")
	fs.StringVar(&c.Dump, "dump", "", "Dumps game data as gob to file")
	fs.StringVar(&c.PrintScore, "printscore", "", "Prints the highscore of the session into file")
	fs.StringVar(&c.Profile, "profile", "", "Profile program to file")
	fs.StringVar(&c.Log, "log", "", "Write log to file")

	err := fs.Parse(args)
	if err != nil {
		return c, err
	}

	// Replace flags
	{
		env := getenv("SNAKE_SEED")
		if env != "" {
			fmt.Println("Using SEED from env:", env)
			c.Seed, err = strconv.ParseUint(env, 10, 64)
			if err != nil {
				return c, fmt.Errorf("SNAKE_SEED: %w", err)
			}
		}

		env = getenv("SNAKE_TEXTURE")
		if env != "" {
			fmt.Println("Using TEXTURE from env:", env)
			c.Texture = env
		}
	}

	switch c.UI {
	case uiTerminal, uiWindow:
	case uiCmd, uiQuiet:
		if !c.Autopilot {
			return c, fmt.Errorf("ui %s reads no keyboard, use -autopilot", c.UI)
		}
	default:
		return c, fmt.Errorf("unknown ui %q", c.UI)
	}

	if c.FPS <= 0 {
		return c, fmt.Errorf("fps must be positive (is %d)", c.FPS)
	}
	if c.Ticks < 0 {
		return c, fmt.Errorf("ticks must not be negative (is %d)", c.Ticks)
	}
	if c.Fast {
		if !c.Autopilot {
			return c, fmt.Errorf("fast needs autopilot")
		}
		if c.UI == uiWindow {
			return c, fmt.Errorf("fast is not supported by the window ui")
		}
	}

	return c, nil
}

// setupLogging directs the log package. Without a log file, logging is
// discarded when the terminal ui owns the screen.
func setupLogging(file string, ui string) (*os.File, error) {
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		return f, nil
	}
	if ui == uiTerminal {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	log.SetOutput(os.Stderr)
	return nil, nil
}
