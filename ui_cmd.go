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
	"io"
	"os"
	"strings"
)

// cmdUI prints every simulated tick to stdout.
type cmdUI struct {
	out io.Writer
}

func (c cmdUI) writer() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

func (c cmdUI) Initialise() error {
	fmt.Fprintf(c.writer(), "Waiting for game\n")
	return nil
}

func (c cmdUI) NewRound(round int) {
	fmt.Fprintf(c.writer(), "\nRound %d\n", round)
}

func (c cmdUI) NewFrame(f Frame) {
	if !f.Stepped {
		return
	}
	w := c.writer()
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.PrintGame(true))
	fmt.Fprintln(w)

	ss := buildOverviewStrings(f)
	fmt.Fprintln(w, strings.Join(ss, " | "))
}

func (c cmdUI) Finish(s Summary) error {
	fmt.Fprintf(c.writer(), "\n%s\n\n", s.String())
	return nil
}

func (c cmdUI) Wait() {
}

// quietUI only prints the summary.
type quietUI struct {
	out io.Writer
}

func (q quietUI) Initialise() error {
	return nil
}

func (q quietUI) NewRound(round int) {}

func (q quietUI) NewFrame(f Frame) {}

func (q quietUI) Finish(s Summary) error {
	w := q.out
	if w == nil {
		w = os.Stdout
	}
	_, err := fmt.Fprintln(w, s.String())
	return err
}

func (q quietUI) Wait() {
}
