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
	"encoding/gob"
	"os"
)

// Dump is the content of a file written by dumpUI.
type Dump struct {
	Summary Summary
	Frames  []Frame
}

// dumpUI collects all simulated ticks and writes them as gob on Finish.
type dumpUI struct {
	File   string
	UI     UI
	frames []Frame
}

func (d *dumpUI) Initialise() error {
	if d.UI != nil {
		return d.UI.Initialise()
	}
	return nil
}

func (d *dumpUI) NewRound(round int) {
	if d.UI != nil {
		d.UI.NewRound(round)
	}
}

func (d *dumpUI) NewFrame(f Frame) {
	if f.Stepped {
		d.frames = append(d.frames, f)
	}

	if d.UI != nil {
		d.UI.NewFrame(f)
	}
}

func (d *dumpUI) Finish(s Summary) error {
	var err error
	if d.UI != nil {
		err = d.UI.Finish(s)
	}

	if len(d.frames) == 0 {
		return err
	}

	f, newErr := os.Create(d.File)
	if newErr != nil {
		return newErr
	}
	defer f.Close()
	enc := gob.NewEncoder(f)
	newErr = enc.Encode(Dump{Summary: s, Frames: d.frames})

	if newErr != nil {
		return newErr
	}

	return err
}

func (d *dumpUI) Wait() {
	if d.UI != nil {
		d.UI.Wait()
	}
}
