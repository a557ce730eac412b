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
	"os"
)

// teeUI writes every simulated tick into a file and forwards everything to UI.
type teeUI struct {
	File string
	UI   UI
	f    *os.File
	err  error
}

// write keeps the first error, Finish reports it.
func (t *teeUI) write(s string) {
	if t.err != nil {
		return
	}
	_, t.err = t.f.WriteString(s)
}

func (t *teeUI) Initialise() error {
	if t.f != nil {
		return fmt.Errorf("file already opened")
	}
	var err error
	t.err = nil
	t.f, err = os.Create(t.File)
	if err != nil {
		t.f = nil
		return err
	}
	if t.UI != nil {
		return t.UI.Initialise()
	}
	return nil
}

func (t *teeUI) NewRound(round int) {
	if t.f != nil {
		t.write(fmt.Sprintf("\nRound %d\n", round))
	}

	if t.UI != nil {
		t.UI.NewRound(round)
	}
}

func (t *teeUI) NewFrame(f Frame) {
	if t.f != nil && f.Stepped {
		t.write("\n")
		t.write(f.PrintGame(false))
		t.write("\n\n")

		ss := buildOverviewStrings(f)
		for i := range ss {
			t.write(ss[i])
			t.write("\n")
		}
	}

	if t.UI != nil {
		t.UI.NewFrame(f)
	}
}

func (t *teeUI) Finish(s Summary) error {
	var err error
	if t.f != nil {
		t.write(fmt.Sprintf("\n%s\n", s.String()))
		err = t.f.Close()
		if t.err != nil {
			err = t.err
		}
		t.f = nil
	}
	if t.UI != nil {
		newErr := t.UI.Finish(s)
		if newErr != nil && err != nil {
			return fmt.Errorf("two errors: %s, %s", err.Error(), newErr.Error())
		} else if newErr != nil {
			err = newErr
		}
	}
	return err
}

func (t *teeUI) Wait() {
	if t.UI != nil {
		t.UI.Wait()
	}
}
