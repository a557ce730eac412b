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

// printScoreUI writes the best score of the session as "Highscore: N" into a file.
type printScoreUI struct {
	File        string
	UI          UI
	initialised bool
}

func (p *printScoreUI) Initialise() error {
	p.initialised = true
	return p.UI.Initialise()
}

func (p *printScoreUI) NewRound(round int) {
	if p.UI != nil {
		p.UI.NewRound(round)
	}
}

func (p *printScoreUI) NewFrame(f Frame) {
	if p.UI != nil {
		p.UI.NewFrame(f)
	}
}

func (p *printScoreUI) Finish(s Summary) error {
	var err error
	if p.UI != nil {
		err = p.UI.Finish(s)
	}

	if p.initialised {
		f, newErr := os.Create(p.File)
		if newErr != nil {
			return newErr
		}
		defer f.Close()

		_, newErr = f.WriteString(fmt.Sprintf("Highscore: %d\n", s.Best()))
		if newErr != nil {
			return newErr
		}
	}

	return err
}

func (p *printScoreUI) Wait() {
	if p.UI != nil {
		p.UI.Wait()
	}
}
