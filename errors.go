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
)

// ErrQuit is returned by Session.Advance when the player asked to quit.
var ErrQuit = errors.New("quit requested")

// InitializationError is returned when a required asset (screen, window, texture)
// can not be acquired. It is always raised before the game loop starts.
type InitializationError struct {
	Asset string
	Err   error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("can not initialise %s: %s", e.Asset, e.Err.Error())
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
