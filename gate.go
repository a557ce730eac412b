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
	"time"
)

// Gate decides when the simulation advances by one tick.
// Elapsed time is accumulated until it exceeds the current delay.
type Gate struct {
	acc time.Duration
}

// Accumulate adds elapsed time. Callers only accumulate while the game is running.
func (g *Gate) Accumulate(elapsed time.Duration) {
	g.acc += elapsed
}

// Ready reports whether a tick is due. If so the accumulator is reset to zero;
// time beyond the delay is discarded, not carried over.
func (g *Gate) Ready(delay time.Duration) bool {
	if g.acc > delay {
		g.acc = 0
		return true
	}
	return false
}
