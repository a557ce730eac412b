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
	"bytes"
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame() Frame {
	return Frame{
		Body:      []Cell{{1, 0}, {0, 0}},
		Fruit:     Cell{3, 0},
		Direction: DirectionRight,
		Score:     10,
		Highscore: 20,
		Delay:     90 * time.Millisecond,
		Tick:      4,
		Round:     1,
		Stepped:   true,
	}
}

func testSummary() Summary {
	return Summary{Session: "test", Score: 30, Highscore: 20, Ticks: 100, Rounds: 2, Runtime: 3 * time.Second}
}

func TestPrintGame(t *testing.T) {
	lines := strings.Split(testFrame().PrintGame(false), "\n")
	require.Len(t, lines, Rows)
	for _, l := range lines {
		assert.Equal(t, Columns, len([]rune(l)))
	}
	assert.True(t, strings.HasPrefix(lines[0], "●⮊·◆·"), lines[0])
	assert.Equal(t, strings.Repeat("·", Columns), lines[1])
}

func TestPrintGameHidesOffFieldHead(t *testing.T) {
	f := Frame{Body: []Cell{{Columns, 2}, {Columns - 1, 2}}, Fruit: Cell{0, 0}, Direction: DirectionRight}
	lines := strings.Split(f.PrintGame(false), "\n")
	assert.Equal(t, strings.Repeat("·", Columns-1)+"●", lines[2])
}

func TestPrintGameColour(t *testing.T) {
	s := testFrame().PrintGame(true)
	assert.Contains(t, s, colours[runeFruit]+string(runeFruit)+colourReset)
	assert.Contains(t, s, colourHead+"⮊"+colourReset)
}

func TestSummaryBest(t *testing.T) {
	assert.Equal(t, 30, testSummary().Best())
	assert.Equal(t, 20, Summary{Score: 10, Highscore: 20}.Best())
	assert.Contains(t, testSummary().String(), "highscore 30")
}

func TestBuildOverviewStrings(t *testing.T) {
	ss := buildOverviewStrings(testFrame())
	assert.Contains(t, ss, "score: 10")
	assert.Contains(t, ss, "highscore: 20")
	assert.Contains(t, ss, "length: 2/100")
	assert.Contains(t, ss, "delay: 90ms")
	assert.Contains(t, ss, "direction: right")
	assert.Contains(t, ss, "running")
}

func TestCmdUI(t *testing.T) {
	var buf bytes.Buffer
	c := cmdUI{out: &buf}
	require.NoError(t, c.Initialise())

	f := testFrame()
	f.Stepped = false
	c.NewFrame(f)
	assert.Equal(t, "Waiting for game\n", buf.String())

	c.NewFrame(testFrame())
	assert.Contains(t, buf.String(), "score: 10 | highscore: 20")

	require.NoError(t, c.Finish(testSummary()))
	assert.Contains(t, buf.String(), "session test")
}

func TestQuietUI(t *testing.T) {
	var buf bytes.Buffer
	q := quietUI{out: &buf}
	require.NoError(t, q.Initialise())
	q.NewFrame(testFrame())
	require.NoError(t, q.Finish(testSummary()))
	assert.Equal(t, testSummary().String()+"\n", buf.String())
}

func TestTeeUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tee.txt")
	inner := new(recordingUI)
	tee := &teeUI{File: file, UI: inner}

	require.NoError(t, tee.Initialise())
	assert.Error(t, tee.Initialise(), "file is already open")
	tee.NewRound(1)
	tee.NewFrame(testFrame())
	require.NoError(t, tee.Finish(testSummary()))
	tee.Wait()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, "Round 1")
	assert.Contains(t, s, "●⮊·◆")
	assert.Contains(t, s, "score: 10")
	assert.Contains(t, s, testSummary().String())

	assert.True(t, inner.initialised)
	assert.Equal(t, []int{1}, inner.rounds)
	assert.Len(t, inner.frames, 1)
	assert.Len(t, inner.summaries, 1)
	assert.True(t, inner.waited)
}

func TestTeeUIWriteError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tee.txt")
	inner := new(recordingUI)
	tee := &teeUI{File: file, UI: inner}

	require.NoError(t, tee.Initialise())
	require.NoError(t, tee.f.Close())
	tee.NewFrame(testFrame())

	err := tee.Finish(testSummary())
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.Len(t, inner.frames, 1)
	assert.Len(t, inner.summaries, 1)
}

func readDump(file string) (Dump, error) {
	var d Dump
	f, err := os.Open(file)
	if err != nil {
		return d, err
	}
	defer f.Close()
	err = gob.NewDecoder(f).Decode(&d)
	return d, err
}

func TestDumpUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dump.gob")
	inner := new(recordingUI)
	d := &dumpUI{File: file, UI: inner}

	require.NoError(t, d.Initialise())
	first := testFrame()
	idle := testFrame()
	idle.Stepped = false
	second := testFrame()
	second.Tick = 5
	second.Ate = true
	d.NewFrame(first)
	d.NewFrame(idle)
	d.NewFrame(second)
	require.NoError(t, d.Finish(testSummary()))

	dump, err := readDump(file)
	require.NoError(t, err)
	assert.Equal(t, testSummary(), dump.Summary)
	require.Len(t, dump.Frames, 2, "only simulated ticks are dumped")
	assert.Equal(t, 4, dump.Frames[0].Tick)
	assert.True(t, dump.Frames[1].Ate)
	assert.Equal(t, first.Body, dump.Frames[0].Body)

	assert.Len(t, inner.frames, 3)
}

func TestDumpUIWithoutFrames(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dump.gob")
	d := &dumpUI{File: file, UI: new(recordingUI)}
	require.NoError(t, d.Initialise())
	require.NoError(t, d.Finish(testSummary()))

	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestPrintScoreUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "score.txt")
	p := &printScoreUI{File: file, UI: new(recordingUI)}

	require.NoError(t, p.Initialise())
	p.NewFrame(testFrame())
	require.NoError(t, p.Finish(testSummary()))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "Highscore: 30\n", string(b))
}

func TestPrintScoreUINotInitialised(t *testing.T) {
	file := filepath.Join(t.TempDir(), "score.txt")
	p := &printScoreUI{File: file, UI: new(recordingUI)}
	require.NoError(t, p.Finish(testSummary()))

	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestSoundUIDisabledForwards(t *testing.T) {
	inner := new(recordingUI)
	s := &soundUI{UI: inner}

	// Without Initialise no audio device is touched.
	f := testFrame()
	f.Ate = true
	s.NewRound(1)
	s.NewFrame(f)
	require.NoError(t, s.Finish(testSummary()))

	assert.Len(t, inner.frames, 1)
	assert.Equal(t, []int{1}, inner.rounds)
	assert.Len(t, inner.summaries, 1)
}

func TestInitializationError(t *testing.T) {
	cause := errors.New("no such file")
	var err error = &InitializationError{Asset: "texture a.png", Err: cause}

	assert.ErrorIs(t, err, cause)
	var ie *InitializationError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "texture a.png", ie.Asset)
	assert.Equal(t, "can not initialise texture a.png: no such file", err.Error())
}
