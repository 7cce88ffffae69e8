// Copyright (c) 2025, soup and the cuemaker contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package cue

import "fmt"

// MaxTracks is the largest number of tracks a cue sheet can describe.
const MaxTracks = 99

// Time is a track start position as written in a chapter list
type Time struct {
	Hours   int
	Minutes int
	Seconds int
}

// IndexMinutes folds the hours into the minute count, since INDEX
// positions only carry minutes:seconds:frames.
func (t Time) IndexMinutes() int {
	return t.Hours*60 + t.Minutes
}

// String renders the time as an INDEX position with zero frames
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:00", t.IndexMinutes(), t.Seconds)
}

// Track represents a single TRACK block of a cue sheet
type Track struct {
	Index        int
	Title        string
	Performer    string
	HasPerformer bool
	Start        Time
}

// Number returns the track index zero-padded to two digits
func (t Track) Number() string {
	return fmt.Sprintf("%02d", t.Index)
}

// Remark is a single REM entry
type Remark struct {
	Key   string
	Value string
}

// Album holds the album level header fields
type Album struct {
	Performer string
	Title     string
	Remarks   []Remark
}
