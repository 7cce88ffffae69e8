// Copyright (c) 2025, soup and the cuemaker contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package cue

import (
	"fmt"
	"strconv"
	"strings"
)

// NoSlot marks an unused slot in a FieldPattern
const NoSlot = -1

// FieldPattern describes which capture of a Matcher holds which field
type FieldPattern struct {
	Matcher   Matcher
	Hour      int // NoSlot when timestamps never carry hours
	Minute    int
	Second    int
	Title     int
	Performer int // NoSlot when tracks carry no performer
}

// validate checks every configured slot against the matcher's group count
func (fp FieldPattern) validate() error {
	if fp.Matcher == nil {
		return &ConfigurationError{Slot: "pattern", Reason: "no matcher configured"}
	}
	type slot struct {
		name  string
		index int
	}
	slots := []slot{{"minute", fp.Minute}, {"second", fp.Second}, {"title", fp.Title}}
	if fp.Hour != NoSlot {
		slots = append(slots, slot{"hour", fp.Hour})
	}
	if fp.Performer != NoSlot {
		slots = append(slots, slot{"performer", fp.Performer})
	}

	groups := fp.Matcher.Groups()
	for _, s := range slots {
		if s.index < 0 || s.index >= groups {
			return &ConfigurationError{Slot: s.name, Index: s.index, Groups: groups}
		}
	}
	return nil
}

// ExtractTracks parses every line of text into a Track. A single line that
// does not fit the pattern fails the whole extraction.
func ExtractTracks(text string, fp FieldPattern) ([]Track, error) {
	if err := fp.validate(); err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) > MaxTracks {
		return nil, &TooManyTracksError{Count: len(lines)}
	}

	tracks := make([]Track, 0, len(lines))
	for i, line := range lines {
		track, err := extractTrack(i+1, strings.TrimSpace(line), fp)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

func extractTrack(index int, line string, fp FieldPattern) (Track, error) {
	captures, ok := fp.Matcher.Match(line)
	if !ok {
		return Track{}, &LineFormatError{Line: index, Text: line, Reason: "does not match pattern"}
	}
	if groups := fp.Matcher.Groups(); len(captures) != groups {
		return Track{}, &ConfigurationError{
			Slot:   "pattern",
			Reason: fmt.Sprintf("matcher returned %d captures, expected %d", len(captures), groups),
		}
	}

	var start Time
	var err error
	// a missing hour group means the timestamp had no hour part
	if fp.Hour != NoSlot && captures[fp.Hour].Matched {
		if start.Hours, err = number(captures[fp.Hour]); err != nil {
			return Track{}, &LineFormatError{Line: index, Text: line, Reason: "hour: " + err.Error()}
		}
	}
	if start.Minutes, err = number(captures[fp.Minute]); err != nil {
		return Track{}, &LineFormatError{Line: index, Text: line, Reason: "minute: " + err.Error()}
	}
	if start.Seconds, err = number(captures[fp.Second]); err != nil {
		return Track{}, &LineFormatError{Line: index, Text: line, Reason: "second: " + err.Error()}
	}

	track := Track{
		Index: index,
		Title: captures[fp.Title].Text,
		Start: start,
	}
	if fp.Performer != NoSlot {
		if c := captures[fp.Performer]; c.Matched {
			track.Performer = c.Text
			track.HasPerformer = true
		}
	}
	return track, nil
}

func number(c Capture) (int, error) {
	if !c.Matched {
		return 0, errMissing
	}
	n, err := strconv.Atoi(c.Text)
	if err != nil || n < 0 {
		return 0, errNotNumber
	}
	return n, nil
}

// ApplyPerformers sets the performer of each track from performers, in
// order. An empty entry leaves its track without a performer.
func ApplyPerformers(tracks []Track, performers []string) error {
	if len(performers) != len(tracks) {
		return &ConfigurationError{
			Slot:   "artist",
			Reason: fmt.Sprintf("got %d performers for %d tracks", len(performers), len(tracks)),
		}
	}
	for i, p := range performers {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tracks[i].Performer = p
		tracks[i].HasPerformer = true
	}
	return nil
}
