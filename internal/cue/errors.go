// Copyright (c) 2025, soup and the cuemaker contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package cue

import (
	"errors"
	"fmt"
)

// TooManyTracksError is returned when the input has more lines than a
// cue sheet can hold tracks.
type TooManyTracksError struct {
	Count int
}

func (e *TooManyTracksError) Error() string {
	return fmt.Sprintf("a cue sheet cannot contain more than %d tracks, got %d", MaxTracks, e.Count)
}

// LineFormatError is returned when a line does not fit the field pattern.
type LineFormatError struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *LineFormatError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
}

// ConfigurationError is returned when the extraction settings are unusable,
// e.g. a slot pointing past the last capture group.
type ConfigurationError struct {
	Slot   string
	Index  int
	Groups int
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s configuration: %s", e.Slot, e.Reason)
	}
	return fmt.Sprintf("%s slot %d does not exist (pattern has %d groups)", e.Slot, e.Index, e.Groups)
}

var (
	errMissing   = errors.New("value not captured")
	errNotNumber = errors.New("not a number")
)
