// Copyright (c) 2025, soup and the cuemaker contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package cue

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Sheet describes the cue sheet to produce besides its tracks
type Sheet struct {
	Album      Album
	Filename   string // FILE directive target
	Format     string
	Performers []string // per-track performers, applied in order when set
}

// Converter turns chapter lists into cue sheets and handles the files on
// either side of the conversion.
type Converter struct {
	pattern FieldPattern
	logger  zerolog.Logger
}

// NewConverter creates a new Converter
func NewConverter(pattern FieldPattern, logger zerolog.Logger) *Converter {
	return &Converter{
		pattern: pattern,
		logger:  logger,
	}
}

// Convert extracts the tracks of text and renders the cue sheet
func (c *Converter) Convert(text string, sheet Sheet) (string, error) {
	tracks, err := ExtractTracks(text, c.pattern)
	if err != nil {
		return "", fmt.Errorf("failed to extract tracks: %w", err)
	}
	c.logger.Debug().Int("tracks", len(tracks)).Msg("extracted tracks")

	if len(sheet.Performers) > 0 {
		if err := ApplyPerformers(tracks, sheet.Performers); err != nil {
			return "", fmt.Errorf("failed to apply performers: %w", err)
		}
	}

	for _, t := range tracks {
		c.logger.Debug().
			Str("track", t.Number()).
			Str("title", t.Title).
			Stringer("index", t.Start).
			Msg("track")
	}

	return Render(sheet.Album, sheet.Filename, sheet.Format, tracks), nil
}

// ReadDescription reads the whole chapter list file
func (c *Converter) ReadDescription(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read description: %w", err)
	}
	c.logger.Debug().Str("path", filename).Int("bytes", len(data)).Msg("read description")
	return string(data), nil
}

// Write saves the cue sheet to filename, replacing any existing file
func (c *Converter) Write(filename, doc string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(doc); err != nil {
		return fmt.Errorf("failed to write cue sheet: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}

	c.logger.Debug().Str("path", filename).Msg("wrote cue sheet")
	return nil
}
