// Copyright (c) 2025, soup and the cuemaker contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package cue

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPattern = `(\[)?((\d{1,2}):)?(\d{1,2}):(\d{1,2})(\])? (.*)`

func defaultFieldPattern(t *testing.T) FieldPattern {
	t.Helper()
	m, err := NewRegexpMatcher(testPattern)
	require.NoError(t, err)
	return FieldPattern{Matcher: m, Hour: 2, Minute: 3, Second: 4, Title: 6, Performer: NoSlot}
}

func TestExtractTracks(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		title string
		start Time
		index string
	}{
		{"hours folded", "1:02:03 Title", "Title", Time{Hours: 1, Minutes: 2, Seconds: 3}, "62:03:00"},
		{"no hour", "4:15 Intro", "Intro", Time{Minutes: 4, Seconds: 15}, "04:15:00"},
		{"verbatim title", "00:00:00 My Song (Live)", "My Song (Live)", Time{}, "00:00:00"},
		{"brackets", "[12:34] Bracketed", "Bracketed", Time{Minutes: 12, Seconds: 34}, "12:34:00"},
		{"bracketed hours", "[2:00:59] Late", "Late", Time{Hours: 2, Seconds: 59}, "120:59:00"},
		{"surrounding whitespace", "   05:06 Padded   ", "Padded", Time{Minutes: 5, Seconds: 6}, "05:06:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracks, err := ExtractTracks(tt.line, defaultFieldPattern(t))
			require.NoError(t, err)
			require.Len(t, tracks, 1)

			track := tracks[0]
			assert.Equal(t, 1, track.Index)
			assert.Equal(t, "01", track.Number())
			assert.Equal(t, tt.title, track.Title)
			assert.Equal(t, tt.start, track.Start)
			assert.Equal(t, tt.index, track.Start.String())
			assert.False(t, track.HasPerformer)
		})
	}
}

func TestExtractTracksNumbering(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxTracks; i++ {
		b.WriteString("00:00 Track\n")
	}

	tracks, err := ExtractTracks(b.String(), defaultFieldPattern(t))
	require.NoError(t, err)
	require.Len(t, tracks, MaxTracks)

	for i, track := range tracks {
		assert.Equal(t, i+1, track.Index)
	}
	assert.Equal(t, "01", tracks[0].Number())
	assert.Equal(t, "12", tracks[11].Number())
	assert.Equal(t, "99", tracks[98].Number())
}

func TestExtractTracksTooMany(t *testing.T) {
	for _, line := range []string{"00:00 Track", "not a timestamp"} {
		text := strings.Repeat(line+"\n", MaxTracks+1)

		tracks, err := ExtractTracks(text, defaultFieldPattern(t))
		assert.Nil(t, tracks)

		var tooMany *TooManyTracksError
		require.ErrorAs(t, err, &tooMany)
		assert.Equal(t, MaxTracks+1, tooMany.Count)
	}
}

func TestExtractTracksLineFormat(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"empty input", "", 1},
		{"blank line", "00:00 Intro\n\n03:00 Outro", 2},
		{"no timestamp", "00:00 Intro\nJust some text", 2},
		{"missing space", "00:00Intro", 1},
		{"only one trailing newline stripped", "00:00 Intro\n\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracks, err := ExtractTracks(tt.text, defaultFieldPattern(t))
			assert.Nil(t, tracks)

			var lineErr *LineFormatError
			require.ErrorAs(t, err, &lineErr)
			assert.Equal(t, tt.line, lineErr.Line)
		})
	}
}

func TestExtractTracksConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*FieldPattern)
		slot   string
	}{
		{"title past last group", func(fp *FieldPattern) { fp.Title = 7 }, "title"},
		{"negative minute", func(fp *FieldPattern) { fp.Minute = -2 }, "minute"},
		{"performer past last group", func(fp *FieldPattern) { fp.Performer = 10 }, "performer"},
		{"hour past last group", func(fp *FieldPattern) { fp.Hour = 8 }, "hour"},
		{"no matcher", func(fp *FieldPattern) { fp.Matcher = nil }, "pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := defaultFieldPattern(t)
			tt.modify(&fp)

			_, err := ExtractTracks("00:00 Intro", fp)
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.slot, cfgErr.Slot)
		})
	}
}

func TestExtractTracksPerformerSlot(t *testing.T) {
	m, err := NewRegexpMatcher(`(\d{1,2}):(\d{1,2}) (.*?)(?: - (.*))?$`)
	require.NoError(t, err)
	fp := FieldPattern{Matcher: m, Hour: NoSlot, Minute: 0, Second: 1, Title: 2, Performer: 3}

	tracks, err := ExtractTracks("00:00 Song - Artist\n03:30 Solo\n", fp)
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	assert.Equal(t, "Song", tracks[0].Title)
	assert.True(t, tracks[0].HasPerformer)
	assert.Equal(t, "Artist", tracks[0].Performer)

	assert.Equal(t, "Solo", tracks[1].Title)
	assert.False(t, tracks[1].HasPerformer)
	assert.Equal(t, Time{Minutes: 3, Seconds: 30}, tracks[1].Start)
}

func TestExtractTracksNonNumeric(t *testing.T) {
	m, err := NewRegexpMatcher(`(\w+):(\w+) (.*)`)
	require.NoError(t, err)
	fp := FieldPattern{Matcher: m, Hour: NoSlot, Minute: 0, Second: 1, Title: 2, Performer: NoSlot}

	_, err = ExtractTracks("ab:12 Title", fp)
	var lineErr *LineFormatError
	require.ErrorAs(t, err, &lineErr)
	assert.Contains(t, lineErr.Reason, "minute")
}

// splitMatcher reads "mm.ss|title" lines without regular expressions
type splitMatcher struct{}

func (splitMatcher) Match(line string) ([]Capture, bool) {
	stamp, title, ok := strings.Cut(line, "|")
	if !ok {
		return nil, false
	}
	mm, ss, ok := strings.Cut(stamp, ".")
	if !ok {
		return nil, false
	}
	return []Capture{{Text: mm, Matched: true}, {Text: ss, Matched: true}, {Text: title, Matched: true}}, true
}

func (splitMatcher) Groups() int { return 3 }

func TestExtractTracksCustomMatcher(t *testing.T) {
	fp := FieldPattern{Matcher: splitMatcher{}, Hour: NoSlot, Minute: 0, Second: 1, Title: 2, Performer: NoSlot}

	tracks, err := ExtractTracks("75.05|Long One", fp)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "75:05:00", tracks[0].Start.String())
	assert.Equal(t, "Long One", tracks[0].Title)
}

func TestApplyPerformers(t *testing.T) {
	tracks := []Track{{Index: 1}, {Index: 2}, {Index: 3}}

	require.NoError(t, ApplyPerformers(tracks, []string{"A", " ", " B "}))
	assert.Equal(t, "A", tracks[0].Performer)
	assert.True(t, tracks[0].HasPerformer)
	assert.False(t, tracks[1].HasPerformer)
	assert.Equal(t, "B", tracks[2].Performer)

	err := ApplyPerformers(tracks, []string{"A"})
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "artist", cfgErr.Slot)
}

func TestRegexpMatcher(t *testing.T) {
	m, err := NewRegexpMatcher(testPattern)
	require.NoError(t, err)
	assert.Equal(t, 7, m.Groups())
	assert.Equal(t, testPattern, m.String())

	captures, ok := m.Match("4:15 Intro")
	require.True(t, ok)
	require.Len(t, captures, 7)
	assert.False(t, captures[2].Matched)
	assert.Equal(t, Capture{Text: "4", Matched: true}, captures[3])

	// anchored at the start, trailing text is allowed
	_, ok = m.Match("Intro 4:15 x")
	assert.False(t, ok)

	_, err = NewRegexpMatcher(`(unclosed`)
	assert.Error(t, err)
}
