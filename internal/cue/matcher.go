// Copyright (c) 2025, soup and the cuemaker contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package cue

import (
	"fmt"
	"regexp"
)

// Capture is one captured group of a matched line. Matched is false when
// the group did not take part in the match.
type Capture struct {
	Text    string
	Matched bool
}

// Matcher splits a line into captured groups
type Matcher interface {
	// Match returns the captures of the line, or false if it does not match.
	Match(line string) ([]Capture, bool)
	// Groups returns the number of captures every successful Match yields.
	Groups() int
}

// RegexpMatcher is a Matcher backed by a regular expression. The
// expression must match at the start of the line; whatever follows the
// match is ignored.
type RegexpMatcher struct {
	re *regexp.Regexp
}

// NewRegexpMatcher compiles pattern into a RegexpMatcher
func NewRegexpMatcher(pattern string) (*RegexpMatcher, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}
	return &RegexpMatcher{re: re}, nil
}

// Match implements Matcher
func (m *RegexpMatcher) Match(line string) ([]Capture, bool) {
	loc := m.re.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil, false
	}

	// skip the whole-match pair, slot 0 is the first group
	captures := make([]Capture, 0, m.re.NumSubexp())
	for i := 2; i < len(loc); i += 2 {
		if loc[i] < 0 {
			captures = append(captures, Capture{})
			continue
		}
		captures = append(captures, Capture{Text: line[loc[i]:loc[i+1]], Matched: true})
	}
	return captures, true
}

// Groups implements Matcher
func (m *RegexpMatcher) Groups() int {
	return m.re.NumSubexp()
}

// String returns the pattern as given to NewRegexpMatcher
func (m *RegexpMatcher) String() string {
	s := m.re.String()
	return s[len(`^(?:`) : len(s)-1]
}
