// Copyright (c) 2025, soup and the cuemaker contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package cue

import (
	"fmt"
	"strings"
)

// Render builds the cue sheet for a single audio file. Values are written
// verbatim; quotes inside them are not escaped.
func Render(album Album, filename, format string, tracks []Track) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PERFORMER \"%s\"\n", album.Performer)
	fmt.Fprintf(&b, "TITLE \"%s\"\n", album.Title)
	for _, rem := range album.Remarks {
		fmt.Fprintf(&b, "REM %s %s\n", rem.Key, rem.Value)
	}
	fmt.Fprintf(&b, "FILE \"%s\" %s", filename, strings.ToUpper(format))

	for _, t := range tracks {
		fmt.Fprintf(&b, "\n    TRACK %s AUDIO\n", t.Number())
		fmt.Fprintf(&b, "        TITLE \"%s\"\n", t.Title)
		if t.HasPerformer {
			fmt.Fprintf(&b, "        PERFORMER %s\n", t.Performer)
		}
		fmt.Fprintf(&b, "        INDEX 01 %s", t.Start)
	}

	return b.String()
}
