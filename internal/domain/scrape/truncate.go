package scrape

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTextBytes is the hard ceiling on extracted text, measured in UTF-8
// bytes before the truncation marker.
const MaxTextBytes = 20 * 1024

// truncationMarker is appended whenever the ceiling forces a cut.
const truncationMarker = "..."

// Truncate cuts s to the longest rune-aligned prefix of at most limit bytes,
// drops trailing whitespace from the kept part, and appends the truncation
// marker. Strings already within the limit come back untouched. The cut
// point is found by stepping back from the byte limit to the nearest rune
// start, never by removing characters one at a time.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	kept := strings.TrimRightFunc(s[:cut], unicode.IsSpace)
	return kept + truncationMarker
}
