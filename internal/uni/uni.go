// Package uni holds the small Unicode helpers the engine and the report
// renderer share: UTF-16 code-unit lengths (the engine's column unit) and
// monospace display widths (the report's padding unit).
package uni

import (
	"unicode/utf16"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// UTF16Len returns the number of UTF-16 code units needed to encode s.
// Runes outside the basic multilingual plane count as two units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r >= 0x10000 {
			n++ // encoded as a surrogate pair
		}
	}
	return n
}

// Units returns s encoded as UTF-16 code units.
func Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// UnitsToString decodes UTF-16 code units back into a string.
func UnitsToString(units []uint16) string {
	return string(utf16.Decode(units))
}

func condition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}

// TextWidth returns the monospace terminal width of s, assuming a non-East
// Asian locale.
func TextWidth(s string) int {
	return condition().StringWidth(s)
}

// Truncate shortens s to at most maxWidth terminal columns, cutting on
// grapheme cluster boundaries so combining sequences stay intact.
func Truncate(s string, maxWidth int) string {
	if TextWidth(s) <= maxWidth {
		return s
	}
	cond := condition()
	width := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		w := cond.StringWidth(iter.Value())
		if width+w > maxWidth {
			return s[:iter.Start()]
		}
		width += w
	}
	return s
}

// PadRight pads s with spaces to exactly width terminal columns, truncating
// first if s is too wide.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	for w := TextWidth(s); w < width; w++ {
		s += " "
	}
	return s
}
