package linediff

import (
	"sort"
	"unicode"

	"github.com/lindiff/lindiff/internal/seqdiff"
	"github.com/lindiff/lindiff/internal/uni"
)

// charSequence adapts the characters of a line range, sliced to an exact
// column sub-range, to seqdiff.Sequence. Elements are UTF-16 code units with
// a '\n' element between lines, so sequence offsets translate directly into
// the column unit of the output contract.
type charSequence struct {
	elements []uint16

	// startLine is the 1-based line number of the first sliced line.
	startLine int
	// firstElementByLine[i] is the element offset at which sliced line i
	// starts (one entry per sliced line).
	firstElementByLine []int
	// skippedByLine[i] is the number of code units cut from the front of
	// sliced line i by the column sub-range.
	skippedByLine []int
	// trimmedByLine[i] is the number of leading whitespace code units removed
	// from sliced line i under the whitespace-trim option.
	trimmedByLine []int
}

// newCharSequence slices lines to r. When trimWhitespace is set, leading and
// trailing whitespace of every line is excluded from the elements; the
// removed leading width is remembered so offsets still translate to real
// columns.
func newCharSequence(lines []string, r CharRange, trimWhitespace bool) *charSequence {
	s := &charSequence{startLine: r.Start.Line}
	for ln := r.Start.Line; ln <= r.End.Line; ln++ {
		s.firstElementByLine = append(s.firstElementByLine, len(s.elements))

		units := lineUnits(lines, ln)
		skipped := 0
		if ln == r.Start.Line && r.Start.Col > 1 {
			skipped = min(r.Start.Col-1, len(units))
			units = units[skipped:]
		}
		s.skippedByLine = append(s.skippedByLine, skipped)

		trimmed := 0
		if trimWhitespace {
			for trimmed < len(units) && isUnitSpace(units[trimmed]) {
				trimmed++
			}
			units = units[trimmed:]
			for len(units) > 0 && isUnitSpace(units[len(units)-1]) {
				units = units[:len(units)-1]
			}
		}
		s.trimmedByLine = append(s.trimmedByLine, trimmed)

		length := len(units)
		if ln == r.End.Line {
			length = max(0, min(r.End.Col-1-skipped-trimmed, len(units)))
		}
		s.elements = append(s.elements, units[:length]...)
		if ln < r.End.Line {
			s.elements = append(s.elements, '\n')
		}
	}
	return s
}

// lineUnits returns the UTF-16 units of the 1-based line, clamping
// out-of-range access to an empty line.
func lineUnits(lines []string, line int) []uint16 {
	if line < 1 || line > len(lines) {
		return nil
	}
	return uni.Units(lines[line-1])
}

func (s *charSequence) Len() int { return len(s.elements) }

func (s *charSequence) Key(i int) int { return int(s.elements[i]) }

func (s *charSequence) StronglyEqual(i, j int) bool { return s.elements[i] == s.elements[j] }

// Boundary categories for scoring split positions between characters.
type charCategory int8

const (
	catWordLower charCategory = iota
	catWordUpper
	catWordDigit
	catEnd
	catOther
	catSeparator
	catSpace
	catLineBreakCR
	catLineBreakLF
)

func categoryOf(u uint16) charCategory {
	switch {
	case u == '\n':
		return catLineBreakLF
	case u == '\r':
		return catLineBreakCR
	case u == ' ' || u == '\t':
		return catSpace
	case u >= 'a' && u <= 'z':
		return catWordLower
	case u >= 'A' && u <= 'Z':
		return catWordUpper
	case u >= '0' && u <= '9':
		return catWordDigit
	case u == ',' || u == ';':
		return catSeparator
	default:
		return catOther
	}
}

func categoryScore(c charCategory) int {
	switch c {
	case catWordLower, catWordUpper, catWordDigit:
		return 0
	case catOther:
		return 2
	case catSpace:
		return 3
	case catEnd, catLineBreakCR, catLineBreakLF:
		return 10
	case catSeparator:
		return 30
	}
	return 0
}

// BoundaryScore categorizes the characters on either side of pos, rewards
// category transitions (with an extra bonus for camelCase lower→upper
// boundaries), strongly prefers the position right after a line feed, and
// forbids splitting a CR/LF pair.
func (s *charSequence) BoundaryScore(pos int) int {
	prev := catEnd
	if pos > 0 {
		prev = categoryOf(s.elements[pos-1])
	}
	next := catEnd
	if pos < len(s.elements) {
		next = categoryOf(s.elements[pos])
	}

	if prev == catLineBreakCR && next == catLineBreakLF {
		// Never split a \r\n pair.
		return 0
	}
	if prev == catLineBreakLF {
		return 150
	}

	score := 0
	if prev != next {
		score += 10
		if prev == catWordLower && next == catWordUpper {
			score++
		}
	}
	score += categoryScore(prev)
	score += categoryScore(next)
	return score
}

type roundingPreference int8

const (
	roundLeft roundingPreference = iota
	roundRight
)

// translateOffset converts an element offset into a (line, column) Position.
// Offsets at a line start are ambiguous when leading whitespace was trimmed;
// the preference picks the left (before the whitespace) or right (after it)
// reading.
func (s *charSequence) translateOffset(offset int, pref roundingPreference) Position {
	i := sort.Search(len(s.firstElementByLine), func(i int) bool {
		return s.firstElementByLine[i] > offset
	}) - 1
	if i < 0 {
		i = 0
	}
	lineOffset := offset - s.firstElementByLine[i]
	col := 1 + s.skippedByLine[i] + lineOffset
	if lineOffset != 0 || pref == roundRight {
		col += s.trimmedByLine[i]
	}
	return Position{Line: s.startLine + i, Col: col}
}

// translateRange converts an offset range into a CharRange using the right
// preference for the start and the left preference for the end, so a
// degenerate selection collapses to a single point instead of inverting.
func (s *charSequence) translateRange(r seqdiff.OffsetRange) CharRange {
	start := s.translateOffset(r.Start, roundRight)
	end := s.translateOffset(r.End, roundLeft)
	if end.Before(start) {
		return CharRange{Start: end, End: end}
	}
	return CharRange{Start: start, End: end}
}

func isWordUnit(u uint16) bool {
	return u >= 'a' && u <= 'z' || u >= 'A' && u <= 'Z' || u >= '0' && u <= '9'
}

func isUpperUnit(u uint16) bool { return u >= 'A' && u <= 'Z' }

func isUnitSpace(u uint16) bool { return u < 0xd800 && unicode.IsSpace(rune(u)) }

// findWordContaining returns the run of word characters around offset, if
// the element there is one.
func (s *charSequence) findWordContaining(offset int) (seqdiff.OffsetRange, bool) {
	if offset < 0 || offset >= len(s.elements) || !isWordUnit(s.elements[offset]) {
		return seqdiff.OffsetRange{}, false
	}
	start := offset
	for start > 0 && isWordUnit(s.elements[start-1]) {
		start--
	}
	end := offset
	for end < len(s.elements) && isWordUnit(s.elements[end]) {
		end++
	}
	return seqdiff.OffsetRange{Start: start, End: end}, true
}

// findSubWordContaining is findWordContaining limited to a camelCase-delimited
// subword: expansion stops when it would cross into an uppercase-initial
// segment.
func (s *charSequence) findSubWordContaining(offset int) (seqdiff.OffsetRange, bool) {
	if offset < 0 || offset >= len(s.elements) || !isWordUnit(s.elements[offset]) {
		return seqdiff.OffsetRange{}, false
	}
	start := offset
	for start > 0 && isWordUnit(s.elements[start-1]) && !isUpperUnit(s.elements[start]) {
		start--
	}
	end := offset + 1
	for end < len(s.elements) && isWordUnit(s.elements[end]) && !isUpperUnit(s.elements[end]) {
		end++
	}
	return seqdiff.OffsetRange{Start: start, End: end}, true
}

// countLinesIn returns how many line breaks r spans.
func (s *charSequence) countLinesIn(r seqdiff.OffsetRange) int {
	n := 0
	for i := r.Start; i < r.End && i < len(s.elements); i++ {
		if s.elements[i] == '\n' {
			n++
		}
	}
	return n
}

// text returns the characters of r as a string.
func (s *charSequence) text(r seqdiff.OffsetRange) string {
	start := max(0, r.Start)
	end := min(len(s.elements), r.End)
	if start >= end {
		return ""
	}
	return uni.UnitsToString(s.elements[start:end])
}

// extendToFullLines widens r to the enclosing line boundaries within the
// slice.
func (s *charSequence) extendToFullLines(r seqdiff.OffsetRange) seqdiff.OffsetRange {
	start := 0
	for _, first := range s.firstElementByLine {
		if first <= r.Start {
			start = first
		} else {
			break
		}
	}
	end := len(s.elements)
	for _, first := range s.firstElementByLine {
		if first >= r.End {
			end = first
			break
		}
	}
	return seqdiff.OffsetRange{Start: start, End: end}
}
