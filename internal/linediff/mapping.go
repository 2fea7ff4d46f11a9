package linediff

import "fmt"

// LineRange is a 1-based, end-exclusive range of lines.
//
// Invariant: Start <= End. An empty range (Start == End) denotes a pure
// insertion point between lines.
type LineRange struct {
	Start int
	End   int
}

// IsEmpty reports whether r spans no lines.
func (r LineRange) IsEmpty() bool { return r.Start == r.End }

// Len returns the number of lines in r.
func (r LineRange) Len() int { return r.End - r.Start }

// OverlapOrTouch reports whether r and o intersect or are directly adjacent.
func (r LineRange) OverlapOrTouch(o LineRange) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Join returns the smallest range containing both r and o.
func (r LineRange) Join(o LineRange) LineRange {
	return LineRange{min(r.Start, o.Start), max(r.End, o.End)}
}

func (r LineRange) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Position is a 1-based (line, column) text position. Columns count UTF-16
// code units: a character outside the basic multilingual plane occupies two
// columns. This matches the ecosystem the engine's output is consumed by.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p sorts strictly before o.
func (p Position) Before(o Position) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Col < o.Col)
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// CharRange is a character-granular range from Start to End, end exclusive.
type CharRange struct {
	Start Position
	End   Position
}

// IsEmpty reports whether c spans no characters.
func (c CharRange) IsEmpty() bool { return c.Start == c.End }

func (c CharRange) String() string { return fmt.Sprintf("[%v - %v)", c.Start, c.End) }

// RangeMapping maps one character-granular changed region of the original
// text onto its replacement in the modified text.
type RangeMapping struct {
	Original CharRange
	Modified CharRange
}

func (m RangeMapping) String() string {
	return fmt.Sprintf("{%v -> %v}", m.Original, m.Modified)
}

// DetailedLineRangeMapping is a line-granular change with its inner
// character-granular mappings.
//
// Invariant: every inner mapping's line span lies within the enclosing line
// ranges.
type DetailedLineRangeMapping struct {
	Original LineRange
	Modified LineRange
	Inner    []RangeMapping
}

func (m DetailedLineRangeMapping) String() string {
	return fmt.Sprintf("{%v -> %v}", m.Original, m.Modified)
}

// Move describes a relocated block. Move detection is not implemented; the
// type exists so LinesDiff carries the (always empty) list the output
// contract names.
type Move struct {
	Original LineRange
	Modified LineRange
}

// LinesDiff is the complete result of one diff computation: an ordered,
// non-overlapping list of changes (unchanged regions are implicit by
// omission), the always-empty move list, and whether any sub-computation ran
// out of time. A timed-out diff is structurally complete, just coarse.
type LinesDiff struct {
	Changes    []DetailedLineRangeMapping
	Moves      []Move
	HitTimeout bool
}
