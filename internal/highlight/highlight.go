// Package highlight turns a computed diff into per-line paint instructions
// for a presentation layer. The plan is purely derived: it is recomputed on
// demand from the diff and the raw lines, never persisted.
package highlight

import (
	"github.com/lindiff/lindiff/internal/linediff"
	"github.com/lindiff/lindiff/internal/uni"
)

// Kind classifies a line's background highlight.
type Kind uint8

const (
	None Kind = iota
	LineDelete
	LineInsert
)

// SubRange is a within-line emphasis span. Columns are 1-based UTF-16 code
// units, end exclusive.
type SubRange struct {
	StartCol int
	EndCol   int
}

// Line is the paint instruction for one existing line.
type Line struct {
	Kind Kind
	Sub  []SubRange
}

// Plan holds one entry per existing line on each side.
type Plan struct {
	Original []Line
	Modified []Line
}

// New builds the render plan for d. Every line inside a mapping's original
// range is tagged LineDelete and every line inside its modified range
// LineInsert; each inner mapping contributes per-line sub-range spans, with
// zero-width spans dropped.
func New(d linediff.LinesDiff, original, modified []string) Plan {
	p := Plan{
		Original: make([]Line, len(original)),
		Modified: make([]Line, len(modified)),
	}

	for _, c := range d.Changes {
		tagLines(p.Original, c.Original, LineDelete)
		tagLines(p.Modified, c.Modified, LineInsert)
		for _, inner := range c.Inner {
			addSubRanges(p.Original, original, inner.Original)
			addSubRanges(p.Modified, modified, inner.Modified)
		}
	}
	return p
}

func tagLines(side []Line, r linediff.LineRange, kind Kind) {
	for ln := r.Start; ln < r.End && ln-1 < len(side); ln++ {
		side[ln-1].Kind = kind
	}
}

// addSubRanges splits a character range into per-line spans: the first line
// runs from the start column to the end of line, interior lines span fully,
// and the last line runs from column 1 to the end column.
func addSubRanges(side []Line, lines []string, r linediff.CharRange) {
	for ln := r.Start.Line; ln <= r.End.Line && ln-1 < len(lines); ln++ {
		start := 1
		if ln == r.Start.Line {
			start = r.Start.Col
		}
		end := uni.UTF16Len(lines[ln-1]) + 1
		if ln == r.End.Line {
			end = r.End.Col
		}
		if start >= end {
			continue
		}
		side[ln-1].Sub = append(side[ln-1].Sub, SubRange{StartCol: start, EndCol: end})
	}
}
