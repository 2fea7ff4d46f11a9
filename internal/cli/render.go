package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lindiff/lindiff/internal/highlight"
	"github.com/lindiff/lindiff/internal/linediff"
	"github.com/lindiff/lindiff/internal/uni"
)

var (
	styleDelete    = color.New(color.FgRed)
	styleInsert    = color.New(color.FgGreen)
	styleDeleteHot = color.New(color.FgRed, color.Bold, color.Underline)
	styleInsertHot = color.New(color.FgGreen, color.Bold, color.Underline)
	styleHunk      = color.New(color.FgCyan)
)

type renderer struct {
	out      io.Writer
	original []string
	modified []string
	diff     linediff.LinesDiff
	context  int
}

func (r *renderer) renderUnified() {
	plan := highlight.New(r.diff, r.original, r.modified)

	for _, c := range r.diff.Changes {
		origLo, origHi := r.contextBounds(c.Original, len(r.original))
		modLo, modHi := r.contextBounds(c.Modified, len(r.modified))
		styleHunk.Fprintf(r.out, "@@ -%d,%d +%d,%d @@\n",
			origLo, origHi-origLo, modLo, modHi-modLo)

		for ln := origLo; ln < c.Original.Start; ln++ {
			fmt.Fprintf(r.out, "  %s\n", r.original[ln-1])
		}
		for ln := c.Original.Start; ln < c.Original.End; ln++ {
			fmt.Fprintf(r.out, "- %s\n", paintLine(r.original[ln-1], plan.Original[ln-1], styleDelete, styleDeleteHot))
		}
		for ln := c.Modified.Start; ln < c.Modified.End; ln++ {
			fmt.Fprintf(r.out, "+ %s\n", paintLine(r.modified[ln-1], plan.Modified[ln-1], styleInsert, styleInsertHot))
		}
		for ln := c.Original.End; ln < origHi; ln++ {
			fmt.Fprintf(r.out, "  %s\n", r.original[ln-1])
		}
	}
}

func (r *renderer) renderSideBySide(width int) {
	plan := highlight.New(r.diff, r.original, r.modified)
	colWidth := (width - 3) / 2

	left := func(ln int) string {
		if ln < 1 || ln > len(r.original) {
			return uni.PadRight("", colWidth)
		}
		line := uni.PadRight(r.original[ln-1], colWidth)
		if plan.Original[ln-1].Kind == highlight.LineDelete {
			return paintLine(line, plan.Original[ln-1], styleDelete, styleDeleteHot)
		}
		return line
	}
	right := func(ln int) string {
		if ln < 1 || ln > len(r.modified) {
			return ""
		}
		if plan.Modified[ln-1].Kind == highlight.LineInsert {
			return paintLine(r.modified[ln-1], plan.Modified[ln-1], styleInsert, styleInsertHot)
		}
		return r.modified[ln-1]
	}
	emit := func(origLn, modLn int, sep string) {
		fmt.Fprintf(r.out, "%s %s %s\n", left(origLn), sep, right(modLn))
	}

	for _, c := range r.diff.Changes {
		origLo, origHi := r.contextBounds(c.Original, len(r.original))
		modLo, _ := r.contextBounds(c.Modified, len(r.modified))
		styleHunk.Fprintf(r.out, "@@ -%d +%d @@\n", c.Original.Start, c.Modified.Start)

		for o, m := origLo, modLo; o < c.Original.Start; o, m = o+1, m+1 {
			emit(o, m, " ")
		}
		o, m := c.Original.Start, c.Modified.Start
		for o < c.Original.End || m < c.Modified.End {
			switch {
			case o < c.Original.End && m < c.Modified.End:
				emit(o, m, "|")
				o, m = o+1, m+1
			case o < c.Original.End:
				emit(o, 0, "<")
				o++
			default:
				emit(0, m, ">")
				m++
			}
		}
		for ; o < origHi; o, m = o+1, m+1 {
			emit(o, m, " ")
		}
	}
}

// contextBounds widens a changed line range by the configured context,
// clamped to the file.
func (r *renderer) contextBounds(lr linediff.LineRange, lineCount int) (lo, hi int) {
	lo = lr.Start - r.context
	if lo < 1 {
		lo = 1
	}
	hi = lr.End + r.context
	if hi > lineCount+1 {
		hi = lineCount + 1
	}
	return lo, hi
}

// paintLine colors a whole line with base and re-colors the emphasized
// sub-ranges with hot. Sub-range columns are UTF-16 code units, so they are
// first mapped to byte offsets.
func paintLine(line string, pl highlight.Line, base, hot *color.Color) string {
	if len(pl.Sub) == 0 {
		return base.Sprint(line)
	}
	var b strings.Builder
	prev := 0
	for _, sr := range pl.Sub {
		start := utf16ColToByte(line, sr.StartCol)
		end := utf16ColToByte(line, sr.EndCol)
		if start < prev {
			start = prev
		}
		if end < start {
			end = start
		}
		b.WriteString(base.Sprint(line[prev:start]))
		b.WriteString(hot.Sprint(line[start:end]))
		prev = end
	}
	b.WriteString(base.Sprint(line[prev:]))
	return b.String()
}

// utf16ColToByte converts a 1-based UTF-16 column into a byte offset into
// line, clamping columns past the end.
func utf16ColToByte(line string, col int) int {
	units := col - 1
	for i, r := range line {
		if units <= 0 {
			return i
		}
		units--
		if r >= 0x10000 {
			units--
		}
	}
	return len(line)
}
