package linediff

import "github.com/lindiff/lindiff/internal/uni"

// assembleLineMappings groups the flat character mapping list into
// DetailedLineRangeMapping records, merging neighbors whose original-side or
// modified-side line ranges intersect or touch.
func assembleLineMappings(alignments []RangeMapping, original, modified []string) []DetailedLineRangeMapping {
	var changes []DetailedLineRangeMapping
	for _, a := range alignments {
		m := toDetailedMapping(a, original, modified)
		if len(changes) > 0 {
			last := &changes[len(changes)-1]
			if last.Original.OverlapOrTouch(m.Original) || last.Modified.OverlapOrTouch(m.Modified) {
				last.Original = last.Original.Join(m.Original)
				last.Modified = last.Modified.Join(m.Modified)
				last.Inner = append(last.Inner, m.Inner...)
				continue
			}
		}
		changes = append(changes, m)
	}
	return changes
}

// toDetailedMapping derives the line-granular mapping enclosing one
// character mapping. Two adjustments keep the line ranges tight:
//   - a mapping ending at column 1 on both sides ends with a newline, so its
//     last line is excluded;
//   - a mapping starting past the end of its first line on both sides starts
//     with a newline, so that line is excluded.
func toDetailedMapping(rm RangeMapping, original, modified []string) DetailedLineRangeMapping {
	o, m := rm.Original, rm.Modified

	lineEndDelta := 0
	if m.End.Col == 1 && o.End.Col == 1 &&
		o.Start.Line <= o.End.Line && m.Start.Line <= m.End.Line {
		lineEndDelta = -1
	}

	lineStartDelta := 0
	if m.Start.Col-1 >= lineLen(modified, m.Start.Line) &&
		o.Start.Col-1 >= lineLen(original, o.Start.Line) &&
		o.Start.Line <= o.End.Line+lineEndDelta &&
		m.Start.Line <= m.End.Line+lineEndDelta {
		lineStartDelta = 1
	}

	return DetailedLineRangeMapping{
		Original: LineRange{o.Start.Line + lineStartDelta, o.End.Line + 1 + lineEndDelta},
		Modified: LineRange{m.Start.Line + lineStartDelta, m.End.Line + 1 + lineEndDelta},
		Inner:    []RangeMapping{rm},
	}
}

// lineLen returns the UTF-16 length of the 1-based line, clamping
// out-of-range access to zero.
func lineLen(lines []string, line int) int {
	if line < 1 || line > len(lines) {
		return 0
	}
	return uni.UTF16Len(lines[line-1])
}
