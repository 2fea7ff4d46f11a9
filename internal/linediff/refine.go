package linediff

import (
	"github.com/lindiff/lindiff/internal/seqdiff"
	"github.com/lindiff/lindiff/internal/uni"
)

// charLevelDPThreshold selects the exact DP algorithm for character
// refinement below this combined element count; larger slices use Myers.
const charLevelDPThreshold = 500

// refineDiff reruns the diff at character granularity inside one line-level
// changed region and translates the results into (line, column) mappings.
func refineDiff(original, modified []string, d seqdiff.SequenceDiff, timeout *seqdiff.Timeout, considerWhitespace, extendToSubwords bool) ([]RangeMapping, bool) {
	origRange, modRange := lineDiffToCharRanges(d, original, modified)

	slice1 := newCharSequence(original, origRange, !considerWhitespace)
	slice2 := newCharSequence(modified, modRange, !considerWhitespace)

	var res seqdiff.Result
	if slice1.Len()+slice2.Len() < charLevelDPThreshold {
		res = seqdiff.DynamicProgramming(slice1, slice2, timeout, nil)
	} else {
		res = seqdiff.Myers(slice1, slice2, timeout)
	}

	diffs := res.Diffs
	diffs = seqdiff.Optimize(slice1, slice2, diffs)
	diffs = extendDiffsToWords(slice1, slice2, diffs, (*charSequence).findWordContaining, false)
	if extendToSubwords {
		diffs = extendDiffsToWords(slice1, slice2, diffs, (*charSequence).findSubWordContaining, true)
	}
	diffs = seqdiff.RemoveShortMatches(diffs)
	diffs = removeVeryShortMatchingText(slice1, slice2, diffs)

	mappings := make([]RangeMapping, 0, len(diffs))
	for _, cd := range diffs {
		mappings = append(mappings, RangeMapping{
			Original: slice1.translateRange(cd.Seq1),
			Modified: slice2.translateRange(cd.Seq2),
		})
	}
	return mappings, res.HitTimeout
}

// lineDiffToCharRanges converts a line-level diff into the character ranges
// covering it on both sides. The exclusive end line of a SequenceDiff may
// point one past the last line; the conversion collapses such degenerate
// ranges consistently instead of faulting:
//   - when both exclusive ends name existing positions, the ranges run from
//     column 1 of the first changed line to column 1 of the first unchanged
//     line;
//   - otherwise, a non-empty range ends at the end of its last line;
//   - an empty range anchored at the file end becomes a point at the end of
//     the preceding line.
func lineDiffToCharRanges(d seqdiff.SequenceDiff, original, modified []string) (CharRange, CharRange) {
	or := LineRange{Start: d.Seq1.Start + 1, End: d.Seq1.End + 1}
	mr := LineRange{Start: d.Seq2.Start + 1, End: d.Seq2.End + 1}

	if validLine(or.End, original) && validLine(mr.End, modified) {
		return CharRange{Position{or.Start, 1}, Position{or.End, 1}},
			CharRange{Position{mr.Start, 1}, Position{mr.End, 1}}
	}

	if !or.IsEmpty() && !mr.IsEmpty() {
		return CharRange{Position{or.Start, 1}, lineEnd(original, or.End-1)},
			CharRange{Position{mr.Start, 1}, lineEnd(modified, mr.End-1)}
	}

	if or.Start > 1 && mr.Start > 1 {
		return CharRange{lineEnd(original, or.Start-1), lineEnd(original, or.End-1)},
			CharRange{lineEnd(modified, mr.Start-1), lineEnd(modified, mr.End-1)}
	}

	// Degenerate shape the line differ never produces; clamp to file starts.
	return CharRange{Position{or.Start, 1}, Position{or.End, 1}},
		CharRange{Position{mr.Start, 1}, Position{mr.End, 1}}
}

// validLine reports whether line can be used as an exclusive range end
// pointing at an existing line.
func validLine(line int, lines []string) bool {
	return line >= 1 && line <= len(lines)
}

// lineEnd returns the position one past the last character of the 1-based
// line, clamping out-of-range lines.
func lineEnd(lines []string, line int) Position {
	if line > len(lines) {
		line = len(lines)
	}
	if line < 1 {
		return Position{Line: 1, Col: 1}
	}
	return Position{Line: line, Col: uni.UTF16Len(lines[line-1]) + 1}
}
