package linediff

import (
	"math"
	"strings"

	"github.com/lindiff/lindiff/internal/seqdiff"
	"github.com/lindiff/lindiff/internal/uni"
)

// maxHeuristicIterations caps the repeat-until-stable merge passes.
const maxHeuristicIterations = 10

// removeVeryShortMatchingLines merges line diffs separated by a gap whose
// non-whitespace content is at most four characters, provided at least one
// side of the merge spans more than five changed lines. The gate keeps
// genuinely small, isolated edits from being collapsed into their neighbors.
func removeVeryShortMatchingLines(seq1 *lineSequence, diffs []seqdiff.SequenceDiff) []seqdiff.SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}
	for iter := 0; iter < maxHeuristicIterations; iter++ {
		merged := false
		result := diffs[:1:1]
		for _, cur := range diffs[1:] {
			last := result[len(result)-1]

			gapText := seq1.text(last.Seq1.End, cur.Seq1.Start)
			nonWs := 0
			for _, r := range gapText {
				if !isSpaceRune(r) {
					nonWs++
				}
			}
			bigEnough := last.Seq1.Len()+last.Seq2.Len() > 5 || cur.Seq1.Len()+cur.Seq2.Len() > 5

			if nonWs <= 4 && bigEnough {
				result[len(result)-1] = last.Join(cur)
				merged = true
			} else {
				result = append(result, cur)
			}
		}
		diffs = result
		if !merged {
			break
		}
	}
	return diffs
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Calibrated constants of the short-text merge cost formula. They are tuned
// for output compatibility with the system this engine is modeled on; change
// them and the emitted diffs change shape.
const (
	shortTextLineWeight      = 40
	shortTextScoreCap        = 2*shortTextLineWeight + 50
	shortTextExponent        = 1.5
	shortTextJoinFactor      = 1.3
	shortTextMaxGapChars     = 20
	shortTextExtendMinLength = 100
)

// removeVeryShortMatchingText merges character diffs separated by a short
// single-line unchanged gap whenever a cost comparison favors the merge, then
// extends each surviving diff outward to its enclosing full line if the
// trimmed leftover prefix/suffix is tiny.
func removeVeryShortMatchingText(seq1, seq2 *charSequence, diffs []seqdiff.SequenceDiff) []seqdiff.SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}

	for iter := 0; iter < maxHeuristicIterations; iter++ {
		merged := false
		result := diffs[:1:1]
		for _, cur := range diffs[1:] {
			last := result[len(result)-1]
			if shouldJoinShortText(seq1, seq2, last, cur) {
				result[len(result)-1] = last.Join(cur)
				merged = true
			} else {
				result = append(result, cur)
			}
		}
		diffs = result
		if !merged {
			break
		}
	}

	// Follow-up: for long diffs, absorb near-empty line remainders so the
	// diff covers whole lines, then clip back against the neighboring diffs.
	// Short diffs keep their tight extent: extending them would swallow the
	// rest of a mostly-unchanged line.
	result := make([]seqdiff.SequenceDiff, 0, len(diffs))
	for i, cur := range diffs {
		newDiff := cur
		long := cur.Seq1.Len()+cur.Seq2.Len() > shortTextExtendMinLength

		full := seq1.extendToFullLines(cur.Seq1)
		if prefix := seq1.text(seqdiff.OffsetRange{Start: full.Start, End: cur.Seq1.Start}); long && leftoverIsNegligible(prefix) {
			newDiff = newDiff.DeltaStart(-uni.UTF16Len(prefix))
		}
		if suffix := seq1.text(seqdiff.OffsetRange{Start: cur.Seq1.End, End: full.End}); long && leftoverIsNegligible(suffix) {
			newDiff = newDiff.DeltaEnd(uni.UTF16Len(suffix))
		}

		available := seqdiff.FromOffsetPairs(
			seqdiff.OffsetPair{Offset1: 0, Offset2: 0},
			seqdiff.OffsetPair{Offset1: seq1.Len(), Offset2: seq2.Len()},
		)
		if i > 0 {
			available = seqdiff.FromOffsetPairs(diffs[i-1].Ends(), available.Ends())
		}
		if i+1 < len(diffs) {
			available = seqdiff.FromOffsetPairs(available.Starts(), diffs[i+1].Starts())
		}
		if clipped, ok := newDiff.Intersect(available); ok {
			newDiff = clipped
		}
		result = append(result, newDiff)
	}
	return result
}

func leftoverIsNegligible(text string) bool {
	return len(text) > 0 && uni.UTF16Len(strings.TrimSpace(text)) <= 3
}

func shouldJoinShortText(seq1, seq2 *charSequence, before, after seqdiff.SequenceDiff) bool {
	gap := seqdiff.OffsetRange{Start: before.Seq1.End, End: after.Seq1.Start}
	gapText := strings.TrimSpace(seq1.text(gap))
	if uni.UTF16Len(gapText) > shortTextMaxGapChars || strings.ContainsAny(gapText, "\r\n") {
		return false
	}

	cost := func(seq *charSequence, r seqdiff.OffsetRange) float64 {
		v := float64(seq.countLinesIn(r)*shortTextLineWeight + r.Len())
		return math.Pow(math.Min(v, shortTextScoreCap), shortTextExponent)
	}
	diffCost := func(d seqdiff.SequenceDiff) float64 {
		return math.Pow(cost(seq1, d.Seq1)+cost(seq2, d.Seq2), shortTextExponent)
	}

	maxCost := math.Pow(math.Pow(shortTextScoreCap, shortTextExponent), shortTextExponent)
	return diffCost(before)+diffCost(after) > maxCost*shortTextJoinFactor
}
