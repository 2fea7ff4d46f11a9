package linediff

import (
	"slices"

	"github.com/lindiff/lindiff/internal/seqdiff"
)

// wordFinder locates the word (or subword) containing an element offset.
type wordFinder func(s *charSequence, offset int) (seqdiff.OffsetRange, bool)

// extendDiffsToWords widens character diffs to whole words when most of the
// word changed anyway: partial-word highlights read worse than whole-word
// ones. The diff list is inverted into its unchanged runs; for each run the
// words touching its start and end are examined, and if the unchanged portion
// covering such a word falls below two thirds of the word's combined length
// on both sides (or, with force, below the full length), the whole word is
// absorbed into the change. Overlapping extensions are merged before being
// unioned back into the diff list.
func extendDiffsToWords(seq1, seq2 *charSequence, diffs []seqdiff.SequenceDiff, find wordFinder, force bool) []seqdiff.SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}

	equalRuns := seqdiff.Complement(diffs, seq1.Len(), seq2.Len())
	var additional []seqdiff.SequenceDiff
	lastPoint := seqdiff.OffsetPair{}

	scanWord := func(pair seqdiff.OffsetPair, run seqdiff.SequenceDiff) {
		if pair.Offset1 < lastPoint.Offset1 || pair.Offset2 < lastPoint.Offset2 {
			return
		}
		w1, ok1 := find(seq1, pair.Offset1)
		w2, ok2 := find(seq2, pair.Offset2)
		if !ok1 || !ok2 {
			return
		}
		w := seqdiff.SequenceDiff{Seq1: w1, Seq2: w2}

		equal1, equal2 := 0, 0
		if part, ok := w.Intersect(run); ok {
			equal1, equal2 = part.Seq1.Len(), part.Seq2.Len()
		}
		// The word may reach into further unchanged runs; fold them in so the
		// two-thirds test sees the whole word.
		for _, other := range equalRuns {
			if other == run {
				continue
			}
			if !other.Seq1.Intersects(w.Seq1) && !other.Seq2.Intersects(w.Seq2) {
				continue
			}
			v1, ok1 := find(seq1, other.Seq1.Start)
			v2, ok2 := find(seq2, other.Seq2.Start)
			if !ok1 || !ok2 {
				continue
			}
			v := seqdiff.SequenceDiff{Seq1: v1, Seq2: v2}
			if part, ok := v.Intersect(other); ok {
				equal1 += part.Seq1.Len()
				equal2 += part.Seq2.Len()
			}
			w = w.Join(v)
		}

		// Cross-multiplied to avoid integer truncation of total*2/3.
		total := w.Seq1.Len() + w.Seq2.Len()
		shortfall := 3*(equal1+equal2) < 2*total
		if force {
			shortfall = equal1+equal2 < total
		}
		if shortfall {
			additional = append(additional, w)
		}
		lastPoint = w.Ends()
	}

	for _, run := range equalRuns {
		scanWord(run.Starts(), run)
		if !run.Seq1.IsEmpty() && !run.Seq2.IsEmpty() {
			scanWord(seqdiff.OffsetPair{Offset1: run.Seq1.End - 1, Offset2: run.Seq2.End - 1}, run)
		}
	}

	return unionDiffs(diffs, mergeOverlapping(additional))
}

// mergeOverlapping joins extensions whose ranges intersect or touch on
// either side.
func mergeOverlapping(diffs []seqdiff.SequenceDiff) []seqdiff.SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}
	slices.SortFunc(diffs, func(a, b seqdiff.SequenceDiff) int {
		return a.Seq1.Start - b.Seq1.Start
	})
	result := diffs[:1:1]
	for _, d := range diffs[1:] {
		last := result[len(result)-1]
		if last.Seq1.End >= d.Seq1.Start || last.Seq2.End >= d.Seq2.Start {
			result[len(result)-1] = last.Join(d)
		} else {
			result = append(result, d)
		}
	}
	return result
}

// unionDiffs interleaves two sorted diff lists, joining entries that overlap
// or touch on the first sequence.
func unionDiffs(a, b []seqdiff.SequenceDiff) []seqdiff.SequenceDiff {
	var out []seqdiff.SequenceDiff
	push := func(d seqdiff.SequenceDiff) {
		if len(out) > 0 && out[len(out)-1].Seq1.End >= d.Seq1.Start {
			out[len(out)-1] = out[len(out)-1].Join(d)
		} else {
			out = append(out, d)
		}
	}
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if j >= len(b) || (i < len(a) && a[i].Seq1.Start <= b[j].Seq1.Start) {
			push(a[i])
			i++
		} else {
			push(b[j])
			j++
		}
	}
	return out
}
