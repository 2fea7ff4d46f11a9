package seqdiff

// Optimize runs the order-sensitive shift passes shared by both
// granularities: join-by-shifting twice (the second run captures merges the
// first run's shifts unlock), then boundary-score shifting.
func Optimize(seq1, seq2 Sequence, diffs []SequenceDiff) []SequenceDiff {
	diffs = JoinByShifting(seq1, seq2, diffs)
	diffs = JoinByShifting(seq1, seq2, diffs)
	diffs = ShiftToBoundaries(seq1, seq2, diffs)
	return diffs
}

// JoinByShifting tries to slide every insertion-only or deletion-only diff
// left towards its predecessor and then right towards its successor,
// re-testing element equality at each candidate offset. A shift that closes
// the whole gap merges the two diffs; otherwise the diff stays at the
// furthest offset reached.
func JoinByShifting(seq1, seq2 Sequence, diffs []SequenceDiff) []SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}

	// Left pass: shift towards the previous diff using key equality.
	result := make([]SequenceDiff, 0, len(diffs))
	result = append(result, diffs[0])
	for i := 1; i < len(diffs); i++ {
		prev := result[len(result)-1]
		cur := diffs[i]
		if cur.Seq1.IsEmpty() || cur.Seq2.IsEmpty() {
			length := cur.Seq1.Start - prev.Seq1.End
			var d int
			for d = 1; d <= length; d++ {
				if seq1.Key(cur.Seq1.Start-d) != seq1.Key(cur.Seq1.End-d) ||
					seq2.Key(cur.Seq2.Start-d) != seq2.Key(cur.Seq2.End-d) {
					break
				}
			}
			d--
			if d == length {
				result[len(result)-1] = SequenceDiff{
					Seq1: OffsetRange{prev.Seq1.Start, cur.Seq1.End - length},
					Seq2: OffsetRange{prev.Seq2.Start, cur.Seq2.End - length},
				}
				continue
			}
			cur = cur.Delta(-d)
		}
		result = append(result, cur)
	}

	// Right pass: shift towards the next diff using strong equality.
	result2 := make([]SequenceDiff, 0, len(result))
	for i := 0; i < len(result)-1; i++ {
		next := result[i+1]
		cur := result[i]
		if cur.Seq1.IsEmpty() || cur.Seq2.IsEmpty() {
			length := next.Seq1.Start - cur.Seq1.End
			var d int
			for d = 0; d < length; d++ {
				if !seq1.StronglyEqual(cur.Seq1.Start+d, cur.Seq1.End+d) ||
					!seq2.StronglyEqual(cur.Seq2.Start+d, cur.Seq2.End+d) {
					break
				}
			}
			if d == length {
				result[i+1] = SequenceDiff{
					Seq1: OffsetRange{cur.Seq1.Start + length, next.Seq1.End},
					Seq2: OffsetRange{cur.Seq2.Start + length, next.Seq2.End},
				}
				continue
			}
			if d > 0 {
				cur = cur.Delta(d)
			}
		}
		result2 = append(result2, cur)
	}
	if len(result) > 0 {
		result2 = append(result2, result[len(result)-1])
	}
	return result2
}

// maxBoundaryShift caps how many candidate offsets ShiftToBoundaries scans
// per diff in each direction.
const maxBoundaryShift = 100

// ShiftToBoundaries moves insertion-only and deletion-only diffs to the
// offset whose edges score best under both sequences' boundary heuristics,
// staying clear of the neighboring diffs. The first offset reaching the best
// score wins ties.
func ShiftToBoundaries(seq1, seq2 Sequence, diffs []SequenceDiff) []SequenceDiff {
	for i := range diffs {
		var prev, next *SequenceDiff
		if i > 0 {
			prev = &diffs[i-1]
		}
		if i+1 < len(diffs) {
			next = &diffs[i+1]
		}

		seq1Valid := OffsetRange{0, seq1.Len()}
		seq2Valid := OffsetRange{0, seq2.Len()}
		if prev != nil {
			seq1Valid.Start = prev.Seq1.End + 1
			seq2Valid.Start = prev.Seq2.End + 1
		}
		if next != nil {
			seq1Valid.End = next.Seq1.Start - 1
			seq2Valid.End = next.Seq2.Start - 1
		}

		d := diffs[i]
		if d.Seq1.IsEmpty() {
			diffs[i] = shiftDiffToBetterPosition(d, seq1, seq2, seq1Valid, seq2Valid)
		} else if d.Seq2.IsEmpty() {
			diffs[i] = shiftDiffToBetterPosition(d.Swap(), seq2, seq1, seq2Valid, seq1Valid).Swap()
		}
	}
	return diffs
}

// shiftDiffToBetterPosition assumes diff.Seq1 is empty, so seq2 carries the
// inserted content.
func shiftDiffToBetterPosition(diff SequenceDiff, seq1, seq2 Sequence, seq1Valid, seq2Valid OffsetRange) SequenceDiff {
	deltaBefore := 1
	for diff.Seq1.Start-deltaBefore >= seq1Valid.Start &&
		diff.Seq2.Start-deltaBefore >= seq2Valid.Start &&
		seq2.StronglyEqual(diff.Seq2.Start-deltaBefore, diff.Seq2.End-deltaBefore) &&
		deltaBefore < maxBoundaryShift {
		deltaBefore++
	}
	deltaBefore--

	deltaAfter := 0
	for diff.Seq1.Start+deltaAfter < seq1Valid.End &&
		diff.Seq2.End+deltaAfter < seq2Valid.End &&
		seq2.StronglyEqual(diff.Seq2.Start+deltaAfter, diff.Seq2.End+deltaAfter) &&
		deltaAfter < maxBoundaryShift {
		deltaAfter++
	}

	if deltaBefore == 0 && deltaAfter == 0 {
		return diff
	}

	bestDelta := 0
	bestScore := -1
	for delta := -deltaBefore; delta <= deltaAfter; delta++ {
		score := seq1.BoundaryScore(diff.Seq1.Start+delta) +
			seq2.BoundaryScore(diff.Seq2.Start+delta) +
			seq2.BoundaryScore(diff.Seq2.End+delta)
		if score > bestScore {
			bestScore = score
			bestDelta = delta
		}
	}
	return diff.Delta(bestDelta)
}

// RemoveShortMatches merges any two neighboring diffs whose unchanged gap is
// at most two elements on either side.
func RemoveShortMatches(diffs []SequenceDiff) []SequenceDiff {
	var result []SequenceDiff
	for _, d := range diffs {
		if len(result) == 0 {
			result = append(result, d)
			continue
		}
		last := result[len(result)-1]
		if d.Seq1.Start-last.Seq1.End <= 2 || d.Seq2.Start-last.Seq2.End <= 2 {
			result[len(result)-1] = last.Join(d)
		} else {
			result = append(result, d)
		}
	}
	return result
}
