package seqdiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scoredSeq is a Sequence with explicit per-position boundary scores.
type scoredSeq struct {
	keys   []int
	bounds []int // len(keys)+1 entries
}

func (s *scoredSeq) Len() int                    { return len(s.keys) }
func (s *scoredSeq) Key(i int) int               { return s.keys[i] }
func (s *scoredSeq) StronglyEqual(i, j int) bool { return s.keys[i] == s.keys[j] }
func (s *scoredSeq) BoundaryScore(pos int) int   { return s.bounds[pos] }

func TestJoinByShiftingMergesAcrossShiftableGap(t *testing.T) {
	// "aa" -> "aaaa" hand-split into two single insertions separated by one
	// matched element; sliding the second insertion left closes the gap.
	seq1 := seqOf("aa")
	seq2 := seqOf("aaaa")
	diffs := []SequenceDiff{
		{Seq1: OffsetRange{1, 1}, Seq2: OffsetRange{1, 2}},
		{Seq1: OffsetRange{2, 2}, Seq2: OffsetRange{3, 4}},
	}
	got := JoinByShifting(seq1, seq2, diffs)
	require.Equal(t, []SequenceDiff{
		{Seq1: OffsetRange{1, 1}, Seq2: OffsetRange{1, 3}},
	}, got)
	require.Equal(t, "aaaa", applyDiffs("aa", "aaaa", got))
}

func TestJoinByShiftingLeavesUnshiftableDiffsAlone(t *testing.T) {
	seq1 := seqOf("axb")
	seq2 := seqOf("ayb")
	diffs := []SequenceDiff{
		{Seq1: OffsetRange{1, 2}, Seq2: OffsetRange{1, 2}},
	}
	got := JoinByShifting(seq1, seq2, diffs)
	require.Equal(t, diffs, got)
}

func TestShiftToBoundariesPicksBestScoredOffset(t *testing.T) {
	// All elements equal, so the insertion can slide freely; the boundary
	// scores peak at position 2 on both sides.
	seq1 := &scoredSeq{keys: []int{5, 5, 5}, bounds: []int{0, 0, 10, 0}}
	seq2 := &scoredSeq{keys: []int{5, 5, 5, 5}, bounds: []int{0, 0, 10, 0, 0}}
	diffs := []SequenceDiff{
		{Seq1: OffsetRange{1, 1}, Seq2: OffsetRange{1, 2}},
	}
	got := ShiftToBoundaries(seq1, seq2, diffs)
	require.Equal(t, []SequenceDiff{
		{Seq1: OffsetRange{2, 2}, Seq2: OffsetRange{2, 3}},
	}, got)
}

func TestShiftToBoundariesHandlesDeletions(t *testing.T) {
	// Deletion-only diffs go through the same scorer with the sides swapped.
	seq1 := &scoredSeq{keys: []int{5, 5, 5, 5}, bounds: []int{0, 0, 10, 0, 0}}
	seq2 := &scoredSeq{keys: []int{5, 5, 5}, bounds: []int{0, 0, 10, 0}}
	diffs := []SequenceDiff{
		{Seq1: OffsetRange{1, 2}, Seq2: OffsetRange{1, 1}},
	}
	got := ShiftToBoundaries(seq1, seq2, diffs)
	require.Equal(t, []SequenceDiff{
		{Seq1: OffsetRange{2, 3}, Seq2: OffsetRange{2, 2}},
	}, got)
}

func TestRemoveShortMatches(t *testing.T) {
	t.Run("gap of two merges", func(t *testing.T) {
		got := RemoveShortMatches([]SequenceDiff{
			{Seq1: OffsetRange{0, 2}, Seq2: OffsetRange{0, 2}},
			{Seq1: OffsetRange{4, 6}, Seq2: OffsetRange{5, 7}},
		})
		require.Equal(t, []SequenceDiff{
			{Seq1: OffsetRange{0, 6}, Seq2: OffsetRange{0, 7}},
		}, got)
	})
	t.Run("gap of three survives", func(t *testing.T) {
		diffs := []SequenceDiff{
			{Seq1: OffsetRange{0, 2}, Seq2: OffsetRange{0, 2}},
			{Seq1: OffsetRange{5, 6}, Seq2: OffsetRange{5, 7}},
		}
		require.Equal(t, diffs, RemoveShortMatches(diffs))
	})
	t.Run("short gap on one side is enough", func(t *testing.T) {
		got := RemoveShortMatches([]SequenceDiff{
			{Seq1: OffsetRange{0, 2}, Seq2: OffsetRange{0, 2}},
			{Seq1: OffsetRange{9, 10}, Seq2: OffsetRange{3, 4}},
		})
		require.Len(t, got, 1)
	})
}

func TestOptimizePreservesReconstruction(t *testing.T) {
	a := "func foo() { return foo }"
	b := "func foobar() { return foobar }"
	res := Myers(seqOf(a), seqOf(b), Infinite())
	opt := Optimize(seqOf(a), seqOf(b), res.Diffs)
	requireValidDiffs(t, opt, len([]rune(a)), len([]rune(b)))
	require.Equal(t, b, applyDiffs(a, b, opt))
}
