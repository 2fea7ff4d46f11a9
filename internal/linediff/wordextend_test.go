package linediff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lindiff/lindiff/internal/seqdiff"
)

func charSeqOf(t *testing.T, line string) *charSequence {
	t.Helper()
	return newCharSequence([]string{line}, CharRange{Position{1, 1}, Position{1, len(line) + 1}}, false)
}

func TestExtendDiffsToWordsAbsorbsMostlyChangedWord(t *testing.T) {
	// "ca x" -> "cu x": only one of the word's two characters survives, well
	// under two thirds, so the whole word becomes the change.
	seq1 := charSeqOf(t, "ca x")
	seq2 := charSeqOf(t, "cu x")
	diffs := []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 1, End: 2}, Seq2: seqdiff.OffsetRange{Start: 1, End: 2}},
	}
	got := extendDiffsToWords(seq1, seq2, diffs, (*charSequence).findWordContaining, false)
	require.Equal(t, []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 0, End: 2}, Seq2: seqdiff.OffsetRange{Start: 0, End: 2}},
	}, got)
}

func TestExtendDiffsToWordsKeepsMostlyUnchangedWord(t *testing.T) {
	// "hello x" -> "hxllo x": four of five word characters survive on each
	// side, above the two-thirds threshold, so the single-character diff
	// stays.
	seq1 := charSeqOf(t, "hello x")
	seq2 := charSeqOf(t, "hxllo x")
	diffs := []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 1, End: 2}, Seq2: seqdiff.OffsetRange{Start: 1, End: 2}},
	}
	got := extendDiffsToWords(seq1, seq2, diffs, (*charSequence).findWordContaining, false)
	require.Equal(t, diffs, got)
}

func TestExtendDiffsToWordsForceModeAbsorbsAnyShortfall(t *testing.T) {
	// Forced mode (used for subwords) absorbs the word on any shortfall at
	// all, so the diff that survived above also extends here.
	seq1 := charSeqOf(t, "hello x")
	seq2 := charSeqOf(t, "hxllo x")
	diffs := []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 1, End: 2}, Seq2: seqdiff.OffsetRange{Start: 1, End: 2}},
	}
	got := extendDiffsToWords(seq1, seq2, diffs, (*charSequence).findWordContaining, true)
	require.Equal(t, []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 0, End: 5}, Seq2: seqdiff.OffsetRange{Start: 0, End: 5}},
	}, got)
}

func TestExtendDiffsToWordsSubwordFinder(t *testing.T) {
	// At subword granularity only "Bar"/"Baz" is in play, not the whole
	// identifier.
	seq1 := charSeqOf(t, "fooBar")
	seq2 := charSeqOf(t, "fooBaz")
	diffs := []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 5, End: 6}, Seq2: seqdiff.OffsetRange{Start: 5, End: 6}},
	}
	got := extendDiffsToWords(seq1, seq2, diffs, (*charSequence).findSubWordContaining, true)
	require.Equal(t, []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 3, End: 6}, Seq2: seqdiff.OffsetRange{Start: 3, End: 6}},
	}, got)
}

func TestMergeOverlapping(t *testing.T) {
	got := mergeOverlapping([]seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 4, End: 6}, Seq2: seqdiff.OffsetRange{Start: 4, End: 6}},
		{Seq1: seqdiff.OffsetRange{Start: 0, End: 2}, Seq2: seqdiff.OffsetRange{Start: 0, End: 2}},
		{Seq1: seqdiff.OffsetRange{Start: 2, End: 5}, Seq2: seqdiff.OffsetRange{Start: 2, End: 5}},
	})
	require.Equal(t, []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 0, End: 6}, Seq2: seqdiff.OffsetRange{Start: 0, End: 6}},
	}, got)
}

func TestUnionDiffsJoinsTouchingEntries(t *testing.T) {
	a := []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 0, End: 2}, Seq2: seqdiff.OffsetRange{Start: 0, End: 2}},
		{Seq1: seqdiff.OffsetRange{Start: 8, End: 9}, Seq2: seqdiff.OffsetRange{Start: 8, End: 9}},
	}
	b := []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 2, End: 4}, Seq2: seqdiff.OffsetRange{Start: 2, End: 4}},
	}
	got := unionDiffs(a, b)
	require.Equal(t, []seqdiff.SequenceDiff{
		{Seq1: seqdiff.OffsetRange{Start: 0, End: 4}, Seq2: seqdiff.OffsetRange{Start: 0, End: 4}},
		{Seq1: seqdiff.OffsetRange{Start: 8, End: 9}, Seq2: seqdiff.OffsetRange{Start: 8, End: 9}},
	}, got)
}
