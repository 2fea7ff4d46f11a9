package highlight

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lindiff/lindiff/internal/linediff"
)

func TestNewTagsChangedLines(t *testing.T) {
	original := []string{"a", "b", "c"}
	modified := []string{"a", "x", "c"}
	d := linediff.Compute(original, modified, linediff.Options{})

	p := New(d, original, modified)
	require.Len(t, p.Original, 3)
	require.Len(t, p.Modified, 3)

	require.Equal(t, None, p.Original[0].Kind)
	require.Equal(t, LineDelete, p.Original[1].Kind)
	require.Equal(t, None, p.Original[2].Kind)

	require.Equal(t, None, p.Modified[0].Kind)
	require.Equal(t, LineInsert, p.Modified[1].Kind)
	require.Equal(t, None, p.Modified[2].Kind)

	require.Equal(t, []SubRange{{StartCol: 1, EndCol: 2}}, p.Original[1].Sub)
	require.Equal(t, []SubRange{{StartCol: 1, EndCol: 2}}, p.Modified[1].Sub)
}

func TestNewSplitsMultiLineInnerRanges(t *testing.T) {
	original := []string{"aaa"}
	modified := []string{"bbbb", "cc", "dd"}
	d := linediff.LinesDiff{Changes: []linediff.DetailedLineRangeMapping{{
		Original: linediff.LineRange{Start: 1, End: 2},
		Modified: linediff.LineRange{Start: 1, End: 4},
		Inner: []linediff.RangeMapping{{
			Original: linediff.CharRange{Start: linediff.Position{Line: 1, Col: 2}, End: linediff.Position{Line: 1, Col: 4}},
			Modified: linediff.CharRange{Start: linediff.Position{Line: 1, Col: 2}, End: linediff.Position{Line: 3, Col: 2}},
		}},
	}}}

	p := New(d, original, modified)
	// First line: start column to end of line. Interior: full line. Last:
	// column 1 to the end column.
	require.Equal(t, []SubRange{{StartCol: 2, EndCol: 4}}, p.Original[0].Sub)
	require.Equal(t, []SubRange{{StartCol: 2, EndCol: 5}}, p.Modified[0].Sub)
	require.Equal(t, []SubRange{{StartCol: 1, EndCol: 3}}, p.Modified[1].Sub)
	require.Equal(t, []SubRange{{StartCol: 1, EndCol: 2}}, p.Modified[2].Sub)
}

func TestNewDropsZeroWidthSubRanges(t *testing.T) {
	original := []string{"foo"}
	modified := []string{"foo", "bar"}
	d := linediff.Compute(original, modified, linediff.Options{})

	p := New(d, original, modified)
	// The insertion anchors as a point at the end of "foo"; a zero-width
	// sub-range must not be emitted for it.
	require.Empty(t, p.Original[0].Sub)
	require.Equal(t, LineInsert, p.Modified[1].Kind)
}

func TestNewEmptyDiffPaintsNothing(t *testing.T) {
	lines := []string{"same", "lines"}
	p := New(linediff.LinesDiff{}, lines, lines)
	for _, l := range append(p.Original, p.Modified...) {
		require.Equal(t, None, l.Kind)
		require.Empty(t, l.Sub)
	}
}
