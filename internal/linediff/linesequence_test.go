package linediff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternerAssignsSequentialIDs(t *testing.T) {
	in := newInterner()
	require.Equal(t, 0, in.id("a"))
	require.Equal(t, 1, in.id("b"))
	require.Equal(t, 0, in.id("a"))
	require.Equal(t, 2, in.id(""))
}

func TestLineSequenceKeysIgnoreSurroundingWhitespace(t *testing.T) {
	in := newInterner()
	s1 := newLineSequence([]string{"foo", "  bar  "}, in)
	s2 := newLineSequence([]string{"foo  ", "bar"}, in)

	// Keys compare equal across the shared interner; strong equality does not.
	require.Equal(t, s1.Key(0), s2.Key(0))
	require.Equal(t, s1.Key(1), s2.Key(1))
	require.True(t, s1.StronglyEqual(0, 0))
	require.False(t, newLineSequence([]string{"a ", "a"}, newInterner()).StronglyEqual(0, 1))
}

func TestLineSequenceBoundaryScoreFavorsLowIndentation(t *testing.T) {
	s := newLineSequence([]string{"top", "\tnested", "\t\tdeep", "top2"}, newInterner())
	require.Equal(t, 1000, s.BoundaryScore(0))
	require.Greater(t, s.BoundaryScore(0), s.BoundaryScore(2))
	require.Equal(t, 1000-3, s.BoundaryScore(2)) // 1 tab before, 2 tabs after
	require.Equal(t, 1000, s.BoundaryScore(4))
}

func TestLineSequenceText(t *testing.T) {
	s := newLineSequence([]string{"a", "b", "c"}, newInterner())
	require.Equal(t, "b\nc", s.text(1, 3))
	require.Equal(t, "", s.text(1, 1))
}

func TestIndentation(t *testing.T) {
	require.Equal(t, 0, indentation("x"))
	require.Equal(t, 2, indentation("  x"))
	require.Equal(t, 3, indentation(" \t x"))
	require.Equal(t, 2, indentation("  "))
}
