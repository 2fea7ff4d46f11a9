package uni

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF16Len(t *testing.T) {
	require.Equal(t, 0, UTF16Len(""))
	require.Equal(t, 5, UTF16Len("hello"))
	require.Equal(t, 1, UTF16Len("é"))
	require.Equal(t, 2, UTF16Len("\U0001F600")) // surrogate pair
	require.Equal(t, 4, UTF16Len("a\U0001F600b"))
}

func TestUnitsRoundTrip(t *testing.T) {
	for _, s := range []string{"", "ascii", "héllo wörld", "mixed \U0001F680 text"} {
		require.Equal(t, s, UnitsToString(Units(s)))
		require.Len(t, Units(s), UTF16Len(s))
	}
}

func TestTextWidth(t *testing.T) {
	require.Equal(t, 5, TextWidth("hello"))
	require.Equal(t, 2, TextWidth("字")) // double-width CJK
	require.Equal(t, 0, TextWidth(""))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "hello", Truncate("hello", 10))
	require.Equal(t, "hel", Truncate("hello", 3))
	require.Equal(t, "", Truncate("hello", 0))
	// Never splits a double-width char in half.
	require.Equal(t, "字", Truncate("字字", 3))
}

func TestPadRight(t *testing.T) {
	require.Equal(t, "ab  ", PadRight("ab", 4))
	require.Equal(t, "abcd", PadRight("abcdef", 4))
	require.Equal(t, "", PadRight("", 0))
}
