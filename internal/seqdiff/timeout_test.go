package seqdiff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeoutInfiniteNeverExpires(t *testing.T) {
	timeout := Infinite()
	for i := 0; i < 3*timeoutSampleInterval; i++ {
		require.True(t, timeout.Valid())
	}
}

func TestTimeoutSamplesTheClockSparsely(t *testing.T) {
	// Even an already-expired deadline only trips once the call counter hits
	// the sampling interval.
	timeout := At(time.Now().Add(-time.Second))
	for i := 1; i < timeoutSampleInterval; i++ {
		require.True(t, timeout.Valid(), "call %d", i)
	}
	require.False(t, timeout.Valid())
}

func TestTimeoutIsSticky(t *testing.T) {
	timeout := At(time.Now().Add(-time.Second))
	for timeout.Valid() {
	}
	for i := 0; i < 10; i++ {
		require.False(t, timeout.Valid())
	}
}

func TestTimeoutWithGenerousBudgetStaysValid(t *testing.T) {
	timeout := Deadline(time.Hour)
	for i := 0; i < 3*timeoutSampleInterval; i++ {
		require.True(t, timeout.Valid())
	}
}
