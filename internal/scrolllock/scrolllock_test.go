package scrolllock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcquireRelease(t *testing.T) {
	t.Parallel()

	l := New()
	require.False(t, l.Locked())

	require.True(t, l.Acquire())
	require.False(t, l.Acquire(), "second acquire is not a state change")
	require.True(t, l.Locked())

	require.True(t, l.Release())
	require.False(t, l.Locked())
}

func TestReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	l := New()
	require.False(t, l.Release())
	l.Acquire()
	l.Acquire()
	require.True(t, l.Release())
	require.False(t, l.Release())
	require.False(t, l.Locked())
}
