package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/viennasuites/internal/schedule"
)

var epoch = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func newCarousel(n int) (*Controller, *schedule.Queue, *schedule.ManualClock) {
	clock := schedule.NewManualClock(epoch)
	q := schedule.NewQueue(clock)
	return New(q, n, 500*time.Millisecond), q, clock
}

func settle(q *schedule.Queue, clock *schedule.ManualClock, d time.Duration) {
	clock.Advance(d)
	q.RunDue()
}

func TestRapidNextIsAbsorbedByLock(t *testing.T) {
	t.Parallel()

	c, q, clock := newCarousel(3)
	require.True(t, c.Next())
	require.False(t, c.Next())
	require.False(t, c.Next())
	require.Equal(t, 1, c.Active())
	require.True(t, c.IsLocked())

	settle(q, clock, 500*time.Millisecond)
	require.False(t, c.IsLocked())
	require.Equal(t, 1, c.Active())
	require.Equal(t, 0, q.Len(), "dropped commands must not be replayed")
}

func TestCyclicClosure(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 7} {
		c, q, clock := newCarousel(n)
		for start := 0; start < n; start++ {
			if start != c.Active() {
				require.NoError(t, c.GoTo(start))
				settle(q, clock, c.Transition())
			}
			for i := 0; i < n; i++ {
				c.Next()
				settle(q, clock, c.Transition())
			}
			require.Equal(t, start, c.Active(), "next^%d from %d", n, start)
			for i := 0; i < n; i++ {
				c.Prev()
				settle(q, clock, c.Transition())
			}
			require.Equal(t, start, c.Active(), "prev^%d from %d", n, start)
		}
	}
}

func TestPrevWrapsToLast(t *testing.T) {
	t.Parallel()

	c, _, _ := newCarousel(3)
	require.True(t, c.Prev())
	require.Equal(t, 2, c.Active())
}

func TestLockedIgnoresEveryCommand(t *testing.T) {
	t.Parallel()

	c, q, clock := newCarousel(5)
	c.Next()
	for i := 0; i < 10; i++ {
		c.Next()
		c.Prev()
		require.NoError(t, c.GoTo(i%5))
		require.Equal(t, 1, c.Active())
	}
	settle(q, clock, 499*time.Millisecond)
	require.True(t, c.IsLocked())
	settle(q, clock, time.Millisecond)
	require.False(t, c.IsLocked())

	require.NoError(t, c.GoTo(4))
	require.Equal(t, 4, c.Active())
	require.Equal(t, []bool{false, false, false, false, true}, c.Indicators())
}

func TestGoToRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	c, q, _ := newCarousel(3)
	for _, i := range []int{-1, 3, 42} {
		err := c.GoTo(i)
		require.ErrorIs(t, err, ErrOutOfRange)
	}
	require.Equal(t, 0, c.Active())
	require.False(t, c.IsLocked())
	require.Equal(t, 0, q.Len())
}

func TestGoToCurrentDoesNotLock(t *testing.T) {
	t.Parallel()

	c, _, _ := newCarousel(3)
	require.NoError(t, c.GoTo(0))
	require.False(t, c.IsLocked())
}

func TestEmptyCarouselIgnoresNavigation(t *testing.T) {
	t.Parallel()

	c, _, _ := newCarousel(0)
	require.False(t, c.Next())
	require.False(t, c.Prev())
	require.ErrorIs(t, c.GoTo(0), ErrOutOfRange)
	require.Empty(t, c.Indicators())
}

func TestCloseCancelsUnlock(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManualClock(epoch)
	q := schedule.NewQueue(clock)
	var changes int
	c := New(q, 3, 0, WithOnChange(func(int, bool) { changes++ }))
	require.Equal(t, DefaultTransition, c.Transition())

	c.Next()
	require.Equal(t, 1, changes)
	c.Close()
	settle(q, clock, time.Second)
	require.Equal(t, 1, changes)
	require.Equal(t, 0, q.Len())
}
