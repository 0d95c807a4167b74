package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/viennasuites/internal/schedule"
)

var epoch = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func fixedTop(top float64) MeasureFunc {
	return func() (float64, bool) { return top, true }
}

func newEngine() (*Engine, *schedule.Queue, *schedule.ManualClock) {
	clock := schedule.NewManualClock(epoch)
	q := schedule.NewQueue(clock)
	return New(q), q, clock
}

func TestStaggeredChildrenRevealFromTriggerTime(t *testing.T) {
	t.Parallel()

	eng, q, clock := newEngine()
	var events []Event
	h := eng.Register(Target{
		ID:        "about",
		Threshold: 0.8,
		Children:  3,
		Step:      100 * time.Millisecond,
		Measure:   fixedTop(900),
		OnChange:  func(ev Event) { events = append(events, ev) },
	})

	// 900-200 = 700 is not above 0.8*800 = 640.
	require.Empty(t, eng.Evaluate(200, 800))
	require.False(t, eng.Triggered(h))
	_, ok := eng.TriggeredAt(h)
	require.False(t, ok)

	clock.Advance(37 * time.Millisecond)
	triggerAt := clock.Now()
	require.Equal(t, []Handle{h}, eng.Evaluate(300, 800))
	require.True(t, eng.Triggered(h))
	at, ok := eng.TriggeredAt(h)
	require.True(t, ok)
	require.Equal(t, triggerAt, at)
	require.Equal(t, 0, eng.RevealedCount(h))

	q.RunDue()
	require.True(t, eng.Revealed(h, 0))
	require.False(t, eng.Revealed(h, 1))

	clock.Advance(99 * time.Millisecond)
	q.RunDue()
	require.False(t, eng.Revealed(h, 1))

	clock.Advance(time.Millisecond)
	q.RunDue()
	require.True(t, eng.Revealed(h, 1))

	clock.Advance(100 * time.Millisecond)
	q.RunDue()
	require.Equal(t, 3, eng.RevealedCount(h))

	require.Len(t, events, 4)
	require.Equal(t, -1, events[0].Child)
	for i, want := range []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond} {
		ev := events[i+1]
		require.Equal(t, i, ev.Child)
		require.Equal(t, triggerAt.Add(want), ev.At)
	}
}

func TestTriggeredIsAbsorbing(t *testing.T) {
	t.Parallel()

	eng, q, clock := newEngine()
	top := 100.0
	triggers := 0
	h := eng.Register(Target{
		ID:        "suites",
		Threshold: 0.7,
		Children:  2,
		Step:      50 * time.Millisecond,
		Measure:   func() (float64, bool) { return top, true },
		OnChange: func(ev Event) {
			if ev.Child == -1 {
				triggers++
			}
		},
	})

	eng.Evaluate(0, 1000)
	require.True(t, eng.Triggered(h))

	// Scroll back up so the target is far below the fold again.
	top = 10_000
	for i := 0; i < 20; i++ {
		require.Empty(t, eng.Evaluate(0, 1000))
		require.Equal(t, Triggered, eng.State(h))
	}
	require.Equal(t, 1, triggers)

	clock.Advance(time.Second)
	q.RunDue()
	require.Equal(t, 2, eng.RevealedCount(h))
	require.Equal(t, 0, q.Len(), "re-evaluation must not reschedule children")
}

func TestUnmeasuredTargetStaysPendingUntilLaidOut(t *testing.T) {
	t.Parallel()

	eng, _, _ := newEngine()
	laidOut := false
	h := eng.Register(Target{
		ID:        "gallery",
		Threshold: 0.75,
		Measure: func() (float64, bool) {
			if !laidOut {
				return 0, false
			}
			return 10, true
		},
	})

	require.Empty(t, eng.Evaluate(0, 100))
	require.Equal(t, Pending, eng.State(h))

	laidOut = true
	require.Equal(t, []Handle{h}, eng.Evaluate(0, 100))
}

func TestInitialEvaluationTriggersTargetAlreadyInView(t *testing.T) {
	t.Parallel()

	eng, _, _ := newEngine()
	hero := eng.Register(Target{ID: "hero", Threshold: 1, Measure: fixedTop(0)})
	below := eng.Register(Target{ID: "contact", Threshold: 0.7, Measure: fixedTop(500)})

	got := eng.Evaluate(0, 40)
	require.Equal(t, []Handle{hero}, got)
	require.False(t, eng.Triggered(below))
	require.Equal(t, 1, eng.Pending())
}

func TestEvaluateWithoutTargetsIsNoop(t *testing.T) {
	t.Parallel()

	eng, q, _ := newEngine()
	require.Empty(t, eng.Evaluate(0, 100))
	require.Empty(t, eng.Evaluate(0, 0))
	require.Equal(t, 0, q.Len())
}

func TestUnregisterCancelsPendingChildren(t *testing.T) {
	t.Parallel()

	eng, q, clock := newEngine()
	fired := 0
	h := eng.Register(Target{
		ID:        "amenities",
		Threshold: 0.7,
		Children:  6,
		Step:      100 * time.Millisecond,
		Measure:   fixedTop(0),
		OnChange: func(ev Event) {
			if ev.Child >= 0 {
				fired++
			}
		},
	})
	eng.Evaluate(0, 100)
	q.RunDue()
	require.Equal(t, 1, fired)

	require.True(t, eng.Unregister(h))
	require.False(t, eng.Unregister(h))
	require.Equal(t, 0, q.Len())

	clock.Advance(time.Second)
	q.RunDue()
	require.Equal(t, 1, fired)
	require.Equal(t, 0, eng.Len())
}

func TestCloseCancelsEveryTarget(t *testing.T) {
	t.Parallel()

	eng, q, _ := newEngine()
	for _, id := range []string{"a", "b", "c"} {
		eng.Register(Target{ID: id, Threshold: 1, Children: 3, Step: time.Second, Measure: fixedTop(0)})
	}
	eng.Evaluate(0, 10)
	require.Equal(t, 9, q.Len())

	eng.Close()
	require.Equal(t, 0, q.Len())
	require.Equal(t, 0, eng.Len())
	require.Empty(t, eng.Evaluate(0, 10))
}

func TestThresholdIsClamped(t *testing.T) {
	t.Parallel()

	eng, _, _ := newEngine()
	high := eng.Register(Target{ID: "high", Threshold: 4, Measure: fixedTop(99)})
	low := eng.Register(Target{ID: "low", Threshold: -1, Measure: fixedTop(0.5)})

	eng.Evaluate(0, 100)
	require.True(t, eng.Triggered(high))
	require.True(t, eng.Triggered(low), "0.5 is above 0.01*100")
}
