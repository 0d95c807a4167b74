// Package reveal defers the appearance of page regions until they scroll
// into view.
//
// Each registered target is Pending until its top edge passes a fraction of
// the viewport height, then becomes Triggered for good. A triggered target's
// children are revealed one by one on a stagger, each on its own
// cancellable task.
package reveal

import (
	"fmt"
	"time"

	"github.com/jask/viennasuites/internal/schedule"
)

// State is a target's position in the reveal lifecycle.
type State int

const (
	Pending State = iota
	Triggered
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Triggered:
		return "triggered"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// minThreshold keeps a non-positive threshold from meaning "never".
const minThreshold = 0.01

// Handle identifies a registered target. Zero is never issued.
type Handle uint64

// MeasureFunc reports the target's top edge in page coordinates. ok is
// false when the target has not been laid out yet.
type MeasureFunc func() (top float64, ok bool)

// Event describes one visible transition. Child is -1 for the target itself.
type Event struct {
	Handle Handle
	ID     string
	Child  int
	At     time.Time
}

// Target describes a region to reveal.
type Target struct {
	ID string
	// Threshold is the fraction of the viewport height, measured from the
	// top, that the target's top edge must rise above. Clamped to (0,1].
	Threshold float64
	// Children is the number of staggered sub-targets.
	Children int
	// Step is the delay between consecutive children.
	Step     time.Duration
	Measure  MeasureFunc
	OnChange func(Event)
}

type entry struct {
	handle      Handle
	target      Target
	state       State
	revealed    []bool
	triggeredAt time.Time
	tasks       *schedule.Group
}

// Engine tracks registered targets. It is driven from the host's update
// loop and is not safe for concurrent use.
type Engine struct {
	queue   *schedule.Queue
	targets map[Handle]*entry
	order   []Handle
	last    Handle
}

// New creates an engine whose stagger timers run on queue.
func New(queue *schedule.Queue) *Engine {
	return &Engine{queue: queue, targets: make(map[Handle]*entry)}
}

// Register adds a target in the Pending state and returns its handle.
func (e *Engine) Register(t Target) Handle {
	switch {
	case t.Threshold <= 0:
		t.Threshold = minThreshold
	case t.Threshold > 1:
		t.Threshold = 1
	}
	if t.Children < 0 {
		t.Children = 0
	}
	if t.Step < 0 {
		t.Step = 0
	}
	e.last++
	ent := &entry{
		handle:   e.last,
		target:   t,
		revealed: make([]bool, t.Children),
		tasks:    e.queue.Group("reveal:" + t.ID),
	}
	e.targets[ent.handle] = ent
	e.order = append(e.order, ent.handle)
	return ent.handle
}

// Unregister removes a target and cancels any child reveals still waiting.
// It reports whether the handle was known.
func (e *Engine) Unregister(h Handle) bool {
	ent, ok := e.targets[h]
	if !ok {
		return false
	}
	ent.tasks.CancelAll()
	delete(e.targets, h)
	for i, cur := range e.order {
		if cur == h {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return true
}

// Close unregisters every target.
func (e *Engine) Close() {
	for _, ent := range e.targets {
		ent.tasks.CancelAll()
	}
	e.targets = make(map[Handle]*entry)
	e.order = nil
}

// Evaluate checks every Pending target against the viewport and triggers
// those whose top edge is above viewportHeight*Threshold. It returns the
// handles triggered by this call. Call it on mount, on every scroll and on
// every resize.
func (e *Engine) Evaluate(viewportTop, viewportHeight float64) []Handle {
	if viewportHeight <= 0 {
		return nil
	}
	var triggered []Handle
	for _, h := range e.order {
		ent := e.targets[h]
		if ent.state == Triggered || ent.target.Measure == nil {
			continue
		}
		top, ok := ent.target.Measure()
		if !ok {
			continue
		}
		if top-viewportTop < viewportHeight*ent.target.Threshold {
			e.trigger(ent)
			triggered = append(triggered, h)
		}
	}
	return triggered
}

func (e *Engine) trigger(ent *entry) {
	ent.state = Triggered
	ent.triggeredAt = e.queue.Now()
	e.notify(ent, -1, ent.triggeredAt)
	for i := range ent.revealed {
		child := i
		ent.tasks.After(time.Duration(child)*ent.target.Step, func() {
			ent.revealed[child] = true
			e.notify(ent, child, e.queue.Now())
		})
	}
}

func (e *Engine) notify(ent *entry, child int, at time.Time) {
	if ent.target.OnChange == nil {
		return
	}
	ent.target.OnChange(Event{Handle: ent.handle, ID: ent.target.ID, Child: child, At: at})
}

// State returns the target's lifecycle state. Unknown handles are Pending.
func (e *Engine) State(h Handle) State {
	if ent, ok := e.targets[h]; ok {
		return ent.state
	}
	return Pending
}

// Triggered reports whether the target's container is visible.
func (e *Engine) Triggered(h Handle) bool { return e.State(h) == Triggered }

// Revealed reports whether child i of the target has been revealed.
func (e *Engine) Revealed(h Handle, i int) bool {
	ent, ok := e.targets[h]
	if !ok || i < 0 || i >= len(ent.revealed) {
		return false
	}
	return ent.revealed[i]
}

// RevealedCount returns how many children of the target are revealed.
func (e *Engine) RevealedCount(h Handle) int {
	ent, ok := e.targets[h]
	if !ok {
		return 0
	}
	n := 0
	for _, r := range ent.revealed {
		if r {
			n++
		}
	}
	return n
}

// TriggeredAt returns when the target triggered.
func (e *Engine) TriggeredAt(h Handle) (time.Time, bool) {
	ent, ok := e.targets[h]
	if !ok || ent.state != Triggered {
		return time.Time{}, false
	}
	return ent.triggeredAt, true
}

// Pending returns the number of targets not yet triggered.
func (e *Engine) Pending() int {
	n := 0
	for _, ent := range e.targets {
		if ent.state == Pending {
			n++
		}
	}
	return n
}

// Len returns the number of registered targets.
func (e *Engine) Len() int { return len(e.targets) }
