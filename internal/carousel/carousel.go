// Package carousel is the slide index state machine behind the suites
// slider.
//
// Navigation wraps in both directions. Every index change starts a lock
// window for the slide transition; commands arriving inside the window are
// dropped, never queued.
package carousel

import (
	"errors"
	"fmt"
	"time"

	"github.com/jask/viennasuites/internal/schedule"
)

// DefaultTransition is the slide animation length.
const DefaultTransition = 500 * time.Millisecond

// ErrOutOfRange is returned by GoTo for an index outside [0, Len).
var ErrOutOfRange = errors.New("carousel: index out of range")

// Controller holds the active slide and the transition lock.
type Controller struct {
	n          int
	active     int
	locked     bool
	transition time.Duration
	tasks      *schedule.Group
	unlock     schedule.TaskID
	onChange   func(active int, locked bool)
}

// Option customizes a Controller.
type Option func(*Controller)

// WithOnChange registers a callback fired on every index or lock change.
func WithOnChange(fn func(active int, locked bool)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// New creates a controller over n slides. A non-positive transition falls
// back to DefaultTransition.
func New(queue *schedule.Queue, n int, transition time.Duration, opts ...Option) *Controller {
	if n < 0 {
		n = 0
	}
	if transition <= 0 {
		transition = DefaultTransition
	}
	c := &Controller{
		n:          n,
		transition: transition,
		tasks:      queue.Group("carousel"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Next advances to the following slide, wrapping to the first. It reports
// whether the index changed.
func (c *Controller) Next() bool {
	if c.locked || c.n == 0 {
		return false
	}
	return c.move((c.active + 1) % c.n)
}

// Prev moves to the previous slide, wrapping to the last.
func (c *Controller) Prev() bool {
	if c.locked || c.n == 0 {
		return false
	}
	return c.move((c.active - 1 + c.n) % c.n)
}

// GoTo jumps to slide i. Out-of-range indexes are rejected with
// ErrOutOfRange; a request dropped by the lock returns nil and leaves the
// index unchanged.
func (c *Controller) GoTo(i int) error {
	if i < 0 || i >= c.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, c.n)
	}
	if c.locked {
		return nil
	}
	c.move(i)
	return nil
}

func (c *Controller) move(i int) bool {
	if i == c.active {
		return false
	}
	c.active = i
	c.locked = true
	c.unlock = c.tasks.After(c.transition, func() {
		c.locked = false
		c.unlock = 0
		c.emit()
	})
	c.emit()
	return true
}

func (c *Controller) emit() {
	if c.onChange != nil {
		c.onChange(c.active, c.locked)
	}
}

// Active returns the current slide index.
func (c *Controller) Active() int { return c.active }

// Len returns the number of slides.
func (c *Controller) Len() int { return c.n }

// IsLocked reports whether a transition is in flight.
func (c *Controller) IsLocked() bool { return c.locked }

// Transition returns the lock window length.
func (c *Controller) Transition() time.Duration { return c.transition }

// Indicators projects the active index onto pagination dots.
func (c *Controller) Indicators() []bool {
	dots := make([]bool, c.n)
	if c.n > 0 {
		dots[c.active] = true
	}
	return dots
}

// Close cancels the pending unlock. The controller stays readable but the
// unlock callback will never run.
func (c *Controller) Close() {
	c.tasks.CancelAll()
	c.unlock = 0
}
