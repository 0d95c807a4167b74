// Package lightbox controls the gallery's filter and its modal image view.
//
// While an item is open the controller holds the page scroll lock. Every
// way out of the modal (escape, backdrop click, explicit close, unmount)
// releases it, and releasing twice is harmless.
package lightbox

import (
	"strings"

	"github.com/jask/viennasuites/internal/scrolllock"
)

// All is the filter value matching every category.
const All = "all"

// Item is one gallery entry.
type Item struct {
	ID       string
	Src      string
	Alt      string
	Category string
}

// Controller owns the filter and the selected item. It is driven from the
// host's update loop and is not safe for concurrent use.
type Controller struct {
	items    []Item
	filter   string
	selected *Item
	lock     *scrolllock.Lock
	mounted  bool
	onChange func()
}

// Option customizes a Controller.
type Option func(*Controller)

// WithOnChange registers a callback fired whenever the selection or the
// filter changes.
func WithOnChange(fn func()) Option {
	return func(c *Controller) { c.onChange = fn }
}

// New creates a controller over items. A nil lock means scrolllock.Default.
func New(items []Item, lock *scrolllock.Lock, opts ...Option) *Controller {
	if lock == nil {
		lock = scrolllock.Default
	}
	c := &Controller{
		items:  append([]Item(nil), items...),
		filter: All,
		lock:   lock,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mount attaches the escape-key listener.
func (c *Controller) Mount() { c.mounted = true }

// Unmount detaches the key listener, clears the selection and force
// releases the scroll lock so teardown never leaves the page frozen.
func (c *Controller) Unmount() {
	c.mounted = false
	c.selected = nil
	c.lock.Release()
}

// Mounted reports whether the key listener is attached.
func (c *Controller) Mounted() bool { return c.mounted }

// Open shows item in the lightbox and takes the scroll lock.
func (c *Controller) Open(item Item) {
	sel := item
	c.selected = &sel
	c.lock.Acquire()
	c.changed()
}

// Close hides the lightbox and releases the scroll lock unconditionally.
// It reports whether the lightbox was open.
func (c *Controller) Close() bool {
	wasOpen := c.selected != nil
	c.selected = nil
	c.lock.Release()
	if wasOpen {
		c.changed()
	}
	return wasOpen
}

// HandleKey routes a key press from the global listener. Only escape is
// consumed, and only while mounted.
func (c *Controller) HandleKey(key string) bool {
	if !c.mounted {
		return false
	}
	switch key {
	case "esc", "escape":
		c.Close()
		return true
	}
	return false
}

// ClickBackdrop closes the lightbox.
func (c *Controller) ClickBackdrop() bool { return c.Close() }

// ClickImage is a click on the image itself. It never reaches the backdrop
// handler, so the lightbox stays open.
func (c *Controller) ClickImage() bool { return false }

// IsOpen reports whether an item is selected.
func (c *Controller) IsOpen() bool { return c.selected != nil }

// Selected returns the open item.
func (c *Controller) Selected() (Item, bool) {
	if c.selected == nil {
		return Item{}, false
	}
	return *c.selected, true
}

// SetFilter changes the browsable category. The selection is untouched.
// An empty category means All.
func (c *Controller) SetFilter(category string) {
	category = normalize(category)
	if category == "" {
		category = All
	}
	if category == c.filter {
		return
	}
	c.filter = category
	c.changed()
}

// Filter returns the active category.
func (c *Controller) Filter() string { return c.filter }

// VisibleItems returns the items matching the active filter in catalog
// order.
func (c *Controller) VisibleItems() []Item {
	if c.filter == All {
		return append([]Item(nil), c.items...)
	}
	var out []Item
	for _, it := range c.items {
		if normalize(it.Category) == c.filter {
			out = append(out, it)
		}
	}
	return out
}

// Categories lists All followed by each category in first-appearance
// order.
func (c *Controller) Categories() []string {
	out := []string{All}
	seen := map[string]bool{All: true}
	for _, it := range c.items {
		cat := normalize(it.Category)
		if cat == "" || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	return out
}

// CycleFilter moves the filter to the next (delta>0) or previous category.
func (c *Controller) CycleFilter(delta int) string {
	cats := c.Categories()
	idx := 0
	for i, cat := range cats {
		if cat == c.filter {
			idx = i
			break
		}
	}
	n := len(cats)
	idx = ((idx+delta)%n + n) % n
	c.SetFilter(cats[idx])
	return c.filter
}

// Step moves the open lightbox to the neighbouring visible item, wrapping
// around. If the open item is filtered out it lands on the first (delta>0)
// or last visible item. It reports whether the selection changed.
func (c *Controller) Step(delta int) bool {
	if c.selected == nil || delta == 0 {
		return false
	}
	visible := c.VisibleItems()
	if len(visible) == 0 {
		return false
	}
	pos := -1
	for i, it := range visible {
		if it.ID == c.selected.ID {
			pos = i
			break
		}
	}
	var next int
	switch {
	case pos >= 0:
		n := len(visible)
		next = ((pos+delta)%n + n) % n
		if next == pos {
			return false
		}
	case delta > 0:
		next = 0
	default:
		next = len(visible) - 1
	}
	sel := visible[next]
	c.selected = &sel
	c.changed()
	return true
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
