// Package scrolllock models the page-wide "background cannot scroll" flag a
// modal holds while it is shown.
//
// Rules: the lock starts released. Acquire sets it. Release clears it
// unconditionally, whatever the number or order of earlier Acquire calls,
// and is safe to call when already released. Holders must release on every
// exit path, including teardown.
package scrolllock

import "sync/atomic"

// Lock is a single process-wide flag. The zero value is released.
type Lock struct {
	held atomic.Bool
}

// Default is the lock shared by the page host and its modals.
var Default = &Lock{}

// New returns an independent lock, mainly for tests.
func New() *Lock { return &Lock{} }

// Acquire marks the page as scroll-locked. It reports whether this call
// changed the state.
func (l *Lock) Acquire() bool {
	return l.held.CompareAndSwap(false, true)
}

// Release clears the lock. It reports whether the lock was held.
func (l *Lock) Release() bool {
	return l.held.Swap(false)
}

// Locked reports whether background scrolling is currently blocked.
func (l *Lock) Locked() bool {
	return l.held.Load()
}
