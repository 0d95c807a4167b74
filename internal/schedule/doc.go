// Package schedule runs one-shot delayed tasks on the UI thread.
//
// A Queue owns every pending task; components take a Group from the queue
// and schedule through it, so tearing a component down is a single
// Group.CancelAll. Nothing here starts goroutines: the host calls RunDue on
// each tick and uses NextDue to decide when the next tick is needed.
package schedule
