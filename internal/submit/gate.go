// Package submit guards a form while its asynchronous submission is in
// flight.
//
// Begin marks the form busy and refuses a second submission until Finish
// runs. Finish always clears the busy state and turns the outcome into a
// success or failure notification.
package submit

import (
	"errors"
	"sync"
)

// ErrBusy is returned by Begin while a submission is outstanding.
var ErrBusy = errors.New("submit: submission already in progress")

// Kind distinguishes success from failure notifications.
type Kind string

const (
	KindSuccess Kind = "success"
	KindFailure Kind = "failure"
)

// Notification is what the host shows once a submission resolves.
type Notification struct {
	Kind        Kind
	Title       string
	Description string
}

// Messages holds the copy shown for each outcome. Failure descriptions
// default to the error text.
type Messages struct {
	SuccessTitle       string
	SuccessDescription string
	FailureTitle       string
}

// Gate is the busy flag for one form. It is safe to share between the UI
// loop and the goroutine running the submission.
type Gate struct {
	mu   sync.Mutex
	busy bool
	msgs Messages
}

// NewGate creates an idle gate.
func NewGate(msgs Messages) *Gate {
	if msgs.FailureTitle == "" {
		msgs.FailureTitle = "Submission failed"
	}
	return &Gate{msgs: msgs}
}

// Begin marks the form busy. It returns ErrBusy if a submission is already
// outstanding.
func (g *Gate) Begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return ErrBusy
	}
	g.busy = true
	return nil
}

// Finish clears the busy state and reports the outcome.
func (g *Gate) Finish(err error) Notification {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
	if err != nil {
		return Notification{Kind: KindFailure, Title: g.msgs.FailureTitle, Description: err.Error()}
	}
	return Notification{Kind: KindSuccess, Title: g.msgs.SuccessTitle, Description: g.msgs.SuccessDescription}
}

// Busy reports whether a submission is outstanding.
func (g *Gate) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}
