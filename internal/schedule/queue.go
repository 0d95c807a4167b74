package schedule

import (
	"sort"
	"time"
)

// TaskID identifies a scheduled task. Zero is never issued.
type TaskID uint64

type task struct {
	id    TaskID
	seq   uint64
	due   time.Time
	fn    func()
	group *Group
}

// Queue holds pending tasks ordered by due time, then by scheduling order.
// It is not safe for concurrent use; the host touches it only from its
// update loop.
type Queue struct {
	clock Clock
	seq   uint64
	tasks []*task
}

// NewQueue creates a queue reading time from clock. A nil clock means the
// system clock.
func NewQueue(clock Clock) *Queue {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Queue{clock: clock}
}

// Now returns the queue's current time.
func (q *Queue) Now() time.Time { return q.clock.Now() }

// Len reports how many tasks are pending across all groups.
func (q *Queue) Len() int { return len(q.tasks) }

// Group returns a new task arena labelled owner.
func (q *Queue) Group(owner string) *Group {
	return &Group{q: q, owner: owner, pending: make(map[TaskID]*task)}
}

// NextDue returns the due time of the earliest pending task.
func (q *Queue) NextDue() (time.Time, bool) {
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	return q.tasks[0].due, true
}

// RunDue fires every task whose due time is not after Now, earliest first.
// Tasks scheduled while running that are already due fire in the same call.
// It returns the number of tasks fired.
func (q *Queue) RunDue() int {
	fired := 0
	for len(q.tasks) > 0 {
		now := q.clock.Now()
		next := q.tasks[0]
		if next.due.After(now) {
			break
		}
		q.tasks = q.tasks[1:]
		delete(next.group.pending, next.id)
		fired++
		next.fn()
	}
	return fired
}

func (q *Queue) insert(t *task) {
	idx := sort.Search(len(q.tasks), func(i int) bool {
		cur := q.tasks[i]
		if cur.due.Equal(t.due) {
			return cur.seq > t.seq
		}
		return cur.due.After(t.due)
	})
	q.tasks = append(q.tasks, nil)
	copy(q.tasks[idx+1:], q.tasks[idx:])
	q.tasks[idx] = t
}

func (q *Queue) remove(t *task) {
	for i, cur := range q.tasks {
		if cur == t {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return
		}
	}
}

// Group is the set of tasks one component owns. Cancelling the group on
// teardown guarantees none of its callbacks run afterwards.
type Group struct {
	q       *Queue
	owner   string
	pending map[TaskID]*task
}

// Owner returns the label given at creation.
func (g *Group) Owner() string { return g.owner }

// After schedules fn to run d from now. Negative delays run on the next
// RunDue.
func (g *Group) After(d time.Duration, fn func()) TaskID {
	if d < 0 {
		d = 0
	}
	g.q.seq++
	t := &task{
		id:    TaskID(g.q.seq),
		seq:   g.q.seq,
		due:   g.q.clock.Now().Add(d),
		fn:    fn,
		group: g,
	}
	g.pending[t.id] = t
	g.q.insert(t)
	return t.id
}

// Cancel removes a pending task. It reports whether the task was still
// pending.
func (g *Group) Cancel(id TaskID) bool {
	t, ok := g.pending[id]
	if !ok {
		return false
	}
	delete(g.pending, id)
	g.q.remove(t)
	return true
}

// CancelAll removes every pending task in the group and returns how many
// were dropped.
func (g *Group) CancelAll() int {
	n := len(g.pending)
	for id, t := range g.pending {
		delete(g.pending, id)
		g.q.remove(t)
	}
	return n
}

// Pending reports how many of the group's tasks have not fired.
func (g *Group) Pending() int { return len(g.pending) }
