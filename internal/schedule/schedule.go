// Package schedule runs fire-once callbacks on a game clock.
//
// The clock only moves when Advance is called, so tasks fire from inside the
// frame loop and never race the rest of the game state. Every task can be
// cancelled; a cancelled task never runs.
package schedule

import (
	"container/heap"
	"time"
)

// Task identifies a scheduled callback. The zero Task is never issued.
type Task uint64

type entry struct {
	id    Task
	due   time.Duration
	fn    func()
	index int
}

// taskHeap orders by due time, then by scheduling order
type taskHeap []*entry

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].id < h[j].id
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Scheduler holds pending tasks. Not safe for concurrent use.
type Scheduler struct {
	now     time.Duration
	lastID  Task
	queue   taskHeap
	pending map[Task]*entry
}

// New creates an empty scheduler at time zero
func New() *Scheduler {
	return &Scheduler{pending: make(map[Task]*entry)}
}

// Now is the elapsed game time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once the clock has advanced by d
func (s *Scheduler) After(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	s.lastID++
	e := &entry{id: s.lastID, due: s.now + d, fn: fn}
	heap.Push(&s.queue, e)
	s.pending[e.id] = e
	return e.id
}

// Cancel removes a pending task. Reports false if it already ran or was cancelled.
func (s *Scheduler) Cancel(t Task) bool {
	e, ok := s.pending[t]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, e.index)
	delete(s.pending, t)
	return true
}

// CancelAll drops every pending task and returns how many were dropped
func (s *Scheduler) CancelAll() int {
	n := len(s.pending)
	clear(s.queue)
	s.queue = s.queue[:0]
	clear(s.pending)
	return n
}

// Pending is the number of tasks waiting to run
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Advance moves the clock forward and runs every task now due, in due order.
// Tasks scheduled by a running task fire in the same call if already due.
// Returns the number of tasks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	ran := 0
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		e := heap.Pop(&s.queue).(*entry)
		delete(s.pending, e.id)
		e.fn()
		ran++
	}
	return ran
}
