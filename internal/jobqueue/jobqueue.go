// File: internal/jobqueue/jobqueue.go
// Author: momentics <momentics@gmail.com>
//
// Mutex-guarded FIFO of pending jobs paired with one level-triggered
// "has jobs" flag. The flag is asserted by Push and repaired by every
// Pull: lowered when the dequeue empties the queue, re-broadcast when
// jobs remain. Waiters never lower it themselves, so any worker that
// wakes must treat an empty Pull as a lost race, not an error.

package jobqueue

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-thpool/api"
	"github.com/momentics/hioload-thpool/signal"
)

// Job is one unit of work. Done, when non-nil, is posted exactly once by
// the worker that executed Fn.
type Job struct {
	Fn   func()
	Done api.CompletionSignal
}

// Queue is a FIFO of Jobs backed by a growable ring deque.
type Queue struct {
	mu   sync.Mutex
	ring *queue.Queue
	has  *signal.Level
}

// New creates an empty queue with its flag lowered.
func New() *Queue {
	return &Queue{
		ring: queue.New(),
		has:  signal.NewLevel(0),
	}
}

// HasJobs exposes the level flag workers park on.
func (q *Queue) HasJobs() *signal.Level {
	return q.has
}

// Push appends at the rear in O(1) and broadcasts the flag. Broadcast, not
// a single wake: with several workers already parked, a lone Signal could
// strand the queue when the chosen waker loses the dequeue race.
func (q *Queue) Push(j Job) {
	q.mu.Lock()
	q.ring.Add(j)
	q.has.PostAll()
	q.mu.Unlock()
}

// Pull removes and returns the front job in O(1). ok is false when the
// queue was already empty. The flag is repaired on every call: driven low
// when this dequeue emptied the queue, re-broadcast otherwise so any other
// parked worker also gets its chance.
func (q *Queue) Pull() (j Job, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ring.Length() == 0 {
		return Job{}, false
	}
	j = q.ring.Remove().(Job)
	if q.ring.Length() == 0 {
		q.has.Set(0)
	} else {
		q.has.PostAll()
	}
	return j, true
}

// Len returns a snapshot of the number of pending jobs.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Length()
}

// Clear discards every pending job and resets the flag to 0.
func (q *Queue) Clear() {
	q.mu.Lock()
	for q.ring.Length() > 0 {
		q.ring.Remove()
	}
	q.has.Reset()
	q.mu.Unlock()
}
