// File: signal/level.go
// Author: momentics <momentics@gmail.com>
//
// Level-triggered binary wake flag. Broadcast edge stays high: Wait never
// clears the value, so several waiters may wake for one Post and must
// re-check their own condition (queue emptiness) independently.

package signal

import "sync"

// Level is a one-bit flag with blocking wait. Value is always 0 or 1.
type Level struct {
	mu   sync.Mutex
	cond *sync.Cond
	v    int
}

// NewLevel creates a Level holding v. Any value outside {0,1} is a
// programming error and panics.
func NewLevel(v int) *Level {
	if v < 0 || v > 1 {
		panic("signal: level value must be 0 or 1")
	}
	l := &Level{v: v}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Post sets the flag and wakes at least one waiter.
func (l *Level) Post() {
	l.mu.Lock()
	l.v = 1
	l.cond.Signal()
	l.mu.Unlock()
}

// PostAll sets the flag and wakes every waiter.
func (l *Level) PostAll() {
	l.mu.Lock()
	l.v = 1
	l.cond.Broadcast()
	l.mu.Unlock()
}

// Wait blocks until the flag is 1. The flag is left asserted; only the
// consumer side lowers it, via Set(0) or Reset.
func (l *Level) Wait() {
	l.mu.Lock()
	for l.v != 1 {
		l.cond.Wait()
	}
	l.mu.Unlock()
}

// Set drives the value directly without waking anyone. The job queue uses
// Set(0) on the dequeue that empties it.
func (l *Level) Set(v int) {
	if v < 0 || v > 1 {
		panic("signal: level value must be 0 or 1")
	}
	l.mu.Lock()
	l.v = v
	l.mu.Unlock()
}

// Reset reinitializes the flag to 0.
func (l *Level) Reset() {
	l.Set(0)
}

// Value returns a snapshot of the flag.
func (l *Level) Value() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.v
}
