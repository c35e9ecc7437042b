// File: signal/countdown.go
// Author: momentics <momentics@gmail.com>
//
// Countdown completion latch. A caller arms it with the number of jobs it
// is about to submit, attaches it to each of them, then blocks in Wait
// until every job has posted.

package signal

import (
	"sync"

	"github.com/momentics/hioload-thpool/api"
)

var _ api.CompletionSignal = (*Countdown)(nil)

// Countdown is a non-negative counter whose waiters unblock when repeated
// Post calls drive it to zero. It cannot be re-armed.
type Countdown struct {
	mu   sync.Mutex
	cond *sync.Cond
	v    int
}

// NewCountdown creates a Countdown armed with n. Negative n is a
// programming error and panics. NewCountdown(0) never blocks a waiter.
func NewCountdown(n int) *Countdown {
	if n < 0 {
		panic("signal: countdown must be armed with a non-negative count")
	}
	c := &Countdown{v: n}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Post decrements the counter by one and wakes one waiter only on the
// exact transition to zero. Posting more times than the armed count is a
// caller error: the intended protocol releases the signal right after Wait
// returns, so an extra Post would race a freed latch. It panics rather
// than letting the counter go negative and wedging future waiters.
func (c *Countdown) Post() {
	c.mu.Lock()
	if c.v == 0 {
		c.mu.Unlock()
		panic("signal: countdown posted more times than armed")
	}
	c.v--
	if c.v == 0 {
		c.cond.Signal()
	}
	c.mu.Unlock()
}

// PostAll decrements and unconditionally broadcasts, for the case of
// several independent waiters sharing one latch.
func (c *Countdown) PostAll() {
	c.mu.Lock()
	if c.v == 0 {
		c.mu.Unlock()
		panic("signal: countdown posted more times than armed")
	}
	c.v--
	c.cond.Broadcast()
	c.mu.Unlock()
}

// Wait blocks while the counter is non-zero.
func (c *Countdown) Wait() {
	c.mu.Lock()
	for c.v != 0 {
		c.cond.Wait()
	}
	c.mu.Unlock()
}

// Value returns a snapshot of the remaining count.
func (c *Countdown) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}
