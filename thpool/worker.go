// File: thpool/worker.go
// Author: momentics <momentics@gmail.com>
//
// Worker run loop: park on the queue's wake flag, pull one job, execute,
// post its completion latch, repeat until keep-alive drops.

package thpool

import (
	"runtime"

	"github.com/momentics/hioload-thpool/affinity"
)

// worker is one pool-owned execution thread.
type worker struct {
	id   int
	core int
	pool *Pool
}

// run is the thread body. The loop holds these invariants: a worker only
// counts as working while it holds a real dequeue attempt; a wake with
// nothing to pull (another worker won the race) returns to idle without
// counting work; a job already dequeued when keep-alive drops still runs
// to completion.
func (w *worker) run() {
	p := w.pool

	if p.cfg.pin {
		// Pinning binds the OS thread, so the goroutine must be locked to
		// it for the whole worker lifetime.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := w.pin(); err != nil {
			p.cfg.logger.Printf("worker %d: running unpinned: %v", w.id, err)
		}
	}

	p.countMu.Lock()
	p.alive++
	p.countMu.Unlock()
	defer func() {
		p.countMu.Lock()
		p.alive--
		p.countMu.Unlock()
	}()

	for p.keepalive.Load() {
		p.queue.HasJobs().Wait()

		if !p.keepalive.Load() {
			return
		}

		p.countMu.Lock()
		p.working++
		p.countMu.Unlock()

		if job, ok := p.queue.Pull(); ok {
			job.Fn()
			if job.Done != nil {
				job.Done.Post()
			}
			p.completed.Add(1)
		}

		p.countMu.Lock()
		p.working--
		if p.working == 0 {
			p.notifyIdle()
		}
		p.countMu.Unlock()

		runtime.Gosched()
	}
}

// pin binds the current OS thread to the worker's assigned core.
func (w *worker) pin() error {
	return affinity.Pin(w.core)
}
