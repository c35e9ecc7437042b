// File: thpool/pool.go
// Author: momentics <momentics@gmail.com>
//
// Pool lifecycle: construction with a startup barrier, non-blocking
// submission, drain waiting and two-phase graceful destruction.
//
// Locking note: the job queue, the pool's alive/working counters and the
// wake flag each have their own lock. A worker's view of "queue empty" and
// "flag raised" can therefore transiently disagree; the queue repairs the
// flag on every dequeue, and Wait re-checks on a short tick instead of
// trusting a single notification.

package thpool

import (
	"log"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-thpool/affinity"
	"github.com/momentics/hioload-thpool/api"
	"github.com/momentics/hioload-thpool/internal/jobqueue"
	"github.com/momentics/hioload-thpool/signal"
)

const (
	// idleTick bounds how long Wait sleeps between drain re-checks when an
	// idle notification is missed across the split locks.
	idleTick = time.Millisecond
	// startupTick paces the one-time construction barrier.
	startupTick = 50 * time.Microsecond
	// lingerTick paces the unbounded second phase of Destroy.
	lingerTick = time.Millisecond
)

type config struct {
	pin    bool
	policy api.FailPolicy
	logger *log.Logger
	grace  time.Duration
}

// Pool is a fixed-size worker pool over one shared FIFO queue.
type Pool struct {
	queue   *jobqueue.Queue
	workers []*worker

	countMu sync.Mutex
	alive   int
	working int
	idleCh  chan struct{} // single-slot, filled on the working 0-transition

	keepalive atomic.Bool
	destroyed atomic.Bool

	submitted atomic.Int64
	completed atomic.Int64

	cfg config
}

var _ api.Pool = (*Pool)(nil)

// New creates a pool of numWorkers workers and blocks until every one of
// them is running. Negative counts are treated as zero. A zero-worker pool
// is valid: submissions queue up but nothing ever dequeues.
func New(numWorkers int, opts ...Option) *Pool {
	if numWorkers < 0 {
		numWorkers = 0
	}
	p := &Pool{
		queue:  jobqueue.New(),
		idleCh: make(chan struct{}, 1),
		cfg: config{
			pin:    true,
			policy: api.PolicyDiagnostic,
			logger: log.New(os.Stderr, "[thpool] ", log.LstdFlags),
			grace:  time.Second,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.keepalive.Store(true)

	assigner := affinity.NewAssigner()
	p.workers = make([]*worker, numWorkers)
	for i := 0; i < numWorkers; i++ {
		w := &worker{id: i, core: assigner.Next(), pool: p}
		p.workers[i] = w
		go w.run()
	}

	// Startup barrier: serve nothing until the whole pool is alive.
	for p.aliveCount() != numWorkers {
		time.Sleep(startupTick)
	}
	return p
}

// Submit enqueues a task with no completion tracking. Never blocks.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		return p.fail("submit", api.ErrNilTask, api.ErrCodeInvalidArgument)
	}
	if !p.keepalive.Load() {
		return p.fail("submit", api.ErrPoolClosed, api.ErrCodeClosed)
	}
	p.submitted.Add(1)
	p.queue.Push(jobqueue.Job{Fn: task})
	return nil
}

// SubmitSignal enqueues a task that posts sig exactly once after running.
// A nil sig is rejected with its own error so callers can distinguish it
// from a nil task.
func (p *Pool) SubmitSignal(sig api.CompletionSignal, task func()) error {
	if sig == nil {
		return p.fail("submit", api.ErrNilSignal, api.ErrCodeInvalidArgument)
	}
	if task == nil {
		return p.fail("submit", api.ErrNilTask, api.ErrCodeInvalidArgument)
	}
	if !p.keepalive.Load() {
		return p.fail("submit", api.ErrPoolClosed, api.ErrCodeClosed)
	}
	p.submitted.Add(1)
	p.queue.Push(jobqueue.Job{Fn: task, Done: sig})
	return nil
}

// Wait blocks until the queue is empty and no worker is executing.
//
// Drain detection is a hybrid: workers fill idleCh on the working-count
// 0-transition, and the loop additionally re-checks on idleTick because a
// notification can land between the unlock and the select, or a new job
// can slip in through the separately locked queue.
func (p *Pool) Wait() {
	for {
		p.countMu.Lock()
		drained := p.working == 0 && p.queue.Len() == 0
		p.countMu.Unlock()
		if drained {
			return
		}
		select {
		case <-p.idleCh:
		case <-time.After(idleTick):
		}
	}
}

// NumWorking returns a snapshot of workers currently executing a task.
func (p *Pool) NumWorking() int {
	p.countMu.Lock()
	defer p.countMu.Unlock()
	return p.working
}

// Stats returns basic pool metrics.
func (p *Pool) Stats() map[string]int64 {
	p.countMu.Lock()
	alive, working := p.alive, p.working
	p.countMu.Unlock()
	return map[string]int64{
		"alive":     int64(alive),
		"working":   int64(working),
		"pending":   int64(p.queue.Len()),
		"submitted": p.submitted.Load(),
		"completed": p.completed.Load(),
	}
}

// Destroy stops the pool: flips keep-alive, then for the grace window
// tightly rebroadcasts the wake flag so parked workers observe the flip;
// past the window it keeps broadcasting on a coarser tick until the last
// worker exits. Termination is guaranteed but only the first phase is
// bounded. Pending unstarted jobs are discarded. Nil-safe and idempotent.
func (p *Pool) Destroy() {
	if p == nil {
		return
	}
	if !p.destroyed.CompareAndSwap(false, true) {
		return
	}
	p.keepalive.Store(false)

	deadline := time.Now().Add(p.cfg.grace)
	for p.aliveCount() > 0 && time.Now().Before(deadline) {
		p.queue.HasJobs().PostAll()
		runtime.Gosched()
	}
	for p.aliveCount() > 0 {
		p.queue.HasJobs().PostAll()
		time.Sleep(lingerTick)
	}
	p.queue.Clear()
}

// AwaitRelease blocks until sig has been posted down to zero. The latch
// must not be reused afterwards; it cannot be re-armed.
func AwaitRelease(sig *signal.Countdown) {
	sig.Wait()
}

func (p *Pool) aliveCount() int {
	p.countMu.Lock()
	defer p.countMu.Unlock()
	return p.alive
}

// notifyIdle fills the single-slot idle channel without blocking.
// Called with countMu held on the working 0-transition.
func (p *Pool) notifyIdle() {
	select {
	case p.idleCh <- struct{}{}:
	default:
	}
}

// fail reports err according to the configured policy: diagnostic mode
// logs and returns it, fail-fast mode panics with a structured error.
func (p *Pool) fail(op string, err error, code api.ErrorCode) error {
	if p.cfg.policy == api.PolicyFailFast {
		panic(api.NewError(code, err.Error()).WithContext("op", op))
	}
	p.cfg.logger.Printf("%s: %v", op, err)
	return err
}
