// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Thread pool contract: submission, drain waiting and teardown.

package api

// CompletionSignal is the waitable countdown a caller attaches to a batch
// of submissions to block until those specific jobs finish. The concrete
// type lives in the signal package.
type CompletionSignal interface {
	// Post decrements the counter, waking waiters on the zero transition.
	Post()
	// Wait blocks while the counter is non-zero.
	Wait()
}

// Pool abstracts a fixed-size worker pool over one shared FIFO queue.
type Pool interface {
	// Submit enqueues a task for execution. Never blocks.
	Submit(task func()) error

	// SubmitSignal enqueues a task that posts sig exactly once after the
	// task body has run.
	SubmitSignal(sig CompletionSignal, task func()) error

	// Wait blocks until the queue is empty and no worker is executing.
	Wait()

	// NumWorking returns a snapshot of workers currently executing a task.
	NumWorking() int

	// Destroy stops all workers and releases pool resources. Pending
	// unstarted jobs are discarded. Always eventually returns.
	Destroy()
}

// FailPolicy selects how precondition and submission failures are reported.
type FailPolicy int

const (
	// PolicyDiagnostic logs failures and returns error codes; the pool
	// keeps operating. This is the default.
	PolicyDiagnostic FailPolicy = iota
	// PolicyFailFast panics with a structured *Error on failures that
	// would otherwise only be logged and returned.
	PolicyFailFast
)
