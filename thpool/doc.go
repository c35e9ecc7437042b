// Package thpool
// Author: momentics <momentics@gmail.com>
//
// Fixed-size worker-thread pool behind a single shared FIFO queue.
//
// Workers park on the queue's level-triggered "has jobs" flag, pull in
// strict submission order, and post a caller-supplied Countdown latch when
// a submission asked for completion tracking. Shutdown is graceful and
// two-phased: a bounded grace window of tight wake broadcasts, then
// indefinite coarser polling until every worker has exited.
//
// Worker goroutines are pinned round-robin to logical cores where the
// platform supports it; pinning failures degrade to unpinned execution.
//
// See pool.go and worker.go for implementation details.
package thpool
