// Package signal
// Author: momentics <momentics@gmail.com>
//
// Wake primitives for the thread pool: Level, a one-bit level-triggered
// "work available" flag that stays asserted until the consumer side drives
// it low, and Countdown, a decrement-to-zero completion latch for waiting
// on a specific batch of jobs.
//
// Neither primitive is a classic acquire/release semaphore. Level waiters
// do not consume the flag when they wake; Countdown cannot be re-armed
// after it reaches zero.
package signal
