// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts and error model for hioload-thpool.
//
// The api package carries only interfaces, error values and the failure
// reporting policy. Implementations live in thpool, signal, affinity and
// internal/jobqueue.
package api
