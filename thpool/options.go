// File: thpool/options.go
// Package thpool defines functional options for pool construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thpool

import (
	"log"
	"time"

	"github.com/momentics/hioload-thpool/api"
)

// Option customizes pool initialization.
type Option func(*Pool)

// WithPinning toggles round-robin CPU-affinity pinning of worker threads.
// Enabled by default; pinning is always best-effort.
func WithPinning(enabled bool) Option {
	return func(p *Pool) {
		p.cfg.pin = enabled
	}
}

// WithFailPolicy selects how submission and precondition failures are
// reported: logged and returned (api.PolicyDiagnostic, default) or raised
// as a panic with a structured *api.Error (api.PolicyFailFast).
func WithFailPolicy(policy api.FailPolicy) Option {
	return func(p *Pool) {
		p.cfg.policy = policy
	}
}

// WithLogger overrides the pool's diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.cfg.logger = l
		}
	}
}

// WithGraceWindow overrides the bounded first phase of Destroy, during
// which the pool tightly rebroadcasts the wake flag to idle workers.
func WithGraceWindow(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.cfg.grace = d
		}
	}
}
