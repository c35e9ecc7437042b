// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.

package affinity

import (
	"runtime"
	"sync"

	"github.com/momentics/hioload-thpool/api"
)

// NumCores returns the number of logical processors visible to the runtime.
func NumCores() int {
	return runtime.NumCPU()
}

// Pin binds the current OS thread to a given logical CPU core on supported
// platforms. The caller must hold runtime.LockOSThread for the binding to
// stick to its goroutine. Best-effort: unsupported platforms and invalid
// core indices return an error and the thread runs unpinned.
func Pin(coreID int) error {
	if coreID < 0 || coreID >= NumCores() {
		return api.ErrInvalidCore
	}
	return setAffinityPlatform(coreID)
}

// Assigner hands out logical core indices round-robin across the topology
// detected at construction time, wrapping to 0 after the last core.
type Assigner struct {
	mu    sync.Mutex
	next  int
	cores int
}

// NewAssigner creates an Assigner over the machine's logical processors.
func NewAssigner() *Assigner {
	return &Assigner{cores: NumCores()}
}

// Next returns the current core index and advances the cursor modulo the
// core count.
func (a *Assigner) Next() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	if a.next >= a.cores {
		a.next = 0
	}
	return id
}
