//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for platforms without thread affinity control.

package affinity

import "github.com/momentics/hioload-thpool/api"

// setAffinityPlatform is a no-op stub; callers degrade to unpinned threads.
func setAffinityPlatform(coreID int) error {
	return api.ErrNotSupported
}
