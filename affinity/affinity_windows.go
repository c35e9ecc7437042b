//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific implementation for setting thread CPU affinity.
//
// Reference: https://learn.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-setthreadaffinitymask

package affinity

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// setAffinityPlatform sets thread affinity to a given CPU for Windows.
// SetThreadAffinityMask takes a single-bit mask, limiting pinning to the
// first 64 logical processors of the current group.
func setAffinityPlatform(coreID int) error {
	if coreID >= 64 {
		return fmt.Errorf("affinity: core %d beyond processor group mask", coreID)
	}
	mask := uintptr(1) << uint(coreID)
	ret, _, callErr := windows.NewLazySystemDLL("kernel32.dll").
		NewProc("SetThreadAffinityMask").
		Call(uintptr(windows.CurrentThread()), mask)
	if ret == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask failed: %v", callErr)
	}
	return nil
}
