//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows implementation of thread CPU affinity using
// SetThreadAffinityMask on the current thread.

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

var (
	modkernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = modkernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread      = modkernel32.NewProc("GetCurrentThread")
)

func pinPlatform(cpuID int) error {
	if cpuID < 0 || cpuID >= 64 || cpuID >= runtime.NumCPU() {
		return fmt.Errorf("affinity: cpu %d out of range", cpuID)
	}
	return setMask(uintptr(1) << uint(cpuID))
}

func unpinPlatform() error {
	n := runtime.NumCPU()
	if n > 64 {
		n = 64
	}
	var mask uintptr
	for cpu := 0; cpu < n; cpu++ {
		mask |= uintptr(1) << uint(cpu)
	}
	return setMask(mask)
}

func setMask(mask uintptr) error {
	thread, _, _ := procGetCurrentThread.Call()
	prev, _, err := procSetThreadAffinityMask.Call(thread, mask)
	if prev == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask failed: %v", err)
	}
	return nil
}
