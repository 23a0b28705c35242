//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// No-op affinity for platforms without thread pinning support.

package affinity

import "fmt"

func pinPlatform(cpuID int) error {
	return fmt.Errorf("affinity: thread pinning not supported on this platform")
}

func unpinPlatform() error {
	return nil
}
