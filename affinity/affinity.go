// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for pinning the dispatch thread to a CPU. Platform
// implementations live in separate files (affinity_linux.go,
// affinity_windows.go, affinity_stub.go) guarded by build tags.

package affinity

// Pin binds the calling OS thread to the given logical CPU on supported
// platforms. The caller must have locked the goroutine to its thread first.
// On unsupported platforms it returns an error.
func Pin(cpuID int) error {
	return pinPlatform(cpuID)
}

// Unpin restores the calling OS thread's default CPU mask.
func Unpin() error {
	return unpinPlatform()
}
