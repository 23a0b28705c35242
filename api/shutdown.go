// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown is implemented by components that must quiesce background
// work before releasing native resources.
type GracefulShutdown interface {
	// Shutdown stops all internal services and releases resources.
	// It blocks until the component has fully quiesced.
	Shutdown() error
}
