// File: api/errors.go
// Package api defines shared error values for steambridge.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "fmt"

// Errors returned by the client lifecycle and caller-facing operations.
var (
	// ErrAlreadyInitialized is returned by Init when another live client
	// already owns the native API. The existing client is unaffected.
	ErrAlreadyInitialized = fmt.Errorf("steam api is already initialized")

	// ErrInitFailed is returned when the native initialization call itself
	// reports failure. A later Init attempt may succeed.
	ErrInitFailed = fmt.Errorf("native steam api initialization failed")

	// ErrClientClosed is returned from operations issued after Close.
	ErrClientClosed = fmt.Errorf("client is closed")
)
