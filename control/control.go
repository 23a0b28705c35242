// File: control/control.go
// Package control provides runtime config and metrics probes.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"sync"
	"time"
)

// Control holds the immutable-per-run config view and the registered debug
// probes. All methods are safe for concurrent use.
type Control struct {
	mu      sync.RWMutex
	config  map[string]any
	probes  map[string]func() map[string]any
	updated time.Time
	closed  bool
}

// New creates an empty Control.
func New() *Control {
	return &Control{
		config: make(map[string]any),
		probes: make(map[string]func() map[string]any),
	}
}

// SetConfig merges cfg into the config snapshot.
func (c *Control) SetConfig(cfg map[string]any) {
	c.mu.Lock()
	for k, v := range cfg {
		c.config[k] = v
	}
	c.updated = time.Now()
	c.mu.Unlock()
}

// GetConfig returns a copy of the current config snapshot.
func (c *Control) GetConfig() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]any, len(c.config))
	for k, v := range c.config {
		out[k] = v
	}
	return out
}

// RegisterProbe registers a named stats source. Registration happens during
// client construction; re-registering a name replaces the probe.
func (c *Control) RegisterProbe(name string, probe func() map[string]any) {
	c.mu.Lock()
	c.probes[name] = probe
	c.mu.Unlock()
}

// Stats evaluates every probe into one nested snapshot.
func (c *Control) Stats() map[string]any {
	c.mu.RLock()
	probes := make(map[string]func() map[string]any, len(c.probes))
	for name, probe := range c.probes {
		probes[name] = probe
	}
	c.mu.RUnlock()

	out := make(map[string]any, len(probes))
	for name, probe := range probes {
		out[name] = probe()
	}
	return out
}

// Close drops all probes so stats collection cannot outlive the components
// they read from. Closing twice is a no-op.
func (c *Control) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.probes = make(map[string]func() map[string]any)
	return nil
}
