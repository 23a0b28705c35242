// File: core/callresult/table.go
// Package callresult correlates async native calls with awaiting futures.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package callresult

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/momentics/steambridge/driver"
)

// Table is the process-wide pending-call map, shared across all call kinds.
type Table struct {
	logger *zap.Logger

	mu      sync.Mutex
	pending map[driver.CallHandle]*Pending
	closed  bool

	completed atomic.Int64
	orphaned  atomic.Int64
}

// NewTable creates an empty table. logger may be nil.
func NewTable(logger *zap.Logger) *Table {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Table{
		logger:  logger,
		pending: make(map[driver.CallHandle]*Pending),
	}
}

// Register issues the native call and records its handle in one critical
// section. Holding the lock across issue() is what makes the completion race
// impossible: the dispatch thread cannot complete a handle whose entry is not
// yet visible, because Complete serializes on the same lock.
func (t *Table) Register(issue func() driver.CallHandle) *Pending {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := &Pending{
		result: make(chan []byte, 1),
		done:   make(chan struct{}),
		table:  t,
	}
	if t.closed {
		// The native layer may already be torn down; do not issue the call.
		// The future fails immediately instead.
		close(p.done)
		return p
	}
	p.handle = issue()
	t.pending[p.handle] = p
	return p
}

// Complete removes the entry for h and delivers data to its future. A
// completion for an unknown handle is a benign race (the future was
// abandoned, or the native layer repeated itself) and is dropped with a log
// line only.
func (t *Table) Complete(h driver.CallHandle, data []byte) {
	t.mu.Lock()
	p, ok := t.pending[h]
	if ok {
		delete(t.pending, h)
	}
	t.mu.Unlock()

	if !ok {
		t.orphaned.Add(1)
		t.logger.Debug("call result has no awaiting future, discarding",
			zap.Uint64("handle", uint64(h)), zap.Int("bytes", len(data)))
		return
	}
	// Capacity-1 channel and delete-before-send make this the entry's only
	// delivery; it cannot block.
	p.result <- data
	t.completed.Add(1)
}

// abandon removes the entry for p if it is still the registered one.
func (t *Table) abandon(p *Pending) {
	t.mu.Lock()
	if cur, ok := t.pending[p.handle]; ok && cur == p {
		delete(t.pending, p.handle)
	}
	t.mu.Unlock()
}

// Close fails every outstanding future with ErrTableClosed and rejects
// future registrations. Runs during client teardown, after the dispatch
// thread has quiesced, so in-flight awaits observe shutdown promptly instead
// of blocking until their own context fires.
func (t *Table) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	pending := t.pending
	t.pending = make(map[driver.CallHandle]*Pending)
	t.mu.Unlock()

	for _, p := range pending {
		close(p.done)
	}
	if len(pending) > 0 {
		t.logger.Debug("failed outstanding call futures on close",
			zap.Int("count", len(pending)))
	}
}

// Len reports the number of outstanding entries.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Stats reports completion counters for debug probes.
func (t *Table) Stats() map[string]any {
	return map[string]any{
		"outstanding": t.Len(),
		"completed":   t.completed.Load(),
		"orphaned":    t.orphaned.Load(),
	}
}
