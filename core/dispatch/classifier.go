// File: core/dispatch/classifier.go
// Package dispatch validates and routes drained native records.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package dispatch

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/momentics/steambridge/core/callresult"
	"github.com/momentics/steambridge/driver"
)

// RouteFunc handles one drained record of a known broadcast kind. The record
// is only valid for the duration of the call.
type RouteFunc func(cb driver.RawCallback)

// Classifier inspects each drained record's kind tag and routes it.
//
// Routes form a closed, compile-time-known set: they are registered once
// during client construction, before the loop starts, and never mutated
// afterwards, so Classify reads the map without a guard.
type Classifier struct {
	core   driver.Core
	table  *callresult.Table
	logger *zap.Logger
	routes map[driver.CallbackID]RouteFunc

	dispatched atomic.Int64
	results    atomic.Int64
	ignored    atomic.Int64
}

// NewClassifier creates a classifier over the given poll-side driver and
// pending-call table. logger may be nil.
func NewClassifier(core driver.Core, table *callresult.Table, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		core:   core,
		table:  table,
		logger: logger,
		routes: make(map[driver.CallbackID]RouteFunc),
	}
}

// Route registers the handler for one broadcast kind. Must be called before
// the loop starts; the route set is immutable afterwards.
func (c *Classifier) Route(id driver.CallbackID, fn RouteFunc) {
	c.routes[id] = fn
}

// Classify routes one drained record. Call-completed notices trigger the
// second native fetch for the actual payload; known broadcast kinds go to
// their registered route; unknown kinds are skipped for forward
// compatibility with native kinds this engine does not model.
func (c *Classifier) Classify(cb driver.RawCallback) {
	if cb.ID == driver.CallbackIDCallCompleted {
		c.completeCall(cb)
		return
	}
	if fn, ok := c.routes[cb.ID]; ok {
		fn(cb)
		c.dispatched.Add(1)
		return
	}
	c.ignored.Add(1)
}

// completeCall fetches the payload named by a completion notice and hands it
// to the table. The notice declares the payload size; the fetch writing into
// a buffer of exactly that size must succeed, and the call must not be
// flagged as failed after the native layer already announced its completion.
// Either inconsistency is a broken native contract and aborts the process.
func (c *Classifier) completeCall(cb driver.RawCallback) {
	notice := Record[driver.RawCallCompleted](cb)
	handle := notice.AsyncCall

	payload := make([]byte, notice.ParamSize)
	completed, failed := c.core.FetchCallResult(handle, payload)
	if !completed {
		panic(fmt.Sprintf("dispatch: call %d was announced completed but its result is unavailable", handle))
	}
	if failed {
		panic(fmt.Sprintf("dispatch: call %d fetched successfully yet flagged as failed", handle))
	}

	c.table.Complete(handle, payload)
	c.results.Add(1)
}

// Stats reports classification counters for debug probes.
func (c *Classifier) Stats() map[string]any {
	return map[string]any{
		"dispatched":   c.dispatched.Load(),
		"call_results": c.results.Load(),
		"ignored":      c.ignored.Load(),
	}
}
