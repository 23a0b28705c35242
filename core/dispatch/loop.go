// File: core/dispatch/loop.go
// Package dispatch validates and routes drained native records.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package dispatch

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/momentics/steambridge/affinity"
	"github.com/momentics/steambridge/driver"
)

// DefaultInterval is the sleep between poll ticks when none is configured.
const DefaultInterval = 5 * time.Millisecond

// Loop runs the dedicated polling thread. It is the exclusive caller of the
// driver's RunFrame/NextCallback/FreeLastCallback; no other code path may
// touch them. Cancellation is cooperative: Stop requests shutdown, the
// worker finishes its final drain, and Done is closed as the
// acknowledgment the teardown path blocks on.
type Loop struct {
	core     driver.Core
	classify func(driver.RawCallback)
	clock    clock.Clock
	interval time.Duration
	pinCPU   int
	logger   *zap.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}

	ticks   atomic.Int64
	drained atomic.Int64
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock substitutes the wall clock, for deterministic tick tests.
func WithClock(c clock.Clock) LoopOption {
	return func(l *Loop) { l.clock = c }
}

// WithInterval sets the sleep between ticks.
func WithInterval(d time.Duration) LoopOption {
	return func(l *Loop) { l.interval = d }
}

// WithPinCPU pins the polling thread to a logical CPU. Negative leaves the
// thread unpinned.
func WithPinCPU(cpu int) LoopOption {
	return func(l *Loop) { l.pinCPU = cpu }
}

// WithLogger sets the loop logger.
func WithLogger(logger *zap.Logger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

// NewLoop creates a stopped loop over core, feeding every drained record to
// classify.
func NewLoop(core driver.Core, classify func(driver.RawCallback), opts ...LoopOption) *Loop {
	l := &Loop{
		core:     core,
		classify: classify,
		clock:    clock.New(),
		interval: DefaultInterval,
		pinCPU:   -1,
		logger:   zap.NewNop(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start spawns the polling thread.
func (l *Loop) Start() {
	go l.run()
}

// Stop requests shutdown. It returns immediately; the worker acknowledges by
// closing Done after its final drain. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Done is closed once the worker has observed the stop request, finished its
// final drain, and stopped touching the native layer. Native teardown must
// not begin before this.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) run() {
	// The native poll calls are only safe from a single consistent thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if l.pinCPU >= 0 {
		if err := affinity.Pin(l.pinCPU); err != nil {
			l.logger.Warn("could not pin polling thread", zap.Int("cpu", l.pinCPU), zap.Error(err))
		} else {
			defer affinity.Unpin()
		}
	}

	defer close(l.done)

	for {
		l.tick()

		select {
		case <-l.stop:
			return
		default:
		}

		timer := l.clock.Timer(l.interval)
		select {
		case <-timer.C:
		case <-l.stop:
			timer.Stop()
			// One final drain before acknowledging, so records that arrived
			// during the sleep are not stranded in the native queue.
			l.tick()
			return
		}
	}
}

// tick advances the native frame and drains every pending record. Each
// record is classified and then freed before the next fetch; nothing drained
// here outlives the iteration that produced it.
func (l *Loop) tick() {
	l.core.RunFrame()
	for {
		cb, ok := l.core.NextCallback()
		if !ok {
			break
		}
		l.classify(cb)
		l.core.FreeLastCallback()
		l.drained.Add(1)
	}
	l.ticks.Add(1)
}

// Stats reports loop counters for debug probes.
func (l *Loop) Stats() map[string]any {
	return map[string]any{
		"ticks":   l.ticks.Load(),
		"drained": l.drained.Load(),
	}
}
