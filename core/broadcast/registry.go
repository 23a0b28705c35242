// File: core/broadcast/registry.go
// Package broadcast implements per-kind fan-out for native notifications.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package broadcast

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Registry fans one notification kind out to its live subscribers.
//
// Subscribe and Publish may race freely; a single mutex guards the slot
// collection and is held only for the duration of the slot walk, never
// across a blocking operation. Subscribers that closed their receiving side
// are removed during the same publish pass that discovers them.
type Registry[T any] struct {
	logger *zap.Logger

	mu      sync.Mutex
	subs    map[uint64]*Subscription[T]
	nextKey uint64
	closed  bool

	published atomic.Int64
	pruned    atomic.Int64
}

// NewRegistry creates an empty registry. logger may be nil.
func NewRegistry[T any](logger *zap.Logger) *Registry[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry[T]{
		logger: logger,
		subs:   make(map[uint64]*Subscription[T]),
	}
}

// Subscribe creates a new slot and returns its receiving side. The new
// subscriber only observes values published after this call returns.
func (r *Registry[T]) Subscribe() *Subscription[T] {
	sub := newSubscription[T]()
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		sub.Close()
		return sub
	}
	key := r.nextKey
	r.nextKey++
	r.subs[key] = sub
	r.mu.Unlock()
	return sub
}

// Publish delivers v to every live subscriber in slot order. Slots whose
// receiver has been dropped are pruned in the same pass.
func (r *Registry[T]) Publish(v T) {
	r.mu.Lock()
	for key, sub := range r.subs {
		if !sub.push(v) {
			delete(r.subs, key)
			r.pruned.Add(1)
			r.logger.Debug("pruned dead subscriber", zap.Uint64("slot", key))
		}
	}
	r.mu.Unlock()
	r.published.Add(1)
}

// Len reports the number of live slots.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Close closes every subscriber and rejects future subscriptions with an
// immediately closed slot. Used when the owning client shuts down.
func (r *Registry[T]) Close() {
	r.mu.Lock()
	subs := r.subs
	r.subs = make(map[uint64]*Subscription[T])
	r.closed = true
	r.mu.Unlock()
	for _, sub := range subs {
		sub.Close()
	}
}

// Stats reports publish and prune counters for debug probes.
func (r *Registry[T]) Stats() map[string]any {
	return map[string]any{
		"subscribers": r.Len(),
		"published":   r.published.Load(),
		"pruned":      r.pruned.Load(),
	}
}
