// File: core/broadcast/subscription.go
// Package broadcast implements per-kind fan-out for native notifications.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package broadcast

import (
	"context"
	"fmt"
	"sync"

	"github.com/eapache/queue"
)

// ErrSubscriptionClosed is returned by Next once the receiving side has been
// closed, either explicitly or because the owning registry shut down.
var ErrSubscriptionClosed = fmt.Errorf("subscription is closed")

// Subscription is the receiving side of one registry slot. Values are
// buffered without bound so the dispatch thread never blocks on a slow
// consumer; the consumer suspends on Next until the dispatch thread delivers.
//
// A Subscription belongs to exactly one consumer goroutine. Close releases
// the slot: the registry drops it on the next publish attempt.
type Subscription[T any] struct {
	mu     sync.Mutex
	buf    *queue.Queue
	closed bool

	wake chan struct{} // capacity 1, set after each push
	done chan struct{} // closed by Close
}

func newSubscription[T any]() *Subscription[T] {
	return &Subscription[T]{
		buf:  queue.New(),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// push appends v and wakes the consumer. It reports false once the
// subscription is closed, which tells the registry to prune the slot.
func (s *Subscription[T]) push(v T) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.buf.Add(v)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return true
}

// Next returns the next delivered value, blocking until one arrives, the
// context is done, or the subscription is closed. Buffered values are
// discarded on close; a closed subscription never yields again.
func (s *Subscription[T]) Next(ctx context.Context) (T, error) {
	var zero T
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return zero, ErrSubscriptionClosed
		}
		if s.buf.Length() > 0 {
			v := s.buf.Remove().(T)
			s.mu.Unlock()
			return v, nil
		}
		s.mu.Unlock()

		select {
		case <-s.wake:
		case <-s.done:
			return zero, ErrSubscriptionClosed
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// TryNext returns a buffered value without blocking.
func (s *Subscription[T]) TryNext() (T, bool) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.buf.Length() == 0 {
		return zero, false
	}
	return s.buf.Remove().(T), true
}

// Pending reports the number of buffered, undelivered values.
func (s *Subscription[T]) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Length()
}

// Close drops the receiving side. Publishes that happen before the registry
// notices simply fail and cause the slot to be pruned; no explicit
// cancellation message is exchanged. Close is idempotent.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.buf = queue.New()
	s.mu.Unlock()
	close(s.done)
}
