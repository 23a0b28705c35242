// File: core/broadcast/registry_test.go
// Package broadcast implements per-kind fan-out for native notifications.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package broadcast

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishDeliversInOrder(t *testing.T) {
	r := NewRegistry[int](nil)
	sub := r.Subscribe()
	defer sub.Close()

	for i := 1; i <= 5; i++ {
		r.Publish(i)
	}
	for i := 1; i <= 5; i++ {
		v, err := sub.Next(context.Background())
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestLateSubscriberMissesEarlierValues(t *testing.T) {
	r := NewRegistry[string](nil)
	r.Publish("early")

	sub := r.Subscribe()
	defer sub.Close()
	r.Publish("late")

	v, err := sub.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, "late", v)
	require.Equal(t, 0, sub.Pending())
}

func TestIndependentSubscribersEachReceive(t *testing.T) {
	r := NewRegistry[int](nil)
	a := r.Subscribe()
	defer a.Close()
	b := r.Subscribe()
	defer b.Close()

	r.Publish(7)

	va, err := a.Next(context.Background())
	require.NoError(t, err)
	vb, err := b.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, va)
	require.Equal(t, 7, vb)
}

func TestClosedSubscriberPrunedOnNextPublish(t *testing.T) {
	r := NewRegistry[int](nil)
	dead := r.Subscribe()
	live := r.Subscribe()
	defer live.Close()

	dead.Close()
	require.Equal(t, 2, r.Len())

	r.Publish(1)
	require.Equal(t, 1, r.Len())

	v, err := live.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestNextUnblocksOnClose(t *testing.T) {
	r := NewRegistry[int](nil)
	sub := r.Subscribe()

	errc := make(chan error, 1)
	go func() {
		_, err := sub.Next(context.Background())
		errc <- err
	}()

	time.Sleep(10 * time.Millisecond)
	sub.Close()

	select {
	case err := <-errc:
		require.ErrorIs(t, err, ErrSubscriptionClosed)
	case <-time.After(time.Second):
		t.Fatal("Next did not return after Close")
	}
}

func TestNextHonorsContext(t *testing.T) {
	r := NewRegistry[int](nil)
	sub := r.Subscribe()
	defer sub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := sub.Next(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTryNext(t *testing.T) {
	r := NewRegistry[int](nil)
	sub := r.Subscribe()
	defer sub.Close()

	_, ok := sub.TryNext()
	require.False(t, ok)

	r.Publish(3)
	v, ok := sub.TryNext()
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestRegistryCloseClosesSubscribers(t *testing.T) {
	r := NewRegistry[int](nil)
	sub := r.Subscribe()
	r.Close()

	_, err := sub.Next(context.Background())
	require.ErrorIs(t, err, ErrSubscriptionClosed)

	late := r.Subscribe()
	_, err = late.Next(context.Background())
	require.ErrorIs(t, err, ErrSubscriptionClosed)
}

func TestPublishNeverBlocksOnSlowConsumer(t *testing.T) {
	r := NewRegistry[int](nil)
	sub := r.Subscribe()
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			r.Publish(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publisher blocked on an unread subscriber")
	}
	require.Equal(t, 10000, sub.Pending())
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	r := NewRegistry[int](nil)
	sub := r.Subscribe()
	defer sub.Close()

	const publishers, perPublisher = 8, 100
	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				r.Publish(i)
			}
		}()
	}
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := 0; i < publishers*perPublisher; i++ {
		_, err := sub.Next(ctx)
		require.NoError(t, err)
	}
	require.Equal(t, 0, sub.Pending())
}
