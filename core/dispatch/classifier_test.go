// File: core/dispatch/classifier_test.go
// Package dispatch validates and routes drained native records.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package dispatch

import (
	"context"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/momentics/steambridge/core/callresult"
	"github.com/momentics/steambridge/driver"
	"github.com/momentics/steambridge/fake"
)

// drainOne pumps the fake's frame and classifies exactly one notification.
func drainOne(t *testing.T, d *fake.Driver, c *Classifier) {
	t.Helper()
	d.RunFrame()
	cb, ok := d.NextCallback()
	require.True(t, ok, "expected a pending notification")
	c.Classify(cb)
	d.FreeLastCallback()
}

func TestClassifyRoutesKnownKind(t *testing.T) {
	d := fake.NewDriver()
	table := callresult.NewTable(nil)
	c := NewClassifier(d, table, nil)

	var got []driver.RawPersonaStateChange
	c.Route(driver.CallbackIDPersonaStateChange, func(cb driver.RawCallback) {
		got = append(got, *Record[driver.RawPersonaStateChange](cb))
	})

	d.EmitPersonaStateChange(100, 0x0001)
	drainOne(t, d, c)

	require.Len(t, got, 1)
	require.Equal(t, uint64(100), got[0].SteamID)
	require.Equal(t, int64(1), c.Stats()["dispatched"])
}

func TestClassifyIgnoresUnknownKind(t *testing.T) {
	d := fake.NewDriver()
	c := NewClassifier(d, callresult.NewTable(nil), nil)

	fake.Emit(d, 9999, &driver.RawSteamShutdown{})
	drainOne(t, d, c)

	require.Equal(t, int64(1), c.Stats()["ignored"])
	require.Equal(t, int64(0), c.Stats()["dispatched"])
}

func TestClassifyCompletesCall(t *testing.T) {
	d := fake.NewDriver()
	table := callresult.NewTable(nil)
	c := NewClassifier(d, table, nil)

	p := table.Register(func() driver.CallHandle {
		h := driver.CallHandle(1)
		fake.Complete(d, h, &driver.RawLeaderboardFindResult{Leaderboard: 55, Found: 1})
		return h
	})

	drainOne(t, d, c)

	data, err := p.Wait(context.Background())
	require.NoError(t, err)
	res := callresult.Reinterpret[driver.RawLeaderboardFindResult](data)
	require.Equal(t, uint64(55), res.Leaderboard)
	require.Equal(t, uint8(1), res.Found)
	require.Equal(t, int64(1), c.Stats()["call_results"])
}

func TestClassifyPanicsWhenAnnouncedResultMissing(t *testing.T) {
	d := fake.NewDriver()
	c := NewClassifier(d, callresult.NewTable(nil), nil)

	// A completion notice for a handle whose result was never staged.
	notice := driver.RawCallCompleted{AsyncCall: 77, Callback: driver.CallbackIDCallCompleted, ParamSize: 4}
	cb := driver.RawCallback{
		ID:   driver.CallbackIDCallCompleted,
		Data: unsafe.Pointer(&notice),
		Len:  int(unsafe.Sizeof(notice)),
	}
	require.Panics(t, func() { c.Classify(cb) })
}

func TestClassifyPanicsOnFailedFlag(t *testing.T) {
	d := fake.NewDriver()
	table := callresult.NewTable(nil)
	c := NewClassifier(d, table, nil)

	table.Register(func() driver.CallHandle {
		d.FailCall(3, 4)
		return 3
	})

	d.RunFrame()
	cb, ok := d.NextCallback()
	require.True(t, ok)
	require.Panics(t, func() { c.Classify(cb) })
}
