// File: control/control_test.go
// Package control provides runtime config and metrics probes.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigMergeAndCopy(t *testing.T) {
	c := New()
	c.SetConfig(map[string]any{"a": 1})
	c.SetConfig(map[string]any{"b": 2})

	cfg := c.GetConfig()
	require.Equal(t, 1, cfg["a"])
	require.Equal(t, 2, cfg["b"])

	// Mutating the returned copy must not leak back.
	cfg["a"] = 99
	require.Equal(t, 1, c.GetConfig()["a"])
}

func TestProbesSnapshot(t *testing.T) {
	c := New()
	calls := 0
	c.RegisterProbe("loop", func() map[string]any {
		calls++
		return map[string]any{"ticks": calls}
	})

	stats := c.Stats()
	require.Equal(t, map[string]any{"ticks": 1}, stats["loop"])
	require.Equal(t, 1, calls)
}

func TestCloseDropsProbes(t *testing.T) {
	c := New()
	c.RegisterProbe("x", func() map[string]any { return nil })
	require.NoError(t, c.Close())
	require.Empty(t, c.Stats())
	require.NoError(t, c.Close())
}
