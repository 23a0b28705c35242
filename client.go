// File: client.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/momentics/steambridge/api"
	"github.com/momentics/steambridge/control"
	"github.com/momentics/steambridge/core/broadcast"
	"github.com/momentics/steambridge/core/callresult"
	"github.com/momentics/steambridge/core/dispatch"
	"github.com/momentics/steambridge/driver"
)

// State is the client lifecycle phase.
type State int32

const (
	// StateStopped means no native resources are held.
	StateStopped State = iota

	// StateRunning means the polling thread is live and operations are
	// accepted.
	StateRunning

	// StateShutdownStage1 means stop was requested and the teardown path is
	// waiting for the polling thread's acknowledgment.
	StateShutdownStage1

	// StateShutdownStage2 means the polling thread has quiesced and native
	// teardown is in progress.
	StateShutdownStage2
)

// String renders the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateShutdownStage1:
		return "shutdown-stage1"
	case StateShutdownStage2:
		return "shutdown-stage2"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// defaultNameCacheSize bounds the persona-name cache.
const defaultNameCacheSize = 256

// Config carries client construction parameters. The zero value of any field
// selects its default.
type Config struct {
	// PollInterval is the sleep between polling ticks. Defaults to 5ms.
	PollInterval time.Duration

	// PinCPU pins the polling thread to a logical CPU when non-negative.
	PinCPU int

	// NameCacheSize bounds the persona-name LRU cache.
	NameCacheSize int

	// Logger receives engine diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger

	// Clock substitutes the polling clock, for tests. Defaults to the wall
	// clock.
	Clock clock.Clock
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		PollInterval:  dispatch.DefaultInterval,
		PinCPU:        -1,
		NameCacheSize: defaultNameCacheSize,
	}
}

// liveClient guards the process-wide single-client invariant. The native API
// is a per-process singleton; a second live client would share its mutable
// state unsynchronized.
var liveClient atomic.Bool

// Client is the concurrent handle over the native API. All methods are safe
// for concurrent use.
type Client struct {
	drv    driver.Driver
	logger *zap.Logger

	table      *callresult.Table
	classifier *dispatch.Classifier
	loop       *dispatch.Loop
	control    *control.Control

	persona     *broadcast.Registry[PersonaStateChange]
	shutdownReq *broadcast.Registry[ShutdownRequest]

	names *lru.Cache[SteamID, string]

	state     atomic.Int32
	closeOnce sync.Once
	closeErr  error
}

var _ api.GracefulShutdown = (*Client)(nil)

// Init claims the native API and starts the polling thread. It fails with
// api.ErrAlreadyInitialized while another live client exists, and with
// api.ErrInitFailed when the native layer refuses to start; the failed
// attempt releases the claim so a later Init may succeed.
func Init(drv driver.Driver, cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = dispatch.DefaultInterval
	}
	if cfg.NameCacheSize <= 0 {
		cfg.NameCacheSize = defaultNameCacheSize
	}

	if !liveClient.CompareAndSwap(false, true) {
		return nil, api.ErrAlreadyInitialized
	}
	if err := drv.Init(); err != nil {
		liveClient.Store(false)
		return nil, fmt.Errorf("%w: %v", api.ErrInitFailed, err)
	}

	names, err := lru.New[SteamID, string](cfg.NameCacheSize)
	if err != nil {
		liveClient.Store(false)
		return nil, err
	}

	c := &Client{
		drv:         drv,
		logger:      cfg.Logger,
		names:       names,
		persona:     broadcast.NewRegistry[PersonaStateChange](cfg.Logger),
		shutdownReq: broadcast.NewRegistry[ShutdownRequest](cfg.Logger),
		control:     control.New(),
	}
	c.table = callresult.NewTable(cfg.Logger)
	c.classifier = dispatch.NewClassifier(drv, c.table, cfg.Logger)
	c.wireRoutes()

	opts := []dispatch.LoopOption{
		dispatch.WithInterval(cfg.PollInterval),
		dispatch.WithPinCPU(cfg.PinCPU),
		dispatch.WithLogger(cfg.Logger),
	}
	if cfg.Clock != nil {
		opts = append(opts, dispatch.WithClock(cfg.Clock))
	}
	c.loop = dispatch.NewLoop(drv, c.classifier.Classify, opts...)

	c.control.SetConfig(map[string]any{
		"poll_interval":   cfg.PollInterval.String(),
		"pin_cpu":         cfg.PinCPU,
		"name_cache_size": cfg.NameCacheSize,
	})
	c.control.RegisterProbe("loop", c.loop.Stats)
	c.control.RegisterProbe("classifier", c.classifier.Stats)
	c.control.RegisterProbe("call_results", c.table.Stats)
	c.control.RegisterProbe("persona", c.persona.Stats)
	c.control.RegisterProbe("shutdown_requests", c.shutdownReq.Stats)

	c.state.Store(int32(StateRunning))
	c.loop.Start()
	c.logger.Info("client started",
		zap.Duration("poll_interval", cfg.PollInterval),
		zap.Int("pin_cpu", cfg.PinCPU))
	return c, nil
}

// Close tears the client down. Stage one requests the polling thread to stop
// and blocks until it acknowledges after its final drain; only then does
// stage two run native teardown, so Shutdown never races a live poll call.
// Close is idempotent; every call returns the first teardown's error.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.state.Store(int32(StateShutdownStage1))
		c.loop.Stop()
		<-c.loop.Done()

		c.state.Store(int32(StateShutdownStage2))
		c.closeErr = multierr.Combine(c.drv.Shutdown(), c.control.Close())

		// Fail anything still awaiting a result; no dispatch thread is left
		// to deliver one.
		c.table.Close()
		c.persona.Close()
		c.shutdownReq.Close()

		c.state.Store(int32(StateStopped))
		liveClient.Store(false)
		c.logger.Info("client stopped", zap.Error(c.closeErr))
	})
	return c.closeErr
}

// Shutdown implements api.GracefulShutdown.
func (c *Client) Shutdown() error {
	return c.Close()
}

// State reports the current lifecycle phase.
func (c *Client) State() State {
	return State(c.state.Load())
}

// running gates caller-facing operations on the lifecycle.
func (c *Client) running() error {
	if c.State() != StateRunning {
		return api.ErrClientClosed
	}
	return nil
}

// AppID reports the running application's id.
func (c *Client) AppID() AppID {
	return AppID(c.drv.AppID())
}

// Stats snapshots every registered debug probe.
func (c *Client) Stats() map[string]any {
	return c.control.Stats()
}

// ConfigSnapshot returns the effective construction parameters.
func (c *Client) ConfigSnapshot() map[string]any {
	return c.control.GetConfig()
}
