// Package driver
// Author: momentics <momentics@gmail.com>
//
// Native-layer surface of the steambridge library. The Steamworks flat API is
// a single-threaded, poll-driven C interface: pending notifications are
// drained one fixed-size binary record at a time, and asynchronous requests
// complete through a separate fetch-by-handle call. This package pins that
// contract down as Go interfaces plus the raw record layouts shared by the
// dispatch engine and any concrete binding.
//
// The split mirrors the flat API's accessor families: Core owns the poll,
// free, and teardown entry points that may only ever be touched by the
// dispatch loop's dedicated thread, while the per-feature interfaces
// (Friends, UserStats, UGC, RemoteStorage, Utils) expose the request-issuing
// calls that are safe from any thread.
//
// A production binding is generated against the proprietary SDK and lives
// out of tree; the in-tree implementation is package fake, which reproduces
// the queueing and completion semantics bit for bit.
package driver
