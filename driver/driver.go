// File: driver/driver.go
// Package driver defines the native API surface consumed by the engine.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package driver

import "unsafe"

// CallbackID tags one native notification kind. The values are fixed by the
// native SDK's ABI and known at compile time.
type CallbackID int32

// CallHandle identifies one outstanding asynchronous native request. The
// native API guarantees a handle is not reused while its request is pending.
type CallHandle uint64

// RawCallback describes one drained native notification. Data points into
// native-owned memory and is valid only until FreeLastCallback is invoked;
// it must never be retained past the loop iteration that produced it.
type RawCallback struct {
	ID   CallbackID
	Data unsafe.Pointer
	Len  int
}

// Core is the poll-side contract of the native API. RunFrame, NextCallback,
// FreeLastCallback and Shutdown are not thread-safe in the native layer;
// the dispatch loop's thread is their exclusive caller, and Shutdown may
// only run once that thread has fully quiesced.
type Core interface {
	// Init brings up the native API. It fails, rather than blocks, when the
	// native layer cannot start.
	Init() error

	// Shutdown tears down the native API.
	Shutdown() error

	// RunFrame advances the native frame, moving freshly arrived
	// notifications into the drainable queue.
	RunFrame()

	// NextCallback fetches the next pending notification. ok is false once
	// the queue is empty for this frame.
	NextCallback() (cb RawCallback, ok bool)

	// FreeLastCallback releases the native memory backing the last
	// notification returned by NextCallback. Must be called exactly once
	// per fetched notification before the next fetch.
	FreeLastCallback()

	// FetchCallResult copies the completed result for handle h into dst.
	// completed reports whether the result was available; failed reports the
	// native layer's own failure flag for the call.
	FetchCallResult(h CallHandle, dst []byte) (completed bool, failed bool)
}

// Utils exposes miscellaneous synchronous queries.
type Utils interface {
	AppID() uint32
}

// Friends exposes the persona subset of the friends interface.
type Friends interface {
	// RequestUserInformation asks the backend for a user's persona data.
	// It returns true when a network round trip is in progress and a
	// persona-state-change notification will follow, false when the data
	// is already available locally.
	RequestUserInformation(steamID uint64, nameOnly bool) bool

	// PersonaName reads the locally known display name for a user.
	PersonaName(steamID uint64) string
}

// UserStats exposes the leaderboard subset of the user-stats interface.
type UserStats interface {
	FindLeaderboard(name string) CallHandle
	UploadLeaderboardScore(leaderboard uint64, method int32, score int32, details []int32) CallHandle
	DownloadLeaderboardEntries(leaderboard uint64, request int32, rangeStart, rangeEnd int32) CallHandle

	// DownloadedEntry reads one entry out of a downloaded-entries handle,
	// filling details up to its length. ok is false when the native read
	// fails, which the caller treats as a contract violation.
	DownloadedEntry(entries uint64, index int32, details []int32) (entry RawLeaderboardEntry, ok bool)
}

// UGCQueryHandle identifies one configured UGC query request.
type UGCQueryHandle uint64

// UGCQueryHandleInvalid is returned by CreateQueryAllRequest on failure.
const UGCQueryHandleInvalid = UGCQueryHandle(0xffffffffffffffff)

// UGCHandleInvalid marks the absence of a UGC content handle.
const UGCHandleInvalid = uint64(0xffffffffffffffff)

// UGC exposes the query subset of the UGC interface.
type UGC interface {
	CreateQueryAllRequest(queryType int32, matchingType int32, creatorAppID, consumerAppID uint32, page uint32) UGCQueryHandle
	AddRequiredTag(query UGCQueryHandle, tag string) bool
	AddExcludedTag(query UGCQueryHandle, tag string) bool
	SetMatchAnyTag(query UGCQueryHandle, anyTag bool) bool
	SetReturnLongDescription(query UGCQueryHandle, long bool) bool
	SendQueryRequest(query UGCQueryHandle) CallHandle

	// QueryResult reads one mapped result out of a completed query.
	QueryResult(query UGCQueryHandle, index uint32) (details RawUGCDetails, ok bool)

	ReleaseQueryRequest(query UGCQueryHandle) bool
}

// RemoteStorage exposes the UGC download subset of the remote-storage
// interface.
type RemoteStorage interface {
	UGCDownloadToLocation(handle uint64, location string, priority uint32) CallHandle
}

// Driver aggregates the full native surface required by a client.
type Driver interface {
	Core
	Utils
	Friends
	UserStats
	UGC
	RemoteStorage
}
