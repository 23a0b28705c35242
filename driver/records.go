// File: driver/records.go
// Package driver defines the fixed binary record layouts of the native ABI.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Each record mirrors the corresponding flat-API callback structure. Field
// order and widths are part of the native contract; the dispatch engine
// validates a drained buffer's length and alignment against these layouts
// before any reinterpretation.

package driver

// Callback kind tags, fixed by the native SDK (interface base + offset).
const (
	// CallbackIDPersonaStateChange tags PersonaStateChange broadcast records.
	CallbackIDPersonaStateChange CallbackID = 304

	// CallbackIDCallCompleted tags completion notices for asynchronous
	// calls. The record carries the call handle and payload size; the
	// payload itself is fetched with Core.FetchCallResult.
	CallbackIDCallCompleted CallbackID = 703

	// CallbackIDSteamShutdown tags the platform's shutdown request record.
	CallbackIDSteamShutdown CallbackID = 704
)

// RawCallCompleted is the completion notice for an asynchronous call.
type RawCallCompleted struct {
	AsyncCall CallHandle
	Callback  CallbackID
	ParamSize uint32
}

// RawPersonaStateChange reports a change in a user's persona state.
type RawPersonaStateChange struct {
	SteamID     uint64
	ChangeFlags int32
}

// RawSteamShutdown carries no payload; the single byte mirrors the native
// empty struct's nonzero size.
type RawSteamShutdown struct {
	_ [1]byte
}

// RawLeaderboardFindResult is the call result of FindLeaderboard.
type RawLeaderboardFindResult struct {
	Leaderboard uint64
	Found       uint8
}

// RawLeaderboardScoreUploaded is the call result of UploadLeaderboardScore.
type RawLeaderboardScoreUploaded struct {
	Success        uint8
	Leaderboard    uint64
	Score          int32
	ScoreChanged   uint8
	GlobalRankNew  int32
	GlobalRankPrev int32
}

// RawLeaderboardScoresDownloaded is the call result of
// DownloadLeaderboardEntries. Entries is a native handle passed back to
// UserStats.DownloadedEntry for the per-entry reads.
type RawLeaderboardScoresDownloaded struct {
	Leaderboard uint64
	Entries     uint64
	EntryCount  int32
}

// RawLeaderboardEntry is one synchronously read leaderboard entry.
type RawLeaderboardEntry struct {
	SteamID     uint64
	GlobalRank  int32
	Score       int32
	DetailCount int32
	UGC         uint64
}

// RawUGCQueryCompleted is the call result of SendQueryRequest.
type RawUGCQueryCompleted struct {
	Handle       UGCQueryHandle
	Result       int32
	NumResults   uint32
	TotalResults uint32
	CachedData   uint8
}

// RawUGCDetails is one synchronously read UGC query result. Strings are
// fixed-size nul-terminated buffers, per the native layout.
type RawUGCDetails struct {
	PublishedFileID uint64
	Result          int32
	FileType        int32
	CreatorAppID    uint32
	ConsumerAppID   uint32
	Title           [129]byte
	Description     [8000]byte
	OwnerSteamID    uint64
	TimeCreated     uint32
	TimeUpdated     uint32
	TimeAddedToList uint32
	Visibility      int32
	Banned          uint8
	AcceptedForUse  uint8
	TagsTruncated   uint8
	Tags            [1025]byte
	File            uint64
	PreviewFile     uint64
	FileName        [260]byte
	FileSize        int32
	PreviewFileSize int32
	URL             [256]byte
	VotesUp         uint32
	VotesDown       uint32
	Score           float32
	NumChildren     uint32
}

// RawDownloadUGCResult is the call result of UGCDownloadToLocation.
type RawDownloadUGCResult struct {
	Result       int32
	File         uint64
	AppID        uint32
	SizeInBytes  int32
	FileName     [260]byte
	OwnerSteamID uint64
}
