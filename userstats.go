// File: userstats.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import (
	"context"
	"fmt"

	"github.com/momentics/steambridge/core/callresult"
	"github.com/momentics/steambridge/driver"
	"github.com/momentics/steambridge/internal/strutil"
)

// Native leaderboard limits.
const (
	maxLeaderboardNameLen = 128
	maxLeaderboardDetails = 64
)

// LeaderboardDataRequest selects which entries a download targets.
type LeaderboardDataRequest int32

const (
	// LeaderboardDataRequestGlobal downloads a 1-based absolute rank range.
	LeaderboardDataRequestGlobal LeaderboardDataRequest = 0

	// LeaderboardDataRequestGlobalAroundUser downloads a range relative to
	// the current user's rank; start must be non-positive, end non-negative.
	LeaderboardDataRequestGlobalAroundUser LeaderboardDataRequest = 1

	// LeaderboardDataRequestFriends downloads all friend entries; the range
	// is ignored.
	LeaderboardDataRequestFriends LeaderboardDataRequest = 2
)

// UploadScoreMethod selects how an uploaded score replaces the stored one.
type UploadScoreMethod int32

const (
	// UploadScoreMethodKeepBest stores the score only if it beats the
	// existing one.
	UploadScoreMethodKeepBest UploadScoreMethod = 1

	// UploadScoreMethodForceUpdate always replaces the stored score.
	UploadScoreMethodForceUpdate UploadScoreMethod = 2
)

// Leaderboard is a resolved leaderboard handle.
type Leaderboard struct {
	c      *Client
	handle uint64
	name   string
}

// Name returns the leaderboard's name as requested.
func (l *Leaderboard) Name() string {
	return l.name
}

// LeaderboardEntry is one downloaded leaderboard row.
type LeaderboardEntry struct {
	User       SteamID
	GlobalRank int32
	Score      int32
	Details    []int32
	UGC        UgcHandle
}

// ScoreUploaded reports the outcome of an accepted score upload.
type ScoreUploaded struct {
	Score          int32
	ScoreChanged   bool
	GlobalRankNew  int32
	GlobalRankPrev int32
}

// FindLeaderboard resolves a leaderboard by name. The name is validated
// against the native limits before any call is issued. An unknown name is
// not an error: the result is nil, nil.
func (c *Client) FindLeaderboard(ctx context.Context, name string) (*Leaderboard, error) {
	if err := c.running(); err != nil {
		return nil, err
	}
	if len(name) > maxLeaderboardNameLen {
		return nil, ErrLeaderboardNameTooLong
	}
	if strutil.ContainsNul(name) {
		return nil, ErrLeaderboardNameInteriorNul
	}

	p := c.table.Register(func() driver.CallHandle {
		return c.drv.FindLeaderboard(name)
	})
	data, err := p.Wait(ctx)
	if err != nil {
		return nil, err
	}

	res := callresult.Reinterpret[driver.RawLeaderboardFindResult](data)
	if res.Found == 0 {
		return nil, nil
	}
	return &Leaderboard{c: c, handle: res.Leaderboard, name: name}, nil
}

// UploadScore submits a score with up to 64 opaque detail values attached.
func (l *Leaderboard) UploadScore(ctx context.Context, method UploadScoreMethod, score int32, details []int32) (*ScoreUploaded, error) {
	c := l.c
	if err := c.running(); err != nil {
		return nil, err
	}
	if len(details) > maxLeaderboardDetails {
		return nil, ErrTooManyDetails
	}

	p := c.table.Register(func() driver.CallHandle {
		return c.drv.UploadLeaderboardScore(l.handle, int32(method), score, details)
	})
	data, err := p.Wait(ctx)
	if err != nil {
		return nil, err
	}

	res := callresult.Reinterpret[driver.RawLeaderboardScoreUploaded](data)
	if res.Success == 0 {
		return nil, ErrScoreUploadRejected
	}
	return &ScoreUploaded{
		Score:          res.Score,
		ScoreChanged:   res.ScoreChanged != 0,
		GlobalRankNew:  res.GlobalRankNew,
		GlobalRankPrev: res.GlobalRankPrev,
	}, nil
}

// DownloadEntries fetches a range of entries. Range semantics follow the
// request type; see the LeaderboardDataRequest constants. maxDetails bounds
// the per-entry detail values read back and is clamped to the native limit
// of 64. Each entry's details are read synchronously while the downloaded
// set is still valid.
func (l *Leaderboard) DownloadEntries(ctx context.Context, request LeaderboardDataRequest, rangeStart, rangeEnd int32, maxDetails int) ([]LeaderboardEntry, error) {
	c := l.c
	if err := c.running(); err != nil {
		return nil, err
	}
	if err := validateEntryRange(request, rangeStart, rangeEnd); err != nil {
		return nil, err
	}
	if maxDetails < 0 {
		maxDetails = 0
	}
	if maxDetails > maxLeaderboardDetails {
		maxDetails = maxLeaderboardDetails
	}

	p := c.table.Register(func() driver.CallHandle {
		return c.drv.DownloadLeaderboardEntries(l.handle, int32(request), rangeStart, rangeEnd)
	})
	data, err := p.Wait(ctx)
	if err != nil {
		return nil, err
	}

	res := callresult.Reinterpret[driver.RawLeaderboardScoresDownloaded](data)
	entries := make([]LeaderboardEntry, 0, res.EntryCount)
	for i := int32(0); i < res.EntryCount; i++ {
		details := make([]int32, maxDetails)
		raw, ok := c.drv.DownloadedEntry(res.Entries, i, details)
		if !ok {
			// The native layer reported this many entries; failing to read
			// one of them is a broken contract.
			panic(fmt.Sprintf("steambridge: entry %d of %d unreadable in downloaded leaderboard set", i, res.EntryCount))
		}
		entries = append(entries, LeaderboardEntry{
			User:       SteamID(raw.SteamID),
			GlobalRank: raw.GlobalRank,
			Score:      raw.Score,
			Details:    details[:raw.DetailCount],
			UGC:        UgcHandle(raw.UGC),
		})
	}
	return entries, nil
}

func validateEntryRange(request LeaderboardDataRequest, start, end int32) error {
	switch request {
	case LeaderboardDataRequestGlobal:
		if start < 1 || end < start {
			return ErrInvalidEntryRange
		}
	case LeaderboardDataRequestGlobalAroundUser:
		// The range is relative to the user's rank; both ends may be
		// negative or positive, only the ordering is constrained.
		if end < start {
			return ErrInvalidEntryRange
		}
	case LeaderboardDataRequestFriends:
		// Range is ignored.
	default:
		return ErrInvalidEntryRange
	}
	return nil
}
