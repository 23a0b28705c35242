// File: userstats_test.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/steambridge/fake"
)

func TestFindLeaderboard(t *testing.T) {
	d := fake.NewDriver()
	d.SetLeaderboard("highscores", 99)
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	lb, err := c.FindLeaderboard(ctx, "highscores")
	require.NoError(t, err)
	require.Equal(t, "highscores", lb.Name())
}

func TestFindLeaderboardNotFound(t *testing.T) {
	d := fake.NewDriver()
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	// An unknown name is not an error, just an absent result.
	lb, err := c.FindLeaderboard(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, lb)
}

func TestFindLeaderboardNameValidation(t *testing.T) {
	d := fake.NewDriver()
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	_, err := c.FindLeaderboard(ctx, strings.Repeat("x", 129))
	require.ErrorIs(t, err, ErrLeaderboardNameTooLong)

	_, err = c.FindLeaderboard(ctx, "bad\x00name")
	require.ErrorIs(t, err, ErrLeaderboardNameInteriorNul)
}

func TestUploadScore(t *testing.T) {
	d := fake.NewDriver()
	d.SetLeaderboard("highscores", 99)
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	lb, err := c.FindLeaderboard(ctx, "highscores")
	require.NoError(t, err)

	up, err := lb.UploadScore(ctx, UploadScoreMethodKeepBest, 1234, []int32{1, 2})
	require.NoError(t, err)
	require.Equal(t, int32(1234), up.Score)
	require.True(t, up.ScoreChanged)
}

func TestUploadScoreTooManyDetails(t *testing.T) {
	d := fake.NewDriver()
	d.SetLeaderboard("highscores", 99)
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	lb, err := c.FindLeaderboard(ctx, "highscores")
	require.NoError(t, err)

	_, err = lb.UploadScore(ctx, UploadScoreMethodForceUpdate, 1, make([]int32, 65))
	require.ErrorIs(t, err, ErrTooManyDetails)
}

func TestDownloadEntries(t *testing.T) {
	d := fake.NewDriver()
	d.SetLeaderboard("highscores", 99)
	d.SetLeaderboardEntries(99, []fake.EntrySpec{
		{SteamID: 1, GlobalRank: 1, Score: 300, Details: []int32{10, 20}, UGC: 5},
		{SteamID: 2, GlobalRank: 2, Score: 200},
		{SteamID: 3, GlobalRank: 3, Score: 100},
	})
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	lb, err := c.FindLeaderboard(ctx, "highscores")
	require.NoError(t, err)

	entries, err := lb.DownloadEntries(ctx, LeaderboardDataRequestGlobal, 1, 2, 64)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, SteamID(1), entries[0].User)
	require.Equal(t, int32(300), entries[0].Score)
	require.Equal(t, []int32{10, 20}, entries[0].Details)
	require.True(t, entries[0].UGC.Valid())
	require.Empty(t, entries[1].Details)
}

func TestDownloadEntriesMaxDetails(t *testing.T) {
	d := fake.NewDriver()
	d.SetLeaderboard("highscores", 99)
	d.SetLeaderboardEntries(99, []fake.EntrySpec{
		{SteamID: 1, GlobalRank: 1, Score: 300, Details: []int32{10, 20, 30}},
	})
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	lb, err := c.FindLeaderboard(ctx, "highscores")
	require.NoError(t, err)

	// maxDetails bounds the per-entry read.
	entries, err := lb.DownloadEntries(ctx, LeaderboardDataRequestGlobal, 1, 1, 2)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, []int32{10, 20}, entries[0].Details)

	// Values above the native limit clamp to 64 instead of failing.
	entries, err = lb.DownloadEntries(ctx, LeaderboardDataRequestGlobal, 1, 1, 1000)
	require.NoError(t, err)
	require.Equal(t, []int32{10, 20, 30}, entries[0].Details)

	entries, err = lb.DownloadEntries(ctx, LeaderboardDataRequestGlobal, 1, 1, 0)
	require.NoError(t, err)
	require.Empty(t, entries[0].Details)
}

func TestDownloadEntriesRangeValidation(t *testing.T) {
	d := fake.NewDriver()
	d.SetLeaderboard("highscores", 99)
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	lb, err := c.FindLeaderboard(ctx, "highscores")
	require.NoError(t, err)

	_, err = lb.DownloadEntries(ctx, LeaderboardDataRequestGlobal, 0, 5, 64)
	require.ErrorIs(t, err, ErrInvalidEntryRange)

	_, err = lb.DownloadEntries(ctx, LeaderboardDataRequestGlobal, 5, 1, 64)
	require.ErrorIs(t, err, ErrInvalidEntryRange)

	// Around-user ranges are relative offsets: fully negative, fully
	// positive, and zero-spanning ranges are all valid.
	_, err = lb.DownloadEntries(ctx, LeaderboardDataRequestGlobalAroundUser, -10, -5, 64)
	require.NoError(t, err)

	_, err = lb.DownloadEntries(ctx, LeaderboardDataRequestGlobalAroundUser, 1, 5, 64)
	require.NoError(t, err)

	_, err = lb.DownloadEntries(ctx, LeaderboardDataRequestGlobalAroundUser, -2, 2, 64)
	require.NoError(t, err)

	// Only the ordering is constrained for around-user.
	_, err = lb.DownloadEntries(ctx, LeaderboardDataRequestGlobalAroundUser, 5, -5, 64)
	require.ErrorIs(t, err, ErrInvalidEntryRange)

	// Friends ignores the range entirely.
	_, err = lb.DownloadEntries(ctx, LeaderboardDataRequestFriends, 9, 1, 64)
	require.NoError(t, err)
}
