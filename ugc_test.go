// File: ugc_test.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/steambridge/fake"
)

func addTestItems(d *fake.Driver) {
	d.AddUGCItem(fake.UGCItemSpec{
		PublishedFileID: 1,
		Title:           "Map Pack",
		Description:     "three maps",
		OwnerSteamID:    uint64(testUser),
		Tags:            []string{"map", "coop"},
		File:            11,
		FileName:        "mappack.vpk",
		TimeCreated:     1700000000,
		VotesUp:         10,
	})
	d.AddUGCItem(fake.UGCItemSpec{
		PublishedFileID: 2,
		Title:           "Skin",
		Tags:            []string{"skin"},
		File:            12,
	})
	d.AddUGCItem(fake.UGCItemSpec{
		PublishedFileID: 3,
		Title:           "Coop Campaign",
		Tags:            []string{"coop"},
		File:            13,
	})
}

func TestQueryAllUgc(t *testing.T) {
	d := fake.NewDriver()
	addTestItems(d)
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	items, err := c.QueryAllUgc(UgcQueryRankedByPublicationDate).Run(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	first := items[0]
	require.Equal(t, uint64(1), first.PublishedFileID)
	require.Equal(t, "Map Pack", first.Title)
	require.Equal(t, "three maps", first.Description)
	require.Equal(t, testUser, first.Owner)
	require.Equal(t, []string{"map", "coop"}, first.Tags)
	require.Equal(t, "mappack.vpk", first.FileName)
	require.True(t, first.File.Valid())
	require.Equal(t, int64(1700000000), first.TimeCreated.Unix())
	require.Equal(t, uint32(10), first.VotesUp)
}

func TestQueryRequiredTag(t *testing.T) {
	d := fake.NewDriver()
	addTestItems(d)
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	items, err := c.QueryAllUgc(UgcQueryRankedByVote).RequiredTag("coop").Run(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		require.Contains(t, item.Tags, "coop")
	}
}

func TestQueryExcludedTag(t *testing.T) {
	d := fake.NewDriver()
	addTestItems(d)
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	items, err := c.QueryAllUgc(UgcQueryRankedByVote).ExcludedTag("skin").Run(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		require.NotContains(t, item.Tags, "skin")
	}
}

func TestQueryMatchAnyTag(t *testing.T) {
	d := fake.NewDriver()
	addTestItems(d)
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	items, err := c.QueryAllUgc(UgcQueryRankedByVote).
		RequiredTag("map").
		RequiredTag("skin").
		MatchAnyTag().
		Run(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestQueryPagination(t *testing.T) {
	d := fake.NewDriver()
	for i := 0; i < 120; i++ {
		d.AddUGCItem(fake.UGCItemSpec{PublishedFileID: uint64(i + 1), Title: fmt.Sprintf("item %d", i+1)})
	}
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	items, err := c.QueryAllUgc(UgcQueryRankedByVote).Run(ctx)
	require.NoError(t, err)
	require.Len(t, items, 120)
	require.Equal(t, uint64(1), items[0].PublishedFileID)
	require.Equal(t, uint64(120), items[119].PublishedFileID)
}

func TestRunEachStopsEarly(t *testing.T) {
	d := fake.NewDriver()
	addTestItems(d)
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	seen := 0
	err := c.QueryAllUgc(UgcQueryRankedByVote).RunEach(ctx, func(UgcDetails) bool {
		seen++
		return seen < 2
	})
	require.NoError(t, err)
	require.Equal(t, 2, seen)
}

func TestQueryCreateFailure(t *testing.T) {
	d := fake.NewDriver()
	d.FailNextQueryCreate()
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	_, err := c.QueryAllUgc(UgcQueryRankedByVote).Run(ctx)
	require.ErrorIs(t, err, ErrUgcQueryCreateFailed)
}
