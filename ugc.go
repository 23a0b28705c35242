// File: ugc.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/momentics/steambridge/core/callresult"
	"github.com/momentics/steambridge/driver"
	"github.com/momentics/steambridge/internal/strutil"
)

// UgcQueryType orders and filters an all-content query. Values are fixed by
// the native SDK.
type UgcQueryType int32

const (
	UgcQueryRankedByVote                                  UgcQueryType = 0
	UgcQueryRankedByPublicationDate                       UgcQueryType = 1
	UgcQueryAcceptedForGameRankedByAcceptanceDate         UgcQueryType = 2
	UgcQueryRankedByTrend                                 UgcQueryType = 3
	UgcQueryFavoritedByFriendsRankedByPublicationDate     UgcQueryType = 4
	UgcQueryCreatedByFriendsRankedByPublicationDate       UgcQueryType = 5
	UgcQueryRankedByNumTimesReported                      UgcQueryType = 6
	UgcQueryCreatedByFollowedUsersRankedByPublicationDate UgcQueryType = 7
	UgcQueryNotYetRated                                   UgcQueryType = 8
	UgcQueryRankedByTotalVotesAsc                         UgcQueryType = 9
	UgcQueryRankedByVotesUp                               UgcQueryType = 10
	UgcQueryRankedByTextSearch                            UgcQueryType = 11
	UgcQueryRankedByTotalUniqueSubscriptions              UgcQueryType = 12
	UgcQueryRankedByPlaytimeTrend                         UgcQueryType = 13
	UgcQueryRankedByTotalPlaytime                         UgcQueryType = 14
	UgcQueryRankedByAveragePlaytimeTrend                  UgcQueryType = 15
	UgcQueryRankedByLifetimeAveragePlaytime               UgcQueryType = 16
	UgcQueryRankedByPlaytimeSessionsTrend                 UgcQueryType = 17
	UgcQueryRankedByLifetimePlaytimeSessions              UgcQueryType = 18
)

// UgcMatchingType selects which content classes a query matches.
type UgcMatchingType int32

const (
	UgcMatchingItems              UgcMatchingType = 0
	UgcMatchingItemsMtx           UgcMatchingType = 1
	UgcMatchingItemsReadyToUse    UgcMatchingType = 2
	UgcMatchingCollections        UgcMatchingType = 3
	UgcMatchingArtwork            UgcMatchingType = 4
	UgcMatchingVideos             UgcMatchingType = 5
	UgcMatchingScreenshots        UgcMatchingType = 6
	UgcMatchingAllGuides          UgcMatchingType = 7
	UgcMatchingWebGuides          UgcMatchingType = 8
	UgcMatchingIntegratedGuides   UgcMatchingType = 9
	UgcMatchingUsableInGame       UgcMatchingType = 10
	UgcMatchingControllerBindings UgcMatchingType = 11
	UgcMatchingGameManagedItems   UgcMatchingType = 12
	UgcMatchingAll                UgcMatchingType = ^UgcMatchingType(0)
)

// PublishedFileVisibility is a workshop item's visibility setting.
type PublishedFileVisibility int32

const (
	VisibilityPublic      PublishedFileVisibility = 0
	VisibilityFriendsOnly PublishedFileVisibility = 1
	VisibilityPrivate     PublishedFileVisibility = 2
	VisibilityUnlisted    PublishedFileVisibility = 3
)

// UgcDetails is one fully mapped workshop query result.
type UgcDetails struct {
	PublishedFileID uint64
	Result          SteamResult
	FileType        int32
	CreatorAppID    AppID
	ConsumerAppID   AppID
	Title           string
	Description     string
	Owner           SteamID
	TimeCreated     time.Time
	TimeUpdated     time.Time
	Visibility      PublishedFileVisibility
	Banned          bool
	AcceptedForUse  bool
	TagsTruncated   bool
	Tags            []string
	File            UgcHandle
	PreviewFile     UgcHandle
	FileName        string
	FileSize        int32
	PreviewFileSize int32
	URL             string
	VotesUp         uint32
	VotesDown       uint32
	Score           float32
	NumChildren     uint32
}

// UgcQuery is a configured all-content workshop query. Build it with the
// chainable setters and execute with Run or RunEach; a query value may be
// executed more than once.
type UgcQuery struct {
	c *Client

	queryType     UgcQueryType
	matching      UgcMatchingType
	creatorAppID  AppID
	consumerAppID AppID

	requiredTags    []string
	excludedTags    []string
	matchAnyTag     bool
	longDescription bool
}

// QueryAllUgc starts building an all-content query sorted and filtered by
// queryType. Unset app ids default to the running application.
func (c *Client) QueryAllUgc(queryType UgcQueryType) *UgcQuery {
	return &UgcQuery{
		c:         c,
		queryType: queryType,
		matching:  UgcMatchingAll,
	}
}

// MatchingType restricts the content classes the query matches.
func (q *UgcQuery) MatchingType(m UgcMatchingType) *UgcQuery {
	q.matching = m
	return q
}

// CreatorAppID sets the creating application filter.
func (q *UgcQuery) CreatorAppID(id AppID) *UgcQuery {
	q.creatorAppID = id
	return q
}

// ConsumerAppID sets the consuming application filter.
func (q *UgcQuery) ConsumerAppID(id AppID) *UgcQuery {
	q.consumerAppID = id
	return q
}

// RequiredTag adds a tag every result must carry.
func (q *UgcQuery) RequiredTag(tag string) *UgcQuery {
	q.requiredTags = append(q.requiredTags, tag)
	return q
}

// ExcludedTag adds a tag no result may carry.
func (q *UgcQuery) ExcludedTag(tag string) *UgcQuery {
	q.excludedTags = append(q.excludedTags, tag)
	return q
}

// MatchAnyTag makes required tags disjunctive instead of conjunctive.
func (q *UgcQuery) MatchAnyTag() *UgcQuery {
	q.matchAnyTag = true
	return q
}

// LongDescription requests the full description text in results.
func (q *UgcQuery) LongDescription() *UgcQuery {
	q.longDescription = true
	return q
}

// Run executes the query and gathers every page into one slice.
func (q *UgcQuery) Run(ctx context.Context) ([]UgcDetails, error) {
	var all []UgcDetails
	err := q.RunEach(ctx, func(d UgcDetails) bool {
		all = append(all, d)
		return true
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// RunEach executes the query and streams results page by page to fn,
// stopping early when fn returns false. Each page is a full native
// create-send-read-release cycle; the query handle never outlives its page.
func (q *UgcQuery) RunEach(ctx context.Context, fn func(UgcDetails) bool) error {
	c := q.c
	if err := c.running(); err != nil {
		return err
	}

	creator := q.creatorAppID
	consumer := q.consumerAppID
	if creator == 0 {
		creator = c.AppID()
	}
	if consumer == 0 {
		consumer = c.AppID()
	}

	seen := uint32(0)
	for page := uint32(1); ; page++ {
		total, got, stop, err := q.runPage(ctx, creator, consumer, page, fn)
		if err != nil {
			return err
		}
		seen += got
		if stop || got == 0 || seen >= total {
			return nil
		}
	}
}

// runPage executes one page of the query and reports the backend's total,
// the page's result count, and whether fn asked to stop.
func (q *UgcQuery) runPage(ctx context.Context, creator, consumer AppID, page uint32, fn func(UgcDetails) bool) (total, got uint32, stop bool, err error) {
	c := q.c

	h := c.drv.CreateQueryAllRequest(int32(q.queryType), int32(q.matching), uint32(creator), uint32(consumer), page)
	if h == driver.UGCQueryHandleInvalid {
		return 0, 0, false, ErrUgcQueryCreateFailed
	}
	defer c.drv.ReleaseQueryRequest(h)

	for _, tag := range q.requiredTags {
		c.drv.AddRequiredTag(h, tag)
	}
	for _, tag := range q.excludedTags {
		c.drv.AddExcludedTag(h, tag)
	}
	if q.matchAnyTag {
		c.drv.SetMatchAnyTag(h, true)
	}
	if q.longDescription {
		c.drv.SetReturnLongDescription(h, true)
	}

	p := c.table.Register(func() driver.CallHandle {
		return c.drv.SendQueryRequest(h)
	})
	data, err := p.Wait(ctx)
	if err != nil {
		return 0, 0, false, err
	}

	res := callresult.Reinterpret[driver.RawUGCQueryCompleted](data)
	if err := resultErr(res.Result); err != nil {
		return 0, 0, false, err
	}

	for i := uint32(0); i < res.NumResults; i++ {
		raw, ok := c.drv.QueryResult(h, i)
		if !ok {
			// The completed query declared this many results; an unreadable
			// index is a broken native contract.
			panic(fmt.Sprintf("steambridge: result %d of %d unreadable in completed ugc query", i, res.NumResults))
		}
		if !fn(ugcDetailsFromRaw(&raw)) {
			return res.TotalResults, i + 1, true, nil
		}
	}
	return res.TotalResults, res.NumResults, false, nil
}

func ugcDetailsFromRaw(raw *driver.RawUGCDetails) UgcDetails {
	return UgcDetails{
		PublishedFileID: raw.PublishedFileID,
		Result:          steamResultFromRaw(raw.Result),
		FileType:        raw.FileType,
		CreatorAppID:    AppID(raw.CreatorAppID),
		ConsumerAppID:   AppID(raw.ConsumerAppID),
		Title:           strutil.FromNulTerminated(raw.Title[:]),
		Description:     strutil.FromNulTerminated(raw.Description[:]),
		Owner:           SteamID(raw.OwnerSteamID),
		TimeCreated:     time.Unix(int64(raw.TimeCreated), 0),
		TimeUpdated:     time.Unix(int64(raw.TimeUpdated), 0),
		Visibility:      PublishedFileVisibility(raw.Visibility),
		Banned:          raw.Banned != 0,
		AcceptedForUse:  raw.AcceptedForUse != 0,
		TagsTruncated:   raw.TagsTruncated != 0,
		Tags:            splitTags(strutil.FromNulTerminated(raw.Tags[:])),
		File:            UgcHandle(raw.File),
		PreviewFile:     UgcHandle(raw.PreviewFile),
		FileName:        strutil.FromNulTerminated(raw.FileName[:]),
		FileSize:        raw.FileSize,
		PreviewFileSize: raw.PreviewFileSize,
		URL:             strutil.FromNulTerminated(raw.URL[:]),
		VotesUp:         raw.VotesUp,
		VotesDown:       raw.VotesDown,
		Score:           raw.Score,
		NumChildren:     raw.NumChildren,
	}
}

func splitTags(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
