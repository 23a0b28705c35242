// File: fake/driver.go
// Package fake provides a scriptable in-memory native driver.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import (
	"sync"
	"unsafe"

	"github.com/momentics/steambridge/driver"
)

// steamResultOK mirrors the native EResult success value.
const steamResultOK = int32(1)

// pageSize is the fixed number of results per UGC query page.
const pageSize = 50

// staged is one queued notification plus the reference that keeps its
// record memory alive until FreeLastCallback.
type staged struct {
	cb  driver.RawCallback
	ref any
}

type callResult struct {
	data   []byte
	failed bool
}

// EntrySpec scripts one leaderboard entry.
type EntrySpec struct {
	SteamID    uint64
	GlobalRank int32
	Score      int32
	Details    []int32
	UGC        uint64
}

// UGCItemSpec scripts one workshop item visible to queries.
type UGCItemSpec struct {
	PublishedFileID uint64
	FileType        int32
	CreatorAppID    uint32
	ConsumerAppID   uint32
	Title           string
	Description     string
	OwnerSteamID    uint64
	TimeCreated     uint32
	TimeUpdated     uint32
	Visibility      int32
	Tags            []string
	File            uint64
	PreviewFile     uint64
	FileName        string
	FileSize        int32
	URL             string
	VotesUp         uint32
	VotesDown       uint32
	Score           float32
}

// UGCFileSpec scripts one downloadable UGC file.
type UGCFileSpec struct {
	AppID       uint32
	SizeInBytes int32
	FileName    string
	Owner       uint64
	Result      int32 // native EResult; zero means success
}

type fakeQuery struct {
	page     uint32
	anyTag   bool
	required []string
	excluded []string
	results  []UGCItemSpec
	total    int
}

// Driver is a fake native layer. The zero value is not usable; construct
// with NewDriver.
type Driver struct {
	mu sync.Mutex

	initErr     error
	shutdownErr error
	appID       uint32

	// Notification pipeline: staged items become drainable on RunFrame.
	pending []staged
	ready   []staged
	last    *staged

	results    map[driver.CallHandle]callResult
	nextHandle driver.CallHandle

	names        map[uint64]string
	pendingNames map[uint64]string

	leaderboards   map[string]uint64
	entries        map[uint64][]EntrySpec
	entrySets      map[uint64][]EntrySpec
	nextEntriesSet uint64

	ugcItems  []UGCItemSpec
	queries   map[driver.UGCQueryHandle]*fakeQuery
	nextQuery driver.UGCQueryHandle
	failQuery bool

	ugcFiles map[uint64]UGCFileSpec

	calls []string
}

var _ driver.Driver = (*Driver)(nil)

// NewDriver creates an empty fake driver.
func NewDriver() *Driver {
	return &Driver{
		results:        make(map[driver.CallHandle]callResult),
		nextHandle:     1,
		names:          make(map[uint64]string),
		pendingNames:   make(map[uint64]string),
		leaderboards:   make(map[string]uint64),
		entries:        make(map[uint64][]EntrySpec),
		entrySets:      make(map[uint64][]EntrySpec),
		nextEntriesSet: 1,
		queries:        make(map[driver.UGCQueryHandle]*fakeQuery),
		nextQuery:      1,
		ugcFiles:       make(map[uint64]UGCFileSpec),
		appID:          480,
	}
}

func (d *Driver) log(call string) {
	d.calls = append(d.calls, call)
}

// CallLog returns a copy of the recorded native call sequence.
func (d *Driver) CallLog() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.calls))
	copy(out, d.calls)
	return out
}

// ---------------------------------------------------------------------------
// Scripting surface
// ---------------------------------------------------------------------------

// SetInitError makes Init fail with err.
func (d *Driver) SetInitError(err error) {
	d.mu.Lock()
	d.initErr = err
	d.mu.Unlock()
}

// SetAppID sets the value returned by AppID.
func (d *Driver) SetAppID(id uint32) {
	d.mu.Lock()
	d.appID = id
	d.mu.Unlock()
}

// SetPersonaName marks a user's name as already known locally; a request
// for it completes without a network round trip.
func (d *Driver) SetPersonaName(steamID uint64, name string) {
	d.mu.Lock()
	d.names[steamID] = name
	d.mu.Unlock()
}

// SetPendingPersonaName scripts a name that becomes known only after a
// RequestUserInformation round trip.
func (d *Driver) SetPendingPersonaName(steamID uint64, name string) {
	d.mu.Lock()
	d.pendingNames[steamID] = name
	d.mu.Unlock()
}

// SetLeaderboard registers a leaderboard under the given native handle.
func (d *Driver) SetLeaderboard(name string, handle uint64) {
	d.mu.Lock()
	d.leaderboards[name] = handle
	d.mu.Unlock()
}

// SetLeaderboardEntries scripts the full entry list of a leaderboard.
func (d *Driver) SetLeaderboardEntries(handle uint64, entries []EntrySpec) {
	d.mu.Lock()
	d.entries[handle] = entries
	d.mu.Unlock()
}

// AddUGCItem adds one workshop item to the queryable set.
func (d *Driver) AddUGCItem(item UGCItemSpec) {
	d.mu.Lock()
	d.ugcItems = append(d.ugcItems, item)
	d.mu.Unlock()
}

// FailNextQueryCreate makes the next CreateQueryAllRequest return the
// invalid handle.
func (d *Driver) FailNextQueryCreate() {
	d.mu.Lock()
	d.failQuery = true
	d.mu.Unlock()
}

// SetUGCFile registers a downloadable UGC file under handle.
func (d *Driver) SetUGCFile(handle uint64, spec UGCFileSpec) {
	d.mu.Lock()
	if spec.Result == 0 {
		spec.Result = steamResultOK
	}
	d.ugcFiles[handle] = spec
	d.mu.Unlock()
}

// Emit stages a broadcast record; it becomes drainable on the next frame.
func Emit[T any](d *Driver, id driver.CallbackID, rec *T) {
	d.mu.Lock()
	stageInto(&d.pending, id, rec)
	d.mu.Unlock()
}

// EmitPersonaStateChange stages a persona-state-change broadcast.
func (d *Driver) EmitPersonaStateChange(steamID uint64, flags int32) {
	Emit(d, driver.CallbackIDPersonaStateChange, &driver.RawPersonaStateChange{
		SteamID:     steamID,
		ChangeFlags: flags,
	})
}

// EmitShutdownRequested stages a platform shutdown-request broadcast.
func (d *Driver) EmitShutdownRequested() {
	Emit(d, driver.CallbackIDSteamShutdown, &driver.RawSteamShutdown{})
}

// Complete stages a completion for handle h carrying payload. The payload
// bytes become fetchable and the completion notice drainable on the next
// frame.
func Complete[T any](d *Driver, h driver.CallHandle, payload *T) {
	d.mu.Lock()
	d.completeLocked(h, recordBytes(payload), false)
	d.mu.Unlock()
}

// FailCall stages a completion for h whose fetch reports the failed flag,
// which the engine treats as a native contract violation.
func (d *Driver) FailCall(h driver.CallHandle, size int) {
	d.mu.Lock()
	d.completeLocked(h, make([]byte, size), true)
	d.mu.Unlock()
}

// ---------------------------------------------------------------------------
// Core
// ---------------------------------------------------------------------------

// Init implements driver.Core.
func (d *Driver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log("Init")
	return d.initErr
}

// Shutdown implements driver.Core.
func (d *Driver) Shutdown() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log("Shutdown")
	return d.shutdownErr
}

// RunFrame implements driver.Core: staged notifications become drainable.
func (d *Driver) RunFrame() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log("RunFrame")
	d.ready = append(d.ready, d.pending...)
	d.pending = nil
}

// NextCallback implements driver.Core.
func (d *Driver) NextCallback() (driver.RawCallback, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.last != nil {
		panic("fake: NextCallback before FreeLastCallback")
	}
	if len(d.ready) == 0 {
		return driver.RawCallback{}, false
	}
	item := d.ready[0]
	d.ready = d.ready[1:]
	d.last = &item
	d.log("NextCallback")
	return item.cb, true
}

// FreeLastCallback implements driver.Core.
func (d *Driver) FreeLastCallback() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.last == nil {
		panic("fake: FreeLastCallback without a fetched callback")
	}
	d.last = nil
	d.log("FreeLastCallback")
}

// FetchCallResult implements driver.Core. The result is one-shot: a second
// fetch for the same handle reports unavailable.
func (d *Driver) FetchCallResult(h driver.CallHandle, dst []byte) (bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log("FetchCallResult")
	res, ok := d.results[h]
	if !ok || len(dst) != len(res.data) {
		return false, false
	}
	delete(d.results, h)
	copy(dst, res.data)
	return true, res.failed
}

// ---------------------------------------------------------------------------
// Utils / Friends
// ---------------------------------------------------------------------------

// AppID implements driver.Utils.
func (d *Driver) AppID() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.appID
}

// RequestUserInformation implements driver.Friends.
func (d *Driver) RequestUserInformation(steamID uint64, nameOnly bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, known := d.names[steamID]; known {
		return false
	}
	if name, ok := d.pendingNames[steamID]; ok {
		d.names[steamID] = name
		delete(d.pendingNames, steamID)
	} else {
		d.names[steamID] = ""
	}
	stageInto(&d.pending, driver.CallbackIDPersonaStateChange, &driver.RawPersonaStateChange{
		SteamID:     steamID,
		ChangeFlags: 0x0001, // name changed
	})
	return true
}

// PersonaName implements driver.Friends.
func (d *Driver) PersonaName(steamID uint64) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.names[steamID]
}

// ---------------------------------------------------------------------------
// UserStats
// ---------------------------------------------------------------------------

// FindLeaderboard implements driver.UserStats.
func (d *Driver) FindLeaderboard(name string) driver.CallHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.issue()
	lb, found := d.leaderboards[name]
	res := driver.RawLeaderboardFindResult{Leaderboard: lb}
	if found {
		res.Found = 1
	}
	d.completeLocked(h, recordBytes(&res), false)
	return h
}

// UploadLeaderboardScore implements driver.UserStats.
func (d *Driver) UploadLeaderboardScore(leaderboard uint64, method int32, score int32, details []int32) driver.CallHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.issue()
	res := driver.RawLeaderboardScoreUploaded{
		Success:       1,
		Leaderboard:   leaderboard,
		Score:         score,
		ScoreChanged:  1,
		GlobalRankNew: 1,
	}
	d.completeLocked(h, recordBytes(&res), false)
	return h
}

// DownloadLeaderboardEntries implements driver.UserStats.
func (d *Driver) DownloadLeaderboardEntries(leaderboard uint64, request int32, rangeStart, rangeEnd int32) driver.CallHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.issue()

	all := d.entries[leaderboard]
	var slice []EntrySpec
	switch {
	case request == 2: // friends: range ignored
		slice = all
	default:
		lo := int(rangeStart) - 1
		hi := int(rangeEnd)
		if lo < 0 {
			lo = 0
		}
		if hi > len(all) {
			hi = len(all)
		}
		if lo < hi {
			slice = all[lo:hi]
		}
	}

	set := d.nextEntriesSet
	d.nextEntriesSet++
	d.entrySets[set] = slice

	res := driver.RawLeaderboardScoresDownloaded{
		Leaderboard: leaderboard,
		Entries:     set,
		EntryCount:  int32(len(slice)),
	}
	d.completeLocked(h, recordBytes(&res), false)
	return h
}

// DownloadedEntry implements driver.UserStats.
func (d *Driver) DownloadedEntry(entries uint64, index int32, details []int32) (driver.RawLeaderboardEntry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	set, ok := d.entrySets[entries]
	if !ok || index < 0 || int(index) >= len(set) {
		return driver.RawLeaderboardEntry{}, false
	}
	spec := set[index]
	n := copy(details, spec.Details)
	return driver.RawLeaderboardEntry{
		SteamID:     spec.SteamID,
		GlobalRank:  spec.GlobalRank,
		Score:       spec.Score,
		DetailCount: int32(n),
		UGC:         spec.UGC,
	}, true
}

// ---------------------------------------------------------------------------
// UGC
// ---------------------------------------------------------------------------

// CreateQueryAllRequest implements driver.UGC.
func (d *Driver) CreateQueryAllRequest(queryType int32, matchingType int32, creatorAppID, consumerAppID uint32, page uint32) driver.UGCQueryHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failQuery {
		d.failQuery = false
		return driver.UGCQueryHandleInvalid
	}
	q := d.nextQuery
	d.nextQuery++
	d.queries[q] = &fakeQuery{page: page}
	return q
}

// AddRequiredTag implements driver.UGC.
func (d *Driver) AddRequiredTag(query driver.UGCQueryHandle, tag string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	q, ok := d.queries[query]
	if !ok {
		return false
	}
	q.required = append(q.required, tag)
	return true
}

// AddExcludedTag implements driver.UGC.
func (d *Driver) AddExcludedTag(query driver.UGCQueryHandle, tag string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	q, ok := d.queries[query]
	if !ok {
		return false
	}
	q.excluded = append(q.excluded, tag)
	return true
}

// SetMatchAnyTag implements driver.UGC.
func (d *Driver) SetMatchAnyTag(query driver.UGCQueryHandle, anyTag bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	q, ok := d.queries[query]
	if !ok {
		return false
	}
	q.anyTag = anyTag
	return true
}

// SetReturnLongDescription implements driver.UGC.
func (d *Driver) SetReturnLongDescription(query driver.UGCQueryHandle, long bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.queries[query]
	return ok
}

// SendQueryRequest implements driver.UGC.
func (d *Driver) SendQueryRequest(query driver.UGCQueryHandle) driver.CallHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.issue()
	q, ok := d.queries[query]
	if !ok {
		d.completeLocked(h, recordBytes(&driver.RawUGCQueryCompleted{
			Handle: query,
			Result: 2, // generic failure
		}), false)
		return h
	}

	filtered := d.filterItems(q)
	q.total = len(filtered)
	lo := int(q.page-1) * pageSize
	hi := lo + pageSize
	if lo > len(filtered) {
		lo = len(filtered)
	}
	if hi > len(filtered) {
		hi = len(filtered)
	}
	q.results = filtered[lo:hi]

	d.completeLocked(h, recordBytes(&driver.RawUGCQueryCompleted{
		Handle:       query,
		Result:       steamResultOK,
		NumResults:   uint32(len(q.results)),
		TotalResults: uint32(q.total),
	}), false)
	return h
}

func (d *Driver) filterItems(q *fakeQuery) []UGCItemSpec {
	var out []UGCItemSpec
	for _, item := range d.ugcItems {
		if !matchTags(item.Tags, q.required, q.anyTag) {
			continue
		}
		if hasAnyTag(item.Tags, q.excluded) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchTags(have, required []string, anyTag bool) bool {
	if len(required) == 0 {
		return true
	}
	matched := 0
	for _, req := range required {
		if hasAnyTag(have, []string{req}) {
			matched++
		}
	}
	if anyTag {
		return matched > 0
	}
	return matched == len(required)
}

func hasAnyTag(have, candidates []string) bool {
	for _, c := range candidates {
		for _, t := range have {
			if t == c {
				return true
			}
		}
	}
	return false
}

// QueryResult implements driver.UGC.
func (d *Driver) QueryResult(query driver.UGCQueryHandle, index uint32) (driver.RawUGCDetails, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	q, ok := d.queries[query]
	if !ok || int(index) >= len(q.results) {
		return driver.RawUGCDetails{}, false
	}
	item := q.results[index]
	det := driver.RawUGCDetails{
		PublishedFileID: item.PublishedFileID,
		Result:          steamResultOK,
		FileType:        item.FileType,
		CreatorAppID:    item.CreatorAppID,
		ConsumerAppID:   item.ConsumerAppID,
		OwnerSteamID:    item.OwnerSteamID,
		TimeCreated:     item.TimeCreated,
		TimeUpdated:     item.TimeUpdated,
		Visibility:      item.Visibility,
		File:            orInvalid(item.File),
		PreviewFile:     orInvalid(item.PreviewFile),
		FileSize:        item.FileSize,
		VotesUp:         item.VotesUp,
		VotesDown:       item.VotesDown,
		Score:           item.Score,
	}
	copyCString(det.Title[:], item.Title)
	copyCString(det.Description[:], item.Description)
	copyCString(det.FileName[:], item.FileName)
	copyCString(det.URL[:], item.URL)
	copyCString(det.Tags[:], joinTags(item.Tags))
	return det, true
}

// ReleaseQueryRequest implements driver.UGC.
func (d *Driver) ReleaseQueryRequest(query driver.UGCQueryHandle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.queries[query]; !ok {
		return false
	}
	delete(d.queries, query)
	return true
}

// ---------------------------------------------------------------------------
// RemoteStorage
// ---------------------------------------------------------------------------

// UGCDownloadToLocation implements driver.RemoteStorage.
func (d *Driver) UGCDownloadToLocation(handle uint64, location string, priority uint32) driver.CallHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.issue()
	spec, ok := d.ugcFiles[handle]
	if !ok {
		spec = UGCFileSpec{Result: 9} // file not found
	}
	res := driver.RawDownloadUGCResult{
		Result:       spec.Result,
		File:         handle,
		AppID:        spec.AppID,
		SizeInBytes:  spec.SizeInBytes,
		OwnerSteamID: spec.Owner,
	}
	copyCString(res.FileName[:], spec.FileName)
	d.completeLocked(h, recordBytes(&res), false)
	return h
}

// ---------------------------------------------------------------------------
// internals
// ---------------------------------------------------------------------------

func (d *Driver) issue() driver.CallHandle {
	h := d.nextHandle
	d.nextHandle++
	return h
}

// completeLocked stores fetchable result bytes for h and stages the
// completion notice. Requires d.mu held.
func (d *Driver) completeLocked(h driver.CallHandle, data []byte, failed bool) {
	d.results[h] = callResult{data: data, failed: failed}
	stageInto(&d.pending, driver.CallbackIDCallCompleted, &driver.RawCallCompleted{
		AsyncCall: h,
		Callback:  driver.CallbackIDCallCompleted,
		ParamSize: uint32(len(data)),
	})
}

// stageInto appends one notification. Requires d.mu held. The record pointer
// is retained so the memory stays valid while the engine holds the raw view.
func stageInto[T any](pending *[]staged, id driver.CallbackID, rec *T) {
	*pending = append(*pending, staged{
		cb: driver.RawCallback{
			ID:   id,
			Data: unsafe.Pointer(rec),
			Len:  int(unsafe.Sizeof(*rec)),
		},
		ref: rec,
	})
}

// recordBytes snapshots a record's memory as an owned byte slice.
func recordBytes[T any](v *T) []byte {
	size := int(unsafe.Sizeof(*v))
	if size == 0 {
		return nil
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(v)), size)
	out := make([]byte, size)
	copy(out, src)
	return out
}

func copyCString(dst []byte, s string) {
	n := copy(dst, s)
	if n < len(dst) {
		dst[n] = 0
	} else if len(dst) > 0 {
		dst[len(dst)-1] = 0
	}
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ","
		}
		out += t
	}
	return out
}

func orInvalid(h uint64) uint64 {
	if h == 0 {
		return driver.UGCHandleInvalid
	}
	return h
}
