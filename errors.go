// File: errors.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import "fmt"

// Domain errors returned by client operations.
var (
	// ErrLeaderboardNameTooLong is returned when a leaderboard name exceeds
	// the native 128-byte limit.
	ErrLeaderboardNameTooLong = fmt.Errorf("leaderboard name exceeds 128 bytes")

	// ErrLeaderboardNameInteriorNul is returned when a leaderboard name
	// carries an interior nul byte, which the native layer would silently
	// truncate at.
	ErrLeaderboardNameInteriorNul = fmt.Errorf("leaderboard name contains an interior nul byte")

	// ErrTooManyDetails is returned when a score upload carries more detail
	// values than the native per-entry limit of 64.
	ErrTooManyDetails = fmt.Errorf("too many score detail values")

	// ErrInvalidEntryRange is returned when a download range does not fit
	// the chosen request type.
	ErrInvalidEntryRange = fmt.Errorf("entry range is invalid for the request type")

	// ErrScoreUploadRejected is returned when the backend acknowledges a
	// score upload but reports it unsuccessful.
	ErrScoreUploadRejected = fmt.Errorf("score upload rejected by backend")

	// ErrUgcQueryCreateFailed is returned when the native layer cannot
	// allocate a UGC query request.
	ErrUgcQueryCreateFailed = fmt.Errorf("could not create ugc query request")
)
