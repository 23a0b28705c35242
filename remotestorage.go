// File: remotestorage.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import (
	"context"

	"github.com/momentics/steambridge/core/callresult"
	"github.com/momentics/steambridge/driver"
	"github.com/momentics/steambridge/internal/strutil"
)

// DownloadedUGC reports a completed UGC download.
type DownloadedUGC struct {
	File        UgcHandle
	AppID       AppID
	SizeInBytes int32
	FileName    string
	Owner       SteamID
}

// DownloadUGCToLocation downloads a piece of user-generated content to a
// filesystem location. priority orders concurrent downloads; lower runs
// first. A non-OK backend result surfaces as a SteamResultError.
func (c *Client) DownloadUGCToLocation(ctx context.Context, file UgcHandle, location string, priority uint32) (*DownloadedUGC, error) {
	if err := c.running(); err != nil {
		return nil, err
	}

	p := c.table.Register(func() driver.CallHandle {
		return c.drv.UGCDownloadToLocation(uint64(file), location, priority)
	})
	data, err := p.Wait(ctx)
	if err != nil {
		return nil, err
	}

	res := callresult.Reinterpret[driver.RawDownloadUGCResult](data)
	if err := resultErr(res.Result); err != nil {
		return nil, err
	}
	return &DownloadedUGC{
		File:        UgcHandle(res.File),
		AppID:       AppID(res.AppID),
		SizeInBytes: res.SizeInBytes,
		FileName:    strutil.FromNulTerminated(res.FileName[:]),
		Owner:       SteamID(res.OwnerSteamID),
	}, nil
}
