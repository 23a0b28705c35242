// File: remotestorage_test.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/steambridge/fake"
)

func TestDownloadUGCToLocation(t *testing.T) {
	d := fake.NewDriver()
	d.SetUGCFile(11, fake.UGCFileSpec{
		AppID:       480,
		SizeInBytes: 2048,
		FileName:    "mappack.vpk",
		Owner:       uint64(testUser),
	})
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	dl, err := c.DownloadUGCToLocation(ctx, 11, "/tmp/mappack.vpk", 0)
	require.NoError(t, err)
	require.Equal(t, UgcHandle(11), dl.File)
	require.Equal(t, AppID(480), dl.AppID)
	require.Equal(t, int32(2048), dl.SizeInBytes)
	require.Equal(t, "mappack.vpk", dl.FileName)
	require.Equal(t, testUser, dl.Owner)
}

func TestDownloadUnknownUGCFails(t *testing.T) {
	d := fake.NewDriver()
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	_, err := c.DownloadUGCToLocation(ctx, 404, "/tmp/nope", 0)
	var resErr *SteamResultError
	require.ErrorAs(t, err, &resErr)
	require.Equal(t, SteamResultFileNotFound, resErr.Result)
}

func TestSteamResultStrings(t *testing.T) {
	require.Equal(t, "OK", SteamResultOK.String())
	require.Equal(t, "file not found", SteamResultFileNotFound.String())
	require.Equal(t, "steam result 47", SteamResultContentVersion.String())
	require.Panics(t, func() { steamResultFromRaw(0) })
	require.Panics(t, func() { steamResultFromRaw(9999) })
}
