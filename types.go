// File: types.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import "github.com/momentics/steambridge/driver"

// AppID identifies a Steam application.
type AppID uint32

// SteamID identifies a Steam account.
type SteamID uint64

// UgcHandle identifies one piece of user-generated content in remote
// storage. The zero-valued native sentinel maps to an invalid handle.
type UgcHandle uint64

// Valid reports whether the handle refers to actual content.
func (h UgcHandle) Valid() bool {
	return uint64(h) != driver.UGCHandleInvalid
}
