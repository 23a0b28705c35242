// File: callbacks.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import (
	"github.com/momentics/steambridge/core/broadcast"
	"github.com/momentics/steambridge/core/dispatch"
	"github.com/momentics/steambridge/driver"
)

// PersonaChangeFlags is the bit set describing which persona fields changed.
// Values are fixed by the native SDK.
type PersonaChangeFlags int32

const (
	PersonaChangeName                PersonaChangeFlags = 0x0001
	PersonaChangeStatus              PersonaChangeFlags = 0x0002
	PersonaChangeComeOnline          PersonaChangeFlags = 0x0004
	PersonaChangeGoneOffline         PersonaChangeFlags = 0x0008
	PersonaChangeGamePlayed          PersonaChangeFlags = 0x0010
	PersonaChangeGameServer          PersonaChangeFlags = 0x0020
	PersonaChangeAvatar              PersonaChangeFlags = 0x0040
	PersonaChangeJoinedSource        PersonaChangeFlags = 0x0080
	PersonaChangeLeftSource          PersonaChangeFlags = 0x0100
	PersonaChangeRelationshipChanged PersonaChangeFlags = 0x0200
	PersonaChangeNameFirstSet        PersonaChangeFlags = 0x0400
	PersonaChangeBroadcast           PersonaChangeFlags = 0x0800
	PersonaChangeNickname            PersonaChangeFlags = 0x1000
	PersonaChangeSteamLevel          PersonaChangeFlags = 0x2000
	PersonaChangeRichPresence        PersonaChangeFlags = 0x4000
)

// Has reports whether every bit of flag is set.
func (f PersonaChangeFlags) Has(flag PersonaChangeFlags) bool {
	return f&flag == flag
}

// PersonaStateChange reports that a user's persona data changed.
type PersonaStateChange struct {
	User  SteamID
	Flags PersonaChangeFlags
}

// ShutdownRequest reports that the platform asked the process to exit.
type ShutdownRequest struct{}

// wireRoutes binds the known broadcast kinds to their registries. Runs once
// during construction, before the polling thread starts.
func (c *Client) wireRoutes() {
	c.classifier.Route(driver.CallbackIDPersonaStateChange, func(cb driver.RawCallback) {
		rec := dispatch.Record[driver.RawPersonaStateChange](cb)
		c.persona.Publish(PersonaStateChange{
			User:  SteamID(rec.SteamID),
			Flags: PersonaChangeFlags(rec.ChangeFlags),
		})
	})
	c.classifier.Route(driver.CallbackIDSteamShutdown, func(cb driver.RawCallback) {
		dispatch.Record[driver.RawSteamShutdown](cb)
		c.shutdownReq.Publish(ShutdownRequest{})
	})
}

// OnPersonaStateChanged subscribes to persona-state-change notifications.
// The subscription only observes changes published after it is created;
// close it when done so the registry can release the slot.
func (c *Client) OnPersonaStateChanged() *broadcast.Subscription[PersonaStateChange] {
	return c.persona.Subscribe()
}

// OnShutdownRequested subscribes to platform shutdown requests.
func (c *Client) OnShutdownRequested() *broadcast.Subscription[ShutdownRequest] {
	return c.shutdownReq.Subscribe()
}
