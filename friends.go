// File: friends.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import "context"

// PersonaName resolves a user's display name.
//
// Known names are served from the LRU cache. Otherwise the subscription is
// opened before the native request is issued, so the answering notification
// cannot slip past the wait: when the native layer reports the data is
// already local the name is read directly, and when a round trip is in
// flight the method blocks until a persona change for the user carries the
// name flag, or ctx is done.
func (c *Client) PersonaName(ctx context.Context, user SteamID) (string, error) {
	if err := c.running(); err != nil {
		return "", err
	}
	if name, ok := c.names.Get(user); ok {
		return name, nil
	}

	sub := c.persona.Subscribe()
	defer sub.Close()

	if !c.drv.RequestUserInformation(uint64(user), true) {
		name := c.drv.PersonaName(uint64(user))
		c.names.Add(user, name)
		return name, nil
	}

	for {
		change, err := sub.Next(ctx)
		if err != nil {
			return "", err
		}
		if change.User == user && change.Flags.Has(PersonaChangeName) {
			name := c.drv.PersonaName(uint64(user))
			c.names.Add(user, name)
			return name, nil
		}
	}
}
