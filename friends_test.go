// File: friends_test.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/steambridge/fake"
)

const testUser SteamID = 76561197960287930

func TestPersonaNameKnownLocally(t *testing.T) {
	d := fake.NewDriver()
	d.SetPersonaName(uint64(testUser), "alice")
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	name, err := c.PersonaName(ctx, testUser)
	require.NoError(t, err)
	require.Equal(t, "alice", name)
}

func TestPersonaNameAfterRoundTrip(t *testing.T) {
	d := fake.NewDriver()
	d.SetPendingPersonaName(uint64(testUser), "bob")
	c := newTestClient(t, d)

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	name, err := c.PersonaName(ctx, testUser)
	require.NoError(t, err)
	require.Equal(t, "bob", name)

	// Second lookup is a cache hit with the same answer.
	name, err = c.PersonaName(ctx, testUser)
	require.NoError(t, err)
	require.Equal(t, "bob", name)
}

func TestPersonaStateChangeBroadcast(t *testing.T) {
	d := fake.NewDriver()
	c := newTestClient(t, d)

	sub := c.OnPersonaStateChanged()
	defer sub.Close()

	d.EmitPersonaStateChange(uint64(testUser), int32(PersonaChangeStatus|PersonaChangeAvatar))

	ctx, cancel := contextWithTestTimeout(t)
	defer cancel()

	change, err := sub.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, testUser, change.User)
	require.True(t, change.Flags.Has(PersonaChangeStatus))
	require.True(t, change.Flags.Has(PersonaChangeAvatar))
	require.False(t, change.Flags.Has(PersonaChangeName))
}
