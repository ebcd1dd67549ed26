package sync_test

import (
	"context"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/pantry/internal/adapters/storage"
	"go.trai.ch/pantry/internal/bus"
	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/pantry/internal/core/domain"
	enginesync "go.trai.ch/pantry/internal/engine/sync"
)

func TestActiveGroup_RoundTrip(t *testing.T) {
	f := newFixture(t)
	active := enginesync.NewActiveGroup(f.store, f.cache, f.bus, f.durable, f.log)

	assert.Empty(t, active.CurrentGroupID(), "no group chosen yet")

	group, err := active.CurrentGroup(context.Background())
	require.NoError(t, err)
	assert.Nil(t, group)

	var events []bus.GroupChangedPayload
	f.bus.On(bus.EventGroupChanged, func(payload any) {
		events = append(events, payload.(bus.GroupChangedPayload))
	})

	require.NoError(t, active.SetCurrentGroup(context.Background(), "ana", "g-home"))

	assert.Equal(t, "g-home", active.CurrentGroupID())
	require.Len(t, events, 1)
	assert.Equal(t, "ana", events[0].SenderID)
	assert.Equal(t, "g-home", events[0].GroupID)
	require.NotNil(t, events[0].Group, "the resolved group rides along on the event")
	assert.Equal(t, "Home", events[0].Group.Name)

	group, err = active.CurrentGroup(context.Background())
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, "Home", group.Name)
}

func TestActiveGroup_SurvivesRestart(t *testing.T) {
	f := newFixture(t)
	active := enginesync.NewActiveGroup(f.store, f.cache, f.bus, f.durable, f.log)
	require.NoError(t, active.SetCurrentGroup(context.Background(), "ana", "g-home"))

	// A new tracker over the same durable tier picks the marker up.
	again := enginesync.NewActiveGroup(f.store, cache.New(), bus.New(), f.durable, f.log)
	assert.Equal(t, "g-home", again.CurrentGroupID())
}

func TestSession_SignInSignOut(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.open(t)

		sessionTier := storage.NewMemoryTier()
		require.NoError(t, sessionTier.Write("scratch", []byte("x")))
		f.cache.Set("user", "ana", "")

		session := enginesync.NewSession(f.controller, f.cache, sessionTier, f.bus, f.log)

		var events []bus.UserChangedPayload
		f.bus.On(bus.EventUserChanged, func(payload any) {
			events = append(events, payload.(bus.UserChangedPayload))
		})

		session.SignIn(domain.Member{ID: "ana", Name: "Ana"})
		require.NotNil(t, session.User())
		assert.Equal(t, "Ana", session.User().Name)
		require.Len(t, events, 1)
		assert.Equal(t, "ana", events[0].SenderID)

		session.SignOut()
		synctest.Wait()

		assert.Nil(t, session.User())
		assert.Nil(t, f.cache.Get("user", ""), "sign-out clears every cache namespace")

		keys, err := sessionTier.Keys("")
		require.NoError(t, err)
		assert.Empty(t, keys, "sign-out clears the session tier")

		require.Len(t, events, 2)
		assert.Nil(t, events[1].User)

		// The open list was torn down; item operations now fail.
		_, err = f.controller.AddItem(context.Background(), domain.ListItem{Name: "milk"})
		require.ErrorIs(t, err, domain.ErrNoList)
	})
}
