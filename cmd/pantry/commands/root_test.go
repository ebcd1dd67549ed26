package commands_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/pantry/cmd/pantry/commands"
	"go.trai.ch/pantry/internal/adapters/memdoc"
	"go.trai.ch/pantry/internal/adapters/storage"
	"go.trai.ch/pantry/internal/app"
	"go.trai.ch/pantry/internal/bus"
	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/pantry/internal/core/domain"
	enginesync "go.trai.ch/pantry/internal/engine/sync"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newTestApp() *app.App {
	store := memdoc.New()
	cacheStore := cache.New(cache.WithSessionTier(storage.NewMemoryTier()))
	eventBus := bus.New()
	durable := storage.NewMemoryTier()
	log := nopLogger{}

	controller := enginesync.New(store, store, store, store, cacheStore, eventBus, durable, log)
	active := enginesync.NewActiveGroup(store, cacheStore, eventBus, durable, log)
	session := enginesync.NewSession(controller, cacheStore, storage.NewMemoryTier(), eventBus, log)

	return app.New(controller, active, session, store, cacheStore, eventBus, log, nil)
}

func TestVersionCommand(t *testing.T) {
	cli := commands.New(newTestApp())

	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "pantry version")
}

func TestAddCommand(t *testing.T) {
	a := newTestApp()
	cli := commands.New(a)

	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs([]string{"add", "Leche", "entera", "--category", "dairy"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), `added "Leche entera"`)

	snapshots := make(chan []domain.ListItem, 1)
	unsub, err := a.Store.SubscribeItems("user-ana", "list-groceries", func(items []domain.ListItem) {
		select {
		case snapshots <- items:
		default:
		}
	}, func(error) {})
	require.NoError(t, err)
	defer unsub()

	select {
	case items := <-snapshots:
		require.Len(t, items, 1)
		assert.Equal(t, "Leche entera", items[0].Name)
		assert.Equal(t, "dairy", items[0].Category)
	case <-time.After(2 * time.Second):
		t.Fatal("item snapshot never arrived")
	}
}

func TestAddCommand_RequiresName(t *testing.T) {
	cli := commands.New(newTestApp())
	cli.SetOutput(&bytes.Buffer{})
	cli.SetArgs([]string{"add"})

	assert.Error(t, cli.Execute(context.Background()))
}
