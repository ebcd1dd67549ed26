// Package app implements the application layer for pantry.
package app

import (
	"context"

	"go.trai.ch/pantry/internal/adapters/memdoc"
	"go.trai.ch/pantry/internal/adapters/storage"
	"go.trai.ch/pantry/internal/bus"
	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/pantry/internal/engine/sync"
	"go.trai.ch/zerr"
)

// App bundles the client-state machinery behind the CLI: the sync
// controller for the open list, the active-group tracker, the session, and
// the document store they all read from.
type App struct {
	Controller  *sync.Controller
	ActiveGroup *sync.ActiveGroup
	Session     *sync.Session
	Store       *memdoc.Store
	Cache       *cache.Store
	Bus         *bus.Bus
	Logger      ports.Logger

	watcher *storage.TierWatcher
}

// New creates an App over its collaborators. The watcher may be nil when
// cross-process invalidation is disabled.
func New(
	controller *sync.Controller,
	activeGroup *sync.ActiveGroup,
	session *sync.Session,
	store *memdoc.Store,
	cacheStore *cache.Store,
	eventBus *bus.Bus,
	logger ports.Logger,
	watcher *storage.TierWatcher,
) *App {
	return &App{
		Controller:  controller,
		ActiveGroup: activeGroup,
		Session:     session,
		Store:       store,
		Cache:       cacheStore,
		Bus:         eventBus,
		Logger:      logger,
		watcher:     watcher,
	}
}

// Start begins background work: watching the durable tier directory so
// writes from another process invalidate our cached copies.
func (a *App) Start(ctx context.Context) error {
	if a.watcher == nil {
		return nil
	}
	a.watcher.Start(ctx)
	return nil
}

// Shutdown tears down the open list subscription and the watcher.
func (a *App) Shutdown() error {
	a.Controller.Close()
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			return zerr.Wrap(err, "watcher shutdown failed")
		}
	}
	return nil
}
