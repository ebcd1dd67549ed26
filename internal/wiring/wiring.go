// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pantry/internal/adapters/config"
	_ "go.trai.ch/pantry/internal/adapters/logger"
	_ "go.trai.ch/pantry/internal/adapters/memdoc"
	_ "go.trai.ch/pantry/internal/adapters/storage"
	// Register core client-state nodes.
	_ "go.trai.ch/pantry/internal/bus"
	_ "go.trai.ch/pantry/internal/cache"
	// Register app and engine nodes.
	_ "go.trai.ch/pantry/internal/app"
	_ "go.trai.ch/pantry/internal/engine/sync"
)
