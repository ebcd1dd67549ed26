package app

import (
	"go.trai.ch/pantry/internal/adapters/config"
	"go.trai.ch/pantry/internal/core/ports"
)

// Components aggregates the fully wired application surface handed to the
// CLI entry point.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *config.Settings
}
