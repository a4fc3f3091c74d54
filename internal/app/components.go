package app

import "go.trai.ch/autoslice/internal/core/ports"

// Components bundles the wired application objects handed to the CLI.
// The workspace is exposed so the entry point can tear its directory
// down even when execution never reaches App.Run.
type Components struct {
	App       *App
	Logger    ports.Logger
	Workspace ports.Workspace
}
