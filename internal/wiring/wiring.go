// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/autoslice/internal/adapters/apt"
	_ "go.trai.ch/autoslice/internal/adapters/chisel"
	_ "go.trai.ch/autoslice/internal/adapters/dpkg"
	_ "go.trai.ch/autoslice/internal/adapters/logger"
	_ "go.trai.ch/autoslice/internal/adapters/prompt"
	_ "go.trai.ch/autoslice/internal/adapters/sdf"
	_ "go.trai.ch/autoslice/internal/adapters/shell"
	_ "go.trai.ch/autoslice/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/autoslice/internal/app"
	_ "go.trai.ch/autoslice/internal/engine/slicer"
)
