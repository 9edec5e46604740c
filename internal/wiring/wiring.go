// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/press/internal/adapters/config"
	_ "go.trai.ch/press/internal/adapters/fs"
	_ "go.trai.ch/press/internal/adapters/logger"
	_ "go.trai.ch/press/internal/adapters/settings"
	_ "go.trai.ch/press/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/press/internal/app"
)
