// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lode/internal/adapters/callbacks"
	_ "go.trai.ch/lode/internal/adapters/cas"
	_ "go.trai.ch/lode/internal/adapters/component"
	_ "go.trai.ch/lode/internal/adapters/config"
	_ "go.trai.ch/lode/internal/adapters/fs"
	_ "go.trai.ch/lode/internal/adapters/lang"
	_ "go.trai.ch/lode/internal/adapters/less"
	_ "go.trai.ch/lode/internal/adapters/logger"
	_ "go.trai.ch/lode/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/lode/internal/app"
	_ "go.trai.ch/lode/internal/engine/resolver"
	_ "go.trai.ch/lode/internal/engine/styles"
	_ "go.trai.ch/lode/internal/engine/version"
)
