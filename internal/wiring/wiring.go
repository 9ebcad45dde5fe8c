// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sherpa/internal/adapters/config"
	_ "go.trai.ch/sherpa/internal/adapters/logger"
	_ "go.trai.ch/sherpa/internal/adapters/probe"
	_ "go.trai.ch/sherpa/internal/adapters/swgen"
	_ "go.trai.ch/sherpa/internal/adapters/telemetry"
	_ "go.trai.ch/sherpa/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/sherpa/internal/app"
	_ "go.trai.ch/sherpa/internal/engine/policy"
)
