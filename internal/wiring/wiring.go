// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/karbobc/workday/internal/adapters/api"
	_ "github.com/karbobc/workday/internal/adapters/config"
	_ "github.com/karbobc/workday/internal/adapters/holiday"
	_ "github.com/karbobc/workday/internal/adapters/logger"
	_ "github.com/karbobc/workday/internal/adapters/publisher"
	_ "github.com/karbobc/workday/internal/adapters/store"
	_ "github.com/karbobc/workday/internal/adapters/telemetry"
	_ "github.com/karbobc/workday/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/karbobc/workday/internal/app"
	_ "github.com/karbobc/workday/internal/engine/calculator"
	_ "github.com/karbobc/workday/internal/engine/lookup"
	_ "github.com/karbobc/workday/internal/engine/reloader"
	_ "github.com/karbobc/workday/internal/engine/scheduler"
	_ "github.com/karbobc/workday/internal/engine/snapshot"
)
