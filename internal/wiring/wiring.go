// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/anvil-build/anvil/internal/adapters/config"
	_ "github.com/anvil-build/anvil/internal/adapters/envprobe"
	_ "github.com/anvil-build/anvil/internal/adapters/logger"
	// Register app and engine nodes.
	_ "github.com/anvil-build/anvil/internal/app"
	_ "github.com/anvil-build/anvil/internal/engine/compose"
)
