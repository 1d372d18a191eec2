package app

import (
	"context"

	"github.com/anvil-build/anvil/internal/adapters/config"
	"github.com/anvil-build/anvil/internal/adapters/envprobe"
	"github.com/anvil-build/anvil/internal/adapters/logger"
	"github.com/anvil-build/anvil/internal/core/ports"
	"github.com/anvil-build/anvil/internal/engine/compose"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
	Probe  ports.EnvironmentProbe
	Loader *config.Loader
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			envprobe.NodeID,
			logger.NodeID,
			config.NodeID,
			compose.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			probe, err := graft.Dep[ports.EnvironmentProbe](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[*config.Loader](ctx)
			if err != nil {
				return nil, err
			}
			composer, err := graft.Dep[*compose.Composer](ctx)
			if err != nil {
				return nil, err
			}
			return New(probe, log, loader, composer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			envprobe.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	probe, err := graft.Dep[ports.EnvironmentProbe](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[*config.Loader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Probe:  probe,
		Loader: loader,
	}, nil
}
