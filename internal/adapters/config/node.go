package config

import (
	"context"

	"github.com/anvil-build/anvil/internal/adapters/logger"
	"github.com/anvil-build/anvil/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
