package compose

import (
	"context"

	"github.com/anvil-build/anvil/internal/adapters/envprobe"
	"github.com/anvil-build/anvil/internal/adapters/logger"
	"github.com/anvil-build/anvil/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "engine.compose"

func init() {
	graft.Register(graft.Node[*Composer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{envprobe.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Composer, error) {
			probe, err := graft.Dep[ports.EnvironmentProbe](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComposer(probe, log), nil
		},
	})
}
