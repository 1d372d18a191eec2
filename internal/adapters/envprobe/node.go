package envprobe

import (
	"context"

	"github.com/anvil-build/anvil/internal/adapters/logger"
	"github.com/anvil-build/anvil/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.envprobe"

func init() {
	graft.Register(graft.Node[ports.EnvironmentProbe]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentProbe, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
