package apt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoslice/internal/adapters/logger"
	"go.trai.ch/autoslice/internal/adapters/shell"
	"go.trai.ch/autoslice/internal/core/ports"
)

// NodeID is the Graft identifier of the apt package cache adapter.
const NodeID graft.ID = "adapter.package_cache"

func init() {
	graft.Register(graft.Node[ports.PackageCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageCache, error) {
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCache(runner, log), nil
		},
	})
}
