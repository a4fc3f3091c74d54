package dpkg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoslice/internal/adapters/shell"
	"go.trai.ch/autoslice/internal/core/ports"
)

// NodeID is the Graft identifier of the dpkg archive lister adapter.
const NodeID graft.ID = "adapter.archive_lister"

func init() {
	graft.Register(graft.Node[ports.ArchiveLister]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ArchiveLister, error) {
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewLister(runner), nil
		},
	})
}
