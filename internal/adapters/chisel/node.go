package chisel

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoslice/internal/adapters/shell"
	"go.trai.ch/autoslice/internal/adapters/workspace"
	"go.trai.ch/autoslice/internal/core/ports"
)

// NodeID is the Graft identifier of the curated index adapter.
const NodeID graft.ID = "adapter.curated_index"

func init() {
	graft.Register(graft.Node[ports.CuratedIndex]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, workspace.NodeID},
		Run: func(ctx context.Context) (ports.CuratedIndex, error) {
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			ws, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			return NewIndex(runner, ws, ""), nil
		},
	})
}
