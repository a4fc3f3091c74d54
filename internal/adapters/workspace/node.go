package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoslice/internal/core/ports"
)

// NodeID is the Graft identifier of the workspace adapter.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.Workspace]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Workspace, error) {
			return New()
		},
	})
}
