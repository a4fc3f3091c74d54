package sdf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoslice/internal/core/ports"
)

// NodeID is the Graft identifier of the SDF renderer adapter.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.DefinitionRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.DefinitionRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
