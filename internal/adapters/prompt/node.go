package prompt

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoslice/internal/core/ports"
)

// NodeID is the Graft identifier of the interactive confirmer adapter.
const NodeID graft.ID = "adapter.confirmer"

func init() {
	graft.Register(graft.Node[ports.Confirmer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Confirmer, error) {
			return New(os.Stdin, os.Stderr), nil
		},
	})
}
