package slicer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoslice/internal/adapters/apt"
	"go.trai.ch/autoslice/internal/adapters/dpkg"
	"go.trai.ch/autoslice/internal/adapters/logger"
	"go.trai.ch/autoslice/internal/adapters/workspace"
	"go.trai.ch/autoslice/internal/core/ports"
)

// NodeID is the Graft identifier of the slicing engine.
const NodeID graft.ID = "engine.slicer"

func init() {
	graft.Register(graft.Node[*Slicer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{apt.NodeID, dpkg.NodeID, workspace.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Slicer, error) {
			cache, err := graft.Dep[ports.PackageCache](ctx)
			if err != nil {
				return nil, err
			}
			lister, err := graft.Dep[ports.ArchiveLister](ctx)
			if err != nil {
				return nil, err
			}
			ws, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, lister, ws, log), nil
		},
	})
}
