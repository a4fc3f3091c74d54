package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoslice/internal/adapters/chisel" //nolint:depguard // Wired in app layer
	"go.trai.ch/autoslice/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/autoslice/internal/adapters/prompt" //nolint:depguard // Wired in app layer
	"go.trai.ch/autoslice/internal/adapters/sdf"    //nolint:depguard // Wired in app layer
	"go.trai.ch/autoslice/internal/adapters/workspace"
	"go.trai.ch/autoslice/internal/core/ports"
	"go.trai.ch/autoslice/internal/engine/slicer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			slicer.NodeID,
			chisel.NodeID,
			sdf.NodeID,
			prompt.NodeID,
			workspace.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			workspace.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			ws, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log, Workspace: ws}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	engine, err := graft.Dep[*slicer.Slicer](ctx)
	if err != nil {
		return nil, err
	}
	curated, err := graft.Dep[ports.CuratedIndex](ctx)
	if err != nil {
		return nil, err
	}
	renderer, err := graft.Dep[ports.DefinitionRenderer](ctx)
	if err != nil {
		return nil, err
	}
	confirmer, err := graft.Dep[ports.Confirmer](ctx)
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
	return New(engine, curated, renderer, confirmer, ws, log), nil
}
