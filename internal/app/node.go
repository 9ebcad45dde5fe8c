package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sherpa/internal/adapters/config"
	"go.trai.ch/sherpa/internal/adapters/logger"
	"go.trai.ch/sherpa/internal/adapters/swgen"
	"go.trai.ch/sherpa/internal/adapters/telemetry"
	"go.trai.ch/sherpa/internal/adapters/watcher"
	"go.trai.ch/sherpa/internal/core/ports"
	"go.trai.ch/sherpa/internal/engine/policy"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the wired application with the pieces the CLI
// entry point needs alongside it.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			policy.ValidatorNodeID,
			policy.AssemblerNodeID,
			swgen.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			watcher.WatcherNodeID,
			watcher.ChangeGateNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
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

			return &Components{App: application, Logger: log}, nil
		},
	})
}

//nolint:cyclop // resolving eight dependencies is sequential by nature
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	validator, err := graft.Dep[*policy.Validator](ctx)
	if err != nil {
		return nil, err
	}

	assembler, err := graft.Dep[*policy.Assembler](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.ArtifactEmitter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	gate, err := graft.Dep[*watcher.ChangeGate](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, validator, assembler, emitter, log, tracer, fsWatcher, gate), nil
}
