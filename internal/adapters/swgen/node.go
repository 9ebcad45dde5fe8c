package swgen

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/sherpa/internal/adapters/config"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/sherpa/internal/core/ports"
)

// NodeID is the unique identifier for the artifact emitter Graft node.
const NodeID graft.ID = "adapter.emitter"

func init() {
	graft.Register(graft.Node[ports.ArtifactEmitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ContractNodeID},
		Run: func(ctx context.Context) (ports.ArtifactEmitter, error) {
			contract, err := graft.Dep[domain.AppContract](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return New(cwd, contract), nil
		},
	})
}
