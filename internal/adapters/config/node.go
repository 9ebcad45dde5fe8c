package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/sherpa/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// ContractNodeID is the unique identifier for the app contract Graft node.
	ContractNodeID graft.ID = "adapter.config_contract"
)

func init() {
	// Loader Node
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	// AppContract Node
	graft.Register(graft.Node[domain.AppContract]{
		ID:        ContractNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.AppContract, error) {
			return LoadAppContract()
		},
	})
}
