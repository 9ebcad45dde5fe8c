package policy

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sherpa/internal/adapters/probe"
	"go.trai.ch/sherpa/internal/core/ports"
)

const (
	// ValidatorNodeID is the unique identifier for the validator Graft node.
	ValidatorNodeID graft.ID = "engine.validator"
	// AssemblerNodeID is the unique identifier for the assembler Graft node.
	AssemblerNodeID graft.ID = "engine.assembler"
)

func init() {
	// Validator Node
	graft.Register(graft.Node[*Validator]{
		ID:        ValidatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{probe.NodeID},
		Run: func(ctx context.Context) (*Validator, error) {
			p, err := graft.Dep[ports.CapabilityProbe](ctx)
			if err != nil {
				return nil, err
			}
			return NewValidator(p), nil
		},
	})

	// Assembler Node
	graft.Register(graft.Node[*Assembler]{
		ID:        AssemblerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Assembler, error) {
			return NewAssembler(), nil
		},
	})
}
