package probe

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/sherpa/internal/core/ports"
)

// NodeID is the unique identifier for the capability probe Graft node.
const NodeID graft.ID = "adapter.probe"

func init() {
	graft.Register(graft.Node[ports.CapabilityProbe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CapabilityProbe, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return New(cwd), nil
		},
	})
}
