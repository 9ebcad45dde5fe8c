package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/sherpa/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// ChangeGateNodeID is the unique identifier for the change gate Graft node.
	ChangeGateNodeID graft.ID = "adapter.change_gate"
)

// DefaultDebounceWindow is the default window for coalescing file events.
const DefaultDebounceWindow = 200 * time.Millisecond

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})

	graft.Register(graft.Node[*ChangeGate]{
		ID:        ChangeGateNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*ChangeGate, error) {
			return NewChangeGate(), nil
		},
	})
}
