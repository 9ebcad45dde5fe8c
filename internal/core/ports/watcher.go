package ports

import (
	"context"
	"iter"
)

// WatchOp classifies a file system change.
type WatchOp uint8

const (
	// OpCreate reports a created file or directory.
	OpCreate WatchOp = iota
	// OpWrite reports a modified file.
	OpWrite
	// OpRemove reports a removed file or directory.
	OpRemove
	// OpRename reports a renamed file or directory.
	OpRename
)

// WatchEvent is one file system change reported by the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file or directory that changed.
	Path string
	// Operation is the kind of change.
	Operation WatchOp
}

// Watcher reports file system changes under a root directory.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching root recursively.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events yields file system events until the watcher stops.
	Events() iter.Seq[WatchEvent]
}
