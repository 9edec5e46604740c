package ports

import (
	"context"
	"iter"
)

// Watcher reports file changes under a directory tree. Implementations
// watch recursively and pick up directories created while watching.
type Watcher interface {
	// Start begins delivering events for changes under root.
	Start(ctx context.Context, root string) error
	// Stop ends the watch and releases the underlying resources.
	Stop() error
	// Events yields file system events until the watcher stops.
	Events() iter.Seq[WatchEvent]
}

// WatchEvent is a single observed file system change.
type WatchEvent struct {
	// Path is the absolute path that changed.
	Path string
	// Operation says what happened to it.
	Operation WatchOp
}

// WatchOp classifies a file system change.
type WatchOp uint8

const (
	// OpCreate means a file or directory appeared.
	OpCreate WatchOp = iota
	// OpWrite means a file's content changed.
	OpWrite
	// OpRemove means a file or directory disappeared.
	OpRemove
	// OpRename means a file or directory moved away.
	OpRename
)
