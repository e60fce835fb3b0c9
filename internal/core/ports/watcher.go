package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates the file was created.
	OpCreate WatchOp = iota
	// OpWrite indicates the file was modified.
	OpWrite
)

// String returns the name of the operation.
func (o WatchOp) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	default:
		return "unknown"
	}
}

// WatchEvent represents a change of the watched file.
type WatchEvent struct {
	// Path is the path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher observes a single file for creation and modification.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching path. Events stop when ctx is done or Stop is called.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of change events.
	Events() iter.Seq[WatchEvent]
}
