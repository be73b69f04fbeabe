package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one newly created file.
type Handler func(ctx context.Context, filePath string) error

// Filter decides whether a created file should be handled.
type Filter func(path string) bool
