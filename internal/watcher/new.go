package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/hanifmaulana/transkrip/internal/logger"
)

// New creates a Watcher over inputDir. Files are handled strictly one at a
// time, in arrival order, matching the batch pipeline's sequential model.
func New(inputDir string, match Filter, handler Handler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		match:    match,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
	}, nil
}
