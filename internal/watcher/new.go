package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mwcockerill/sermon-scribe/internal/logger"
)

// New creates a Watcher over dir. Only files whose extension appears in
// extensions reach the handler; settle is how long to wait after a create
// event before assuming the producer finished writing the file.
func New(dir string, extensions []string, settle time.Duration, maxConcurrent int, handler EventHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}

	return &implWatcher{
		dir:     dir,
		exts:    exts,
		settle:  settle,
		handler: handler,
		logger:  log,
		watcher: fsw,
		sem:     newSemaphore(maxConcurrent),
	}, nil
}
