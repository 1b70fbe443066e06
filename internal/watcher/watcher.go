package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mwcockerill/sermon-scribe/internal/logger"
)

type implWatcher struct {
	dir     string
	exts    map[string]bool
	settle  time.Duration
	handler EventHandler
	logger  logger.Logger
	watcher *fsnotify.Watcher
	sem     *semaphore
	wg      sync.WaitGroup
}

// Start begins monitoring the intake directory for new recordings.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching for recordings: %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.isRecording(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-recording file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)

			// Give the producer time to finish writing the file
			time.Sleep(w.settle)

			if err := w.sem.acquire(ctx); err != nil {
				return err
			}
			w.wg.Add(1)
			go func(path string) {
				defer w.wg.Done()
				defer w.sem.release()

				if err := w.handler(ctx, path); err != nil {
					w.logger.Error(ctx, "Failed to process %s: %v", path, err)
				}
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isRecording checks if the file has a watched recording extension. Hidden
// files are never recordings.
func (w *implWatcher) isRecording(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return w.exts[strings.ToLower(filepath.Ext(base))]
}
