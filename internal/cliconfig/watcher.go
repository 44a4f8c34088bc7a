package cliconfig

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/itemd/internal/ports"
)

// Watcher monitors the config file via fsnotify and re-applies
// runtime-adjustable settings on change. Settings that require a restart
// (listen address, store location, pool size) are ignored by the reload.
type Watcher struct {
	path   string
	apply  func(FileConfig)
	logger ports.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a watcher for the config file at path.
// apply is invoked with the freshly parsed file after each change.
func NewWatcher(path string, logger ports.Logger, apply func(FileConfig)) *Watcher {
	return &Watcher{
		path:   path,
		apply:  apply,
		logger: logger,
	}
}

// Run watches the config file's directory until the context is canceled.
// Watching the directory rather than the file survives editors that
// replace the file via rename.
func (w *Watcher) Run(ctx context.Context) {
	if w.path == "" {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error("config watcher: create failed", ports.Err(err))
		return
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		w.logger.Error("config watcher: watch failed",
			ports.String("dir", dir),
			ports.Err(err),
		)
		return
	}

	w.logger.Debug("config watcher: watching", ports.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher: error", ports.Err(err))
		}
	}
}

// debounceReload coalesces rapid successive events into one reload.
func (w *Watcher) debounceReload(delay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(delay, w.reload)
}

// reload parses the config file and hands it to the apply callback.
func (w *Watcher) reload() {
	fc, err := LoadFileConfig(w.path)
	if err != nil {
		w.logger.Error("config watcher: reload failed", ports.Err(err))
		return
	}
	w.logger.Info("config watcher: reloaded", ports.String("path", w.path))
	w.apply(fc)
}
