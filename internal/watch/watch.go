package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce lets editors finish multi-step saves before a recompute.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a single file. The parent directory is watched
// so that editors replacing the file by rename are still seen.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	logger   *slog.Logger
	Debounce time.Duration
}

// New creates a watcher for path.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{path: abs, fs: fsw, logger: logger, Debounce: DefaultDebounce}, nil
}

// Run blocks until ctx is done, calling onChange once per settled burst of
// writes to the watched file.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	defer w.fs.Close()
	w.logger.Info("watching", "path", w.path)

	timer := time.NewTimer(w.Debounce)
	timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("file event", "op", event.Op.String(), "path", event.Name)
			timer.Reset(w.Debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			onChange(w.path)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "err", err)
		}
	}
}
