package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay coalesces the bursts of events that editors produce when
// saving a file.
const settleDelay = 50 * time.Millisecond

// Watch reloads the file at path whenever it changes and passes the result
// to fn. Files that fail to load are logged and skipped, leaving the caller
// with the last good config. Watch blocks until ctx is done.
//
// The containing directory is watched rather than the file itself so that
// editors that replace the file on save keep being followed.
func Watch(ctx context.Context, path string, log *slog.Logger, fn func(File)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("couldn't create watcher: %w", err)
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("couldn't watch %s: %w", path, err)
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(settleDelay)
			} else {
				timer.Reset(settleDelay)
			}
			pending = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", "path", path, "err", err)
		case <-pending:
			pending = nil
			f, err := Load(path)
			if err != nil {
				log.Warn("couldn't reload config, keeping the previous one", "err", err)
				continue
			}
			log.Info("reloaded config", "path", path)
			fn(f)
		}
	}
}
