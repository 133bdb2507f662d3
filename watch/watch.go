// Package watch reruns a function whenever one of a set of files changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a function once at start and again after every change to
// the watched files.
type Watcher struct {
	paths    []string
	debounce time.Duration
	logger   *slog.Logger
}

// New returns a Watcher over paths. Directories are watched for any file
// change inside them.
func New(paths []string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{paths: paths, debounce: debounce, logger: logger}
}

// Run blocks until ctx is done. Errors from fn are logged, not returned, so
// a broken intermediate save does not end the session.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fsw.Close()

	// Files are watched through their directory so editors that replace the
	// file on save keep being seen.
	targets := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range w.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if isDir(abs) {
			dir = abs
		}
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	w.call(ctx, fn)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev, targets, dirs) {
				continue
			}
			w.logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		case <-timer.C:
			w.call(ctx, fn)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event, targets, dirs map[string]bool) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(ev.Name)
	return targets[name] || (dirs[filepath.Dir(name)] && targets[filepath.Dir(name)])
}

func (w *Watcher) call(ctx context.Context, fn func(context.Context) error) {
	if err := fn(ctx); err != nil && ctx.Err() == nil {
		w.logger.Error("run failed", "error", err)
	}
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
