// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/logging"
)

// Reloader is the part of Manager the watcher drives.
type Reloader interface {
	Reload(ctx context.Context, reason string) (*accidents.Snapshot, error)
}

// Watcher reloads the dataset when its file changes. It watches the parent
// directory so editors and tools that replace the file atomically are seen.
// Bursts of events collapse into one reload after the debounce delay.
//
// Watcher implements suture.Service.
type Watcher struct {
	reloader Reloader
	path     string
	debounce time.Duration
	retry    time.Duration
}

// NewWatcher creates a watcher for path. retry is how long to wait before
// trying again after a throttled reload.
func NewWatcher(r Reloader, path string, debounce, retry time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	if retry <= 0 {
		retry = debounce
	}
	return &Watcher{
		reloader: r,
		path:     filepath.Clean(path),
		debounce: debounce,
		retry:    retry,
	}
}

// Serve watches until ctx is cancelled.
func (w *Watcher) Serve(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logging.Info().Str("path", w.path).Dur("debounce", w.debounce).Msg("Watching dataset file")

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return errors.New("file watcher closed")
			}
			if !w.relevant(ev) {
				continue
			}
			logging.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("Dataset file changed")
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("file watcher closed")
			}
			logging.Warn().Err(err).Msg("File watcher error")

		case <-timer.C:
			if _, err := w.reloader.Reload(ctx, ReasonWatch); errors.Is(err, ErrReloadThrottled) {
				timer.Reset(w.retry)
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// String identifies the service in supervisor logs.
func (w *Watcher) String() string {
	return "dataset-watcher"
}
