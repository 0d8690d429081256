// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tomtom215/roadlens/internal/accidents"
)

type signalReloader struct {
	calls    chan string
	throttle int
}

func (s *signalReloader) Reload(_ context.Context, reason string) (*accidents.Snapshot, error) {
	if s.throttle > 0 {
		s.throttle--
		s.calls <- "throttled"
		return nil, ErrReloadThrottled
	}
	s.calls <- reason
	return nil, nil
}

func startWatcher(t *testing.T, r Reloader, path string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWatcher(r, path, 50*time.Millisecond, 50*time.Millisecond)
	done := make(chan error, 1)
	go func() { done <- w.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	})
	// give fsnotify time to register the directory
	time.Sleep(100 * time.Millisecond)
}

func waitCall(t *testing.T, calls <-chan string) string {
	t.Helper()
	select {
	case reason := <-calls:
		return reason
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return ""
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accidents.csv")
	if err := os.WriteFile(path, []byte("a\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	r := &signalReloader{calls: make(chan string, 16)}
	startWatcher(t, r, path)

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("a\nb\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if got := waitCall(t, r.calls); got != ReasonWatch {
		t.Errorf("Reload reason = %q, want %q", got, ReasonWatch)
	}
}

func TestWatcherRetriesThrottledReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accidents.csv")
	r := &signalReloader{calls: make(chan string, 16), throttle: 1}
	startWatcher(t, r, path)

	if err := os.WriteFile(path, []byte("a\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := waitCall(t, r.calls); got != "throttled" {
		t.Fatalf("first call = %q, want throttled", got)
	}
	if got := waitCall(t, r.calls); got != ReasonWatch {
		t.Errorf("retry call = %q, want %q", got, ReasonWatch)
	}
}

func TestWatcherRelevant(t *testing.T) {
	w := NewWatcher(&signalReloader{}, "/data/accidents.csv", 0, 0)
	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: "/data/accidents.csv", Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: "/data/accidents.csv", Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: "/data/accidents.csv", Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: "/data/accidents.csv", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/data/other.csv", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.relevant(tt.ev); got != tt.want {
				t.Errorf("relevant(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
	if w.String() != "dataset-watcher" {
		t.Errorf("String() = %q, want dataset-watcher", w.String())
	}
}
