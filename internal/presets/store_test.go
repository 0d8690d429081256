// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package presets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/config"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(config.PresetsConfig{InMemory: true})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"wet-nights", true},
		{"rural_2021", true},
		{"", false},
		{"has space", false},
		{"../escape", false},
		{string(make([]byte, 65)), false},
	}
	for _, tt := range tests {
		if got := ValidName(tt.name); got != tt.want {
			t.Errorf("ValidName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStorePutGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	sel := accidents.Selection{
		Start:   time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC),
		Weather: "Raining no high winds",
		Area:    "Urban",
	}
	saved, err := s.Put(ctx, Preset{Name: "wet-urban", Selection: sel})
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if saved.CreatedAt.IsZero() || !saved.CreatedAt.Equal(saved.UpdatedAt) {
		t.Errorf("Put() timestamps = %v/%v, want equal and set", saved.CreatedAt, saved.UpdatedAt)
	}

	got, err := s.Get(ctx, "wet-urban")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Selection.Weather != sel.Weather || got.Selection.Area != sel.Area || !got.Selection.Start.Equal(sel.Start) {
		t.Errorf("Get().Selection = %+v, want %+v", got.Selection, sel)
	}

	time.Sleep(5 * time.Millisecond)
	updated, err := s.Put(ctx, Preset{Name: "wet-urban", Description: "v2", Selection: sel})
	if err != nil {
		t.Fatalf("Put() replace error = %v", err)
	}
	if !updated.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("replaced CreatedAt = %v, want original %v", updated.CreatedAt, saved.CreatedAt)
	}
	if !updated.UpdatedAt.After(saved.UpdatedAt) {
		t.Errorf("replaced UpdatedAt = %v, want after %v", updated.UpdatedAt, saved.UpdatedAt)
	}
}

func TestStoreListAndDelete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		if _, err := s.Put(ctx, Preset{Name: name}); err != nil {
			t.Fatalf("Put(%s) error = %v", name, err)
		}
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 3 || list[0].Name != "alpha" || list[2].Name != "charlie" {
		t.Errorf("List() = %v, want alpha, bravo, charlie", list)
	}

	if err := s.Delete(ctx, "bravo"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "bravo"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "bravo"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestStoreEmptyList(t *testing.T) {
	s := setupStore(t)
	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("List() = %v, want empty non-nil slice", list)
	}
}

func TestStoreErrors(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	if _, err := s.Put(ctx, Preset{Name: "bad name"}); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Put(bad name) error = %v, want ErrInvalidName", err)
	}
	if _, err := s.Get(ctx, ""); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Get(empty) error = %v, want ErrInvalidName", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := s.List(cancelled); !errors.Is(err, context.Canceled) {
		t.Errorf("List(cancelled) error = %v, want context.Canceled", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := s.Get(ctx, "alpha"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get() after Close error = %v, want ErrClosed", err)
	}
}
