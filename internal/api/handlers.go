// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package api serves the accident analytics over HTTP.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writing and error mapping
//   - params.go: query parameter parsing and preset resolution
//   - analytics_executor.go: the cached snapshot-filter-shape flow
//   - handlers_health.go, handlers_dataset.go, handlers_analytics.go,
//     handlers_charts.go, handlers_presets.go, handlers_admin.go: endpoints
package api

import (
	"context"
	"time"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/cache"
	"github.com/tomtom215/roadlens/internal/config"
	"github.com/tomtom215/roadlens/internal/logging"
	"github.com/tomtom215/roadlens/internal/presets"
)

// Dataset is the snapshot source behind every analytics endpoint.
// *dataset.Manager satisfies it.
type Dataset interface {
	Snapshot() (*accidents.Snapshot, error)
	Ready() bool
	BreakerState() string
	Reload(ctx context.Context, reason string) (*accidents.Snapshot, error)
}

// PresetStore persists named filter selections. *presets.Store satisfies it.
type PresetStore interface {
	Put(ctx context.Context, p presets.Preset) (presets.Preset, error)
	Get(ctx context.Context, name string) (presets.Preset, error)
	List(ctx context.Context) ([]presets.Preset, error)
	Delete(ctx context.Context, name string) error
}

// Handler contains the dependencies of the API handlers.
type Handler struct {
	dataset   Dataset
	presets   PresetStore
	cache     *cache.Cache
	analytics config.AnalyticsConfig
	startTime time.Time
}

// NewHandler creates a handler. store may be nil, in which case the preset
// endpoints answer 503 and the preset query parameter is rejected.
func NewHandler(ds Dataset, store PresetStore, cfg config.AnalyticsConfig) *Handler {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Handler{
		dataset:   ds,
		presets:   store,
		cache:     cache.NewWithCapacity(ttl, cfg.CacheMaxEntries),
		analytics: cfg,
		startTime: time.Now(),
	}
}

// ClearCache drops every cached response. Keys already embed the snapshot
// version, so this only frees memory after a reload.
func (h *Handler) ClearCache() {
	h.cache.Clear()
	logging.Debug().Msg("Analytics cache cleared")
}

// Close stops the cache sweeper.
func (h *Handler) Close() {
	h.cache.Close()
}
