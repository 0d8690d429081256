// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package models

import (
	"time"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/analytics"
)

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status         string  `json:"status"`
	DatasetLoaded  bool    `json:"dataset_loaded"`
	DatasetVersion uint64  `json:"dataset_version,omitempty"`
	Breaker        string  `json:"breaker,omitempty"`
	Uptime         float64 `json:"uptime_seconds"`
}

// DateRange is an inclusive pair of YYYY-MM-DD days.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DatasetInfo describes the current snapshot.
type DatasetInfo struct {
	Version  uint64    `json:"version"`
	Source   string    `json:"source"`
	Rows     int       `json:"rows"`
	Columns  []string  `json:"columns"`
	Dates    DateRange `json:"dates"`
	LoadedAt time.Time `json:"loaded_at"`
}

// FilterOption lists the choices of one sidebar filter, "All" first.
type FilterOption struct {
	Parameter string   `json:"parameter"`
	Column    string   `json:"column"`
	Values    []string `json:"values"`
}

// FilterOptions is the payload of GET /filters.
type FilterOptions struct {
	Dates   DateRange      `json:"dates"`
	Filters []FilterOption `json:"filters"`
}

// SummaryResponse pairs the raw counts with their display cards.
type SummaryResponse struct {
	analytics.Summary
	Cards []analytics.Metric `json:"cards"`
}

// ProportionResponse is the payload of the proportion endpoint.
type ProportionResponse struct {
	Dimension string            `json:"dimension"`
	Metric    string            `json:"metric"`
	Threshold float64           `json:"threshold"`
	Slices    []analytics.Slice `json:"slices"`
}

// ComparisonResponse is the payload of the comparison endpoint.
type ComparisonResponse struct {
	Dimension string          `json:"dimension"`
	First     string          `json:"first"`
	Second    string          `json:"second"`
	Bars      []analytics.Bar `json:"bars"`
}

// DensityResponse is the payload of the density endpoint.
type DensityResponse struct {
	Level int              `json:"level"`
	Cells []analytics.Cell `json:"cells"`
}

// AggregateRow is one group of the aggregate endpoint.
type AggregateRow struct {
	Keys   map[string]string  `json:"keys"`
	Values map[string]float64 `json:"values"`
	Count  int                `json:"count"`
}

// AggregateResponse is the payload of the aggregate endpoint.
type AggregateResponse struct {
	Keys []string       `json:"keys"`
	Rows []AggregateRow `json:"rows"`
}

// PresetRequest is the body of PUT /presets/{name}.
type PresetRequest struct {
	Description string              `json:"description" validate:"max=256"`
	Selection   accidents.Selection `json:"selection"`
}

// ReloadResponse is returned by POST /admin/reload.
type ReloadResponse struct {
	Version uint64 `json:"version"`
	Rows    int    `json:"rows"`
	Source  string `json:"source"`
}
