// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry at init through
// promauto. Record* helpers keep label handling in one place.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stage labels.
const (
	StageLoad      = "load"
	StageNormalize = "normalize"
	StageFilter    = "filter"
	StageAggregate = "aggregate"
	StageShape     = "shape"
	StageRender    = "render"
)

// Reload result labels.
const (
	ReloadSuccess  = "success"
	ReloadFailure  = "failure"
	ReloadRejected = "rejected"
)

var (
	// API

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadlens_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roadlens_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roadlens_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadlens_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"group"},
	)

	// Pipeline

	PipelineStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roadlens_pipeline_stage_duration_seconds",
			Help:    "Duration of one pipeline stage",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"stage", "feature"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roadlens_duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB statements issued by the dataset loader",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadlens_duckdb_query_errors_total",
			Help: "Total number of failed DuckDB statements",
		},
		[]string{"operation"},
	)

	// Dataset

	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadlens_dataset_reloads_total",
			Help: "Dataset reload attempts by result",
		},
		[]string{"result"},
	)

	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roadlens_dataset_rows",
			Help: "Normalized rows in the current snapshot",
		},
	)

	DatasetVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roadlens_dataset_version",
			Help: "Version counter of the current snapshot",
		},
	)

	DatasetLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roadlens_dataset_last_success_timestamp",
			Help: "Unix time of the last successful load",
		},
	)

	DatasetBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roadlens_dataset_breaker_state",
			Help: "Reload circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// Cache

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roadlens_cache_hits_total",
			Help: "Response cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roadlens_cache_misses_total",
			Help: "Response cache misses",
		},
	)

	// Realtime

	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roadlens_websocket_connections",
			Help: "Connected websocket clients",
		},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadlens_events_published_total",
			Help: "Dataset events published by destination",
		},
		[]string{"destination"},
	)
)

// RecordAPIRequest records one finished API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge up or down.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// ObserveStage records the duration of a pipeline stage for a feature.
func ObserveStage(stage, feature string, d time.Duration) {
	PipelineStageDuration.WithLabelValues(stage, feature).Observe(d.Seconds())
}

// StageTimer returns a func that records the time since StageTimer was
// called.
//
//	defer metrics.StageTimer(metrics.StageShape, "heatmap")()
func StageTimer(stage, feature string) func() {
	start := time.Now()
	return func() { ObserveStage(stage, feature, time.Since(start)) }
}

// RecordDBQuery records a loader statement.
func RecordDBQuery(operation string, d time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(d.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordReload counts a reload attempt. Successful reloads also update the
// snapshot gauges.
func RecordReload(result string, rows int, version uint64) {
	DatasetReloads.WithLabelValues(result).Inc()
	if result != ReloadSuccess {
		return
	}
	DatasetRows.Set(float64(rows))
	DatasetVersion.Set(float64(version))
	DatasetLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordCache counts a cache lookup.
func RecordCache(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}
