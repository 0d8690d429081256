// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

func histogramCount(t *testing.T, h prometheus.Observer) uint64 {
	t.Helper()
	m, ok := h.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a metric", h)
	}
	var pb io_prometheus_client.Metric
	if err := m.Write(&pb); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return pb.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/analytics/summary", "200")
	before := testutil.ToFloat64(counter)
	hist := APIRequestDuration.WithLabelValues("GET", "/api/v1/analytics/summary")
	beforeCount := histogramCount(t, hist)

	RecordAPIRequest("GET", "/api/v1/analytics/summary", "200", 12*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", got, before+1)
	}
	if got := histogramCount(t, hist); got != beforeCount+1 {
		t.Errorf("APIRequestDuration sample count = %d, want %d", got, beforeCount+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("APIActiveRequests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
}

func TestStageTimer(t *testing.T) {
	hist := PipelineStageDuration.WithLabelValues(StageShape, "heatmap")
	before := histogramCount(t, hist)

	stop := StageTimer(StageShape, "heatmap")
	stop()

	if got := histogramCount(t, hist); got != before+1 {
		t.Errorf("PipelineStageDuration sample count = %d, want %d", got, before+1)
	}
}

func TestRecordDBQuery(t *testing.T) {
	errs := DBQueryErrors.WithLabelValues("read_csv")
	before := testutil.ToFloat64(errs)

	RecordDBQuery("read_csv", time.Millisecond, nil)
	RecordDBQuery("read_csv", time.Millisecond, errors.New("no such file"))

	if got := testutil.ToFloat64(errs); got != before+1 {
		t.Errorf("DBQueryErrors = %v, want %v", got, before+1)
	}
}

func TestRecordReload(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		rows    int
		version uint64
	}{
		{"success updates gauges", ReloadSuccess, 307973, 4},
		{"failure leaves gauges", ReloadFailure, 0, 0},
		{"rejected leaves gauges", ReloadRejected, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := DatasetReloads.WithLabelValues(tt.result)
			before := testutil.ToFloat64(counter)
			rowsBefore := testutil.ToFloat64(DatasetRows)

			RecordReload(tt.result, tt.rows, tt.version)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("DatasetReloads{%s} = %v, want %v", tt.result, got, before+1)
			}
			rows := testutil.ToFloat64(DatasetRows)
			if tt.result == ReloadSuccess {
				if rows != float64(tt.rows) || testutil.ToFloat64(DatasetVersion) != float64(tt.version) {
					t.Errorf("gauges = rows %v version %v, want %d, %d", rows, testutil.ToFloat64(DatasetVersion), tt.rows, tt.version)
				}
			} else if rows != rowsBefore {
				t.Errorf("DatasetRows = %v, want unchanged %v", rows, rowsBefore)
			}
		})
	}
}

func TestRecordCache(t *testing.T) {
	hits, misses := testutil.ToFloat64(CacheHits), testutil.ToFloat64(CacheMisses)
	RecordCache(true)
	RecordCache(false)
	RecordCache(false)
	if got := testutil.ToFloat64(CacheHits); got != hits+1 {
		t.Errorf("CacheHits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(CacheMisses); got != misses+2 {
		t.Errorf("CacheMisses = %v, want %v", got, misses+2)
	}
}
