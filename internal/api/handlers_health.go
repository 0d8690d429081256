// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/roadlens/internal/models"
)

// HealthLive handles liveness probe requests
//
// @Summary Liveness probe
// @Description Returns 200 while the process is serving HTTP
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, models.HealthStatus{
		Status:        "alive",
		DatasetLoaded: h.dataset.Ready(),
		Uptime:        time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady handles readiness probe requests
//
// @Summary Readiness probe
// @Description Returns 200 once a dataset snapshot is serving, 503 before that
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Snapshot loaded"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "No snapshot yet"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	health := models.HealthStatus{
		Status:  "not_ready",
		Breaker: h.dataset.BreakerState(),
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	status := http.StatusServiceUnavailable
	if snap, err := h.dataset.Snapshot(); err == nil {
		health.Status = "ready"
		health.DatasetLoaded = true
		health.DatasetVersion = snap.Version()
		status = http.StatusOK
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   health.Status,
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now().UTC(), DatasetVersion: health.DatasetVersion},
	})
}
