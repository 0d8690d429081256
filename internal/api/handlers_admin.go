// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/roadlens/internal/auth"
	"github.com/tomtom215/roadlens/internal/dataset"
	"github.com/tomtom215/roadlens/internal/logging"
	"github.com/tomtom215/roadlens/internal/models"
)

// AdminReload reloads the dataset file
//
// @Summary Reload dataset
// @Description Re-reads the dataset file and swaps the snapshot. The previous snapshot keeps serving on failure.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.ReloadResponse}
// @Failure 401 {object} models.APIResponse "Missing or invalid token"
// @Failure 429 {object} models.APIResponse "Reload throttled"
// @Failure 503 {object} models.APIResponse "Breaker open or admin disabled"
// @Router /admin/reload [post]
func (h *Handler) AdminReload(w http.ResponseWriter, r *http.Request) {
	log := logging.Ctx(r.Context())
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		log.Info().Str("subject", claims.Subject).Msg("Admin reload requested")
	}

	snap, err := h.dataset.Reload(r.Context(), dataset.ReasonAdmin)
	switch {
	case err == nil:
	case errors.Is(err, dataset.ErrReloadThrottled):
		respondError(w, http.StatusTooManyRequests, models.CodeRateLimited, "reload requested too soon", nil)
		return
	case errors.Is(err, dataset.ErrBreakerOpen):
		respondError(w, http.StatusServiceUnavailable, models.CodeServiceUnavailable, "reloads are paused after repeated failures", nil)
		return
	default:
		respondError(w, http.StatusInternalServerError, models.CodeInternal, "dataset reload failed", err)
		return
	}

	h.ClearCache()
	respondSuccess(w, http.StatusOK, models.ReloadResponse{
		Version: snap.Version(),
		Rows:    snap.Len(),
		Source:  snap.Source(),
	}, models.Metadata{DatasetVersion: snap.Version()})
}
