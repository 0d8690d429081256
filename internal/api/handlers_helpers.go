// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/analytics"
	"github.com/tomtom215/roadlens/internal/dataset"
	"github.com/tomtom215/roadlens/internal/logging"
	"github.com/tomtom215/roadlens/internal/models"
	"github.com/tomtom215/roadlens/internal/presets"
	"github.com/tomtom215/roadlens/internal/render"
	"github.com/tomtom215/roadlens/internal/validation"
)

// sanitizeLogValue escapes control characters so request input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

func respondSuccess(w http.ResponseWriter, status int, data any, meta models.Metadata) {
	meta.Timestamp = time.Now().UTC()
	respondJSON(w, status, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     data,
		Metadata: meta,
	})
}

// respondError sends an error response. err is only logged.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorDetails(w, status, code, message, nil, err)
}

func respondErrorDetails(w http.ResponseWriter, status int, code, message string, details map[string]any, err error) {
	if err != nil {
		ev := logging.Warn()
		if status >= http.StatusInternalServerError {
			ev = logging.Error()
		}
		ev.Str("code", code).Str("error", sanitizeLogValue(err.Error())).Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func respondValidation(w http.ResponseWriter, verr *validation.RequestValidationError) {
	respondErrorDetails(w, http.StatusBadRequest, models.CodeValidation, verr.Error(), verr.Details(), nil)
}

// denyJSON adapts respondError to auth.Unauthorized.
func denyJSON(w http.ResponseWriter, _ *http.Request, status int, message string) {
	code := models.CodeUnauthorized
	switch status {
	case http.StatusForbidden:
		code = models.CodeForbidden
	case http.StatusServiceUnavailable:
		code = models.CodeServiceUnavailable
	}
	respondError(w, status, code, message, nil)
}

// respondPipelineError maps errors from the dataset, engine and shapers onto
// HTTP statuses.
func respondPipelineError(w http.ResponseWriter, err error) {
	var missing *accidents.MissingColumnError
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		respondValidation(w, verr)
	case errors.As(err, &missing):
		respondErrorDetails(w, http.StatusUnprocessableEntity, models.CodeMissingColumn, missing.Error(),
			map[string]any{"feature": missing.Feature, "columns": missing.Columns}, nil)
	case errors.Is(err, analytics.ErrUnknownReducer):
		respondError(w, http.StatusBadRequest, models.CodeUnknownReducer, err.Error(), nil)
	case errors.Is(err, analytics.ErrInvalidThreshold),
		errors.Is(err, analytics.ErrInvalidWindow),
		errors.Is(err, analytics.ErrInvalidLevel):
		respondError(w, http.StatusBadRequest, models.CodeValidation, err.Error(), nil)
	case errors.Is(err, dataset.ErrNotLoaded):
		respondError(w, http.StatusServiceUnavailable, models.CodeServiceUnavailable, "dataset is not loaded yet", nil)
	case errors.Is(err, presets.ErrNotFound):
		respondError(w, http.StatusNotFound, models.CodeNotFound, err.Error(), nil)
	case errors.Is(err, presets.ErrInvalidName):
		respondError(w, http.StatusBadRequest, models.CodeValidation, err.Error(), nil)
	case errors.Is(err, presets.ErrClosed):
		respondError(w, http.StatusServiceUnavailable, models.CodeServiceUnavailable, "preset store is closed", nil)
	case errors.Is(err, render.ErrNoData):
		respondError(w, http.StatusNotFound, models.CodeNoData, "no data matches the current filters", nil)
	default:
		respondError(w, http.StatusInternalServerError, models.CodeInternal, "internal error", err)
	}
}
