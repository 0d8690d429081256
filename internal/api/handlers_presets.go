// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/roadlens/internal/logging"
	"github.com/tomtom215/roadlens/internal/models"
	"github.com/tomtom215/roadlens/internal/presets"
	"github.com/tomtom215/roadlens/internal/validation"
)

// maxPresetBody bounds PUT /presets/{name} bodies.
const maxPresetBody = 64 << 10

func (h *Handler) presetsAvailable(w http.ResponseWriter) bool {
	if h.presets == nil {
		respondError(w, http.StatusServiceUnavailable, models.CodeServiceUnavailable, "presets are not available", nil)
		return false
	}
	return true
}

func presetName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := chi.URLParam(r, "name")
	if !presets.ValidName(name) {
		respondValidation(w, validation.Field("name", "presetname", name, "name must be 1-64 letters, digits, '-' or '_'"))
		return "", false
	}
	return name, true
}

// ListPresets returns every saved preset
//
// @Summary List presets
// @Tags Presets
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]presets.Preset}
// @Failure 503 {object} models.APIResponse "Preset store unavailable"
// @Router /presets [get]
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	if !h.presetsAvailable(w) {
		return
	}
	list, err := h.presets.List(r.Context())
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, list, models.Metadata{})
}

// GetPreset returns one preset
//
// @Summary Get preset
// @Tags Presets
// @Produce json
// @Param name path string true "Preset name"
// @Success 200 {object} models.APIResponse{data=presets.Preset}
// @Failure 404 {object} models.APIResponse "Unknown preset"
// @Router /presets/{name} [get]
func (h *Handler) GetPreset(w http.ResponseWriter, r *http.Request) {
	if !h.presetsAvailable(w) {
		return
	}
	name, ok := presetName(w, r)
	if !ok {
		return
	}
	p, err := h.presets.Get(r.Context(), name)
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, p, models.Metadata{})
}

// PutPreset creates or replaces a preset
//
// @Summary Save preset
// @Description Stores a filter selection under name; created_at survives replacement
// @Tags Presets
// @Accept json
// @Produce json
// @Param name path string true "Preset name"
// @Param preset body models.PresetRequest true "Selection to save"
// @Success 200 {object} models.APIResponse{data=presets.Preset}
// @Failure 400 {object} models.APIResponse "Invalid name or body"
// @Router /presets/{name} [put]
func (h *Handler) PutPreset(w http.ResponseWriter, r *http.Request) {
	if !h.presetsAvailable(w) {
		return
	}
	name, ok := presetName(w, r)
	if !ok {
		return
	}

	var req models.PresetRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPresetBody)).Decode(&req); err != nil {
		respondValidation(w, validation.Field("body", "json", nil, "request body must be a JSON preset"))
		return
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		respondValidation(w, verr)
		return
	}
	sel := req.Selection
	if !sel.Start.IsZero() && !sel.End.IsZero() && sel.End.Before(sel.Start) {
		respondValidation(w, validation.Field("selection.end", "gtefield", sel.End, "selection end must not be before start"))
		return
	}

	saved, err := h.presets.Put(r.Context(), presets.Preset{
		Name:        name,
		Description: req.Description,
		Selection:   sel,
	})
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("preset", name).Msg("Preset saved")
	respondSuccess(w, http.StatusOK, saved, models.Metadata{})
}

// DeletePreset removes a preset
//
// @Summary Delete preset
// @Tags Presets
// @Produce json
// @Param name path string true "Preset name"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse "Unknown preset"
// @Router /presets/{name} [delete]
func (h *Handler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	if !h.presetsAvailable(w) {
		return
	}
	name, ok := presetName(w, r)
	if !ok {
		return
	}
	if err := h.presets.Delete(r.Context(), name); err != nil {
		respondPipelineError(w, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("preset", name).Msg("Preset deleted")
	respondSuccess(w, http.StatusOK, map[string]string{"deleted": name}, models.Metadata{})
}
