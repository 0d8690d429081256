// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/models"
)

func dateRange(snap *accidents.Snapshot) models.DateRange {
	first, last := snap.DateRange()
	return models.DateRange{Start: formatDay(first), End: formatDay(last)}
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(accidents.DateLayout)
}

// DatasetInfo describes the serving snapshot
//
// @Summary Current dataset snapshot
// @Description Version, source, row count, available columns, date bounds and load time
// @Tags Dataset
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DatasetInfo}
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /dataset [get]
func (h *Handler) DatasetInfo(w http.ResponseWriter, _ *http.Request) {
	snap, err := h.dataset.Snapshot()
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	info := models.DatasetInfo{
		Version:  snap.Version(),
		Source:   snap.Source(),
		Rows:     snap.Len(),
		Columns:  lo.Map(snap.Columns(), func(c accidents.Column, _ int) string { return string(c) }),
		Dates:    dateRange(snap),
		LoadedAt: snap.LoadedAt(),
	}
	respondSuccess(w, http.StatusOK, info, models.Metadata{DatasetVersion: snap.Version()})
}

// Filters lists the sidebar filter options
//
// @Summary Filter options
// @Description Sorted distinct values of every filter column with "All" first, plus the date bounds
// @Tags Dataset
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.FilterOptions}
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /filters [get]
func (h *Handler) Filters(w http.ResponseWriter, _ *http.Request) {
	snap, err := h.dataset.Snapshot()
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	opts := models.FilterOptions{
		Dates: dateRange(snap),
		Filters: lo.Map(accidents.FilterColumns, func(c accidents.Column, _ int) models.FilterOption {
			return models.FilterOption{Parameter: c.Alias(), Column: string(c), Values: snap.Options(c)}
		}),
	}
	respondSuccess(w, http.StatusOK, opts, models.Metadata{DatasetVersion: snap.Version()})
}
