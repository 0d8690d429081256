// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/cache"
	"github.com/tomtom215/roadlens/internal/metrics"
	"github.com/tomtom215/roadlens/internal/models"
)

// ShapeFunc turns the filtered rows of a snapshot into a response payload.
// It must not modify rows.
type ShapeFunc func(snap *accidents.Snapshot, rows []accidents.Record) (any, error)

// cacheParams is what a cache key is derived from. The selection is the
// resolved one, so editing a preset changes the key.
type cacheParams struct {
	Selection accidents.Selection `json:"selection"`
	Params    any                 `json:"params,omitempty"`
}

// result is a computed payload plus the snapshot it came from.
type result struct {
	data    any
	version uint64
	cached  bool
	elapsed time.Duration
}

// compute runs the cache-first flow shared by the JSON and chart endpoints:
//
//  1. take the serving snapshot (503 before the first load)
//  2. resolve the selection, preset included
//  3. return the cached payload for (snapshot version, name, selection, params)
//  4. otherwise filter, shape, and cache the payload
func (h *Handler) compute(r *http.Request, name string, params any, shape ShapeFunc) (result, error) {
	start := time.Now()
	snap, err := h.dataset.Snapshot()
	if err != nil {
		return result{}, err
	}
	sel, err := h.selection(r.Context(), r.URL.Query())
	if err != nil {
		return result{}, err
	}

	key := cache.GenerateKey(snap.Version(), name, cacheParams{Selection: sel, Params: params})
	if cached, ok := h.cache.Get(key); ok {
		return result{data: cached, version: snap.Version(), cached: true}, nil
	}

	stopFilter := metrics.StageTimer(metrics.StageFilter, name)
	rows := snap.Select(sel)
	stopFilter()

	stopShape := metrics.StageTimer(metrics.StageShape, name)
	data, err := shape(snap, rows)
	stopShape()
	if err != nil {
		return result{}, err
	}

	h.cache.Set(key, data)
	return result{data: data, version: snap.Version(), elapsed: time.Since(start)}, nil
}

// execute is compute followed by a JSON envelope.
func (h *Handler) execute(w http.ResponseWriter, r *http.Request, name string, params any, shape ShapeFunc) {
	res, err := h.compute(r, name, params, shape)
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, res.data, models.Metadata{
		DatasetVersion: res.version,
		QueryTimeMS:    res.elapsed.Milliseconds(),
		Cached:         res.cached,
	})
}
