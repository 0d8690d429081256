// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tomtom215/roadlens/internal/analytics"
	"github.com/tomtom215/roadlens/internal/logging"
	"github.com/tomtom215/roadlens/internal/metrics"
	"github.com/tomtom215/roadlens/internal/models"
	"github.com/tomtom215/roadlens/internal/render"
)

// drawFunc renders a payload computed by one of the JSON shapers.
type drawFunc func(buf *bytes.Buffer, data any, opts render.Options) error

// chart shares the JSON endpoint's cache entry and only adds the drawing.
func (h *Handler) chart(w http.ResponseWriter, r *http.Request, name string, params any, shape ShapeFunc, draw drawFunc) {
	cp, err := readChartParams(r.URL.Query())
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	res, err := h.compute(r, name, params, shape)
	if err != nil {
		respondPipelineError(w, err)
		return
	}

	var buf bytes.Buffer
	stop := metrics.StageTimer(metrics.StageRender, name)
	err = draw(&buf, res.data, render.Options{Width: cp.Width, Height: cp.Height, Title: r.URL.Query().Get("title")})
	stop()
	if err != nil {
		respondPipelineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("X-Dataset-Version", strconv.FormatUint(res.version, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write chart")
	}
}

func payloadError(data any) error {
	return fmt.Errorf("unexpected chart payload %T", data)
}

// ChartProportion renders the proportion pie
//
// @Summary Proportion pie chart
// @Description PNG rendering of /analytics/proportion; accepts the same parameters plus width, height and title
// @Tags Charts
// @Produce png
// @Param width query int false "Image width in pixels"
// @Param height query int false "Image height in pixels"
// @Success 200 {file} binary
// @Failure 404 {object} models.APIResponse "No data for the filters"
// @Router /charts/proportion.png [get]
func (h *Handler) ChartProportion(w http.ResponseWriter, r *http.Request) {
	p, err := h.readProportionParams(r.URL.Query())
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	h.chart(w, r, "proportion", p, proportionShape(p), func(buf *bytes.Buffer, data any, opts render.Options) error {
		resp, ok := data.(models.ProportionResponse)
		if !ok {
			return payloadError(data)
		}
		return render.Proportion(buf, resp.Slices, opts)
	})
}

// ChartTrend renders the rolling trend lines
//
// @Summary Rolling trend chart
// @Description PNG rendering of /analytics/trend; accepts the same parameters plus width, height and title
// @Tags Charts
// @Produce png
// @Param width query int false "Image width in pixels"
// @Param height query int false "Image height in pixels"
// @Success 200 {file} binary
// @Failure 404 {object} models.APIResponse "No data for the filters"
// @Router /charts/trend.png [get]
func (h *Handler) ChartTrend(w http.ResponseWriter, r *http.Request) {
	p, err := h.readTrendParams(r.URL.Query())
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	h.chart(w, r, "trend", p, trendShape(p), func(buf *bytes.Buffer, data any, opts render.Options) error {
		trend, ok := data.(analytics.Trend)
		if !ok {
			return payloadError(data)
		}
		return render.Trend(buf, trend, opts)
	})
}

// ChartComparison renders the comparison bars
//
// @Summary Comparison bar chart
// @Description PNG rendering of /analytics/comparison; accepts the same parameters plus width, height and title
// @Tags Charts
// @Produce png
// @Param width query int false "Image width in pixels"
// @Param height query int false "Image height in pixels"
// @Success 200 {file} binary
// @Failure 404 {object} models.APIResponse "No data for the filters"
// @Router /charts/comparison.png [get]
func (h *Handler) ChartComparison(w http.ResponseWriter, r *http.Request) {
	p, err := readComparisonParams(r.URL.Query())
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	h.chart(w, r, "comparison", p, comparisonShape(p), func(buf *bytes.Buffer, data any, opts render.Options) error {
		resp, ok := data.(models.ComparisonResponse)
		if !ok {
			return payloadError(data)
		}
		return render.Comparison(buf, resp.Bars, mustColumn(p.First), mustColumn(p.Second), opts)
	})
}
