// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/validation"
)

// Defaults for parameters that have no config entry.
var (
	defaultProportionDimension = accidents.ColWeather
	defaultProportionMetric    = accidents.ColCasualties
	defaultTrendMetrics        = []accidents.Column{accidents.ColUnits, accidents.ColCasualties}
	defaultComparisonDimension = accidents.ColRoadType
	defaultComparisonFirst     = accidents.ColCasualties
	defaultComparisonSecond    = accidents.ColVehicles
)

// filterParams are the sidebar filters accepted by every analytics and chart
// endpoint.
type filterParams struct {
	StartDate       string `query:"start_date" validate:"omitempty,date"`
	EndDate         string `query:"end_date" validate:"omitempty,date"`
	Severity        string `query:"severity" validate:"max=128"`
	LightConditions string `query:"light_conditions" validate:"max=128"`
	RoadSurface     string `query:"road_surface" validate:"max=128"`
	RoadType        string `query:"road_type" validate:"max=128"`
	Area            string `query:"area" validate:"max=128"`
	Weather         string `query:"weather" validate:"max=128"`
	Preset          string `query:"preset" validate:"omitempty,presetname"`
}

func readFilterParams(q url.Values) filterParams {
	return filterParams{
		StartDate:       strings.TrimSpace(q.Get("start_date")),
		EndDate:         strings.TrimSpace(q.Get("end_date")),
		Severity:        q.Get("severity"),
		LightConditions: q.Get("light_conditions"),
		RoadSurface:     q.Get("road_surface"),
		RoadType:        q.Get("road_type"),
		Area:            q.Get("area"),
		Weather:         q.Get("weather"),
		Preset:          strings.TrimSpace(q.Get("preset")),
	}
}

func (p filterParams) categorical() map[accidents.Column]string {
	return map[accidents.Column]string{
		accidents.ColSeverity:        p.Severity,
		accidents.ColLightConditions: p.LightConditions,
		accidents.ColRoadSurface:     p.RoadSurface,
		accidents.ColRoadType:        p.RoadType,
		accidents.ColArea:            p.Area,
		accidents.ColWeather:         p.Weather,
	}
}

// selection resolves the request's filters. A named preset is the base;
// explicit parameters override it field by field. Missing dates stay open,
// which is the same as the snapshot bounds.
func (h *Handler) selection(ctx context.Context, q url.Values) (accidents.Selection, error) {
	p := readFilterParams(q)
	if verr := validation.ValidateStruct(p); verr != nil {
		return accidents.Selection{}, verr
	}

	var sel accidents.Selection
	if p.Preset != "" {
		if h.presets == nil {
			return sel, validation.Field("preset", "available", p.Preset, "presets are not available")
		}
		preset, err := h.presets.Get(ctx, p.Preset)
		if err != nil {
			return sel, err
		}
		sel = preset.Selection
	}

	if p.StartDate != "" {
		sel.Start, _ = time.Parse(accidents.DateLayout, p.StartDate)
	}
	if p.EndDate != "" {
		sel.End, _ = time.Parse(accidents.DateLayout, p.EndDate)
	}
	if !sel.Start.IsZero() && !sel.End.IsZero() && sel.End.Before(sel.Start) {
		return sel, validation.Field("end_date", "gtefield", p.EndDate, "end_date must not be before start_date")
	}

	for col, v := range p.categorical() {
		if v != "" {
			sel = sel.With(col, v)
		}
	}
	return sel, nil
}

// columnParam resolves a column name or returns def when the parameter is
// absent. Bad names are left to the validator.
func columnParam(q url.Values, key string, def accidents.Column) string {
	if v := strings.TrimSpace(q.Get(key)); v != "" {
		return v
	}
	return string(def)
}

func mustColumn(name string) accidents.Column {
	col, _ := accidents.ParseColumn(name)
	return col
}

func columns(names []string) []accidents.Column {
	out := make([]accidents.Column, len(names))
	for i, n := range names {
		out[i] = mustColumn(n)
	}
	return out
}

// listParam splits a comma-separated parameter, dropping empty items.
func listParam(q url.Values, key string) []string {
	var out []string
	for _, part := range strings.Split(q.Get(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intParam(q url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.Field(key, "number", raw, key+" must be an integer")
	}
	return v, nil
}

func floatParam(q url.Values, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, validation.Field(key, "number", raw, key+" must be a number")
	}
	return v, nil
}

// validate runs the validator and returns a plain error so callers can use
// the usual err != nil check.
func validate(s any) error {
	if verr := validation.ValidateStruct(s); verr != nil {
		return verr
	}
	return nil
}

type proportionParams struct {
	Dimension string  `query:"dimension" validate:"required,column"`
	Metric    string  `query:"metric" validate:"required,numericcolumn"`
	Threshold float64 `query:"threshold" validate:"gte=0,lte=100"`
}

func (h *Handler) readProportionParams(q url.Values) (proportionParams, error) {
	threshold, err := floatParam(q, "threshold", h.analytics.OtherThreshold)
	if err != nil {
		return proportionParams{}, err
	}
	p := proportionParams{
		Dimension: columnParam(q, "dimension", defaultProportionDimension),
		Metric:    columnParam(q, "metric", defaultProportionMetric),
		Threshold: threshold,
	}
	return p, validate(p)
}

type trendParams struct {
	Metrics []string `query:"metrics" validate:"required,min=1,max=8,dive,numericcolumn"`
	Window  int      `query:"window" validate:"gte=1,lte=365"`
}

func (h *Handler) readTrendParams(q url.Values) (trendParams, error) {
	window, err := intParam(q, "window", h.analytics.DefaultWindow)
	if err != nil {
		return trendParams{}, err
	}
	p := trendParams{Metrics: listParam(q, "metrics"), Window: window}
	if len(p.Metrics) == 0 {
		for _, c := range defaultTrendMetrics {
			p.Metrics = append(p.Metrics, string(c))
		}
	}
	return p, validate(p)
}

type comparisonParams struct {
	Dimension string `query:"dimension" validate:"required,column"`
	First     string `query:"first" validate:"required,numericcolumn"`
	Second    string `query:"second" validate:"required,numericcolumn"`
}

func readComparisonParams(q url.Values) (comparisonParams, error) {
	p := comparisonParams{
		Dimension: columnParam(q, "dimension", defaultComparisonDimension),
		First:     columnParam(q, "first", defaultComparisonFirst),
		Second:    columnParam(q, "second", defaultComparisonSecond),
	}
	return p, validate(p)
}

type densityParams struct {
	Level int `query:"level" validate:"gte=0,lte=30"`
}

func (h *Handler) readDensityParams(q url.Values) (densityParams, error) {
	level, err := intParam(q, "level", h.analytics.DensityLevel)
	if err != nil {
		return densityParams{}, err
	}
	p := densityParams{Level: level}
	return p, validate(p)
}

// aggregateParams drive the raw engine endpoint. Reducer names are checked
// by the engine so unknown ones surface as UNKNOWN_REDUCER.
type aggregateParams struct {
	Keys     []string `query:"keys" validate:"max=6,dive,column"`
	Values   []string `query:"values" validate:"required,min=1,max=12,dive,numericcolumn"`
	Reducers []string `query:"reducers" validate:"max=12"`
}

func readAggregateParams(q url.Values) (aggregateParams, error) {
	p := aggregateParams{
		Keys:     listParam(q, "keys"),
		Values:   listParam(q, "values"),
		Reducers: listParam(q, "reducers"),
	}
	if err := validate(p); err != nil {
		return p, err
	}
	if n := len(p.Reducers); n > 1 && n != len(p.Values) {
		return p, validation.Field("reducers", "len", strings.Join(p.Reducers, ","),
			"reducers must be empty, a single name, or one per value column")
	}
	return p, nil
}

type chartParams struct {
	Width  int `query:"width" validate:"gte=0,lte=4096"`
	Height int `query:"height" validate:"gte=0,lte=4096"`
}

func readChartParams(q url.Values) (chartParams, error) {
	width, err := intParam(q, "width", 0)
	if err != nil {
		return chartParams{}, err
	}
	height, err := intParam(q, "height", 0)
	if err != nil {
		return chartParams{}, err
	}
	p := chartParams{Width: width, Height: height}
	return p, validate(p)
}
