// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"net/http"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/analytics"
	"github.com/tomtom215/roadlens/internal/metrics"
	"github.com/tomtom215/roadlens/internal/models"
)

// AnalyticsSummary returns the headline figures
//
// @Summary Summary metrics
// @Description Distinct accidents, casualty and vehicle sums, and distinct accidents per severity class for the filtered rows
// @Tags Analytics
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param severity query string false "Accident severity or All"
// @Param light_conditions query string false "Light conditions or All"
// @Param road_surface query string false "Road surface or All"
// @Param road_type query string false "Road type or All"
// @Param area query string false "Urban or rural area or All"
// @Param weather query string false "Weather conditions or All"
// @Param preset query string false "Saved preset to start from"
// @Success 200 {object} models.APIResponse{data=models.SummaryResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /analytics/summary [get]
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, "summary", nil, func(_ *accidents.Snapshot, rows []accidents.Record) (any, error) {
		s, err := analytics.Summarize(rows)
		if err != nil {
			return nil, err
		}
		return models.SummaryResponse{Summary: s, Cards: s.Metrics()}, nil
	})
}

// AnalyticsProportion returns pie slices
//
// @Summary Proportion of a metric by dimension
// @Description Sums metric per value of dimension; values whose share is strictly below threshold percent are merged into "Other"
// @Tags Analytics
// @Produce json
// @Param dimension query string false "Grouping column" default(weather)
// @Param metric query string false "Numeric column to sum" default(casualties)
// @Param threshold query number false "Other threshold in percent (0-100)"
// @Success 200 {object} models.APIResponse{data=models.ProportionResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /analytics/proportion [get]
func (h *Handler) AnalyticsProportion(w http.ResponseWriter, r *http.Request) {
	p, err := h.readProportionParams(r.URL.Query())
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	h.execute(w, r, "proportion", p, proportionShape(p))
}

func proportionShape(p proportionParams) ShapeFunc {
	return func(_ *accidents.Snapshot, rows []accidents.Record) (any, error) {
		dim, metric := mustColumn(p.Dimension), mustColumn(p.Metric)
		slices, err := analytics.Proportion(rows, dim, metric, p.Threshold)
		if err != nil {
			return nil, err
		}
		return models.ProportionResponse{
			Dimension: dim.Alias(),
			Metric:    metric.Alias(),
			Threshold: p.Threshold,
			Slices:    slices,
		}, nil
	}
}

// AnalyticsTrend returns rolling averages per day
//
// @Summary Rolling trend
// @Description Per-date sums of each metric with a trailing mean over window points; the first window-1 averages are null
// @Tags Analytics
// @Produce json
// @Param metrics query string false "Comma-separated numeric columns" default(units,casualties)
// @Param window query int false "Rolling window in points"
// @Success 200 {object} models.APIResponse{data=analytics.Trend}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /analytics/trend [get]
func (h *Handler) AnalyticsTrend(w http.ResponseWriter, r *http.Request) {
	p, err := h.readTrendParams(r.URL.Query())
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	h.execute(w, r, "trend", p, trendShape(p))
}

func trendShape(p trendParams) ShapeFunc {
	return func(_ *accidents.Snapshot, rows []accidents.Record) (any, error) {
		return analytics.Rolling(rows, columns(p.Metrics), p.Window)
	}
}

// AnalyticsHeatmap returns the weekday by hour grid
//
// @Summary Day and hour heatmap
// @Description Accident units per weekday (Monday to Sunday) and hour interval; rows with an unparsable time are left out
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.APIResponse{data=analytics.Heatmap}
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /analytics/heatmap [get]
func (h *Handler) AnalyticsHeatmap(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, "heatmap", nil, func(_ *accidents.Snapshot, rows []accidents.Record) (any, error) {
		return analytics.BuildHeatmap(rows)
	})
}

// AnalyticsComparison returns bar rows of two metrics
//
// @Summary Two-metric comparison
// @Description Sums first and second per value of dimension, sorted ascending by second
// @Tags Analytics
// @Produce json
// @Param dimension query string false "Grouping column" default(road_type)
// @Param first query string false "First numeric column" default(casualties)
// @Param second query string false "Second numeric column" default(vehicles)
// @Success 200 {object} models.APIResponse{data=models.ComparisonResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /analytics/comparison [get]
func (h *Handler) AnalyticsComparison(w http.ResponseWriter, r *http.Request) {
	p, err := readComparisonParams(r.URL.Query())
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	h.execute(w, r, "comparison", p, comparisonShape(p))
}

func comparisonShape(p comparisonParams) ShapeFunc {
	return func(_ *accidents.Snapshot, rows []accidents.Record) (any, error) {
		dim, first, second := mustColumn(p.Dimension), mustColumn(p.First), mustColumn(p.Second)
		bars, err := analytics.Comparison(rows, dim, first, second)
		if err != nil {
			return nil, err
		}
		return models.ComparisonResponse{
			Dimension: dim.Alias(),
			First:     first.Alias(),
			Second:    second.Alias(),
			Bars:      bars,
		}, nil
	}
}

// AnalyticsDensity returns S2 cell counts
//
// @Summary Accident density map
// @Description Accidents and casualties per S2 cell; needs Latitude and Longitude in the dataset
// @Tags Analytics
// @Produce json
// @Param level query int false "S2 cell level (0-30)"
// @Success 200 {object} models.APIResponse{data=models.DensityResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 422 {object} models.APIResponse "Dataset lacks location columns"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /analytics/density [get]
func (h *Handler) AnalyticsDensity(w http.ResponseWriter, r *http.Request) {
	p, err := h.readDensityParams(r.URL.Query())
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	h.execute(w, r, "density", p, func(snap *accidents.Snapshot, rows []accidents.Record) (any, error) {
		cells, err := analytics.Density(rows, snap, p.Level)
		if err != nil {
			return nil, err
		}
		return models.DensityResponse{Level: p.Level, Cells: cells}, nil
	})
}

// AnalyticsAggregate exposes the group-aggregate engine
//
// @Summary Group and aggregate
// @Description Groups filtered rows by keys and reduces each value column with sum, first or average
// @Tags Analytics
// @Produce json
// @Param keys query string false "Comma-separated grouping columns"
// @Param values query string true "Comma-separated numeric columns"
// @Param reducers query string false "One reducer for all values, or one per value" default(sum)
// @Success 200 {object} models.APIResponse{data=models.AggregateResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters or UNKNOWN_REDUCER"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /analytics/aggregate [get]
func (h *Handler) AnalyticsAggregate(w http.ResponseWriter, r *http.Request) {
	p, err := readAggregateParams(r.URL.Query())
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	recipe, err := buildRecipe(p)
	if err != nil {
		respondPipelineError(w, err)
		return
	}
	keys := columns(p.Keys)

	h.execute(w, r, "aggregate", p, func(_ *accidents.Snapshot, rows []accidents.Record) (any, error) {
		stop := metrics.StageTimer(metrics.StageAggregate, "aggregate")
		groups, err := analytics.GroupAggregate(rows, keys, recipe)
		stop()
		if err != nil {
			return nil, err
		}

		resp := models.AggregateResponse{
			Keys: make([]string, len(keys)),
			Rows: make([]models.AggregateRow, 0, len(groups)),
		}
		for i, k := range keys {
			resp.Keys[i] = k.Alias()
		}
		for _, g := range groups {
			row := models.AggregateRow{
				Keys:   make(map[string]string, len(g.KeyColumns)),
				Values: make(map[string]float64, len(g.Values)),
				Count:  g.Count,
			}
			for i, c := range g.KeyColumns {
				row.Keys[c.Alias()] = g.Keys[i]
			}
			for c, v := range g.Values {
				row.Values[c.Alias()] = v
			}
			resp.Rows = append(resp.Rows, row)
		}
		return resp, nil
	})
}

// buildRecipe pairs value columns with reducers: none means sum, one applies
// to every column.
func buildRecipe(p aggregateParams) (analytics.Recipe, error) {
	recipe := make(analytics.Recipe, len(p.Values))
	for i, name := range p.Values {
		reducer := analytics.ReducerSum
		switch len(p.Reducers) {
		case 0:
		case 1:
			r, err := analytics.ParseReducer(p.Reducers[0])
			if err != nil {
				return nil, err
			}
			reducer = r
		default:
			r, err := analytics.ParseReducer(p.Reducers[i])
			if err != nil {
				return nil, err
			}
			reducer = r
		}
		recipe[i] = analytics.Aggregation{Column: mustColumn(name), Reducer: reducer}
	}
	return recipe, nil
}
