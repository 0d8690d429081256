// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/tomtom215/roadlens/internal/accidents"
)

// DefaultWindow is the rolling window used when a request does not set one.
const DefaultWindow = 7

// ErrInvalidWindow is returned for a window below 1.
var ErrInvalidWindow = errors.New("window must be at least 1")

// TrendPoint is one date of a series. Average is nil until the window fills.
type TrendPoint struct {
	Date    string   `json:"date"`
	Total   float64  `json:"total"`
	Average *float64 `json:"average"`
}

// Series is the trend of one metric.
type Series struct {
	Metric accidents.Column `json:"metric"`
	Points []TrendPoint     `json:"points"`
}

// Trend holds one rolling series per requested metric.
type Trend struct {
	Window int      `json:"window"`
	Series []Series `json:"series"`
}

// Rolling sums each metric per accident date, sorts dates ascending and
// computes a trailing mean over window consecutive dates. Dates with no
// accidents are absent from the series, not zero-filled, and rows without a
// date are left out.
func Rolling[R Row](rows []R, metrics []accidents.Column, window int) (Trend, error) {
	if window < 1 {
		return Trend{}, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	trend := Trend{Window: window, Series: make([]Series, 0, len(metrics))}

	byDate, err := GroupAggregate(rows, []accidents.Column{accidents.ColDate}, Sum(metrics...))
	if err != nil {
		return Trend{}, err
	}
	// Undated rows group under "" and have no place on a time axis.
	byDate = lo.Filter(byDate, func(g AggregatedRow, _ int) bool { return g.Keys[0] != "" })
	// DateLayout sorts lexically in date order.
	sort.SliceStable(byDate, func(i, j int) bool { return byDate[i].Keys[0] < byDate[j].Keys[0] })

	for _, m := range metrics {
		s := Series{Metric: m, Points: make([]TrendPoint, len(byDate))}
		var sum float64
		for i, g := range byDate {
			v := g.Values[m]
			sum += v
			if i >= window {
				sum -= byDate[i-window].Values[m]
			}
			s.Points[i] = TrendPoint{Date: g.Keys[0], Total: v}
			if i >= window-1 {
				avg := sum / float64(window)
				s.Points[i].Average = &avg
			}
		}
		trend.Series = append(trend.Series, s)
	}
	return trend, nil
}
