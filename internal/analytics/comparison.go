// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package analytics

import (
	"sort"

	"github.com/tomtom215/roadlens/internal/accidents"
)

// Bar is one category of a two-metric bar chart.
type Bar struct {
	Label  string  `json:"label"`
	First  float64 `json:"first"`
	Second float64 `json:"second"`
}

// Comparison sums first and second per value of dim. Bars are sorted by the
// second metric ascending, ties broken by label.
func Comparison[R Row](rows []R, dim, first, second accidents.Column) ([]Bar, error) {
	recipe := Sum(first, second)
	if first == second {
		recipe = Sum(first)
	}
	groups, err := GroupAggregate(rows, []accidents.Column{dim}, recipe)
	if err != nil {
		return nil, err
	}

	bars := make([]Bar, len(groups))
	for i, g := range groups {
		bars[i] = Bar{Label: g.Keys[0], First: g.Values[first], Second: g.Values[second]}
	}
	sort.SliceStable(bars, func(i, j int) bool {
		if bars[i].Second != bars[j].Second {
			return bars[i].Second < bars[j].Second
		}
		return bars[i].Label < bars[j].Label
	})
	return bars, nil
}
