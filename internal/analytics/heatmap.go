// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package analytics

import (
	"github.com/samber/lo"

	"github.com/tomtom215/roadlens/internal/accidents"
)

// Intervals lists the 24 hour labels in hour order, without MissingInterval.
var Intervals = lo.Times(24, accidents.IntervalLabel)

// Heatmap is a day by hour-interval grid of accident counts. Cells[d][h]
// belongs to Days[d] and Intervals[h].
type Heatmap struct {
	Days      []string    `json:"days"`
	Intervals []string    `json:"intervals"`
	Cells     [][]float64 `json:"cells"`
}

// Max returns the largest cell value, 0 for an empty grid.
func (h Heatmap) Max() float64 {
	var m float64
	for _, row := range h.Cells {
		for _, v := range row {
			m = max(m, v)
		}
	}
	return m
}

// BuildHeatmap counts accidents per weekday and interval. Rows are always
// Monday to Sunday and columns always the 24 intervals, zero-filled. Records
// with an unparsable time are left out. Empty input yields an empty Heatmap.
func BuildHeatmap[R Row](rows []R) (Heatmap, error) {
	if len(rows) == 0 {
		return Heatmap{}, nil
	}

	groups, err := GroupAggregate(rows, []accidents.Column{accidents.ColWeekday, accidents.ColInterval}, Sum(accidents.ColUnits))
	if err != nil {
		return Heatmap{}, err
	}

	dayIdx := make(map[string]int, len(accidents.Weekdays))
	for i, d := range accidents.Weekdays {
		dayIdx[d] = i
	}
	hourIdx := make(map[string]int, len(Intervals))
	for i, iv := range Intervals {
		hourIdx[iv] = i
	}

	cells := make([][]float64, len(accidents.Weekdays))
	for i := range cells {
		cells[i] = make([]float64, len(Intervals))
	}
	for _, g := range groups {
		d, okDay := dayIdx[g.Keys[0]]
		h, okHour := hourIdx[g.Keys[1]]
		if !okDay || !okHour {
			continue
		}
		cells[d][h] += g.Values[accidents.ColUnits]
	}

	return Heatmap{
		Days:      append([]string(nil), accidents.Weekdays...),
		Intervals: append([]string(nil), Intervals...),
		Cells:     cells,
	}, nil
}
