// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/golang/geo/s2"

	"github.com/tomtom215/roadlens/internal/accidents"
)

// DefaultCellLevel is the S2 level used for density maps. Level 10 cells are
// roughly 10 km across.
const DefaultCellLevel = 10

// ColCell is the grouping column holding a record's S2 cell token.
const ColCell accidents.Column = "S2_Cell"

// ErrInvalidLevel is returned for an S2 level outside [0, 30].
var ErrInvalidLevel = errors.New("cell level must be between 0 and 30")

// Cell is one populated S2 cell of a density map.
type Cell struct {
	Token      string  `json:"token"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Accidents  float64 `json:"accidents"`
	Casualties float64 `json:"casualties"`
}

type cellRow struct {
	accidents.Record
	token string
}

func (c cellRow) Key(col accidents.Column) (string, bool) {
	if col == ColCell {
		return c.token, true
	}
	return c.Record.Key(col)
}

// Density buckets located records into S2 cells at level and counts
// accidents and casualties per cell. Cells are sorted by accidents, most
// first, ties broken by token. Records without a valid location are skipped.
//
// The dataset must carry Latitude and Longitude; otherwise a
// *accidents.MissingColumnError is returned.
func Density(rows []accidents.Record, schema accidents.Schema, level int) ([]Cell, error) {
	if err := accidents.RequireColumns(schema, "density map", accidents.ColLatitude, accidents.ColLongitude); err != nil {
		return nil, err
	}
	if level < 0 || level > s2.MaxLevel {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}

	located := make([]cellRow, 0, len(rows))
	for _, r := range rows {
		if !r.Location.Valid {
			continue
		}
		id := s2.CellIDFromLatLng(s2.LatLngFromDegrees(r.Location.Lat, r.Location.Lng)).Parent(level)
		located = append(located, cellRow{Record: r, token: id.ToToken()})
	}

	groups, err := GroupAggregate(located, []accidents.Column{ColCell}, Sum(accidents.ColUnits, accidents.ColCasualties))
	if err != nil {
		return nil, err
	}

	cells := make([]Cell, len(groups))
	for i, g := range groups {
		center := s2.CellIDFromToken(g.Keys[0]).LatLng()
		cells[i] = Cell{
			Token:      g.Keys[0],
			Lat:        center.Lat.Degrees(),
			Lng:        center.Lng.Degrees(),
			Accidents:  g.Values[accidents.ColUnits],
			Casualties: g.Values[accidents.ColCasualties],
		}
	}
	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].Accidents != cells[j].Accidents {
			return cells[i].Accidents > cells[j].Accidents
		}
		return cells[i].Token < cells[j].Token
	})
	return cells, nil
}
