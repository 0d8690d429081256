// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package analytics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/roadlens/internal/accidents"
)

// ErrUnknownReducer is returned for a reducer name the engine does not know.
var ErrUnknownReducer = errors.New("unknown reducer")

// Row is anything the engine can group. accidents.Record and AggregatedRow
// both satisfy it, so aggregated output can be fed back in.
type Row interface {
	Key(col accidents.Column) (string, bool)
	Value(col accidents.Column) (float64, bool)
}

// Reducer combines the values of one column within a group.
type Reducer string

const (
	ReducerSum     Reducer = "sum"
	ReducerFirst   Reducer = "first"
	ReducerAverage Reducer = "average"
)

// ParseReducer maps a user-supplied name to a Reducer. "mean" and "avg" are
// accepted for average.
func ParseReducer(name string) (Reducer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sum":
		return ReducerSum, nil
	case "first":
		return ReducerFirst, nil
	case "average", "avg", "mean":
		return ReducerAverage, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReducer, name)
	}
}

// Valid reports whether r is one of the known reducers.
func (r Reducer) Valid() bool {
	switch r {
	case ReducerSum, ReducerFirst, ReducerAverage:
		return true
	default:
		return false
	}
}

// Aggregation pairs a value column with the reducer applied to it.
type Aggregation struct {
	Column  accidents.Column
	Reducer Reducer
}

// Recipe is an ordered list of aggregations.
type Recipe []Aggregation

// Sum builds a recipe summing every column in cols.
func Sum(cols ...accidents.Column) Recipe {
	r := make(Recipe, len(cols))
	for i, c := range cols {
		r[i] = Aggregation{Column: c, Reducer: ReducerSum}
	}
	return r
}

// Validate checks every reducer in the recipe.
func (r Recipe) Validate() error {
	for _, a := range r {
		if !a.Reducer.Valid() {
			return fmt.Errorf("%w: %q for column %s", ErrUnknownReducer, a.Reducer, a.Column)
		}
	}
	return nil
}

// Columns lists the value columns of the recipe in order.
func (r Recipe) Columns() []accidents.Column {
	out := make([]accidents.Column, len(r))
	for i, a := range r {
		out[i] = a.Column
	}
	return out
}

// AggregatedRow is one output group: its key values in key order plus the
// reduced value of each recipe column.
type AggregatedRow struct {
	KeyColumns []accidents.Column           `json:"key_columns"`
	Keys       []string                     `json:"keys"`
	Values     map[accidents.Column]float64 `json:"values"`
	Count      int                          `json:"count"`
}

// Key returns the group's value for a key column.
func (a AggregatedRow) Key(col accidents.Column) (string, bool) {
	for i, c := range a.KeyColumns {
		if c == col {
			return a.Keys[i], true
		}
	}
	return "", false
}

// Value returns the reduced value of a recipe column.
func (a AggregatedRow) Value(col accidents.Column) (float64, bool) {
	v, ok := a.Values[col]
	return v, ok
}

// keySep separates key values inside a group key. It cannot occur in CSV
// text written by the accident exporter.
const keySep = "\x1f"

type accumulator struct {
	sum   float64
	n     int
	first float64
	seen  bool
}

func (acc *accumulator) add(v float64) {
	if !acc.seen {
		acc.first = v
		acc.seen = true
	}
	acc.sum += v
	acc.n++
}

func (acc *accumulator) result(r Reducer) float64 {
	switch r {
	case ReducerFirst:
		return acc.first
	case ReducerAverage:
		if acc.n == 0 {
			return 0
		}
		return acc.sum / float64(acc.n)
	default:
		return acc.sum
	}
}

type group struct {
	keys  []string
	accs  []accumulator
	count int
}

// GroupAggregate groups rows by the exact tuple of their keys values and
// applies each recipe reducer per group. Groups come out in order of first
// appearance. A row missing a key column joins the group whose value for
// that key is "". A row missing a value column contributes nothing to it.
//
// The recipe is validated before any row is read.
func GroupAggregate[R Row](rows []R, keys []accidents.Column, recipe Recipe) ([]AggregatedRow, error) {
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []*group
	parts := make([]string, len(keys))

	for _, row := range rows {
		for i, k := range keys {
			v, _ := row.Key(k)
			parts[i] = v
		}
		id := strings.Join(parts, keySep)

		gi, ok := index[id]
		if !ok {
			gi = len(groups)
			index[id] = gi
			groups = append(groups, &group{
				keys: append([]string(nil), parts...),
				accs: make([]accumulator, len(recipe)),
			})
		}
		g := groups[gi]
		g.count++
		for i, a := range recipe {
			if v, ok := row.Value(a.Column); ok {
				g.accs[i].add(v)
			}
		}
	}

	out := make([]AggregatedRow, len(groups))
	for i, g := range groups {
		values := make(map[accidents.Column]float64, len(recipe))
		for j, a := range recipe {
			// A column listed twice keeps its first aggregation.
			if _, dup := values[a.Column]; dup {
				continue
			}
			values[a.Column] = g.accs[j].result(a.Reducer)
		}
		out[i] = AggregatedRow{
			KeyColumns: append([]accidents.Column(nil), keys...),
			Keys:       g.keys,
			Values:     values,
			Count:      g.count,
		}
	}
	return out, nil
}

// Total sums col over rows, skipping rows that lack it.
func Total[R Row](rows []R, col accidents.Column) float64 {
	var total float64
	for _, row := range rows {
		if v, ok := row.Value(col); ok {
			total += v
		}
	}
	return total
}
