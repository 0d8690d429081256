// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tomtom215/roadlens/internal/accidents"
)

const (
	// OtherLabel names the bucket that collects small slices.
	OtherLabel = "Other"

	// DefaultThreshold is the share, in percent, below which a slice is
	// merged into OtherLabel.
	DefaultThreshold = 2.0
)

// ErrInvalidThreshold is returned for a threshold outside [0, 100].
var ErrInvalidThreshold = errors.New("threshold must be between 0 and 100")

// Slice is one pie segment.
type Slice struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// Proportion sums metric per value of dim and merges every group whose share
// of the grand total is strictly below threshold percent into OtherLabel.
// Slices are sorted by value, largest first, with OtherLabel always last.
// A zero total disables merging.
func Proportion[R Row](rows []R, dim, metric accidents.Column, threshold float64) ([]Slice, error) {
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}

	groups, err := GroupAggregate(rows, []accidents.Column{dim}, Sum(metric))
	if err != nil {
		return nil, err
	}

	var total float64
	for _, g := range groups {
		total += g.Values[metric]
	}

	if total != 0 {
		for i := range groups {
			v := groups[i].Values[metric]
			if v*100 < threshold*total {
				groups[i].Keys = []string{OtherLabel}
			}
		}
		groups, err = GroupAggregate(groups, []accidents.Column{dim}, Sum(metric))
		if err != nil {
			return nil, err
		}
	}

	slices := make([]Slice, len(groups))
	for i, g := range groups {
		v := g.Values[metric]
		var pct float64
		if total != 0 {
			pct = v / total * 100
		}
		slices[i] = Slice{Label: g.Keys[0], Value: v, Percent: pct}
	}

	sort.SliceStable(slices, func(i, j int) bool {
		a, b := slices[i], slices[j]
		if (a.Label == OtherLabel) != (b.Label == OtherLabel) {
			return b.Label == OtherLabel
		}
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.Label < b.Label
	})
	return slices, nil
}
