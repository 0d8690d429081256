// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

/*
Package analytics turns filtered accident records into chart-ready data.

Everything here is built on one primitive, GroupAggregate, which groups rows
by a tuple of key columns and reduces value columns with sum, first or
average. The shapers are thin layers over it:

  - Summarize: headline figures (distinct accidents, casualties, vehicles,
    and per-severity counts)
  - Proportion: pie slices with small shares merged into "Other"
  - Rolling: per-date totals with a trailing mean
  - BuildHeatmap: weekday by hour-interval counts
  - Comparison: two metrics per category for bar charts
  - Density: S2 cell counts for located records

All functions are pure. Empty input yields empty output, never an error.

# Example

	rows := snapshot.Select(sel)
	slices, err := analytics.Proportion(rows, accidents.ColWeather, accidents.ColUnits, analytics.DefaultThreshold)
	if err != nil {
	    return err
	}
*/
package analytics
