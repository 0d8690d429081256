// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/analytics"
	"github.com/tomtom215/roadlens/internal/database"
)

// reportFlags mirror the dashboard sidebar.
type reportFlags struct {
	start, end string
	filters    map[accidents.Column]*string
	threshold  float64
}

func newReportCommand(configPath *string) *cobra.Command {
	flags := reportFlags{filters: make(map[accidents.Column]*string, len(accidents.FilterColumns))}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the summary, weather proportions and heatmap for a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("threshold") {
				flags.threshold = cfg.Analytics.OtherThreshold
			}
			sel, err := flags.selection()
			if err != nil {
				return err
			}

			db, err := database.New(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ds, err := db.LoadAccidents(ctx, cfg.Dataset.Path)
			if err != nil {
				return err
			}
			snap := accidents.NewSnapshot(ds.Records, ds.Columns, accidents.SnapshotInfo{Version: 1, Source: ds.Path})
			return writeReport(cmd.OutOrStdout(), snap, sel, flags.threshold)
		},
	}

	cmd.Flags().StringVar(&flags.start, "start", "", "first accident date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.end, "end", "", "last accident date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&flags.threshold, "threshold", 0, "percent below which weather categories merge into Other")
	for _, col := range accidents.FilterColumns {
		v := new(string)
		flags.filters[col] = v
		name := strings.ReplaceAll(col.Alias(), "_", "-")
		cmd.Flags().StringVar(v, name, accidents.All, fmt.Sprintf("%s filter", col))
	}
	return cmd
}

func (f reportFlags) selection() (accidents.Selection, error) {
	var sel accidents.Selection
	for _, b := range []struct {
		raw string
		dst *time.Time
	}{{f.start, &sel.Start}, {f.end, &sel.End}} {
		if b.raw == "" {
			continue
		}
		t, err := time.Parse(accidents.DateLayout, b.raw)
		if err != nil {
			return sel, fmt.Errorf("invalid date %q: want YYYY-MM-DD", b.raw)
		}
		*b.dst = t
	}
	if !sel.Start.IsZero() && !sel.End.IsZero() && sel.End.Before(sel.Start) {
		return sel, fmt.Errorf("--end %s is before --start %s", f.end, f.start)
	}
	for col, v := range f.filters {
		sel = sel.With(col, *v)
	}
	return sel, nil
}

// writeReport renders the plain-text dashboard.
func writeReport(out io.Writer, snap *accidents.Snapshot, sel accidents.Selection, threshold float64) error {
	rows := snap.Select(sel)
	summary, err := analytics.Summarize(rows)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Dataset\t%s (%d rows, %d selected)\n\n", snap.Source(), snap.Len(), len(rows))
	for _, m := range summary.Metrics() {
		fmt.Fprintf(tw, "%s\t%d\n", m.Label, m.Value)
	}

	if len(rows) == 0 {
		fmt.Fprintln(tw, "\nNo accidents match the selection.")
		return tw.Flush()
	}

	if err := snap.Require("proportion", accidents.ColWeather, accidents.ColCasualties); err == nil {
		slices, err := analytics.Proportion(rows, accidents.ColWeather, accidents.ColCasualties, threshold)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "\nCasualties by weather\t\t")
		for _, s := range slices {
			fmt.Fprintf(tw, "%s\t%.0f\t%.1f%%\n", s.Label, s.Value, s.Percent)
		}
	}

	heat, err := analytics.BuildHeatmap(rows)
	if err != nil {
		return err
	}
	if len(heat.Days) > 0 {
		fmt.Fprintf(tw, "\nAccidents by hour\t%s\n", strings.Join(lo.Map(heat.Intervals, func(iv string, _ int) string {
			return iv[:2]
		}), "\t"))
		for i, day := range heat.Days {
			cells := lo.Map(heat.Cells[i], func(v float64, _ int) string { return fmt.Sprintf("%.0f", v) })
			fmt.Fprintf(tw, "%s\t%s\n", day, strings.Join(cells, "\t"))
		}
	}
	return tw.Flush()
}
