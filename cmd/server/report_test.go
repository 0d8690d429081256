// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/roadlens/internal/accidents"
)

func reportSnapshot() *accidents.Snapshot {
	day := func(d int) time.Time { return time.Date(2021, time.March, d, 0, 0, 0, 0, time.UTC) }
	return accidents.NewSnapshot([]accidents.Record{
		{AccidentIndex: "R1", Date: day(1), Time: "07:45", Severity: "Slight", Casualties: 1, Vehicles: 2, Weather: "Fine no high winds"},
		{AccidentIndex: "R2", Date: day(2), Time: "18:05", Severity: "Serious", Casualties: 3, Vehicles: 1, Weather: "Raining no high winds"},
	}, accidents.SourceColumns, accidents.SnapshotInfo{Version: 1, Source: "accidents.csv"})
}

func TestReportSelection(t *testing.T) {
	tests := []struct {
		name    string
		flags   reportFlags
		wantErr bool
		check   func(accidents.Selection) bool
	}{
		{
			name:  "dates",
			flags: reportFlags{start: "2021-03-01", end: "2021-03-31"},
			check: func(s accidents.Selection) bool { return s.Start.Day() == 1 && s.End.Day() == 31 },
		},
		{
			name:    "bad date",
			flags:   reportFlags{start: "01/03/2021"},
			wantErr: true,
		},
		{
			name:    "reversed",
			flags:   reportFlags{start: "2021-03-31", end: "2021-03-01"},
			wantErr: true,
		},
		{
			name: "filters",
			flags: reportFlags{filters: map[accidents.Column]*string{
				accidents.ColSeverity: ptr("Fatal"),
				accidents.ColWeather:  ptr(accidents.All),
			}},
			check: func(s accidents.Selection) bool { return s.Severity == "Fatal" && !accidents.IsBound(s.Weather) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := tt.flags.selection()
			if (err != nil) != tt.wantErr {
				t.Fatalf("selection() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(sel) {
				t.Errorf("selection() = %+v", sel)
			}
		})
	}
}

func ptr(s string) *string { return &s }

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, reportSnapshot(), accidents.Selection{}, 2); err != nil {
		t.Fatalf("writeReport() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Total Number of Accidents",
		"Casualties by weather",
		"Raining no high winds",
		"75.0%",
		"Monday",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReportEmptySelection(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, reportSnapshot(), accidents.Selection{Severity: "Fatal"}, 2); err != nil {
		t.Fatalf("writeReport() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No accidents match") {
		t.Errorf("report = %q, want the empty selection notice", buf.String())
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"serve", "report", "token"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
	report, _, _ := root.Find([]string{"report"})
	if report.Flags().Lookup("road-surface") == nil {
		t.Error("report is missing the --road-surface flag")
	}
}
