// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package analytics

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/tomtom215/roadlens/internal/accidents"
)

type schema map[accidents.Column]bool

func (s schema) Has(col accidents.Column) bool { return s[col] }

// weatherRows returns n records per weather label.
func weatherRows(counts map[string]int, order []string) []accidents.Record {
	var rows []accidents.Record
	i := 0
	for _, label := range order {
		for j := 0; j < counts[label]; j++ {
			i++
			rows = append(rows, rec(fmt.Sprintf("W%d", i), 1, "Slight", label, 1))
		}
	}
	return rows
}

func TestSummarize(t *testing.T) {
	rows := engineFixture()
	// same accident reported twice with different vehicles
	dup := rows[0]
	dup.Vehicles = 3
	rows = append(rows, dup)
	// unparsable time still counts
	late := rec("6", 4, "Fatal", "Fine", 2)
	late.Hour = accidents.MissingHour
	late.Interval = accidents.MissingInterval
	rows = append(rows, late)

	got, err := Summarize(rows)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	want := Summary{Accidents: 6, Casualties: 14, Vehicles: 9, Slight: 3, Serious: 1, Fatal: 2}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}

	metrics := got.Metrics()
	if len(metrics) != 6 || metrics[0].Label != "Total Number of Accidents" || metrics[5].Label != "Fatal Cases" {
		t.Errorf("Metrics() = %+v, want six cards starting with accidents, ending with fatal", metrics)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got, err := Summarize(nil)
	if err != nil || got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, %v, want zero summary", got, err)
	}
}

func TestProportion(t *testing.T) {
	tests := []struct {
		name      string
		counts    map[string]int
		order     []string
		threshold float64
		want      []string
	}{
		{
			name:      "share equal to threshold is kept",
			counts:    map[string]int{"A": 50, "B": 48, "C": 2},
			order:     []string{"C", "A", "B"},
			threshold: 2,
			want:      []string{"A", "B", "C"},
		},
		{
			name:      "shares below threshold merge",
			counts:    map[string]int{"A": 90, "B": 5, "C": 3, "D": 2},
			order:     []string{"A", "B", "C", "D"},
			threshold: 4,
			want:      []string{"A", "B", OtherLabel},
		},
		{
			name:      "zero threshold keeps everything",
			counts:    map[string]int{"A": 99, "B": 1},
			order:     []string{"A", "B"},
			threshold: 0,
			want:      []string{"A", "B"},
		},
		{
			name:      "Other stays last even when largest",
			counts:    map[string]int{"A": 40, "B": 30, "C": 30},
			order:     []string{"B", "C", "A"},
			threshold: 35,
			want:      []string{"A", OtherLabel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := weatherRows(tt.counts, tt.order)
			got, err := Proportion(rows, accidents.ColWeather, accidents.ColUnits, tt.threshold)
			if err != nil {
				t.Fatalf("Proportion() error = %v", err)
			}

			labels := make([]string, len(got))
			var total, pct float64
			for i, s := range got {
				labels[i] = s.Label
				total += s.Value
				pct += s.Percent
			}
			if fmt.Sprint(labels) != fmt.Sprint(tt.want) {
				t.Errorf("Proportion() labels = %v, want %v", labels, tt.want)
			}
			if total != float64(len(rows)) {
				t.Errorf("sum of slices = %v, want %d", total, len(rows))
			}
			if math.Abs(pct-100) > 1e-9 {
				t.Errorf("sum of percents = %v, want 100", pct)
			}
		})
	}
}

func TestProportionInvalidThreshold(t *testing.T) {
	for _, th := range []float64{-1, 100.5} {
		if _, err := Proportion(engineFixture(), accidents.ColWeather, accidents.ColUnits, th); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("Proportion(threshold=%v) error = %v, want ErrInvalidThreshold", th, err)
		}
	}
}

func TestProportionZeroTotal(t *testing.T) {
	rows := engineFixture()
	for i := range rows {
		rows[i].Casualties = 0
	}
	got, err := Proportion(rows, accidents.ColWeather, accidents.ColCasualties, 50)
	if err != nil {
		t.Fatalf("Proportion() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(Proportion()) = %d, want 3 unmerged slices", len(got))
	}
	for _, s := range got {
		if s.Label == OtherLabel || s.Percent != 0 {
			t.Errorf("slice %+v, want no Other and 0 percent", s)
		}
	}
}

func TestProportionEmpty(t *testing.T) {
	got, err := Proportion([]accidents.Record{}, accidents.ColWeather, accidents.ColUnits, DefaultThreshold)
	if err != nil || len(got) != 0 {
		t.Errorf("Proportion(empty) = %v, %v, want empty", got, err)
	}
}

// dailyRows returns counts[i] accidents on 2021-01-(i+1).
func dailyRows(counts []int) []accidents.Record {
	var rows []accidents.Record
	for day, n := range counts {
		for j := 0; j < n; j++ {
			rows = append(rows, rec(fmt.Sprintf("D%d-%d", day, j), day+1, "Slight", "Fine", 1))
		}
	}
	return rows
}

func TestRollingWindow(t *testing.T) {
	rows := dailyRows([]int{10, 20, 30, 40, 50, 60, 70})
	// shuffle so date sorting matters
	rows[0], rows[len(rows)-1] = rows[len(rows)-1], rows[0]

	trend, err := Rolling(rows, []accidents.Column{accidents.ColUnits}, 7)
	if err != nil {
		t.Fatalf("Rolling() error = %v", err)
	}
	if trend.Window != 7 || len(trend.Series) != 1 {
		t.Fatalf("Rolling() = window %d, %d series, want 7, 1", trend.Window, len(trend.Series))
	}

	points := trend.Series[0].Points
	if len(points) != 7 {
		t.Fatalf("len(points) = %d, want 7", len(points))
	}
	for i := 0; i < 6; i++ {
		if points[i].Average != nil {
			t.Errorf("points[%d].Average = %v, want nil", i, *points[i].Average)
		}
	}
	if points[6].Average == nil || *points[6].Average != 40 {
		t.Errorf("points[6].Average = %v, want 40", points[6].Average)
	}
	if points[0].Date != "2021-01-01" || points[0].Total != 10 {
		t.Errorf("points[0] = %+v, want 2021-01-01 total 10", points[0])
	}
}

func TestRollingWindowOneReproducesSeries(t *testing.T) {
	counts := []int{3, 1, 4, 1, 5}
	trend, err := Rolling(dailyRows(counts), []accidents.Column{accidents.ColUnits, accidents.ColCasualties}, 1)
	if err != nil {
		t.Fatalf("Rolling() error = %v", err)
	}
	if len(trend.Series) != 2 {
		t.Fatalf("len(Series) = %d, want 2", len(trend.Series))
	}
	for _, s := range trend.Series {
		for i, p := range s.Points {
			if p.Average == nil || *p.Average != float64(counts[i]) || p.Total != float64(counts[i]) {
				t.Errorf("%s point %d = %+v, want total and average %d", s.Metric, i, p, counts[i])
			}
		}
	}
}

func TestRollingSkipsUndatedRows(t *testing.T) {
	rows := dailyRows([]int{2, 3})
	undated := rec("U1", 1, "Slight", "Fine", 5)
	undated.Date = time.Time{}
	rows = append(rows, undated)

	trend, err := Rolling(rows, []accidents.Column{accidents.ColCasualties}, 1)
	if err != nil {
		t.Fatalf("Rolling() error = %v", err)
	}
	points := trend.Series[0].Points
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2: %+v", len(points), points)
	}
	if points[0].Date != "2021-01-01" || points[0].Total != 2 {
		t.Errorf("points[0] = %+v, want 2021-01-01 total 2", points[0])
	}
}

func TestRollingInvalidWindow(t *testing.T) {
	if _, err := Rolling(engineFixture(), []accidents.Column{accidents.ColUnits}, 0); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("Rolling(window=0) error = %v, want ErrInvalidWindow", err)
	}
}

func TestRollingEmpty(t *testing.T) {
	trend, err := Rolling([]accidents.Record{}, []accidents.Column{accidents.ColUnits}, DefaultWindow)
	if err != nil {
		t.Fatalf("Rolling(empty) error = %v", err)
	}
	if len(trend.Series) != 1 || len(trend.Series[0].Points) != 0 {
		t.Errorf("Rolling(empty) = %+v, want one empty series", trend)
	}
}

func TestBuildHeatmap(t *testing.T) {
	// 2021-01-04 is a Monday, 2021-01-10 a Sunday.
	monday := rec("1", 4, "Slight", "Fine", 1)
	monday.Hour, monday.Interval = 8, "08 - 09"
	sunday := rec("2", 10, "Slight", "Fine", 1)
	sunday.Hour, sunday.Interval = 23, "23 - 24"
	named := rec("3", 4, "Slight", "Fine", 1)
	named.DayOfWeek = "sunday"
	named.Hour, named.Interval = 23, "23 - 24"
	missing := rec("4", 4, "Slight", "Fine", 1)
	missing.Hour, missing.Interval = accidents.MissingHour, accidents.MissingInterval

	rows := []accidents.Record{sunday, monday, named, missing, monday}

	hm, err := BuildHeatmap(rows)
	if err != nil {
		t.Fatalf("BuildHeatmap() error = %v", err)
	}
	if fmt.Sprint(hm.Days) != fmt.Sprint(accidents.Weekdays) {
		t.Errorf("Days = %v, want Monday..Sunday", hm.Days)
	}
	if len(hm.Intervals) != 24 || hm.Intervals[0] != "00 - 01" || hm.Intervals[23] != "23 - 24" {
		t.Errorf("Intervals = %v, want 24 labels 00 - 01 .. 23 - 24", hm.Intervals)
	}
	for _, iv := range hm.Intervals {
		if iv == accidents.MissingInterval {
			t.Errorf("Intervals contains %q", accidents.MissingInterval)
		}
	}
	if hm.Cells[0][8] != 2 {
		t.Errorf("Cells[Monday][08] = %v, want 2", hm.Cells[0][8])
	}
	if hm.Cells[6][23] != 2 {
		t.Errorf("Cells[Sunday][23] = %v, want 2", hm.Cells[6][23])
	}

	var total float64
	for _, row := range hm.Cells {
		for _, v := range row {
			total += v
		}
	}
	if total != 4 {
		t.Errorf("heatmap total = %v, want 4 (missing time excluded)", total)
	}
	if hm.Max() != 2 {
		t.Errorf("Max() = %v, want 2", hm.Max())
	}

	// the summary still counts the row with the missing time
	sum, _ := Summarize(rows)
	if sum.Accidents != 4 {
		t.Errorf("Summarize().Accidents = %d, want 4", sum.Accidents)
	}
}

func TestBuildHeatmapEmpty(t *testing.T) {
	hm, err := BuildHeatmap([]accidents.Record{})
	if err != nil || len(hm.Cells) != 0 || len(hm.Days) != 0 {
		t.Errorf("BuildHeatmap(empty) = %+v, %v, want empty", hm, err)
	}
}

func TestComparison(t *testing.T) {
	rows := []accidents.Record{
		rec("1", 1, "Slight", "Fine", 2),
		rec("2", 1, "Slight", "Raining", 5),
		rec("3", 1, "Slight", "Fog", 2),
		rec("4", 1, "Slight", "Fine", 0),
		rec("5", 1, "Slight", "Snow", 1),
	}

	got, err := Comparison(rows, accidents.ColWeather, accidents.ColUnits, accidents.ColCasualties)
	if err != nil {
		t.Fatalf("Comparison() error = %v", err)
	}
	want := []Bar{
		{Label: "Snow", First: 1, Second: 1},
		{Label: "Fine", First: 2, Second: 2},
		{Label: "Fog", First: 1, Second: 2},
		{Label: "Raining", First: 1, Second: 5},
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Comparison() = %v, want %v", got, want)
	}
}

func TestDensity(t *testing.T) {
	london := rec("1", 1, "Slight", "Fine", 2)
	london.Location = accidents.Location{Lat: 51.5074, Lng: -0.1278, Valid: true}
	london2 := rec("2", 1, "Slight", "Fine", 1)
	london2.Location = accidents.Location{Lat: 51.5075, Lng: -0.1277, Valid: true}
	leeds := rec("3", 1, "Slight", "Fine", 4)
	leeds.Location = accidents.Location{Lat: 53.8008, Lng: -1.5491, Valid: true}
	nowhere := rec("4", 1, "Slight", "Fine", 9)

	full := schema{accidents.ColLatitude: true, accidents.ColLongitude: true}
	cells, err := Density([]accidents.Record{leeds, london, nowhere, london2}, full, DefaultCellLevel)
	if err != nil {
		t.Fatalf("Density() error = %v", err)
	}
	if len(cells) != 2 {
		t.Fatalf("len(Density()) = %d, want 2", len(cells))
	}
	if cells[0].Accidents != 2 || cells[0].Casualties != 3 {
		t.Errorf("cells[0] = %+v, want London cell with 2 accidents, 3 casualties", cells[0])
	}
	if math.Abs(cells[0].Lat-51.5) > 0.2 || math.Abs(cells[0].Lng+0.13) > 0.2 {
		t.Errorf("cells[0] centre = %v,%v, want near London", cells[0].Lat, cells[0].Lng)
	}
	if cells[1].Accidents != 1 || cells[1].Casualties != 4 {
		t.Errorf("cells[1] = %+v, want Leeds cell with 1 accident, 4 casualties", cells[1])
	}
}

func TestDensityErrors(t *testing.T) {
	_, err := Density(engineFixture(), schema{accidents.ColLatitude: true}, DefaultCellLevel)
	var mce *accidents.MissingColumnError
	if !errors.As(err, &mce) || !errors.Is(err, accidents.ErrMissingColumn) {
		t.Fatalf("Density() error = %v, want MissingColumnError", err)
	}
	if len(mce.Columns) != 1 || mce.Columns[0] != accidents.ColLongitude {
		t.Errorf("MissingColumnError.Columns = %v, want [Longitude]", mce.Columns)
	}

	full := schema{accidents.ColLatitude: true, accidents.ColLongitude: true}
	if _, err := Density(nil, full, 31); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("Density(level=31) error = %v, want ErrInvalidLevel", err)
	}
	if cells, err := Density(nil, full, DefaultCellLevel); err != nil || len(cells) != 0 {
		t.Errorf("Density(empty) = %v, %v, want empty", cells, err)
	}
}

func TestIntervalsLabels(t *testing.T) {
	if len(Intervals) != 24 {
		t.Fatalf("len(Intervals) = %d, want 24", len(Intervals))
	}
	if Intervals[9] != "09 - 10" {
		t.Errorf("Intervals[9] = %q, want %q", Intervals[9], "09 - 10")
	}
}
