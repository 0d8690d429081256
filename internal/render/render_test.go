// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/analytics"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func isPNG(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Errorf("output is not a PNG (%d bytes)", buf.Len())
	}
}

func avg(v float64) *float64 { return &v }

func TestProportion(t *testing.T) {
	var buf bytes.Buffer
	slices := []analytics.Slice{
		{Label: "Fine no high winds", Value: 80, Percent: 80},
		{Label: "Raining no high winds", Value: 15, Percent: 15},
		{Label: analytics.OtherLabel, Value: 5, Percent: 5},
	}
	if err := Proportion(&buf, slices, Options{Title: "Weather"}); err != nil {
		t.Fatalf("Proportion() error = %v", err)
	}
	isPNG(t, &buf)
}

func TestTrend(t *testing.T) {
	trend := analytics.Trend{
		Window: 2,
		Series: []analytics.Series{{
			Metric: accidents.ColCasualties,
			Points: []analytics.TrendPoint{
				{Date: "2021-01-01", Total: 10},
				{Date: "2021-01-02", Total: 20, Average: avg(15)},
				{Date: "2021-01-03", Total: 30, Average: avg(25)},
			},
		}},
	}
	var buf bytes.Buffer
	if err := Trend(&buf, trend, Options{Width: 640, Height: 320}); err != nil {
		t.Fatalf("Trend() error = %v", err)
	}
	isPNG(t, &buf)
}

func TestTrendSinglePoint(t *testing.T) {
	trend := analytics.Trend{Window: 1, Series: []analytics.Series{{
		Metric: accidents.ColUnits,
		Points: []analytics.TrendPoint{{Date: "2021-01-01", Total: 4, Average: avg(4)}},
	}}}
	var buf bytes.Buffer
	if err := Trend(&buf, trend, Options{}); err != nil {
		t.Fatalf("Trend(single point) error = %v", err)
	}
	isPNG(t, &buf)
}

func TestComparison(t *testing.T) {
	bars := []analytics.Bar{
		{Label: "Rural", First: 30, Second: 12},
		{Label: "Urban", First: 70, Second: 40},
	}
	var buf bytes.Buffer
	if err := Comparison(&buf, bars, accidents.ColCasualties, accidents.ColVehicles, Options{}); err != nil {
		t.Fatalf("Comparison() error = %v", err)
	}
	isPNG(t, &buf)
}

func TestNoData(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		name string
		fn   func() error
	}{
		{"proportion", func() error { return Proportion(&buf, nil, Options{}) }},
		{"zero slices", func() error {
			return Proportion(&buf, []analytics.Slice{{Label: "A"}}, Options{})
		}},
		{"trend without averages", func() error {
			return Trend(&buf, analytics.Trend{Window: 7, Series: []analytics.Series{{
				Metric: accidents.ColUnits,
				Points: []analytics.TrendPoint{{Date: "2021-01-01", Total: 1}},
			}}}, Options{})
		}},
		{"comparison", func() error {
			return Comparison(&buf, nil, accidents.ColCasualties, accidents.ColVehicles, Options{})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrNoData) {
				t.Errorf("error = %v, want ErrNoData", err)
			}
		})
	}
}

func TestOptionsSize(t *testing.T) {
	tests := []struct {
		opts  Options
		wantW int
		wantH int
	}{
		{Options{}, DefaultWidth, DefaultHeight},
		{Options{Width: 50, Height: 9000}, MinSize, MaxSize},
		{Options{Width: 800, Height: 600}, 800, 600},
	}
	for _, tt := range tests {
		w, h := tt.opts.size()
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("size(%+v) = %d, %d, want %d, %d", tt.opts, w, h, tt.wantW, tt.wantH)
		}
	}
}
