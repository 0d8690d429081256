// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package render draws chart data as PNG images with go-chart defaults.
// It only draws; every number comes from the analytics shapers.
package render

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/analytics"
)

// Image bounds.
const (
	DefaultWidth  = 1024
	DefaultHeight = 512
	MinSize       = 200
	MaxSize       = 4096
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to render")

// Options sizes and titles an image. Zero values take the defaults.
type Options struct {
	Width  int
	Height int
	Title  string
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return clamp(w), clamp(h)
}

func clamp(v int) int {
	return max(MinSize, min(MaxSize, v))
}

// Proportion draws pie slices.
func Proportion(w io.Writer, slices []analytics.Slice, opts Options) error {
	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", s.Label, s.Percent),
			Value: s.Value,
		})
	}
	if len(values) == 0 {
		return ErrNoData
	}

	width, height := opts.size()
	pie := chart.PieChart{
		Title:  opts.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render proportion: %w", err)
	}
	return nil
}

// Trend draws one line per series using the rolling averages. Dates before
// the window fills are skipped.
func Trend(w io.Writer, trend analytics.Trend, opts Options) error {
	var series []chart.Series
	for _, s := range trend.Series {
		var xs []time.Time
		var ys []float64
		for _, p := range s.Points {
			if p.Average == nil {
				continue
			}
			t, err := time.Parse(accidents.DateLayout, p.Date)
			if err != nil {
				continue
			}
			xs = append(xs, t)
			ys = append(ys, *p.Average)
		}
		if len(xs) == 0 {
			continue
		}
		if len(xs) == 1 {
			// a single point has a zero-width range
			xs = append(xs, xs[0].Add(24*time.Hour))
			ys = append(ys, ys[0])
		}
		series = append(series, chart.TimeSeries{
			Name:    s.Metric.Alias(),
			XValues: xs,
			YValues: ys,
		})
	}
	if len(series) == 0 {
		return ErrNoData
	}

	width, height := opts.size()
	graph := chart.Chart{
		Title:      opts.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Date", ValueFormatter: chart.TimeDateValueFormatter},
		YAxis:      chart.YAxis{Name: fmt.Sprintf("%d-day average", trend.Window)},
		Series:     series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render trend: %w", err)
	}
	return nil
}

// Comparison draws stacked bars of the two metrics per label.
func Comparison(w io.Writer, bars []analytics.Bar, first, second accidents.Column, opts Options) error {
	stacks := make([]chart.StackedBar, 0, len(bars))
	for _, b := range bars {
		if b.First+b.Second <= 0 {
			continue
		}
		stacks = append(stacks, chart.StackedBar{
			Name: b.Label,
			Values: []chart.Value{
				{Label: first.Alias(), Value: b.First},
				{Label: second.Alias(), Value: b.Second},
			},
		})
	}
	if len(stacks) == 0 {
		return ErrNoData
	}

	width, height := opts.size()
	sbc := chart.StackedBarChart{
		Title:      opts.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       stacks,
	}
	if err := sbc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render comparison: %w", err)
	}
	return nil
}
