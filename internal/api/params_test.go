// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/config"
	"github.com/tomtom215/roadlens/internal/models"
	"github.com/tomtom215/roadlens/internal/presets"
	"github.com/tomtom215/roadlens/internal/validation"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery(%q) error = %v", raw, err)
	}
	return q
}

func validationField(err error) string {
	var verr *validation.RequestValidationError
	if !errors.As(err, &verr) || len(verr.Fields) == 0 {
		return ""
	}
	return verr.Fields[0].Field
}

func TestListParam(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"metrics=units", []string{"units"}},
		{"metrics=units,+casualties+,,", []string{"units", "casualties"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := listParam(mustQuery(t, tt.raw), "metrics"); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("listParam() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntParam(t *testing.T) {
	if got, err := intParam(url.Values{}, "window", 7); err != nil || got != 7 {
		t.Errorf("intParam(absent) = %d, %v, want 7, nil", got, err)
	}
	if got, err := intParam(mustQuery(t, "window=14"), "window", 7); err != nil || got != 14 {
		t.Errorf("intParam(14) = %d, %v, want 14, nil", got, err)
	}
	_, err := intParam(mustQuery(t, "window=1.5"), "window", 7)
	if got := validationField(err); got != "window" {
		t.Errorf("intParam(1.5) field = %q, want window", got)
	}
}

func TestSelection(t *testing.T) {
	store := newPresetStore(t)
	_, err := store.Put(context.Background(), presets.Preset{
		Name: "winter",
		Selection: accidents.Selection{
			Start:   day(1),
			End:     day(31),
			Weather: "Snowing no high winds",
			Area:    "Urban",
		},
	})
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	h := NewHandler(&fakeDataset{}, store, config.Default().Analytics)
	t.Cleanup(h.Close)

	tests := []struct {
		name string
		raw  string
		want accidents.Selection
	}{
		{
			name: "empty",
			raw:  "",
			want: accidents.Selection{},
		},
		{
			name: "dates and filters",
			raw:  "start_date=2021-01-02&end_date=2021-01-09&severity=Fatal",
			want: accidents.Selection{Start: day(2), End: day(9), Severity: "Fatal"},
		},
		{
			name: "preset",
			raw:  "preset=winter",
			want: accidents.Selection{Start: day(1), End: day(31), Weather: "Snowing no high winds", Area: "Urban"},
		},
		{
			name: "preset overridden",
			raw:  "preset=winter&weather=All&end_date=2021-01-15",
			want: accidents.Selection{Start: day(1), End: day(15), Weather: accidents.All, Area: "Urban"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.selection(context.Background(), mustQuery(t, tt.raw))
			if err != nil {
				t.Fatalf("selection() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("selection() = %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("unknown preset", func(t *testing.T) {
		_, err := h.selection(context.Background(), mustQuery(t, "preset=summer"))
		if !errors.Is(err, presets.ErrNotFound) {
			t.Errorf("selection() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("preset end before explicit start", func(t *testing.T) {
		_, err := h.selection(context.Background(), mustQuery(t, "preset=winter&start_date=2021-02-01"))
		if got := validationField(err); got != "end_date" {
			t.Errorf("selection() field = %q, want end_date", got)
		}
	})
}

func TestReadAggregateParams(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantField string
	}{
		{"values only", "values=casualties", ""},
		{"single reducer", "keys=area,weather&values=casualties,vehicles&reducers=avg", ""},
		{"reducer per value", "values=casualties,vehicles&reducers=sum,first", ""},
		{"no values", "keys=area", "values"},
		{"unknown key", "keys=colour&values=casualties", "keys[0]"},
		{"categorical value", "values=weather", "values[0]"},
		{"reducer count mismatch", "values=casualties,vehicles,units&reducers=sum,avg", "reducers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readAggregateParams(mustQuery(t, tt.raw))
			if got := validationField(err); got != tt.wantField {
				t.Errorf("readAggregateParams() field = %q, want %q (err = %v)", got, tt.wantField, err)
			}
		})
	}
}

func TestBuildRecipeReducers(t *testing.T) {
	p, err := readAggregateParams(mustQuery(t, "values=casualties,vehicles&reducers=median"))
	if err != nil {
		t.Fatalf("readAggregateParams() error = %v", err)
	}
	if _, err := buildRecipe(p); err == nil {
		t.Error("buildRecipe(median) error = nil, want unknown reducer")
	}
}

func TestReadDefaults(t *testing.T) {
	h := NewHandler(&fakeDataset{}, nil, config.Default().Analytics)
	t.Cleanup(h.Close)

	prop, err := h.readProportionParams(url.Values{})
	if err != nil {
		t.Fatalf("readProportionParams() error = %v", err)
	}
	if prop.Dimension != string(accidents.ColWeather) || prop.Threshold != 2 {
		t.Errorf("proportion defaults = %+v", prop)
	}

	trend, err := h.readTrendParams(url.Values{})
	if err != nil {
		t.Fatalf("readTrendParams() error = %v", err)
	}
	if trend.Window != 7 || len(trend.Metrics) != 2 {
		t.Errorf("trend defaults = %+v, want window 7 with two metrics", trend)
	}

	cmp, err := readComparisonParams(url.Values{})
	if err != nil {
		t.Fatalf("readComparisonParams() error = %v", err)
	}
	if mustColumn(cmp.Dimension) != accidents.ColRoadType || mustColumn(cmp.Second) != accidents.ColVehicles {
		t.Errorf("comparison defaults = %+v", cmp)
	}

	if _, err := readChartParams(mustQuery(t, "width=5000")); validationField(err) != "width" {
		t.Errorf("readChartParams(5000) error = %v, want width", err)
	}
}

func TestPresetEditInvalidatesCache(t *testing.T) {
	ts := newTestServer(t, serverOptions{snap: fixtureSnapshot(1, accidents.SourceColumns), store: newPresetStore(t)})
	put := func(body string) {
		decode(t, ts.do(t, "PUT", "/api/v1/presets/p", body, nil), 200)
	}
	get := func() envelope {
		return decode(t, ts.do(t, "GET", "/api/v1/analytics/summary?preset=p", "", nil), 200)
	}

	put(`{"selection":{"area":"Urban"}}`)
	get()
	if env := get(); !env.Metadata.Cached {
		t.Fatal("repeat request Cached = false, want true")
	}

	put(`{"selection":{"area":"Rural"}}`)
	env := get()
	if env.Metadata.Cached {
		t.Error("request after preset edit Cached = true, want false")
	}
	if got := decodeData[models.SummaryResponse](t, env).Accidents; got != 1 {
		t.Errorf("Accidents = %d, want 1 after edit", got)
	}
}
