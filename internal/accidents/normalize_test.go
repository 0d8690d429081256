// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package accidents

import (
	"reflect"
	"testing"
	"time"
)

func testRecord(index string, day int, tod string) Record {
	return Record{
		AccidentIndex:   index,
		Date:            time.Date(2021, time.January, day, 0, 0, 0, 0, time.UTC),
		Time:            tod,
		Severity:        "Slight",
		Casualties:      1,
		Vehicles:        2,
		JunctionControl: "Give way or uncontrolled",
		LightConditions: "Daylight",
		RoadSurface:     "Dry",
		RoadType:        "Single carriageway",
		Weather:         "Fine no high winds",
		Area:            "Urban",
	}
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"15:11", 15},
		{"00:00", 0},
		{"23:59", 23},
		{"7:05", 7},
		{"08:30:00", 8},
		{" 09:15 ", 9},
		{"", MissingHour},
		{"24:00", MissingHour},
		{"12", MissingHour},
		{"ab:cd", MissingHour},
		{"12:5", MissingHour},
		{"12:60", MissingHour},
		{"-1:00", MissingHour},
		{"1:2:3:4", MissingHour},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseHour(tt.input); got != tt.want {
				t.Errorf("ParseHour(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestIntervalLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "00 - 01"},
		{9, "09 - 10"},
		{23, "23 - 24"},
		{MissingHour, "-1 - 00"},
	}

	for _, tt := range tests {
		if got := IntervalLabel(tt.hour); got != tt.want {
			t.Errorf("IntervalLabel(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
	if MissingInterval != "-1 - 00" {
		t.Errorf("MissingInterval = %q, want %q", MissingInterval, "-1 - 00")
	}
}

func TestNormalizeRemovesDuplicates(t *testing.T) {
	a := testRecord("A1", 1, "10:00")
	b := testRecord("B1", 2, "11:00")

	got := Normalize([]Record{a, b, a, a})
	if len(got) != 2 {
		t.Fatalf("len(Normalize()) = %d, want 2", len(got))
	}
	if got[0].AccidentIndex != "A1" || got[1].AccidentIndex != "B1" {
		t.Errorf("Normalize() order = [%s %s], want [A1 B1]", got[0].AccidentIndex, got[1].AccidentIndex)
	}
}

func TestNormalizeKeepsNearDuplicates(t *testing.T) {
	a := testRecord("A1", 1, "10:00")
	b := a
	b.Casualties = 3

	if got := Normalize([]Record{a, b}); len(got) != 2 {
		t.Errorf("len(Normalize()) = %d, want 2 for rows differing in one field", len(got))
	}
}

func TestNormalizeCorrections(t *testing.T) {
	r := testRecord("A1", 1, "10:00")
	r.JunctionControl = "Auto traffic sigl"
	r.Severity = "Fetal"
	r.LightConditions = "Darkess - lights lit" // not in the table, must survive

	got := Normalize([]Record{r})[0]

	if got.JunctionControl != "Auto traffic signal" {
		t.Errorf("JunctionControl = %q, want %q", got.JunctionControl, "Auto traffic signal")
	}
	if got.Severity != "Fatal" {
		t.Errorf("Severity = %q, want %q", got.Severity, "Fatal")
	}
	if got.LightConditions != "Darkess - lights lit" {
		t.Errorf("LightConditions = %q, want unchanged", got.LightConditions)
	}
}

func TestNormalizeFillsOnlyThreeColumns(t *testing.T) {
	r := testRecord("A1", 1, "10:00")
	r.RoadSurface = ""
	r.RoadType = ""
	r.Weather = ""
	r.LightConditions = ""
	r.JunctionControl = ""

	got := Normalize([]Record{r})[0]

	for _, col := range FilledColumns {
		if v, _ := got.Key(col); v != NotAvailable {
			t.Errorf("%s = %q, want %q", col, v, NotAvailable)
		}
	}
	if got.LightConditions != "" {
		t.Errorf("LightConditions = %q, want empty (not filled)", got.LightConditions)
	}
	if got.JunctionControl != "" {
		t.Errorf("JunctionControl = %q, want empty (not filled)", got.JunctionControl)
	}
}

func TestNormalizeDerivedFields(t *testing.T) {
	good := testRecord("A1", 1, "17:42")
	bad := testRecord("A2", 1, "not a time")

	got := Normalize([]Record{good, bad})

	if got[0].Units != 1 || got[1].Units != 1 {
		t.Errorf("Units = %d, %d, want 1, 1", got[0].Units, got[1].Units)
	}
	if got[0].Hour != 17 || got[0].Interval != "17 - 18" {
		t.Errorf("good record Hour/Interval = %d/%q, want 17/%q", got[0].Hour, got[0].Interval, "17 - 18")
	}
	if got[1].Hour != MissingHour || got[1].Interval != "-1 - 00" {
		t.Errorf("bad record Hour/Interval = %d/%q, want -1/%q", got[1].Hour, got[1].Interval, "-1 - 00")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	fetal := testRecord("A1", 1, "10:00")
	fetal.Severity = "Fetal"
	fatal := testRecord("A1", 1, "10:00")
	fatal.Severity = "Fatal"
	empty := testRecord("A2", 3, "")
	empty.Weather = ""
	sigl := testRecord("A3", 4, "99:99")
	sigl.JunctionControl = "Auto traffic sigl"

	raw := []Record{fetal, fatal, empty, sigl, empty}

	once := Normalize(raw)
	twice := Normalize(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize(Normalize(d)) != Normalize(d)\n once: %+v\ntwice: %+v", once, twice)
	}
	if len(once) != 3 {
		t.Errorf("len(Normalize()) = %d, want 3 (Fetal/Fatal collapse after correction)", len(once))
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(nil); len(got) != 0 {
		t.Errorf("Normalize(nil) = %v, want empty", got)
	}
}
