// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package accidents

import (
	"fmt"
	"strconv"
	"strings"
)

// NotAvailable replaces missing values in the filled columns.
const NotAvailable = "Not Available"

// MissingHour is the hour bucket of a record whose time could not be parsed.
const MissingHour = -1

// Correction is one entry of the fixed misspelling table. From is replaced by
// To wherever it occurs as a substring of the column value.
type Correction struct {
	Column Column
	From   string
	To     string
}

// Corrections is the complete list of known dataset typos. Values not listed
// here are never rewritten.
var Corrections = []Correction{
	{Column: ColJunctionControl, From: "Auto traffic sigl", To: "Auto traffic signal"},
	{Column: ColSeverity, From: "Fetal", To: "Fatal"},
}

// FilledColumns have missing values replaced by NotAvailable.
var FilledColumns = []Column{ColRoadSurface, ColRoadType, ColWeather}

// Normalize cleans raw records and derives the computed fields. It never
// fails. The first occurrence of each duplicate is kept and input order is
// preserved.
//
// Duplicates are detected after corrections and fills are applied so that a
// second pass finds nothing new to remove.
func Normalize(raw []Record) []Record {
	seen := make(map[Record]struct{}, len(raw))
	out := make([]Record, 0, len(raw))

	for _, r := range raw {
		cleaned := clean(r)
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, derive(cleaned))
	}
	return out
}

// clean applies corrections and fills and clears derived fields so that the
// result depends only on source values.
func clean(r Record) Record {
	r.Units = 0
	r.Hour = 0
	r.Interval = ""

	for _, c := range Corrections {
		if field := r.field(c.Column); field != nil {
			*field = strings.ReplaceAll(*field, c.From, c.To)
		}
	}
	for _, col := range FilledColumns {
		if field := r.field(col); field != nil && *field == "" {
			*field = NotAvailable
		}
	}
	return r
}

func derive(r Record) Record {
	r.Units = 1
	r.Hour = ParseHour(r.Time)
	r.Interval = IntervalLabel(r.Hour)
	return r
}

// field returns a pointer to a string column of r, or nil for columns that
// are not plain strings.
func (r *Record) field(col Column) *string {
	switch col {
	case ColJunctionControl:
		return &r.JunctionControl
	case ColJunctionDetail:
		return &r.JunctionDetail
	case ColSeverity:
		return &r.Severity
	case ColLightConditions:
		return &r.LightConditions
	case ColRoadSurface:
		return &r.RoadSurface
	case ColRoadType:
		return &r.RoadType
	case ColWeather:
		return &r.Weather
	case ColArea:
		return &r.Area
	case ColVehicleType:
		return &r.VehicleType
	case ColPoliceForce:
		return &r.PoliceForce
	case ColLocalAuthority:
		return &r.LocalAuthority
	case ColCarriagewayHazards:
		return &r.CarriagewayHazards
	case ColDayOfWeek:
		return &r.DayOfWeek
	default:
		return nil
	}
}

// ParseHour extracts the hour from "HH:MM", "H:MM" or "HH:MM:SS".
// Any other input returns MissingHour.
func ParseHour(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return MissingHour
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 || len(parts[0]) > 2 {
		return MissingHour
	}
	for _, p := range parts[1:] {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 59 || len(p) != 2 {
			return MissingHour
		}
	}
	return hour
}

// IntervalLabel formats an hour bucket as "HH - HH+1". MissingHour yields
// "-1 - 00".
func IntervalLabel(hour int) string {
	return fmt.Sprintf("%02d - %02d", hour, hour+1)
}

// MissingInterval is the interval label of records without a usable time.
var MissingInterval = IntervalLabel(MissingHour)
