// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package accidents

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical day format used for date keys and API parameters.
const DateLayout = "2006-01-02"

// Location is an optional geographic position. Valid is false when either
// coordinate was missing or unparsable.
type Location struct {
	Lat   float64
	Lng   float64
	Valid bool
}

// Record is one accident report row.
//
// Record is comparable so that exact duplicates can be detected with a map.
// Date always holds UTC midnight of the accident day.
type Record struct {
	AccidentIndex      string
	Date               time.Time
	Time               string
	DayOfWeek          string
	Severity           string
	Casualties         int
	Vehicles           int
	JunctionControl    string
	JunctionDetail     string
	LightConditions    string
	RoadSurface        string
	RoadType           string
	Weather            string
	Area               string
	VehicleType        string
	PoliceForce        string
	LocalAuthority     string
	CarriagewayHazards string
	SpeedLimit         int
	Location           Location

	// Derived during normalization.
	Units    int
	Hour     int
	Interval string
}

// Key returns the grouping/filtering value of a column. Numeric columns are
// formatted as integers; Date is formatted with DateLayout. The bool is false
// for columns the record cannot answer (an unparsed date, a missing
// location, or an unknown column).
func (r Record) Key(col Column) (string, bool) {
	switch col {
	case ColAccidentIndex:
		return r.AccidentIndex, true
	case ColDate:
		if r.Date.IsZero() {
			return "", false
		}
		return r.Date.Format(DateLayout), true
	case ColTime:
		return r.Time, true
	case ColDayOfWeek:
		return r.DayOfWeek, true
	case ColSeverity:
		return r.Severity, true
	case ColJunctionControl:
		return r.JunctionControl, true
	case ColJunctionDetail:
		return r.JunctionDetail, true
	case ColLightConditions:
		return r.LightConditions, true
	case ColRoadSurface:
		return r.RoadSurface, true
	case ColRoadType:
		return r.RoadType, true
	case ColWeather:
		return r.Weather, true
	case ColArea:
		return r.Area, true
	case ColVehicleType:
		return r.VehicleType, true
	case ColPoliceForce:
		return r.PoliceForce, true
	case ColLocalAuthority:
		return r.LocalAuthority, true
	case ColCarriagewayHazards:
		return r.CarriagewayHazards, true
	case ColCasualties:
		return strconv.Itoa(r.Casualties), true
	case ColVehicles:
		return strconv.Itoa(r.Vehicles), true
	case ColSpeedLimit:
		return strconv.Itoa(r.SpeedLimit), true
	case ColUnits:
		return strconv.Itoa(r.Units), true
	case ColHour:
		return strconv.Itoa(r.Hour), true
	case ColInterval:
		return r.Interval, true
	case ColWeekday:
		return r.Weekday(), true
	case ColLatitude:
		if !r.Location.Valid {
			return "", false
		}
		return strconv.FormatFloat(r.Location.Lat, 'f', -1, 64), true
	case ColLongitude:
		if !r.Location.Valid {
			return "", false
		}
		return strconv.FormatFloat(r.Location.Lng, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Value returns the numeric value of a column. The bool is false for
// non-numeric columns and for a missing location.
func (r Record) Value(col Column) (float64, bool) {
	switch col {
	case ColCasualties:
		return float64(r.Casualties), true
	case ColVehicles:
		return float64(r.Vehicles), true
	case ColSpeedLimit:
		return float64(r.SpeedLimit), true
	case ColUnits:
		return float64(r.Units), true
	case ColHour:
		return float64(r.Hour), true
	case ColLatitude:
		return r.Location.Lat, r.Location.Valid
	case ColLongitude:
		return r.Location.Lng, r.Location.Valid
	default:
		return 0, false
	}
}

// Weekdays lists day names Monday first.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Weekday returns the canonical day name. The DayOfWeek column wins when it
// holds a recognised day name (any case); otherwise the day is taken from
// Date. A record with neither returns "".
func (r Record) Weekday() string {
	if day, ok := canonicalWeekday(r.DayOfWeek); ok {
		return day
	}
	if r.Date.IsZero() {
		return ""
	}
	return r.Date.Weekday().String()
}

func canonicalWeekday(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	for _, day := range Weekdays {
		if strings.EqualFold(day, trimmed) {
			return day, true
		}
	}
	return "", false
}

// dateLayouts are tried in order by ParseDate. Slash dates are month-first.
var dateLayouts = []string{
	DateLayout,
	"1/2/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
}

// ParseDate parses an accident date and truncates it to UTC midnight.
func ParseDate(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return Day(t), true
		}
	}
	return time.Time{}, false
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseCount parses a non-negative count, accepting "3" and "3.0".
// Anything else yields 0.
func ParseCount(s string) int {
	trimmed := strings.TrimSpace(s)
	if n, err := strconv.Atoi(trimmed); err == nil && n >= 0 {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && f >= 0 {
		return int(f)
	}
	return 0
}

// ParseLocation builds a Location from raw coordinate strings.
func ParseLocation(lat, lng string) Location {
	la, errLat := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	lo, errLng := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if errLat != nil || errLng != nil {
		return Location{}
	}
	if la < -90 || la > 90 || lo < -180 || lo > 180 {
		return Location{}
	}
	return Location{Lat: la, Lng: lo, Valid: true}
}
