// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package accidents

import "strings"

// Column names a dataset column. Source columns use the exact header text of
// the accident CSV; derived columns are computed during normalization.
type Column string

// Source columns.
const (
	ColAccidentIndex      Column = "Accident_Index"
	ColDate               Column = "Accident Date"
	ColDayOfWeek          Column = "Day_of_Week"
	ColJunctionControl    Column = "Junction_Control"
	ColJunctionDetail     Column = "Junction_Detail"
	ColSeverity           Column = "Accident_Severity"
	ColLatitude           Column = "Latitude"
	ColLightConditions    Column = "Light_Conditions"
	ColLocalAuthority     Column = "Local_Authority_(District)"
	ColCarriagewayHazards Column = "Carriageway_Hazards"
	ColLongitude          Column = "Longitude"
	ColCasualties         Column = "Number_of_Casualties"
	ColVehicles           Column = "Number_of_Vehicles"
	ColPoliceForce        Column = "Police_Force"
	ColRoadSurface        Column = "Road_Surface_Conditions"
	ColRoadType           Column = "Road_Type"
	ColSpeedLimit         Column = "Speed_limit"
	ColTime               Column = "Time"
	ColArea               Column = "Urban_or_Rural_Area"
	ColWeather            Column = "Weather_Conditions"
	ColVehicleType        Column = "Vehicle_Type"
)

// Derived columns.
const (
	ColUnits    Column = "Accident_Units"
	ColHour     Column = "Hour"
	ColInterval Column = "Interval"
	ColWeekday  Column = "Weekday"
)

// SourceColumns lists the columns read from the dataset, in header order.
var SourceColumns = []Column{
	ColAccidentIndex,
	ColDate,
	ColDayOfWeek,
	ColJunctionControl,
	ColJunctionDetail,
	ColSeverity,
	ColLatitude,
	ColLightConditions,
	ColLocalAuthority,
	ColCarriagewayHazards,
	ColLongitude,
	ColCasualties,
	ColVehicles,
	ColPoliceForce,
	ColRoadSurface,
	ColRoadType,
	ColSpeedLimit,
	ColTime,
	ColArea,
	ColWeather,
	ColVehicleType,
}

// DerivedColumns are present on every normalized record regardless of source.
var DerivedColumns = []Column{ColUnits, ColHour, ColInterval, ColWeekday}

// RequiredColumns must exist in a source for it to load at all.
var RequiredColumns = []Column{ColAccidentIndex, ColDate}

// FilterColumns are the categorical columns a Selection can constrain, in
// sidebar order.
var FilterColumns = []Column{
	ColSeverity,
	ColLightConditions,
	ColRoadSurface,
	ColRoadType,
	ColArea,
	ColWeather,
}

// aliases maps short API names to columns.
var aliases = map[string]Column{
	"accident_index":      ColAccidentIndex,
	"date":                ColDate,
	"day_of_week":         ColDayOfWeek,
	"junction_control":    ColJunctionControl,
	"junction_detail":     ColJunctionDetail,
	"severity":            ColSeverity,
	"latitude":            ColLatitude,
	"light_conditions":    ColLightConditions,
	"local_authority":     ColLocalAuthority,
	"carriageway_hazards": ColCarriagewayHazards,
	"longitude":           ColLongitude,
	"casualties":          ColCasualties,
	"vehicles":            ColVehicles,
	"police_force":        ColPoliceForce,
	"road_surface":        ColRoadSurface,
	"road_type":           ColRoadType,
	"speed_limit":         ColSpeedLimit,
	"time":                ColTime,
	"area":                ColArea,
	"weather":             ColWeather,
	"vehicle_type":        ColVehicleType,
	"units":               ColUnits,
	"hour":                ColHour,
	"interval":            ColInterval,
	"weekday":             ColWeekday,
}

// ParseColumn resolves either a short alias ("weather") or an exact header
// name ("Weather_Conditions"). Matching on aliases is case-insensitive.
func ParseColumn(name string) (Column, bool) {
	trimmed := strings.TrimSpace(name)
	if col, ok := aliases[strings.ToLower(trimmed)]; ok {
		return col, true
	}
	col := Column(trimmed)
	if col.IsSource() || col.IsDerived() {
		return col, true
	}
	return "", false
}

// Alias returns the short API name for the column.
func (c Column) Alias() string {
	for alias, col := range aliases {
		if col == c {
			return alias
		}
	}
	return string(c)
}

// IsSource reports whether the column is read from the dataset.
func (c Column) IsSource() bool {
	for _, col := range SourceColumns {
		if col == c {
			return true
		}
	}
	return false
}

// IsDerived reports whether the column is computed during normalization.
func (c Column) IsDerived() bool {
	for _, col := range DerivedColumns {
		if col == c {
			return true
		}
	}
	return false
}

// IsNumeric reports whether Value returns a meaningful number for the column.
func (c Column) IsNumeric() bool {
	switch c {
	case ColCasualties, ColVehicles, ColSpeedLimit, ColUnits, ColHour, ColLatitude, ColLongitude:
		return true
	default:
		return false
	}
}

// IsFilter reports whether a Selection can constrain the column.
func (c Column) IsFilter() bool {
	for _, col := range FilterColumns {
		if col == c {
			return true
		}
	}
	return false
}
