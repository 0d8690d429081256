// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package accidents

import "time"

// All is the sentinel for an unbound categorical filter.
const All = "All"

// Selection is the user's filter state.
//
// Start and End bound the accident date inclusively at day granularity; a
// zero bound leaves that side open. Each categorical field is either a
// specific value or unbound (All or "").
type Selection struct {
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`

	Severity        string `json:"severity,omitempty"`
	LightConditions string `json:"light_conditions,omitempty"`
	RoadSurface     string `json:"road_surface,omitempty"`
	RoadType        string `json:"road_type,omitempty"`
	Area            string `json:"area,omitempty"`
	Weather         string `json:"weather,omitempty"`
}

// Predicate reports whether a record passes one constraint.
type Predicate func(r *Record) bool

// IsBound reports whether a categorical filter value restricts anything.
func IsBound(value string) bool {
	return value != "" && value != All
}

// Constraints returns the bound categorical constraints keyed by column.
func (s Selection) Constraints() map[Column]string {
	values := map[Column]string{
		ColSeverity:        s.Severity,
		ColLightConditions: s.LightConditions,
		ColRoadSurface:     s.RoadSurface,
		ColRoadType:        s.RoadType,
		ColArea:            s.Area,
		ColWeather:         s.Weather,
	}
	for col, v := range values {
		if !IsBound(v) {
			delete(values, col)
		}
	}
	return values
}

// With returns a copy of s with the categorical filter for col set to value.
// Columns that are not filter columns are ignored.
func (s Selection) With(col Column, value string) Selection {
	switch col {
	case ColSeverity:
		s.Severity = value
	case ColLightConditions:
		s.LightConditions = value
	case ColRoadSurface:
		s.RoadSurface = value
	case ColRoadType:
		s.RoadType = value
	case ColArea:
		s.Area = value
	case ColWeather:
		s.Weather = value
	}
	return s
}

// Predicates returns the date predicate followed by one predicate per bound
// categorical filter, in FilterColumns order.
func (s Selection) Predicates() []Predicate {
	preds := []Predicate{DateBetween(s.Start, s.End)}
	constraints := s.Constraints()
	for _, col := range FilterColumns {
		if v, ok := constraints[col]; ok {
			preds = append(preds, Equals(col, v))
		}
	}
	return preds
}

// DateBetween keeps records whose date lies in [start, end], comparing
// calendar days only. Zero bounds are open. Records without a parsable date
// never pass, so an open selection and one spanning DateRange agree.
func DateBetween(start, end time.Time) Predicate {
	hasStart, hasEnd := !start.IsZero(), !end.IsZero()
	from, to := Day(start), Day(end)
	return func(r *Record) bool {
		if r.Date.IsZero() {
			return false
		}
		d := Day(r.Date)
		if hasStart && d.Before(from) {
			return false
		}
		if hasEnd && d.After(to) {
			return false
		}
		return true
	}
}

// Equals keeps records whose column equals value. An unbound value passes
// every record.
func Equals(col Column, value string) Predicate {
	if !IsBound(value) {
		return func(*Record) bool { return true }
	}
	return func(r *Record) bool {
		v, ok := r.Key(col)
		return ok && v == value
	}
}

// Compose joins predicates with logical AND.
func Compose(preds ...Predicate) Predicate {
	return func(r *Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Filter returns the records passing every predicate, in input order. The
// returned slice never aliases records.
func Filter(records []Record, preds ...Predicate) []Record {
	keep := Compose(preds...)
	out := make([]Record, 0, len(records))
	for i := range records {
		if keep(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// Apply filters records by every constraint of sel. The result may be empty.
func Apply(records []Record, sel Selection) []Record {
	return Filter(records, sel.Predicates()...)
}
