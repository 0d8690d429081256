// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package analytics

import "github.com/tomtom215/roadlens/internal/accidents"

// Severity classes counted by Summarize.
const (
	SeveritySlight  = "Slight"
	SeveritySerious = "Serious"
	SeverityFatal   = "Fatal"
)

// Summary holds the headline figures of a filtered row set.
type Summary struct {
	Accidents  int `json:"accidents"`
	Casualties int `json:"casualties"`
	Vehicles   int `json:"vehicles"`
	Slight     int `json:"slight"`
	Serious    int `json:"serious"`
	Fatal      int `json:"fatal"`
}

// Metric is one labelled summary figure.
type Metric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Metrics returns the summary as dashboard cards, in display order.
func (s Summary) Metrics() []Metric {
	return []Metric{
		{Label: "Total Number of Accidents", Value: s.Accidents},
		{Label: "Total Number of Casualties", Value: s.Casualties},
		{Label: "Total Number of Vehicles Involved", Value: s.Vehicles},
		{Label: "Slight Cases", Value: s.Slight},
		{Label: "Serious Cases", Value: s.Serious},
		{Label: "Fatal Cases", Value: s.Fatal},
	}
}

// Summarize computes the summary of rows. Accidents and the severity counts
// are numbers of distinct accident identifiers; casualties and vehicles are
// sums. Records with an unparsable time still count.
func Summarize(rows []accidents.Record) (Summary, error) {
	var s Summary
	if len(rows) == 0 {
		return s, nil
	}

	totals, err := GroupAggregate(rows, nil, Sum(accidents.ColCasualties, accidents.ColVehicles))
	if err != nil {
		return s, err
	}
	s.Casualties = int(totals[0].Values[accidents.ColCasualties])
	s.Vehicles = int(totals[0].Values[accidents.ColVehicles])

	distinct, err := GroupAggregate(rows, []accidents.Column{accidents.ColAccidentIndex}, nil)
	if err != nil {
		return s, err
	}
	s.Accidents = len(distinct)

	bySeverity, err := GroupAggregate(rows, []accidents.Column{accidents.ColSeverity, accidents.ColAccidentIndex}, nil)
	if err != nil {
		return s, err
	}
	for _, g := range bySeverity {
		switch g.Keys[0] {
		case SeveritySlight:
			s.Slight++
		case SeveritySerious:
			s.Serious++
		case SeverityFatal:
			s.Fatal++
		}
	}
	return s, nil
}
