// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package accidents defines the road-accident record model and the first two
// stages of the analytics pipeline: normalization and filtering.
//
// # Overview
//
// A dataset is loaded once per data-load event (see the database and dataset
// packages) and turned into an immutable Snapshot:
//
//	raw rows -> Normalize -> Snapshot
//
// Every request then narrows the snapshot with a Selection:
//
//	snapshot.Select(selection) -> []Record -> analytics shapers
//
// # Records
//
// Record is a typed struct with one field per dataset column. Categorical
// fields use the empty string as the missing-value marker. After
// normalization the road surface, road type and weather columns never carry
// the marker; they hold NotAvailable instead. Other categorical columns are
// left untouched.
//
// Records expose Key and Value accessors keyed by Column so that the
// group-aggregate engine can work on any column without reflection.
//
// # Normalization
//
// Normalize applies, in order:
//   - the fixed correction table (two known misspellings)
//   - NotAvailable fill for road surface, road type and weather
//   - exact-duplicate removal
//   - derived fields: Units (always 1), Hour (-1 when Time is unparsable) and
//     Interval ("HH - HH+1", "-1 - 00" for the missing bucket)
//
// Normalize never fails and is idempotent.
//
// # Filtering
//
// Selection holds an inclusive date range and six categorical constraints.
// A constraint set to All (or left empty) passes every row. Bound
// constraints are independent predicates combined with AND, so the order in
// which they are applied never changes the result.
//
// # Thread Safety
//
// Snapshot is immutable after construction and safe for concurrent readers.
// Records returned from Select are fresh slices owned by the caller.
package accidents
