// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package accidents

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

// SnapshotInfo describes where a snapshot came from.
type SnapshotInfo struct {
	Version  uint64
	Source   string
	LoadedAt time.Time
}

// Snapshot is the normalized dataset of one data-load event. It is never
// modified after NewSnapshot returns; a reload builds a new one.
type Snapshot struct {
	info    SnapshotInfo
	records []Record
	columns map[Column]bool
	minDate time.Time
	maxDate time.Time
	options map[Column][]string
}

// NewSnapshot normalizes raw and indexes the result. columns lists the
// source columns the dataset actually carried; derived columns are always
// added.
func NewSnapshot(raw []Record, columns []Column, info SnapshotInfo) *Snapshot {
	s := &Snapshot{
		info:    info,
		records: Normalize(raw),
		columns: make(map[Column]bool, len(columns)+len(DerivedColumns)),
		options: make(map[Column][]string, len(FilterColumns)),
	}
	if s.info.LoadedAt.IsZero() {
		s.info.LoadedAt = time.Now().UTC()
	}
	for _, c := range columns {
		s.columns[c] = true
	}
	for _, c := range DerivedColumns {
		s.columns[c] = true
	}

	for i := range s.records {
		d := s.records[i].Date
		if d.IsZero() {
			continue
		}
		if s.minDate.IsZero() || d.Before(s.minDate) {
			s.minDate = d
		}
		if s.maxDate.IsZero() || d.After(s.maxDate) {
			s.maxDate = d
		}
	}

	for _, col := range FilterColumns {
		values := lo.Uniq(lo.Map(s.records, func(r Record, _ int) string {
			v, _ := r.Key(col)
			return v
		}))
		slices.Sort(values)
		s.options[col] = append([]string{All}, values...)
	}
	return s
}

// Version is the load counter assigned by the dataset manager.
func (s *Snapshot) Version() uint64 { return s.info.Version }

// Source is the path the snapshot was loaded from.
func (s *Snapshot) Source() string { return s.info.Source }

// LoadedAt is when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time { return s.info.LoadedAt }

// Len is the number of normalized records.
func (s *Snapshot) Len() int { return len(s.records) }

// Has reports whether the dataset carried col.
func (s *Snapshot) Has(col Column) bool { return s.columns[col] }

// Columns lists the carried columns, source columns first in header order.
func (s *Snapshot) Columns() []Column {
	out := make([]Column, 0, len(s.columns))
	for _, c := range SourceColumns {
		if s.columns[c] {
			out = append(out, c)
		}
	}
	return append(out, DerivedColumns...)
}

// DateRange returns the earliest and latest accident dates. Both are zero
// for an empty snapshot.
func (s *Snapshot) DateRange() (time.Time, time.Time) {
	return s.minDate, s.maxDate
}

// Options returns the sorted distinct values of a filter column with All
// prepended. Non-filter columns return nil.
func (s *Snapshot) Options(col Column) []string {
	opts, ok := s.options[col]
	if !ok {
		return nil
	}
	return slices.Clone(opts)
}

// Require fails with a *MissingColumnError when the dataset lacks any of cols.
func (s *Snapshot) Require(feature string, cols ...Column) error {
	return RequireColumns(s, feature, cols...)
}

// Select returns the records matching sel as a new slice.
func (s *Snapshot) Select(sel Selection) []Record {
	return Apply(s.records, sel)
}

// Records returns a copy of every normalized record.
func (s *Snapshot) Records() []Record {
	return slices.Clone(s.records)
}
