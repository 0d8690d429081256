// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package accidents

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumn is wrapped by every MissingColumnError.
var ErrMissingColumn = errors.New("missing expected column")

// MissingColumnError reports that a feature needs columns the dataset does
// not carry. Only that feature aborts; the rest of the dashboard is served.
type MissingColumnError struct {
	Feature string
	Columns []Column
}

func (e *MissingColumnError) Error() string {
	names := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		names[i] = string(c)
	}
	return fmt.Sprintf("%s requires column(s) %s: %v", e.Feature, strings.Join(names, ", "), ErrMissingColumn)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// Schema reports which columns a dataset carries.
type Schema interface {
	Has(col Column) bool
}

// RequireColumns returns a *MissingColumnError naming every column in cols
// that schema lacks, or nil when all are present.
func RequireColumns(schema Schema, feature string, cols ...Column) error {
	var missing []Column
	for _, c := range cols {
		if !schema.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingColumnError{Feature: feature, Columns: missing}
}
