// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/metrics"
)

// RawTable receives the CSV contents on every load.
const RawTable = "accidents_raw"

// ErrDatasetNotFound is returned when the dataset path does not exist.
var ErrDatasetNotFound = errors.New("dataset file not found")

// Dataset is the raw result of one load: un-normalized records plus the
// source columns the file actually carried.
type Dataset struct {
	Path     string
	Records  []accidents.Record
	Columns  []accidents.Column
	Duration time.Duration
}

// LoadAccidents reads path (.csv or .csv.gz) into RawTable and converts
// every row to an accidents.Record. Columns the file lacks are selected as
// NULL. The file must carry every accidents.RequiredColumns entry.
func (db *DB) LoadAccidents(ctx context.Context, path string) (*Dataset, error) {
	start := time.Now()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat dataset %s: %w", path, err)
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if err := db.readCSV(ctx, path); err != nil {
		return nil, err
	}

	present, err := db.describe(ctx)
	if err != nil {
		return nil, err
	}
	columns := make([]accidents.Column, 0, len(accidents.SourceColumns))
	for _, c := range accidents.SourceColumns {
		if _, ok := present[c]; ok {
			columns = append(columns, c)
		}
	}
	if err := accidents.RequireColumns(columnSet(present), "dataset", accidents.RequiredColumns...); err != nil {
		return nil, err
	}

	records, err := db.scanRecords(ctx, present)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Path:     path,
		Records:  records,
		Columns:  columns,
		Duration: time.Since(start),
	}, nil
}

type columnSet map[accidents.Column]string

func (s columnSet) Has(c accidents.Column) bool {
	_, ok := s[c]
	return ok
}

func (db *DB) readCSV(ctx context.Context, path string) error {
	query := fmt.Sprintf(
		"CREATE OR REPLACE TABLE %s AS SELECT * FROM read_csv(%s, header = true, all_varchar = true)",
		RawTable, quoteLiteral(path),
	)
	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query)
	metrics.RecordDBQuery("read_csv", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

// describe maps the known source columns present in RawTable to their raw
// header text. Headers are matched after trimming surrounding whitespace.
func (db *DB) describe(ctx context.Context) (map[accidents.Column]string, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, "SELECT column_name FROM (DESCRIBE "+RawTable+")")
	metrics.RecordDBQuery("describe", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s: %w", RawTable, err)
	}
	defer closeQuietly(rows)

	present := make(map[accidents.Column]string)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		if col := accidents.Column(strings.TrimSpace(name)); col.IsSource() {
			present[col] = name
		}
	}
	return present, rows.Err()
}

func (db *DB) scanRecords(ctx context.Context, present map[accidents.Column]string) ([]accidents.Record, error) {
	exprs := make([]string, len(accidents.SourceColumns))
	for i, c := range accidents.SourceColumns {
		if raw, ok := present[c]; ok {
			exprs[i] = quoteIdent(raw)
		} else {
			exprs[i] = "NULL"
		}
	}
	query := "SELECT " + strings.Join(exprs, ", ") + " FROM " + RawTable

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		metrics.RecordDBQuery("select", time.Since(start), err)
		return nil, fmt.Errorf("failed to select from %s: %w", RawTable, err)
	}
	defer closeQuietly(rows)

	values := make([]sql.NullString, len(accidents.SourceColumns))
	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}

	var records []accidents.Record
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(records)+1, err)
		}
		records = append(records, toRecord(values))
	}
	err = rows.Err()
	metrics.RecordDBQuery("select", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", RawTable, err)
	}
	return records, nil
}

// toRecord converts one row ordered like accidents.SourceColumns.
func toRecord(values []sql.NullString) accidents.Record {
	get := make(map[accidents.Column]string, len(values))
	for i, c := range accidents.SourceColumns {
		if values[i].Valid {
			get[c] = strings.TrimSpace(values[i].String)
		}
	}

	date, _ := accidents.ParseDate(get[accidents.ColDate])
	return accidents.Record{
		AccidentIndex:      get[accidents.ColAccidentIndex],
		Date:               date,
		Time:               get[accidents.ColTime],
		DayOfWeek:          get[accidents.ColDayOfWeek],
		Severity:           get[accidents.ColSeverity],
		Casualties:         accidents.ParseCount(get[accidents.ColCasualties]),
		Vehicles:           accidents.ParseCount(get[accidents.ColVehicles]),
		JunctionControl:    get[accidents.ColJunctionControl],
		JunctionDetail:     get[accidents.ColJunctionDetail],
		LightConditions:    get[accidents.ColLightConditions],
		RoadSurface:        get[accidents.ColRoadSurface],
		RoadType:           get[accidents.ColRoadType],
		Weather:            get[accidents.ColWeather],
		Area:               get[accidents.ColArea],
		VehicleType:        get[accidents.ColVehicleType],
		PoliceForce:        get[accidents.ColPoliceForce],
		LocalAuthority:     get[accidents.ColLocalAuthority],
		CarriagewayHazards: get[accidents.ColCarriagewayHazards],
		SpeedLimit:         accidents.ParseCount(get[accidents.ColSpeedLimit]),
		Location:           accidents.ParseLocation(get[accidents.ColLatitude], get[accidents.ColLongitude]),
	}
}
