// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/dataset"
	"github.com/tomtom215/roadlens/internal/logging"
)

// Reloader is the part of *dataset.Manager the load service drives.
type Reloader interface {
	Reload(ctx context.Context, reason string) (*accidents.Snapshot, error)
}

// DatasetLoadService performs the startup load in the background so the
// HTTP server can answer health probes (503 until ready) while a large file
// is read. A failed load is returned to suture, which retries it with
// backoff; a successful one ends the service.
type DatasetLoadService struct {
	reloader Reloader
	name     string
}

// NewDatasetLoadService wraps reloader.
func NewDatasetLoadService(reloader Reloader) *DatasetLoadService {
	return &DatasetLoadService{reloader: reloader, name: "dataset-load"}
}

// Serve implements suture.Service.
func (s *DatasetLoadService) Serve(ctx context.Context) error {
	snap, err := s.reloader.Reload(ctx, dataset.ReasonStartup)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("startup load: %w", err)
	}
	logging.Info().
		Uint64("version", snap.Version()).
		Int("rows", snap.Len()).
		Msg("Dataset ready")
	return suture.ErrDoNotRestart
}

// String names the service in supervisor logs.
func (s *DatasetLoadService) String() string {
	return s.name
}
