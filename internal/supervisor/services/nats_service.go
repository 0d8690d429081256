// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"
)

// Broker is the lifecycle part of *events.EmbeddedServer.
type Broker interface {
	Running() bool
	Shutdown(ctx context.Context) error
}

// ErrBrokerStopped is returned when the embedded broker exits on its own.
var ErrBrokerStopped = errors.New("embedded NATS broker stopped")

// EmbeddedNATSService owns a broker started before the tree so that the
// event publisher can connect during startup. It shuts the broker down with
// the tree.
//
// A broker that dies cannot be restarted in place, so Serve then returns
// ErrBrokerStopped together with suture.ErrDoNotRestart. Events keep flowing
// in process; only external delivery stops.
type EmbeddedNATSService struct {
	broker          Broker
	shutdownTimeout time.Duration
	checkInterval   time.Duration
	name            string
}

// NewEmbeddedNATSService wraps broker.
func NewEmbeddedNATSService(broker Broker, shutdownTimeout time.Duration) *EmbeddedNATSService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &EmbeddedNATSService{
		broker:          broker,
		shutdownTimeout: shutdownTimeout,
		checkInterval:   5 * time.Second,
		name:            "nats-embedded",
	}
}

// Serve implements suture.Service.
func (s *EmbeddedNATSService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
			defer cancel()
			if err := s.broker.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("nats shutdown failed: %w", err)
			}
			return ctx.Err()
		case <-ticker.C:
			if !s.broker.Running() {
				return fmt.Errorf("%w: %w", ErrBrokerStopped, suture.ErrDoNotRestart)
			}
		}
	}
}

// String names the service in supervisor logs.
func (s *EmbeddedNATSService) String() string {
	return s.name
}
