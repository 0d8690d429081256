// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package events carries dataset lifecycle notifications.
//
// Every reload outcome becomes a DatasetEvent published on an in-process
// Watermill GoChannel. The websocket relay subscribes there. When NATS is
// configured the same message is forwarded to an external subject so other
// services can react to new data.
package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Event types.
const (
	TypeReloaded     = "dataset.reloaded"
	TypeReloadFailed = "dataset.reload_failed"
)

// ErrInvalidEvent is returned by Validate.
var ErrInvalidEvent = errors.New("invalid dataset event")

// DatasetEvent describes one reload attempt.
type DatasetEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Version   uint64    `json:"version"`
	Rows      int       `json:"rows"`
	Source    string    `json:"source"`
	Reason    string    `json:"reason,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Reloaded builds the event for a successful load.
func Reloaded(version uint64, rows int, source, reason string) DatasetEvent {
	return DatasetEvent{
		ID:        uuid.NewString(),
		Type:      TypeReloaded,
		Version:   version,
		Rows:      rows,
		Source:    source,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
}

// ReloadFailed builds the event for a failed load. version is the snapshot
// that keeps serving.
func ReloadFailed(version uint64, source, reason string, err error) DatasetEvent {
	ev := DatasetEvent{
		ID:        uuid.NewString(),
		Type:      TypeReloadFailed,
		Version:   version,
		Source:    source,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		ev.Error = err.Error()
	}
	return ev
}

// Validate checks the fields every consumer relies on.
func (e DatasetEvent) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidEvent)
	}
	switch e.Type {
	case TypeReloaded, TypeReloadFailed:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	if e.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidEvent)
	}
	return nil
}

// Marshal validates and encodes the event.
func Marshal(e DatasetEvent) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// Unmarshal decodes an event.
func Unmarshal(data []byte) (DatasetEvent, error) {
	var e DatasetEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return DatasetEvent{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return e, nil
}
