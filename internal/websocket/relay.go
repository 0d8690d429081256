// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/roadlens/internal/events"
)

// Subscriber yields dataset events. *events.Bus satisfies it.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan events.DatasetEvent, error)
}

// Relay forwards dataset events from the bus to the hub. It implements
// suture.Service.
type Relay struct {
	sub Subscriber
	hub *Hub
}

// NewRelay creates a relay from sub to hub.
func NewRelay(sub Subscriber, hub *Hub) *Relay {
	return &Relay{sub: sub, hub: hub}
}

// Serve relays until ctx is cancelled. A closed subscription is an error so
// the supervisor restarts the relay.
func (r *Relay) Serve(ctx context.Context) error {
	ch, err := r.sub.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("relay subscribe: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return errors.New("event subscription closed")
			}
			r.hub.BroadcastDataset(ev)
		}
	}
}

// String identifies the service in supervisor logs.
func (r *Relay) String() string {
	return "websocket-relay"
}
