// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/roadlens/internal/metrics"
)

// ErrBusClosed is returned after Close.
var ErrBusClosed = errors.New("event bus is closed")

// Destinations used in metrics.
const (
	DestinationLocal = "local"
	DestinationNATS  = "nats"
)

// Bus publishes dataset events in process and, optionally, to an external
// Watermill publisher.
type Bus struct {
	local    *gochannel.GoChannel
	external message.Publisher
	topic    string
	logger   watermill.LoggerAdapter

	mu     sync.RWMutex
	closed bool
}

// NewBus creates a bus on topic. external may be nil.
func NewBus(topic string, external message.Publisher, logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = NewLogger()
	}
	return &Bus{
		local: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, logger),
		external: external,
		topic:    topic,
		logger:   logger,
	}
}

// Topic is the subject events are published on.
func (b *Bus) Topic() string {
	return b.topic
}

// Publish sends ev to local subscribers and then to the external publisher.
// An external failure is returned but local delivery has already happened.
func (b *Bus) Publish(_ context.Context, ev DatasetEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	data, err := Marshal(ev)
	if err != nil {
		return err
	}

	msg := message.NewMessage(ev.ID, data)
	msg.Metadata.Set("type", ev.Type)
	if err := b.local.Publish(b.topic, msg); err != nil {
		return fmt.Errorf("publish local: %w", err)
	}
	metrics.EventsPublished.WithLabelValues(DestinationLocal).Inc()

	if b.external == nil {
		return nil
	}
	// the local subscriber owns msg's ack state, so the external copy is separate
	out := message.NewMessage(ev.ID, data)
	out.Metadata.Set("type", ev.Type)
	if err := b.external.Publish(b.topic, out); err != nil {
		b.logger.Error("External publish failed", err, watermill.LogFields{"event_id": ev.ID})
		return fmt.Errorf("publish external: %w", err)
	}
	metrics.EventsPublished.WithLabelValues(DestinationNATS).Inc()
	return nil
}

// Subscribe returns decoded events until ctx is cancelled or the bus closes.
// Undecodable messages are logged and dropped.
func (b *Bus) Subscribe(ctx context.Context) (<-chan DatasetEvent, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil, ErrBusClosed
	}

	msgs, err := b.local.Subscribe(ctx, b.topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	out := make(chan DatasetEvent, 16)
	go func() {
		defer close(out)
		for msg := range msgs {
			ev, err := Unmarshal(msg.Payload)
			msg.Ack()
			if err != nil {
				b.logger.Error("Dropping undecodable event", err, watermill.LogFields{"uuid": msg.UUID})
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close shuts down local delivery and the external publisher.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	err := b.local.Close()
	if b.external != nil {
		err = errors.Join(err, b.external.Close())
	}
	return err
}
