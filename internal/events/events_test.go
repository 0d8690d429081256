// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package events

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"

	"github.com/tomtom215/roadlens/internal/logging"
)

func init() {
	logging.Init(logging.Config{Level: "info", Format: "console", Output: io.Discard})
}

func TestDatasetEventValidate(t *testing.T) {
	tests := []struct {
		name    string
		event   DatasetEvent
		wantErr bool
	}{
		{"reloaded", Reloaded(3, 100, "data.csv", "watch"), false},
		{"failed", ReloadFailed(2, "data.csv", "admin", errors.New("boom")), false},
		{"missing id", DatasetEvent{Type: TypeReloaded, Timestamp: time.Now()}, true},
		{"unknown type", DatasetEvent{ID: "x", Type: "dataset.other", Timestamp: time.Now()}, true},
		{"missing timestamp", DatasetEvent{ID: "x", Type: TypeReloaded}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEvent) {
				t.Errorf("Validate() error = %v, want ErrInvalidEvent", err)
			}
		})
	}
}

func TestReloadFailedCarriesError(t *testing.T) {
	ev := ReloadFailed(7, "data.csv", "watch", errors.New("corrupt gzip"))
	if ev.Error != "corrupt gzip" || ev.Version != 7 {
		t.Errorf("ReloadFailed() = %+v, want error text and version 7", ev)
	}
	data, err := Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.ID != ev.ID || got.Error != ev.Error || !got.Timestamp.Equal(ev.Timestamp) {
		t.Errorf("Unmarshal(Marshal()) = %+v, want %+v", got, ev)
	}
}

func TestMarshalRejectsInvalid(t *testing.T) {
	if _, err := Marshal(DatasetEvent{}); !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("Marshal(empty) error = %v, want ErrInvalidEvent", err)
	}
	if _, err := Unmarshal([]byte("{")); err == nil {
		t.Error("Unmarshal(garbage) error = nil, want error")
	}
}

// recordingPublisher captures external publishes.
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	msgs   []*message.Message
	err    error
	closed bool
}

func (p *recordingPublisher) Publish(topic string, msgs ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	for _, m := range msgs {
		p.topics = append(p.topics, topic)
		p.msgs = append(p.msgs, m)
	}
	return nil
}

func (p *recordingPublisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

func receive(t *testing.T, ch <-chan DatasetEvent) DatasetEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("subscription closed before event arrived")
		}
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return DatasetEvent{}
}

func TestBusPublishSubscribe(t *testing.T) {
	ext := &recordingPublisher{}
	bus := NewBus("roadlens.test", ext, nil)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := bus.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	sent := Reloaded(1, 42, "data.csv", "startup")
	if err := bus.Publish(ctx, sent); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	got := receive(t, ch)
	if got.ID != sent.ID || got.Rows != 42 {
		t.Errorf("received %+v, want %+v", got, sent)
	}

	ext.mu.Lock()
	defer ext.mu.Unlock()
	if len(ext.msgs) != 1 || ext.topics[0] != "roadlens.test" {
		t.Fatalf("external publishes = %d on %v, want 1 on roadlens.test", len(ext.msgs), ext.topics)
	}
	if ext.msgs[0].UUID != sent.ID || ext.msgs[0].Metadata.Get("type") != TypeReloaded {
		t.Errorf("external message = %s/%s, want %s/%s", ext.msgs[0].UUID, ext.msgs[0].Metadata.Get("type"), sent.ID, TypeReloaded)
	}
}

func TestBusExternalFailure(t *testing.T) {
	ext := &recordingPublisher{err: errors.New("nats down")}
	bus := NewBus("roadlens.test", ext, nil)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := bus.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	if err := bus.Publish(ctx, Reloaded(1, 1, "data.csv", "")); err == nil {
		t.Error("Publish() error = nil, want external failure")
	}
	if ev := receive(t, ch); ev.Type != TypeReloaded {
		t.Errorf("local event type = %q, want %q despite external failure", ev.Type, TypeReloaded)
	}
}

func TestBusClosed(t *testing.T) {
	ext := &recordingPublisher{}
	bus := NewBus("roadlens.test", ext, nil)
	if err := bus.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
	if !ext.closed {
		t.Error("external publisher not closed")
	}
	if err := bus.Publish(context.Background(), Reloaded(1, 1, "", "")); !errors.Is(err, ErrBusClosed) {
		t.Errorf("Publish() after Close error = %v, want ErrBusClosed", err)
	}
	if _, err := bus.Subscribe(context.Background()); !errors.Is(err, ErrBusClosed) {
		t.Errorf("Subscribe() after Close error = %v, want ErrBusClosed", err)
	}
}

func TestNATSPublisherWithEmbeddedServer(t *testing.T) {
	srv, err := StartEmbeddedServer("127.0.0.1", -1)
	if err != nil {
		t.Fatalf("StartEmbeddedServer() error = %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	if !srv.Running() {
		t.Fatal("Running() = false, want true")
	}

	nc, err := natsgo.Connect(srv.ClientURL())
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer nc.Close()
	sub, err := nc.SubscribeSync("roadlens.dataset.reloaded")
	if err != nil {
		t.Fatalf("SubscribeSync() error = %v", err)
	}
	if err := nc.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	pub, err := NewNATSPublisher(srv.ClientURL(), nil)
	if err != nil {
		t.Fatalf("NewNATSPublisher() error = %v", err)
	}
	bus := NewBus("roadlens.dataset.reloaded", pub, nil)
	t.Cleanup(func() { _ = bus.Close() })

	sent := Reloaded(5, 10, "data.csv", "admin")
	if err := bus.Publish(context.Background(), sent); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	msg, err := sub.NextMsg(5 * time.Second)
	if err != nil {
		t.Fatalf("NextMsg() error = %v", err)
	}
	got, err := Unmarshal(msg.Data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.ID != sent.ID || got.Version != 5 {
		t.Errorf("NATS event = %+v, want %+v", got, sent)
	}
}
