// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package websocket

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/roadlens/internal/events"
	"github.com/tomtom215/roadlens/internal/logging"
)

func init() {
	logging.Init(logging.Config{Level: "info", Format: "console", Output: io.Discard})
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	})
	return hub
}

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(Handler(hub, []string{"*"}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	return msg
}

func TestHubBroadcastDataset(t *testing.T) {
	hub := startHub(t)
	a := dial(t, hub)
	b := dial(t, hub)
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.BroadcastDataset(events.Reloaded(3, 120, "data.csv", "watch"))

	for _, conn := range []*websocket.Conn{a, b} {
		msg := readMessage(t, conn)
		if msg.Type != MessageTypeDatasetReloaded {
			t.Errorf("message type = %q, want %q", msg.Type, MessageTypeDatasetReloaded)
		}
		data, ok := msg.Data.(map[string]any)
		if !ok || data["version"] != float64(3) {
			t.Errorf("message data = %v, want version 3", msg.Data)
		}
	}
}

func TestHubReloadFailedMessage(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.BroadcastDataset(events.DatasetEvent{Type: "dataset.unknown"})
	hub.BroadcastDataset(events.ReloadFailed(1, "data.csv", "watch", errors.New("bad gzip")))

	if msg := readMessage(t, conn); msg.Type != MessageTypeReloadFailed {
		t.Errorf("message type = %q, want %q (unknown events are skipped)", msg.Type, MessageTypeReloadFailed)
	}
}

func TestClientPingPong(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub)

	if err := conn.WriteJSON(Message{Type: MessageTypePing}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if msg := readMessage(t, conn); msg.Type != MessageTypePong {
		t.Errorf("reply type = %q, want %q", msg.Type, MessageTypePong)
	}
}

func TestClientDisconnectUnregisters(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	_ = conn.Close()
	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Serve(ctx) }()

	conn := dial(t, hub)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	cancel()
	<-done
	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() after shutdown = %d, want 0", hub.ClientCount())
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("ReadMessage() after shutdown error = nil, want close")
	}
}

func TestRelay(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	bus := events.NewBus("roadlens.test", nil, nil)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	relay := NewRelay(bus, hub)
	done := make(chan error, 1)
	go func() { done <- relay.Serve(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	// the relay subscribes asynchronously; keep publishing until one lands
	got := make(chan Message, 1)
	go func() {
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		var msg Message
		if err := conn.ReadJSON(&msg); err == nil {
			got <- msg
		}
		close(got)
	}()
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-got:
			if !ok {
				t.Fatal("no relayed message received")
			}
			if msg.Type != MessageTypeDatasetReloaded {
				t.Errorf("relayed type = %q, want %q", msg.Type, MessageTypeDatasetReloaded)
			}
			return
		case <-ticker.C:
			if err := bus.Publish(ctx, events.Reloaded(1, 1, "data.csv", "test")); err != nil {
				t.Fatalf("Publish() error = %v", err)
			}
		}
	}
}

func TestOriginChecker(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"wildcard", []string{"*"}, "https://evil.example", true},
		{"listed", []string{"https://dash.example"}, "https://dash.example", true},
		{"unlisted", []string{"https://dash.example"}, "https://evil.example", false},
		{"no origin header", []string{"https://dash.example"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			if got := originChecker(tt.allowed)(r); got != tt.want {
				t.Errorf("originChecker(%v)(%q) = %v, want %v", tt.allowed, tt.origin, got, tt.want)
			}
		})
	}
}
