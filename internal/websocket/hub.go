// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package websocket pushes dataset notifications to dashboard clients.
//
// Clients connect to /api/v1/ws and receive a message whenever the dataset
// is reloaded (or a reload fails), so an open dashboard can refetch its
// charts. Clients may send {"type":"ping"} and receive {"type":"pong"}.
//
// The Hub owns the client set and runs as a supervised service. Broadcast
// order across clients is deterministic (ascending client ID).
package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/tomtom215/roadlens/internal/events"
	"github.com/tomtom215/roadlens/internal/logging"
	"github.com/tomtom215/roadlens/internal/metrics"
)

// Message types.
const (
	MessageTypeDatasetReloaded = "dataset_reloaded"
	MessageTypeReloadFailed    = "dataset_reload_failed"
	MessageTypePing            = "ping"
	MessageTypePong            = "pong"
)

// Message is the wire format in both directions.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub tracks connected clients and fans out broadcasts.
type Hub struct {
	clients   map[*Client]bool
	broadcast chan Message
	mu        sync.RWMutex
}

// NewHub creates a hub. Call Serve to start delivering broadcasts.
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*Client]bool),
		broadcast: make(chan Message, 256),
	}
}

// Serve delivers broadcasts until ctx is cancelled, then closes every
// client.
func (h *Hub) Serve(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			n := h.closeAll()
			logging.Info().Str("component", "websocket-hub").Int("clients_closed", n).Msg("WebSocket hub stopped")
			return ctx.Err()
		case msg := <-h.broadcast:
			h.fanOut(msg)
		}
	}
}

// String identifies the service in supervisor logs.
func (h *Hub) String() string {
	return "websocket-hub"
}

// Register adds a client.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	n := len(h.clients)
	h.mu.Unlock()
	metrics.WSConnections.Set(float64(n))
	logging.Debug().Uint64("client", c.id).Int("total_clients", n).Msg("WebSocket client connected")
}

// Unregister removes a client and closes its send queue. Unknown clients
// are ignored.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	metrics.WSConnections.Set(float64(n))
	logging.Debug().Uint64("client", c.id).Int("total_clients", n).Msg("WebSocket client disconnected")
}

// sortedClients must be called with h.mu held.
func (h *Hub) sortedClients() []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].id < clients[j].id })
	return clients
}

// fanOut drops clients whose send buffer is full.
func (h *Hub) fanOut(msg Message) {
	h.mu.Lock()
	var slow []*Client
	for _, c := range h.sortedClients() {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	for _, c := range slow {
		close(c.send)
		delete(h.clients, c)
	}
	n := len(h.clients)
	h.mu.Unlock()

	if len(slow) > 0 {
		metrics.WSConnections.Set(float64(n))
		logging.Warn().Int("dropped", len(slow)).Msg("Dropped slow WebSocket clients")
	}
}

func (h *Hub) closeAll() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := h.sortedClients()
	for _, c := range clients {
		close(c.send)
		delete(h.clients, c)
	}
	metrics.WSConnections.Set(0)
	return len(clients)
}

// BroadcastJSON queues a message for every client. It never blocks; when
// the queue is full the message is dropped.
func (h *Hub) BroadcastJSON(messageType string, data any) {
	select {
	case h.broadcast <- Message{Type: messageType, Data: data}:
	default:
		logging.Warn().Str("message_type", messageType).Msg("Broadcast channel full, dropping message")
	}
}

// BroadcastDataset maps a dataset event onto its client message type.
func (h *Hub) BroadcastDataset(ev events.DatasetEvent) {
	switch ev.Type {
	case events.TypeReloaded:
		h.BroadcastJSON(MessageTypeDatasetReloaded, ev)
	case events.TypeReloadFailed:
		h.BroadcastJSON(MessageTypeReloadFailed, ev)
	default:
		logging.Debug().Str("type", ev.Type).Msg("Ignoring unknown dataset event")
	}
}

// ClientCount is the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
