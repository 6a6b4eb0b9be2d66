// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package live

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/danielhkuo/starvote/models"
)

// SendBuffer is the number of pending events a client may queue before
// it is disconnected.
const SendBuffer = 16

// Client is one subscriber. Events arrive on Send; the channel is closed
// when the hub drops the client.
type Client struct {
	ID   uint64
	Send chan []byte
}

// Hub fans state events out to every connected client.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
	nextID  atomic.Uint64
	closed  bool
	done    chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		done:    make(chan struct{}),
	}
}

func (h *Hub) Register() *Client {
	c := &Client{
		ID:   h.nextID.Add(1),
		Send: make(chan []byte, SendBuffer),
	}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(c.Send)
		return c
	}
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	slog.Debug("live client registered", "client", c.ID, "clients", n)
	return c
}

// Unregister removes c and closes its channel. Safe to call more than once.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

func (h *Hub) dropLocked(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.Send)
}

// Broadcast queues msg for every client. Clients with a full buffer are
// dropped rather than blocking the publisher.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			slog.Warn("dropping slow live client", "client", c.ID)
			h.dropLocked(c)
		}
	}
}

// Publish encodes the event and broadcasts it.
func (h *Hub) Publish(ev models.Event) {
	b, err := json.Marshal(ev)
	if err != nil {
		slog.Error("failed to encode live event", "error", err)
		return
	}
	h.Broadcast(b)
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Done is closed once Close has been called. A client whose Send channel
// closes after Done was dropped for shutdown, not for being slow.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Close drops every client. Clients registered afterwards start closed.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	close(h.done)
	for c := range h.clients {
		h.dropLocked(c)
	}
}
