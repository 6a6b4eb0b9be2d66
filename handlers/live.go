// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/starvote/arena"
	"github.com/danielhkuo/starvote/live"
	"github.com/danielhkuo/starvote/models"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type LiveHandler struct {
	arena    *arena.Arena
	hub      *live.Hub
	upgrader websocket.Upgrader
}

func NewLiveHandler(a *arena.Arena, hub *live.Hub) *LiveHandler {
	return &LiveHandler{
		arena: a,
		hub:   hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Subscribe handles GET /ws
// Sends the current state right away, then every state change. Messages
// from the client are ignored.
func (h *LiveHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	client := h.hub.Register()
	defer h.hub.Unregister(client)

	st, err := h.arena.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to snapshot state for live client", "error", err)
		return
	}
	first, err := json.Marshal(models.Event{Type: models.EventState, State: st})
	if err != nil {
		slog.Error("failed to encode live event", "error", err)
		return
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, first); err != nil {
		return
	}

	// Reader: only needed for pongs and close detection
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-readDone:
			return
		case msg, ok := <-client.Send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, h.dropReason())
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// dropReason builds the close frame for a client the hub let go
func (h *LiveHandler) dropReason() []byte {
	select {
	case <-h.hub.Done():
		return websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	default:
		return websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too slow")
	}
}
