package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"mesaPos/internal/modules/realtime/domain"
)

// Hub fans broadcast messages out to every currently connected client. There
// is no backlog: a client connected after an event was published never sees it.
type Hub struct {
	clients map[*Client]struct{}
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// AttachClient registers the client as a receiver of every broadcast message.
func (h *Hub) AttachClient(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	slog.Info("ws client attached", slog.String("userId", c.userID), slog.String("remote", c.remoteAddr))
}

func (h *Hub) detachClient(c *Client) {
	h.mu.Lock()
	_, known := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if known {
		c.close()
		slog.Info("ws client detached", slog.String("userId", c.userID), slog.String("remote", c.remoteAddr))
	}
}

// ClientCount reports how many clients are currently attached.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends the message to every attached client. Clients whose send
// buffer is full are detached rather than allowed to block the publisher.
func (h *Hub) Broadcast(_ context.Context, msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("broadcast marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		case <-c.done:
			// Client is shutting down; WritePump no longer drains send.
		default:
			slog.Warn("ws send buffer full, dropping client", slog.String("userId", c.userID))
			go h.detachClient(c)
		}
	}
}
