// Package wss pushes refresh notifications to connected clients so every
// viewer observes the same, singly-computed snapshot without polling.
package wss

import (
	"log"
	"sync"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
	"github.com/gorilla/websocket"
)

// RefreshEvent is broadcast after every successful refresh cycle.
// Clients re-read the snapshot through the HTTP API on receipt.
type RefreshEvent struct {
	Type        string `json:"type"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	GeneratedAt int64  `json:"generatedAt"`
	UserCount   int    `json:"userCount"`
}

// Hub tracks connected WebSocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Register adds a connection to the broadcast set.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	count := len(h.clients)
	h.mu.Unlock()
	log.Printf("[WS] client connected (total: %d)", count)
}

// Unregister removes and closes a connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
	count := len(h.clients)
	h.mu.Unlock()
	log.Printf("[WS] client disconnected (total: %d)", count)
}

// NotifyRefresh implements leaderboard.Notifier. Clients that fail the
// write are dropped.
func (h *Hub) NotifyRefresh(lb *model.MonthlyLeaderboard) {
	event := RefreshEvent{
		Type:        "leaderboard_refreshed",
		Month:       lb.Month,
		Year:        lb.Year,
		GeneratedAt: lb.GeneratedAt,
		UserCount:   len(lb.Users),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("[WS] dropping client after write error: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
