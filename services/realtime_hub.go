package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/themisatsal/hilla-mobile-sub000/models"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub fans refreshed daily summaries out to a user's open websocket
// clients so rings update live after every recompute.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

type summaryEvent struct {
	Type string           `json:"type"`
	Data *models.DailyLog `json:"data"`
}

func (h *RealtimeHub) BroadcastSummary(userID uint, log *models.DailyLog) {
	msg, _ := json.Marshal(summaryEvent{Type: "summary.updated", Data: log})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
