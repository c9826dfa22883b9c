// Package hub tracks connected websocket clients and fans realtime events
// out to them. A user may hold several connections (multiple tabs); events
// addressed to a user go to every connection they own.
package hub

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"chatty/backend/pkg/logger"
)

// EventOnlineUsers is broadcast to everyone when the set of connected users
// changes.
const EventOnlineUsers = "onlineUsers"

type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// conn abstracts a websocket connection so tests can substitute a recorder.
type conn interface {
	send(v interface{}) error
	close() error
}

type wsConn struct {
	ws *websocket.Conn
}

func (c *wsConn) send(v interface{}) error { return websocket.JSON.Send(c.ws, v) }
func (c *wsConn) close() error             { return c.ws.Close() }

type Hub struct {
	mu    sync.RWMutex
	conns map[int64]map[string]conn
}

func New() *Hub {
	return &Hub{conns: map[int64]map[string]conn{}}
}

// Serve registers the connection and blocks until the peer disconnects.
// Incoming frames are drained and ignored; the protocol is server-to-client.
func (h *Hub) Serve(userID int64, ws *websocket.Conn) {
	id := h.register(userID, &wsConn{ws: ws})
	h.broadcastOnline()
	defer func() {
		h.unregister(userID, id)
		h.broadcastOnline()
	}()

	for {
		var discard string
		if err := websocket.Message.Receive(ws, &discard); err != nil {
			return
		}
	}
}

// Emit sends one event to every connection the user currently holds. A dead
// connection is dropped on send failure; its read loop ends it for good.
func (h *Hub) Emit(userID int64, event string, payload interface{}) {
	h.mu.RLock()
	targets := make([]conn, 0, len(h.conns[userID]))
	for _, c := range h.conns[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(envelope{Event: event, Data: payload}); err != nil {
			logger.Debug("websocket send failed", "userId", userID, "event", event, "error", err)
			_ = c.close()
		}
	}
}

// OnlineUserIDs returns the IDs of users with at least one open connection.
func (h *Hub) OnlineUserIDs() []int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]int64, 0, len(h.conns))
	for id := range h.conns {
		ids = append(ids, id)
	}
	return ids
}

func (h *Hub) register(userID int64, c conn) string {
	id := uuid.NewString()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = map[string]conn{}
	}
	h.conns[userID][id] = c
	return id
}

func (h *Hub) unregister(userID int64, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[userID], id)
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
}

func (h *Hub) broadcastOnline() {
	online := h.OnlineUserIDs()

	h.mu.RLock()
	targets := make([]conn, 0)
	for _, userConns := range h.conns {
		for _, c := range userConns {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(envelope{Event: EventOnlineUsers, Data: online}); err != nil {
			_ = c.close()
		}
	}
}
