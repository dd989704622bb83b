// Package ws relays direct messages to connected clients over WebSocket.
package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Conn wraps a websocket connection with a write lock. gorilla/websocket
// allows only one concurrent writer per connection, and both the relay
// fan-out and the per-connection ping loop write, so every write goes
// through here.
type Conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

// NewConn wraps an upgraded websocket connection.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// WriteJSON writes the payload as one JSON message under the write lock.
func (c *Conn) WriteJSON(payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.ws.WriteJSON(payload)
}

// Ping writes a ping control frame under the write lock.
func (c *Conn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.ws.WriteMessage(websocket.PingMessage, nil)
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.ws.Close()
}

// Hub tracks the open connections per user. A user may hold several
// connections (multiple tabs or devices); every one of them receives
// relayed messages.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Conn]bool
	logger  *slog.Logger
}

// NewHub is the constructor for Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[int64]map[*Conn]bool),
		logger:  logger,
	}
}

// Register adds a connection to the user's channel.
func (h *Hub) Register(userID int64, conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Conn]bool)
	}
	h.clients[userID][conn] = true
}

// Unregister removes a connection from the user's channel.
func (h *Hub) Unregister(userID int64, conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(userID, conn)
}

// SendToUser writes the payload as JSON to every connection the user
// holds. Connections that fail the write are dropped.
func (h *Hub) SendToUser(userID int64, payload any) {
	h.mu.RLock()
	conns := make([]*Conn, 0, len(h.clients[userID]))
	for conn := range h.clients[userID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(payload); err != nil {
			h.drop(userID, conn, err)
		}
	}
}

// ConnectionCount reports how many connections the user currently holds.
func (h *Hub) ConnectionCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[userID])
}

func (h *Hub) drop(userID int64, conn *Conn, err error) {
	h.logger.Warn("Dropping websocket connection",
		slog.Int64("userID", userID), slog.Any("error", err))

	h.mu.Lock()
	h.removeLocked(userID, conn)
	h.mu.Unlock()

	conn.Close()
}

func (h *Hub) removeLocked(userID int64, conn *Conn) {
	if conns, ok := h.clients[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.clients, userID)
		}
	}
}
