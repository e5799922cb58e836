// Package realtime fans deal room events out to connected websocket clients.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	sendBuffer   = 64
	writeTimeout = 10 * time.Second
	pingInterval = 25 * time.Second
	pingTimeout  = 5 * time.Second
)

// Event is the JSON frame pushed to subscribers.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Client is one websocket subscribed to a deal room.
type Client struct {
	DealID string
	Conn   *websocket.Conn
	Send   chan Event

	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger
}

// Hub tracks subscribers per deal.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
	logger  *slog.Logger
}

// NewHub returns an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: map[string]map[*Client]struct{}{},
		logger:  logger,
	}
}

// AddClient registers conn under dealID and starts its write and keep-alive loops.
func (h *Hub) AddClient(dealID string, conn *websocket.Conn) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Client{
		DealID: dealID,
		Conn:   conn,
		Send:   make(chan Event, sendBuffer),
		ctx:    ctx,
		cancel: cancel,
		logger: h.logger,
	}

	h.mu.Lock()
	if h.clients[dealID] == nil {
		h.clients[dealID] = map[*Client]struct{}{}
	}
	h.clients[dealID][c] = struct{}{}
	h.mu.Unlock()

	go c.writeLoop()
	go c.keepAliveLoop()

	return c
}

// RemoveClient stops the client's loops and closes its connection.
func (h *Hub) RemoveClient(c *Client) {
	c.cancel()

	h.mu.Lock()
	if set, ok := h.clients[c.DealID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.DealID)
		}
	}
	h.mu.Unlock()

	_ = c.Conn.Close(websocket.StatusNormalClosure, "bye")
}

// Publish queues an event for every subscriber of dealID. Slow clients with a
// full buffer miss the event.
func (h *Hub) Publish(dealID, event string, payload any) {
	ev := Event{Type: event, Data: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[dealID] {
		select {
		case c.Send <- ev:
		default:
			h.logger.Warn("dropping deal event", slog.String("deal_id", dealID), slog.String("event", event))
		}
	}
}

// Subscribers reports how many clients are attached to dealID.
func (h *Hub) Subscribers(dealID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[dealID])
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	all := h.clients
	h.clients = map[string]map[*Client]struct{}{}
	h.mu.Unlock()

	for _, set := range all {
		for c := range set {
			c.cancel()
			_ = c.Conn.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

func (c *Client) writeLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case ev := <-c.Send:
			writeCtx, cancel := context.WithTimeout(c.ctx, writeTimeout)
			if err := wsjson.Write(writeCtx, c.Conn, ev); err != nil {
				c.logger.Debug("websocket write failed", slog.String("deal_id", c.DealID), slog.String("error", err.Error()))
			}
			cancel()
		}
	}
}

func (c *Client) keepAliveLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(c.ctx, pingTimeout)
			_ = c.Conn.Ping(pingCtx)
			cancel()
		}
	}
}
