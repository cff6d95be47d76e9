package services

import (
	"context"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/zemengames/bingo-live/utils/logger"
)

// Hub relays broadcast events to spectator WebSocket clients. It holds a
// pattern subscription over every session channel and fans each message
// out to the clients watching that session. Clients re-fetch the session
// view on every signal; the hub never accumulates state for them.
type Hub struct {
	redis *redis.Client

	mu      sync.RWMutex
	clients map[string]map[*Client]bool // session external id -> clients
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		redis:   rdb,
		clients: make(map[string]map[*Client]bool),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	if h.clients[c.sessionID] == nil {
		h.clients[c.sessionID] = make(map[*Client]bool)
	}
	h.clients[c.sessionID][c] = true
	total := len(h.clients[c.sessionID])
	h.mu.Unlock()

	logger.Infof("[Hub] spectator joined session %s (watching=%d)", c.sessionID, total)
}

func (h *Hub) unregister(c *Client) {
	h.unregisterEntry(c)
	c.Close()
}

// unregisterEntry removes the client from the watcher map without
// touching the connection.
func (h *Hub) unregisterEntry(c *Client) {
	h.mu.Lock()
	if watchers, ok := h.clients[c.sessionID]; ok {
		delete(watchers, c)
		if len(watchers) == 0 {
			delete(h.clients, c.sessionID)
		}
	}
	h.mu.Unlock()
}

// Run consumes the session:* pattern subscription until the context is
// cancelled.
func (h *Hub) Run(ctx context.Context) {
	sub := h.redis.PSubscribe(ctx, ChannelFor("*"))
	defer sub.Close()

	logger.Info("[Hub] subscribed to session events")
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			sessionID := strings.TrimPrefix(msg.Channel, "session:")
			h.fanOut(sessionID, []byte(msg.Payload))
		}
	}
}

func (h *Hub) fanOut(sessionID string, payload []byte) {
	h.mu.RLock()
	watchers := make([]*Client, 0, len(h.clients[sessionID]))
	for c := range h.clients[sessionID] {
		watchers = append(watchers, c)
	}
	h.mu.RUnlock()

	for _, c := range watchers {
		// A spectator can disconnect mid-fan-out and close its send
		// channel; the recover keeps one dead client from killing the
		// relay goroutine.
		func(c *Client) {
			defer func() {
				if r := recover(); r != nil {
					logger.Debugf("[Hub] recovered send to spectator on session %s: %v", sessionID, r)
				}
			}()
			select {
			case c.send <- payload:
			default:
				logger.Debugf("[Hub] dropping event for slow spectator on session %s", sessionID)
			}
		}(c)
	}
}
