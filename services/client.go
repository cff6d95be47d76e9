package services

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/zemengames/bingo-live/utils/logger"
)

// Client is one spectator connection bound to a session.
type Client struct {
	sessionID string
	conn      *websocket.Conn
	hub       *Hub
	send      chan []byte
	once      sync.Once
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// readPump drains incoming frames. Spectators don't send anything useful,
// but the read loop is what detects the disconnect.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("[Hub] spectator left session %s", c.sessionID)
			} else {
				logger.Debugf("[Hub] read error on session %s: %v", c.sessionID, err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debugf("[Hub] write error on session %s: %v", c.sessionID, err)
			return
		}
	}
}
