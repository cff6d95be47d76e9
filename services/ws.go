package services

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/zemengames/bingo-live/utils/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades a spectator connection for a session and
// registers it with the hub. The client gets one snapshot event on
// connect so displays render without waiting for the next mutation.
func HandleWebSocket(hub *Hub, sessions *SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		externalID := c.Param("id")
		session, err := sessions.Get(c.Request.Context(), externalID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Errorf("[Hub] upgrade error: %v", err)
			return
		}

		client := &Client{
			sessionID: session.ExternalID,
			conn:      conn,
			hub:       hub,
			send:      make(chan []byte, 32),
		}
		hub.register(client)

		snapshot, _ := json.Marshal(StateEvent{
			SessionID:    session.ExternalID,
			Status:       session.Status,
			CurrentRound: session.CurrentRound,
			Kind:         ChangeStatus,
			Timestamp:    time.Now().UnixMilli(),
		})
		client.send <- snapshot

		go client.writePump()
		go client.readPump()
	}
}
