package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zemengames/bingo-live/models"
	"github.com/zemengames/bingo-live/utils/logger"
)

// ChangeKind tags what mutated. The payload is a signal-to-refresh, not a
// state transfer: subscribers re-fetch the session view on receipt.
type ChangeKind string

const (
	ChangeStatus ChangeKind = "status"
	ChangeRound  ChangeKind = "round"
	ChangeDraw   ChangeKind = "draw"
	ChangeWinner ChangeKind = "winner"
	ChangePrize  ChangeKind = "prize"
	ChangePlayer ChangeKind = "player"
)

// StateEvent is the compact snapshot published after every mutation.
type StateEvent struct {
	SessionID    string     `json:"session_id"`
	Status       string     `json:"status"`
	CurrentRound int        `json:"current_round"`
	Kind         ChangeKind `json:"kind"`
	Timestamp    int64      `json:"ts"` // unix millis, monotonic per session by commit order
}

// Broadcaster publishes state-changed events to a Redis channel per
// session. Delivery is at-least-once and unordered; publish failures are
// logged, never surfaced to the gameplay caller.
type Broadcaster struct {
	redis *redis.Client
}

func NewBroadcaster(rdb *redis.Client) *Broadcaster {
	return &Broadcaster{redis: rdb}
}

// ChannelFor returns the pub/sub channel for a session's external id.
func ChannelFor(externalID string) string {
	return "session:" + externalID
}

// Publish fires the post-commit snapshot. Called after the transaction
// commits and before the operation returns to its caller.
func (b *Broadcaster) Publish(ctx context.Context, session *models.Session, kind ChangeKind) {
	event := StateEvent{
		SessionID:    session.ExternalID,
		Status:       session.Status,
		CurrentRound: session.CurrentRound,
		Kind:         kind,
		Timestamp:    time.Now().UnixMilli(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Errorf("[Broadcast] marshal event for session %s: %v", session.ExternalID, err)
		return
	}

	if err := b.redis.Publish(ctx, ChannelFor(session.ExternalID), payload).Err(); err != nil {
		logger.Errorf("[Broadcast] publish to %s: %v", ChannelFor(session.ExternalID), err)
	}
}
