package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zemengames/bingo-live/game"
	"github.com/zemengames/bingo-live/models"
	"github.com/zemengames/bingo-live/utils/logger"
)

// SessionService is the sole writer of session status, current_round and
// finished_at. Every transition runs in one transaction holding a row
// lock on the session, and publishes one state event after commit.
type SessionService struct {
	db          *gorm.DB
	broadcaster *Broadcaster
	ranking     *RankingService
}

func NewSessionService(db *gorm.DB, broadcaster *Broadcaster, ranking *RankingService) *SessionService {
	return &SessionService{db: db, broadcaster: broadcaster, ranking: ranking}
}

type PrizeSpec struct {
	Position int    `json:"position"`
	Name     string `json:"name" binding:"required"`
}

type CreateSessionRequest struct {
	CreatorID uint            `json:"creator_id" binding:"required"`
	MaxRounds int             `json:"max_rounds" binding:"required,min=1"`
	Pattern   json.RawMessage `json:"pattern"`
	Prizes    []PrizeSpec     `json:"prizes"`
}

const inviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newInviteCode() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(inviteAlphabet[r.Intn(len(inviteAlphabet))])
	}
	return b.String()
}

// Create builds a session in draft with identity and defaults assigned up
// front, plus its prize slots.
func (s *SessionService) Create(ctx context.Context, req *CreateSessionRequest) (*models.Session, error) {
	session := models.Session{
		ExternalID:   uuid.NewString(),
		InviteCode:   newInviteCode(),
		Status:       string(game.StatusDraft),
		CurrentRound: 1,
		MaxRounds:    req.MaxRounds,
		CreatorID:    req.CreatorID,
	}
	if len(req.Pattern) > 0 {
		session.PatternJSON = datatypes.JSON(req.Pattern)
	}
	for i, p := range req.Prizes {
		position := p.Position
		if position == 0 {
			position = i + 1
		}
		session.Prizes = append(session.Prizes, models.Prize{Position: position, Name: p.Name})
	}

	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	logger.Infof("[Session %s] created with %d prizes, max_rounds=%d", session.ExternalID, len(session.Prizes), session.MaxRounds)
	return &session, nil
}

// Get loads a session with its prizes by external id.
func (s *SessionService) Get(ctx context.Context, externalID string) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Preload("Prizes").
		Where("external_id = ?", externalID).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Join adds a player to a session by invite code. Joining is legal while
// the session is waiting or active.
func (s *SessionService) Join(ctx context.Context, inviteCode string, userID uint) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("invite_code = ?", inviteCode).
			First(&session).Error; err != nil {
			return err
		}
		switch game.SessionStatus(session.Status) {
		case game.StatusWaiting, game.StatusActive:
		default:
			return game.ErrInvalidTransition
		}
		member := models.Membership{SessionID: session.ID, UserID: userID, JoinedAt: time.Now()}
		return tx.Where(models.Membership{SessionID: session.ID, UserID: userID}).
			FirstOrCreate(&member).Error
	})
	if err != nil {
		return nil, err
	}

	s.broadcaster.Publish(ctx, &session, ChangePlayer)
	return &session, nil
}

// Open moves draft -> waiting, making the invite code usable.
func (s *SessionService) Open(ctx context.Context, externalID string) (*models.Session, error) {
	return s.transition(ctx, externalID, game.EventOpen, ChangeStatus, nil)
}

// Start moves waiting -> active. Requires at least one joined player.
func (s *SessionService) Start(ctx context.Context, externalID string) (*models.Session, error) {
	return s.transition(ctx, externalID, game.EventStart, ChangeStatus, func(tx *gorm.DB, session *models.Session) error {
		var members int64
		if err := tx.Model(&models.Membership{}).
			Where("session_id = ?", session.ID).
			Count(&members).Error; err != nil {
			return err
		}
		if members == 0 {
			return game.ErrNoPlayers
		}
		return nil
	})
}

// AdvanceRound moves the active session to its next round once every
// contested prize of the current round is won or forfeited.
func (s *SessionService) AdvanceRound(ctx context.Context, externalID string) (*models.Session, error) {
	return s.transition(ctx, externalID, game.EventAdvanceRound, ChangeRound, func(tx *gorm.DB, session *models.Session) error {
		if session.CurrentRound >= session.MaxRounds {
			return game.ErrInvalidTransition
		}
		resolved, err := roundResolved(tx, session, session.CurrentRound)
		if err != nil {
			return err
		}
		if !resolved {
			return game.ErrRoundNotResolved
		}
		return nil
	})
}

// Finish finalizes the session from any non-finished status. Calling it
// on an already-finished session is a no-op returning the session as is.
func (s *SessionService) Finish(ctx context.Context, externalID string) (*models.Session, error) {
	return s.transition(ctx, externalID, game.EventFinish, ChangeStatus, nil)
}

// Abandon is the reaper-initiated finalize. Identical to Finish except it
// is always logged with the triggering reason.
func (s *SessionService) Abandon(ctx context.Context, externalID, reason string) (*models.Session, error) {
	session, err := s.transition(ctx, externalID, game.EventAbandon, ChangeStatus, nil)
	if err == nil && session != nil {
		logger.Infof("[Session %s] abandoned: %s", session.ExternalID, reason)
	}
	return session, err
}

// transition is the single path through the state machine: lock the row,
// re-read, consult the transition table, apply the guard, write, and
// publish exactly once after commit. An already-finished finalize commits
// nothing and publishes nothing.
func (s *SessionService) transition(ctx context.Context, externalID string, event game.Event, kind ChangeKind, guard func(*gorm.DB, *models.Session) error) (*models.Session, error) {
	var session models.Session
	var noop bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("external_id = ?", externalID).
			First(&session).Error; err != nil {
			return err
		}

		next, err := game.NextStatus(game.SessionStatus(session.Status), event)
		if errors.Is(err, game.ErrAlreadyFinished) {
			noop = true
			return nil
		}
		if err != nil {
			return err
		}

		if guard != nil {
			if err := guard(tx, &session); err != nil {
				return err
			}
		}

		session.Status = string(next)
		if event == game.EventAdvanceRound {
			session.CurrentRound++
		}
		if next == game.StatusFinished && session.FinishedAt == nil {
			now := time.Now()
			session.FinishedAt = &now
		}
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}

	if !noop {
		s.broadcaster.Publish(ctx, &session, kind)
	}
	return &session, nil
}

// roundResolved checks the round's prizes against its winners and
// forfeits inside the caller's transaction.
func roundResolved(tx *gorm.DB, session *models.Session, round int) (bool, error) {
	var prizes []models.Prize
	if err := tx.Where("session_id = ?", session.ID).Find(&prizes).Error; err != nil {
		return false, err
	}
	var winners []models.Winner
	if err := tx.Where("session_id = ? AND round_number = ?", session.ID, round).Find(&winners).Error; err != nil {
		return false, err
	}
	var forfeits []models.Forfeit
	if err := tx.Where("session_id = ? AND round_number = ?", session.ID, round).Find(&forfeits).Error; err != nil {
		return false, err
	}
	return game.RoundResolved(prizes, winners, forfeits, round), nil
}
