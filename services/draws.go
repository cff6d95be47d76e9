package services

import (
	"context"
	"math/rand"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zemengames/bingo-live/game"
	"github.com/zemengames/bingo-live/models"
	"github.com/zemengames/bingo-live/utils/logger"
)

// DrawNext reveals the next number for the session's current round. The
// session row lock serializes concurrent draws so the complement sample
// never races another insert for the same round.
func (s *SessionService) DrawNext(ctx context.Context, externalID string) (*models.Draw, error) {
	var session models.Session
	var draw models.Draw

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("external_id = ?", externalID).
			First(&session).Error; err != nil {
			return err
		}
		if game.SessionStatus(session.Status) != game.StatusActive {
			return game.ErrSessionNotActive
		}

		var drawn []int
		if err := tx.Model(&models.Draw{}).
			Where("session_id = ? AND round_number = ?", session.ID, session.CurrentRound).
			Pluck("number", &drawn).Error; err != nil {
			return err
		}

		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		number, err := game.SampleDraw(r, drawn)
		if err != nil {
			return err
		}

		draw = models.Draw{
			SessionID:   session.ID,
			RoundNumber: session.CurrentRound,
			Number:      number,
		}
		return tx.Create(&draw).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Debugf("[Session %s] round %d drew %d", session.ExternalID, draw.RoundNumber, draw.Number)
	s.broadcaster.Publish(ctx, &session, ChangeDraw)
	return &draw, nil
}

// DrawHistory lists a round's draws most-recent-first. Round 0 means the
// session's current round.
func (s *SessionService) DrawHistory(ctx context.Context, externalID string, round int) ([]models.Draw, error) {
	session, err := s.Get(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if round <= 0 {
		round = session.CurrentRound
	}

	var draws []models.Draw
	err = s.db.WithContext(ctx).
		Where("session_id = ? AND round_number = ?", session.ID, round).
		Order("created_at DESC, id DESC").
		Find(&draws).Error
	if err != nil {
		return nil, err
	}
	return draws, nil
}
