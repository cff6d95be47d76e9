package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zemengames/bingo-live/game"
	"github.com/zemengames/bingo-live/models"
	"github.com/zemengames/bingo-live/utils/logger"
)

type ClaimRequest struct {
	UserID  uint  `json:"user_id" binding:"required"`
	PrizeID *uint `json:"prize_id"`
	Numbers []int `json:"numbers" binding:"required"`
}

// ResolveClaim matches a player's claim against the current round's drawn
// set. Duplicate submissions of the identical claim return the existing
// winner record; a prize someone else already took this round fails with
// ErrPrizeAlreadyWon. A claim without a prize is the round victory and
// feeds the ranking counters in the same transaction.
func (s *SessionService) ResolveClaim(ctx context.Context, externalID string, req *ClaimRequest) (*models.Winner, error) {
	var session models.Session
	var winner models.Winner
	var duplicate bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("external_id = ?", externalID).
			First(&session).Error; err != nil {
			return err
		}
		if game.SessionStatus(session.Status) != game.StatusActive {
			return game.ErrSessionNotActive
		}

		var member models.Membership
		if err := tx.Where("session_id = ? AND user_id = ?", session.ID, req.UserID).
			First(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.ErrNotMember
			}
			return err
		}

		round := session.CurrentRound

		// Identical claim already resolved: hand back the existing record.
		existing := tx.Where("session_id = ? AND round_number = ? AND user_id = ?", session.ID, round, req.UserID)
		if req.PrizeID != nil {
			existing = existing.Where("prize_id = ?", *req.PrizeID)
		} else {
			existing = existing.Where("prize_id IS NULL")
		}
		if err := existing.First(&winner).Error; err == nil {
			duplicate = true
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if req.PrizeID != nil {
			var prize models.Prize
			if err := tx.Where("id = ? AND session_id = ?", *req.PrizeID, session.ID).
				First(&prize).Error; err != nil {
				return err
			}
			var taken int64
			if err := tx.Model(&models.Winner{}).
				Where("session_id = ? AND round_number = ? AND prize_id = ?", session.ID, round, *req.PrizeID).
				Count(&taken).Error; err != nil {
				return err
			}
			if taken > 0 {
				return game.ErrPrizeAlreadyWon
			}
		}

		var drawn []int
		if err := tx.Model(&models.Draw{}).
			Where("session_id = ? AND round_number = ?", session.ID, round).
			Pluck("number", &drawn).Error; err != nil {
			return err
		}

		pattern := game.DecodePattern(session.PatternJSON)
		if err := pattern.Validate(req.Numbers, drawn); err != nil {
			return err
		}

		winner = models.Winner{
			SessionID:   session.ID,
			RoundNumber: round,
			UserID:      req.UserID,
			PrizeID:     req.PrizeID,
		}
		if err := tx.Create(&winner).Error; err != nil {
			return err
		}

		// Round victory: credit the win while still holding the session
		// lock, so the winner row and the counters commit together.
		if req.PrizeID == nil {
			if err := s.ranking.creditWinTx(tx, req.UserID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !duplicate {
		logger.Infof("[Session %s] round %d winner user=%d", session.ExternalID, winner.RoundNumber, winner.UserID)
		s.broadcaster.Publish(ctx, &session, ChangeWinner)
	}
	return &winner, nil
}

// ForfeitPrize marks a prize as uncontested for a round so the round can
// advance. Idempotent per (session, round, prize).
func (s *SessionService) ForfeitPrize(ctx context.Context, externalID string, prizeID uint) (*models.Forfeit, error) {
	var session models.Session
	var forfeit models.Forfeit

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("external_id = ?", externalID).
			First(&session).Error; err != nil {
			return err
		}
		if game.SessionStatus(session.Status) != game.StatusActive {
			return game.ErrSessionNotActive
		}

		var prize models.Prize
		if err := tx.Where("id = ? AND session_id = ?", prizeID, session.ID).
			First(&prize).Error; err != nil {
			return err
		}

		forfeit = models.Forfeit{SessionID: session.ID, RoundNumber: session.CurrentRound, PrizeID: prizeID}
		return tx.Where(models.Forfeit{SessionID: session.ID, RoundNumber: session.CurrentRound, PrizeID: prizeID}).
			FirstOrCreate(&forfeit).Error
	})
	if err != nil {
		return nil, err
	}

	s.broadcaster.Publish(ctx, &session, ChangePrize)
	return &forfeit, nil
}

// Winners lists a session's winners, most recent first.
func (s *SessionService) Winners(ctx context.Context, externalID string) ([]models.Winner, error) {
	session, err := s.Get(ctx, externalID)
	if err != nil {
		return nil, err
	}
	var winners []models.Winner
	err = s.db.WithContext(ctx).
		Where("session_id = ?", session.ID).
		Order("created_at DESC, id DESC").
		Find(&winners).Error
	if err != nil {
		return nil, err
	}
	return winners, nil
}
