package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zemengames/bingo-live/game"
	"github.com/zemengames/bingo-live/models"
	"github.com/zemengames/bingo-live/utils/logger"
)

// RankingService owns all writes to Rank and Title rows. CreditWin is
// serialized per player by the row lock on the Rank, so the
// boundary-check-then-increment sequence never interleaves.
type RankingService struct {
	db *gorm.DB
}

func NewRankingService(db *gorm.DB) *RankingService {
	return &RankingService{db: db}
}

// CreditWin applies period rollovers, increments the counters and creates
// any newly crossed titles, all as one atomic unit.
func (r *RankingService) CreditWin(ctx context.Context, userID uint) (*models.Rank, error) {
	var rank models.Rank
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.creditWinTx(tx, userID); err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).First(&rank).Error
	})
	if err != nil {
		return nil, err
	}
	return &rank, nil
}

// initialRank is the zero-wins aggregate with period boundaries set to
// the current week's and month's end.
func initialRank(userID uint, now time.Time) models.Rank {
	return models.Rank{
		UserID:         userID,
		WeeklyResetAt:  game.EndOfWeek(now),
		MonthlyResetAt: game.EndOfMonth(now),
	}
}

// creditWinTx runs inside the caller's transaction so a winner row and
// its ranking credit commit or roll back together.
func (r *RankingService) creditWinTx(tx *gorm.DB, userID uint) error {
	now := time.Now()

	var rank models.Rank
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&rank).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Two first-ever credits can race here. The upsert lets the
		// loser fall through to lock the row the winner created
		// instead of tripping over the user_id unique index.
		fresh := initialRank(userID, now)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&fresh).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&rank).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	prevTotal := rank.TotalWins
	game.ApplyRollover(&rank, now)
	rank.TotalWins++
	rank.WeeklyWins++
	rank.MonthlyWins++
	if err := tx.Save(&rank).Error; err != nil {
		return err
	}

	for _, titleType := range game.TitlesCrossed(prevTotal, rank.TotalWins) {
		title := models.Title{UserID: userID, Type: titleType}
		if err := tx.Where(models.Title{UserID: userID, Type: titleType}).
			FirstOrCreate(&title).Error; err != nil {
			return err
		}
		logger.Infof("[Ranking] user %d earned title %q at %d wins", userID, titleType, rank.TotalWins)
	}
	return nil
}

// GetRank loads a player's counters; players with no wins yet get a zero
// rank rather than a 404.
func (r *RankingService) GetRank(ctx context.Context, userID uint) (*models.Rank, error) {
	var rank models.Rank
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&rank).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh := initialRank(userID, time.Now())
		return &fresh, nil
	}
	if err != nil {
		return nil, err
	}
	return &rank, nil
}

// Leaderboard returns the top ranks for a period: total, weekly or
// monthly.
func (r *RankingService) Leaderboard(ctx context.Context, period string, limit int) ([]models.Rank, error) {
	column := "total_wins"
	switch period {
	case "weekly":
		column = "weekly_wins"
	case "monthly":
		column = "monthly_wins"
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var ranks []models.Rank
	err := r.db.WithContext(ctx).
		Order(column + " DESC").
		Limit(limit).
		Find(&ranks).Error
	if err != nil {
		return nil, err
	}
	return ranks, nil
}

// Titles lists a player's earned badges.
func (r *RankingService) Titles(ctx context.Context, userID uint) ([]models.Title, error) {
	var titles []models.Title
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}
