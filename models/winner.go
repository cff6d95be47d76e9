package models

import "time"

// Winner records one resolved claim. A nil PrizeID is a round victory
// (the win that feeds the ranking counters).
type Winner struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SessionID   uint      `gorm:"not null;uniqueIndex:idx_winner_once,priority:1" json:"session_id"`
	RoundNumber int       `gorm:"not null;uniqueIndex:idx_winner_once,priority:2" json:"round_number"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_winner_once,priority:3" json:"user_id"`
	PrizeID     *uint     `gorm:"uniqueIndex:idx_winner_once,priority:4" json:"prize_id"`
	CreatedAt   time.Time `json:"created_at"`
}
