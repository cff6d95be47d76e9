package models

import "time"

type Prize struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;index" json:"session_id"`
	Position  int       `gorm:"not null" json:"position"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Forfeit marks a prize as explicitly not contested in a round, so round
// advancement can treat it as settled.
type Forfeit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SessionID   uint      `gorm:"not null;uniqueIndex:idx_forfeit_once,priority:1" json:"session_id"`
	RoundNumber int       `gorm:"not null;uniqueIndex:idx_forfeit_once,priority:2" json:"round_number"`
	PrizeID     uint      `gorm:"not null;uniqueIndex:idx_forfeit_once,priority:3" json:"prize_id"`
	CreatedAt   time.Time `json:"created_at"`
}
