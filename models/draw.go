package models

import "time"

// Draw is one number revealed during a round. Rows are append-only; the
// unique index makes a repeated number within a round a constraint
// violation rather than silent corruption.
type Draw struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SessionID   uint      `gorm:"not null;uniqueIndex:idx_draw_once,priority:1" json:"session_id"`
	RoundNumber int       `gorm:"not null;uniqueIndex:idx_draw_once,priority:2" json:"round_number"`
	Number      int       `gorm:"not null;uniqueIndex:idx_draw_once,priority:3" json:"number"` // 1..75
	CreatedAt   time.Time `json:"created_at"`
}
