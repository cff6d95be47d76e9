package models

import "time"

// Title is an earned badge. Created once per (user, type), never deleted.
type Title struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_title_once,priority:1" json:"user_id"`
	Type      string    `gorm:"not null;uniqueIndex:idx_title_once,priority:2" json:"type"` // beginner | experienced | master | legend
	CreatedAt time.Time `json:"created_at"`
}
