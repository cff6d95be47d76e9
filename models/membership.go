package models

import "time"

// Membership links a player to a session they joined via invite code.
type Membership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;uniqueIndex:idx_member_once,priority:1" json:"session_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_member_once,priority:2" json:"user_id"`
	JoinedAt  time.Time `json:"joined_at"`
}
