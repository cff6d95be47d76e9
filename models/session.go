package models

import (
	"time"

	"gorm.io/datatypes"
)

type Session struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ExternalID   string         `gorm:"uniqueIndex;size:36" json:"external_id"`
	InviteCode   string         `gorm:"uniqueIndex;size:12" json:"invite_code"`
	Status       string         `gorm:"not null;default:'draft'" json:"status"` // draft | waiting | active | finished
	CurrentRound int            `gorm:"not null;default:1" json:"current_round"`
	MaxRounds    int            `gorm:"not null" json:"max_rounds"`
	CreatorID    uint           `gorm:"not null" json:"creator_id"`
	PatternJSON  datatypes.JSON `json:"pattern"` // win-pattern policy for claims
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	FinishedAt   *time.Time     `json:"finished_at"`

	Prizes  []Prize  `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"prizes,omitempty"`
	Draws   []Draw   `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"draws,omitempty"`
	Winners []Winner `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"winners,omitempty"`
}
