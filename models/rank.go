package models

import "time"

// Rank is a player's aggregate win counters. TotalWins never resets;
// the weekly/monthly counters roll over when their reset boundary passes.
type Rank struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	TotalWins      int       `gorm:"not null;default:0" json:"total_wins"`
	WeeklyWins     int       `gorm:"not null;default:0" json:"weekly_wins"`
	MonthlyWins    int       `gorm:"not null;default:0" json:"monthly_wins"`
	WeeklyResetAt  time.Time `json:"weekly_reset_at"`
	MonthlyResetAt time.Time `json:"monthly_reset_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
