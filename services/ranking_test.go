package services

import (
	"testing"
	"time"

	"github.com/zemengames/bingo-live/game"
)

func TestInitialRankBoundaries(t *testing.T) {
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	rank := initialRank(42, now)

	if rank.UserID != 42 {
		t.Fatalf("expected user 42, got %d", rank.UserID)
	}
	if rank.TotalWins != 0 || rank.WeeklyWins != 0 || rank.MonthlyWins != 0 {
		t.Fatalf("fresh rank must start at zero wins: %+v", rank)
	}
	if !rank.WeeklyResetAt.Equal(game.EndOfWeek(now)) {
		t.Fatalf("weekly boundary should be end of current week, got %v", rank.WeeklyResetAt)
	}
	if !rank.MonthlyResetAt.Equal(game.EndOfMonth(now)) {
		t.Fatalf("monthly boundary should be end of current month, got %v", rank.MonthlyResetAt)
	}

	// A fresh rank's boundaries are in the future, so the first credit
	// never triggers a rollover.
	if now.After(rank.WeeklyResetAt) || now.After(rank.MonthlyResetAt) {
		t.Fatal("fresh boundaries must not be already expired")
	}
}
