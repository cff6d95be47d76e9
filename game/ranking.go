package game

import (
	"time"

	"github.com/zemengames/bingo-live/models"
)

// Title thresholds on total wins.
const (
	TitleBeginner    = "beginner"
	TitleExperienced = "experienced"
	TitleMaster      = "master"
	TitleLegend      = "legend"
)

var titleThresholds = []struct {
	Wins int
	Type string
}{
	{1, TitleBeginner},
	{10, TitleExperienced},
	{50, TitleMaster},
	{100, TitleLegend},
}

// EndOfWeek returns the instant the current calendar week ends (Monday
// 00:00 of the following week, ISO weeks).
func EndOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	daysLeft := 8 - weekday
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, daysLeft)
}

// EndOfMonth returns the first instant of the next month.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
}

// ApplyRollover zeroes any periodic counter whose boundary has passed and
// advances the boundary to the new period's end. Must run before the
// increment so a win is never credited to an expired period.
func ApplyRollover(rank *models.Rank, now time.Time) {
	if now.After(rank.WeeklyResetAt) {
		rank.WeeklyWins = 0
		rank.WeeklyResetAt = EndOfWeek(now)
	}
	if now.After(rank.MonthlyResetAt) {
		rank.MonthlyWins = 0
		rank.MonthlyResetAt = EndOfMonth(now)
	}
}

// TitlesCrossed lists the title types whose threshold falls in
// (prevTotal, newTotal]. Creation stays idempotent at the store via the
// (user, type) unique index, this only decides candidates.
func TitlesCrossed(prevTotal, newTotal int) []string {
	var crossed []string
	for _, th := range titleThresholds {
		if prevTotal < th.Wins && newTotal >= th.Wins {
			crossed = append(crossed, th.Type)
		}
	}
	return crossed
}
