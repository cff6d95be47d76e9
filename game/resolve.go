package game

import "github.com/zemengames/bingo-live/models"

// RoundResolved reports whether every contested prize for the round is
// settled, i.e. has a winner or an explicit forfeit. Sessions without
// prizes resolve trivially.
func RoundResolved(prizes []models.Prize, winners []models.Winner, forfeits []models.Forfeit, round int) bool {
	settled := make(map[uint]bool, len(prizes))
	for _, w := range winners {
		if w.RoundNumber == round && w.PrizeID != nil {
			settled[*w.PrizeID] = true
		}
	}
	for _, f := range forfeits {
		if f.RoundNumber == round {
			settled[f.PrizeID] = true
		}
	}
	for _, p := range prizes {
		if !settled[p.ID] {
			return false
		}
	}
	return true
}
