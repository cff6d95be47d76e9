package game

import (
	"testing"

	"github.com/zemengames/bingo-live/models"
)

func TestRoundResolvedNoPrizes(t *testing.T) {
	if !RoundResolved(nil, nil, nil, 1) {
		t.Fatal("a round without prizes is trivially resolved")
	}
}

func TestRoundResolvedPrizeStates(t *testing.T) {
	prizeA := uint(10)
	prizeB := uint(11)
	prizes := []models.Prize{{ID: prizeA}, {ID: prizeB}}

	// Nothing settled yet.
	if RoundResolved(prizes, nil, nil, 1) {
		t.Fatal("unsettled prizes, round must not be resolved")
	}

	// One won, one open.
	winners := []models.Winner{{RoundNumber: 1, UserID: 5, PrizeID: &prizeA}}
	if RoundResolved(prizes, winners, nil, 1) {
		t.Fatal("prize B still open, round must not be resolved")
	}

	// Second forfeited: settled.
	forfeits := []models.Forfeit{{RoundNumber: 1, PrizeID: prizeB}}
	if !RoundResolved(prizes, winners, forfeits, 1) {
		t.Fatal("one won and one forfeited, round should be resolved")
	}
}

func TestRoundResolvedIgnoresOtherRounds(t *testing.T) {
	prizeA := uint(10)
	prizes := []models.Prize{{ID: prizeA}}

	// Settled in round 1 only.
	winners := []models.Winner{{RoundNumber: 1, UserID: 5, PrizeID: &prizeA}}
	if RoundResolved(prizes, winners, nil, 2) {
		t.Fatal("round 1 winner must not settle round 2")
	}
}

func TestRoundResolvedRoundVictoryDoesNotSettlePrizes(t *testing.T) {
	prizeA := uint(10)
	prizes := []models.Prize{{ID: prizeA}}

	// Round victory carries no prize id.
	winners := []models.Winner{{RoundNumber: 1, UserID: 5, PrizeID: nil}}
	if RoundResolved(prizes, winners, nil, 1) {
		t.Fatal("a prizeless round victory must not settle prize slots")
	}
}
