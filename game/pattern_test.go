package game

import (
	"errors"
	"testing"
)

func TestDecodePatternDefaults(t *testing.T) {
	p := DecodePattern(nil)
	if p.Kind != "subset" {
		t.Fatalf("expected subset default, got %s", p.Kind)
	}
	if p.MinNumbers != 1 {
		t.Fatalf("expected min_numbers 1, got %d", p.MinNumbers)
	}

	p = DecodePattern([]byte(`{not json`))
	if p.Kind != "subset" {
		t.Fatalf("bad config should fall back to subset, got %s", p.Kind)
	}
}

func TestDecodePatternExplicit(t *testing.T) {
	p := DecodePattern([]byte(`{"kind":"card"}`))
	if p.Kind != "card" {
		t.Fatalf("expected card, got %s", p.Kind)
	}
}

func TestSubsetPatternValidate(t *testing.T) {
	p := Pattern{Kind: "subset", MinNumbers: 1}
	drawn := []int{7, 23, 41}

	if err := p.Validate([]int{7, 41}, drawn); err != nil {
		t.Fatalf("all claimed numbers drawn, expected valid: %v", err)
	}
	if err := p.Validate([]int{7, 50}, drawn); !errors.Is(err, ErrClaimRejected) {
		t.Fatalf("50 not drawn, expected ErrClaimRejected, got %v", err)
	}
	if err := p.Validate(nil, drawn); !errors.Is(err, ErrClaimRejected) {
		t.Fatalf("empty claim, expected ErrClaimRejected, got %v", err)
	}
}

// cardWithRow builds a 5x5 card (row-major) whose given row holds the
// numbers 1..5 and everything else high numbers that stay undrawn.
func cardWithRow(row int) []int {
	card := make([]int, 25)
	next := 40
	for i := range card {
		card[i] = next
		next++
	}
	for col := 0; col < 5; col++ {
		card[row*5+col] = col + 1
	}
	return card
}

func TestCardPatternRowLine(t *testing.T) {
	p := Pattern{Kind: "card", MinNumbers: 1}

	if err := p.Validate(cardWithRow(0), []int{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("full top row drawn, expected bingo: %v", err)
	}
	if err := p.Validate(cardWithRow(0), []int{1, 2, 3, 4}); !errors.Is(err, ErrClaimRejected) {
		t.Fatalf("incomplete row, expected ErrClaimRejected, got %v", err)
	}
}

func TestCardPatternCenterIsFree(t *testing.T) {
	p := Pattern{Kind: "card", MinNumbers: 1}

	// Middle row needs only four draws because (2,2) is free.
	card := cardWithRow(2)
	if err := p.Validate(card, []int{1, 2, 4, 5}); err != nil {
		t.Fatalf("middle row with free center, expected bingo: %v", err)
	}
}

func TestCardPatternRejectsPartialCards(t *testing.T) {
	p := DecodePattern([]byte(`{"kind":"card"}`))

	// A card session must never fall back to the subset rule: a claim
	// that is not a full 5x5 card is rejected even if every number in
	// it has been drawn.
	if err := p.Validate([]int{7}, []int{7}); !errors.Is(err, ErrClaimRejected) {
		t.Fatalf("1-number claim on card policy: expected ErrClaimRejected, got %v", err)
	}
	if err := p.Validate(cardWithRow(0)[:24], []int{1, 2, 3, 4, 5}); !errors.Is(err, ErrClaimRejected) {
		t.Fatalf("24-cell claim on card policy: expected ErrClaimRejected, got %v", err)
	}
	if err := p.Validate(nil, []int{1, 2, 3}); !errors.Is(err, ErrClaimRejected) {
		t.Fatalf("empty claim on card policy: expected ErrClaimRejected, got %v", err)
	}
}

func TestCardPatternCorners(t *testing.T) {
	p := Pattern{Kind: "card", MinNumbers: 1}

	card := make([]int, 25)
	for i := range card {
		card[i] = i + 40
	}
	card[0], card[4], card[20], card[24] = 1, 2, 3, 4

	if err := p.Validate(card, []int{1, 2, 3, 4}); err != nil {
		t.Fatalf("four corners drawn, expected bingo: %v", err)
	}
}
