package game

import "encoding/json"

// Pattern is the win-validation policy for a session, decoded from the
// session's pattern JSON. Game rules differ between deployments, so the
// policy is data on the session rather than a hard-coded rule.
//
// Kinds:
//   - "subset" (default): every number the claim needs must be drawn.
//     MinNumbers guards against empty claims.
//   - "card": the claim's numbers are a 5x5 card in row-major order and
//     a standard bingo line must be fully drawn (center cell is free).
type Pattern struct {
	Kind       string `json:"kind"`
	MinNumbers int    `json:"min_numbers,omitempty"`
}

// DecodePattern parses a session's pattern config, falling back to the
// subset policy for empty or unreadable config.
func DecodePattern(raw []byte) Pattern {
	p := Pattern{Kind: "subset", MinNumbers: 1}
	if len(raw) == 0 {
		return p
	}
	var decoded Pattern
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return p
	}
	if decoded.Kind == "" {
		decoded.Kind = "subset"
	}
	if decoded.MinNumbers <= 0 {
		decoded.MinNumbers = 1
	}
	return decoded
}

// Validate checks a claim's needed numbers against the round's drawn set.
func (p Pattern) Validate(need []int, drawn []int) error {
	drawnSet := make(map[int]bool, len(drawn))
	for _, n := range drawn {
		drawnSet[n] = true
	}

	if p.Kind == "card" {
		// A card claim is a full 5x5 card, nothing else qualifies.
		if len(need) != 25 {
			return ErrClaimRejected
		}
		if hasBingo(need, drawnSet) {
			return nil
		}
		return ErrClaimRejected
	}

	if len(need) < p.MinNumbers {
		return ErrClaimRejected
	}
	for _, n := range need {
		if !drawnSet[n] {
			return ErrClaimRejected
		}
	}
	return nil
}

// hasBingo checks the standard card lines: corners, rows, columns, the
// cross, both diagonals and the full card. Cell (2,2) is free.
func hasBingo(card []int, drawnSet map[int]bool) bool {
	const freeRow, freeCol = 2, 2

	isDrawn := func(row, col int) bool {
		if row == freeRow && col == freeCol {
			return true
		}
		return drawnSet[card[row*5+col]]
	}

	checkLine := func(cells [][2]int) bool {
		for _, cell := range cells {
			if !isDrawn(cell[0], cell[1]) {
				return false
			}
		}
		return true
	}

	if checkLine([][2]int{{0, 0}, {0, 4}, {4, 0}, {4, 4}}) {
		return true
	}

	for row := 0; row < 5; row++ {
		cells := make([][2]int, 0, 5)
		for col := 0; col < 5; col++ {
			cells = append(cells, [2]int{row, col})
		}
		if checkLine(cells) {
			return true
		}
	}

	for col := 0; col < 5; col++ {
		cells := make([][2]int, 0, 5)
		for row := 0; row < 5; row++ {
			cells = append(cells, [2]int{row, col})
		}
		if checkLine(cells) {
			return true
		}
	}

	cross := make([][2]int, 0, 10)
	for i := 0; i < 5; i++ {
		cross = append(cross, [2]int{2, i})
		cross = append(cross, [2]int{i, 2})
	}
	if checkLine(cross) {
		return true
	}

	diag1 := make([][2]int, 0, 5)
	diag2 := make([][2]int, 0, 5)
	for i := 0; i < 5; i++ {
		diag1 = append(diag1, [2]int{i, i})
		diag2 = append(diag2, [2]int{i, 4 - i})
	}
	if checkLine(diag1) || checkLine(diag2) {
		return true
	}

	full := make([][2]int, 0, 25)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			full = append(full, [2]int{r, c})
		}
	}
	return checkLine(full)
}
