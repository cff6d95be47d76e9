package game

import "math/rand"

// MaxNumber is the highest drawable number.
const MaxNumber = 75

// SampleDraw picks one number uniformly at random from 1..75 excluding
// the numbers already drawn this round. Returns ErrRoundExhausted once
// all 75 are out.
func SampleDraw(r *rand.Rand, drawn []int) (int, error) {
	taken := make(map[int]bool, len(drawn))
	for _, n := range drawn {
		taken[n] = true
	}

	remaining := make([]int, 0, MaxNumber-len(taken))
	for n := 1; n <= MaxNumber; n++ {
		if !taken[n] {
			remaining = append(remaining, n)
		}
	}
	if len(remaining) == 0 {
		return 0, ErrRoundExhausted
	}
	return remaining[r.Intn(len(remaining))], nil
}
