package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

// Initial is the rating of a player before any match.
const Initial = 1000

// Expected score of a player rated ra against one rated rb.
func Expected(ra, rb int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(rb-ra)/400.0))
}

// Delta is the unrounded rating change for result sa.
// K - coefficient, see KFactor.
func Delta(ra, rb, k int, sa Points) float64 {
	return float64(k) * (float64(sa) - Expected(ra, rb))
}

// Calculate returns the new rounded rating after a single match.
func Calculate(ra, rb, k int, sa Points) int {
	return int(math.Round(float64(ra) + Delta(ra, rb, k, sa)))
}

// KFactor: 40 during the first 30 matches, then 10 from 2400 up and 20 below.
func KFactor(matches, rating int) int {
	if matches <= 30 {
		return 40
	}
	if rating >= 2400 {
		return 10
	}
	return 20
}
