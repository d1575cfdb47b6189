package dnd35

import "github.com/KirkDiggler/dnd35-sheet/internal/errors"

// Point-buy limits
const (
	// BaseAbilityScore is the starting and minimum purchasable score
	BaseAbilityScore = 8
	// MaxPointBuyScore is the highest score the cost table covers
	MaxPointBuyScore = 18
	// StartingAbilityPoints is the pool a new character receives
	StartingAbilityPoints = 32
)

var highScoreCosts = map[int]int{
	15: 8,
	16: 10,
	17: 13,
	18: 16,
}

// PointBuyCost returns the cumulative cost of raising a score from 8 to score.
// Scores up to 14 cost one point each, so anything below 8 yields a negative
// cost. Scores above 18 have no defined cost.
func PointBuyCost(score int) (int, error) {
	if score <= 14 {
		return score - BaseAbilityScore, nil
	}
	if cost, ok := highScoreCosts[score]; ok {
		return cost, nil
	}
	return 0, errors.OutOfRangef("no point-buy cost for score %d", score).
		WithMeta("score", score)
}
