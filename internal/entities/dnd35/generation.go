package dnd35

import (
	"log/slog"
	"sort"

	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

const (
	maxRandomIncrement = 10
	abilityDiceCount   = 4
	abilityDieSize     = 6
)

// AbilityRoll records one ability's 4d6 roll
type AbilityRoll struct {
	Ability AbilityID `json:"ability"`
	Dice    []int     `json:"dice"`
	Dropped int       `json:"dropped"`
	Score   int       `json:"score"`
}

// RandomizePointBuy spends the ability pool on random costed increments. Each
// pass visits the abilities in random order and tries a random increment of
// 1 to 10, capped at 18 and reduced until affordable. Passes repeat while any
// ability can still afford a +1, so the pool is spent down as far as the cost
// table allows.
func (c *Character) RandomizePointBuy() error {
	for c.canAffordIncrement() {
		remaining := append([]AbilityID(nil), AllAbilities...)
		for len(remaining) > 0 {
			pick, err := c.roller.Roll(len(remaining))
			if err != nil {
				return errors.Wrap(err, "failed to pick ability")
			}
			idx := clampIndex(pick-1, len(remaining))
			id := remaining[idx]
			remaining = append(remaining[:idx], remaining[idx+1:]...)

			increment, err := c.roller.Roll(maxRandomIncrement)
			if err != nil {
				return errors.Wrap(err, "failed to roll increment")
			}

			base := c.abilities[id].baseValue
			if base+increment > MaxPointBuyScore {
				increment = MaxPointBuyScore - base
			}
			for ; increment > 0; increment-- {
				spent, err := c.IncrementAbilityBaseValue(id, true, increment)
				if err == nil && spent > 0 {
					break
				}
			}
		}
	}

	slog.Debug("randomized point buy",
		"character_id", c.id,
		"available_ability_points", c.availableAbilityPoints)

	return nil
}

func (c *Character) canAffordIncrement() bool {
	if c.availableAbilityPoints <= 0 {
		return false
	}
	for _, ability := range c.abilities {
		if ability.baseValue < BaseAbilityScore || ability.baseValue >= MaxPointBuyScore {
			continue
		}
		current, err := PointBuyCost(ability.baseValue)
		if err != nil {
			continue
		}
		next, err := PointBuyCost(ability.baseValue + 1)
		if err != nil {
			continue
		}
		if next-current <= c.availableAbilityPoints {
			return true
		}
	}
	return false
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// RollAbilities4d6 rolls 4d6 for every ability, drops the lowest die and sets
// the sum as the base score. It returns the combined point-buy cost of the
// results for reporting; the ability pool is not touched. All dice are rolled
// before any score changes, so a roller failure leaves the character as it was.
func (c *Character) RollAbilities4d6() (int, []AbilityRoll, error) {
	rolls := make([]AbilityRoll, 0, len(AllAbilities))
	for _, id := range AllAbilities {
		dice, err := c.roller.RollN(abilityDiceCount, abilityDieSize)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "failed to roll %s", id.Name())
		}
		if len(dice) != abilityDiceCount {
			return 0, nil, errors.Internalf("expected %d dice for %s, got %d", abilityDiceCount, id.Name(), len(dice))
		}
		rolls = append(rolls, dropLowest(id, dice))
	}

	total := 0
	for _, roll := range rolls {
		cost, err := c.abilities[roll.Ability].SetBaseValue(roll.Score)
		if err != nil {
			slog.Warn("rolled score has no point-buy cost",
				"character_id", c.id,
				"ability", string(roll.Ability),
				"score", roll.Score)
			continue
		}
		total += cost
	}

	return total, rolls, nil
}

func dropLowest(id AbilityID, dice []int) AbilityRoll {
	sorted := append([]int(nil), dice...)
	sort.Ints(sorted)

	score := 0
	for _, d := range sorted[1:] {
		score += d
	}

	return AbilityRoll{
		Ability: id,
		Dice:    append([]int(nil), dice...),
		Dropped: sorted[0],
		Score:   score,
	}
}
