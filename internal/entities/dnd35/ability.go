package dnd35

import (
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

// Ability is one ability score with its modifier sources
type Ability struct {
	id                 AbilityID
	baseValue          int
	racialModifier     int
	temporaryModifiers map[string]int
	total              int
	modifier           int
}

// NewAbility returns an ability at the base score of 8
func NewAbility(id AbilityID) *Ability {
	a := &Ability{
		id:                 id,
		baseValue:          BaseAbilityScore,
		temporaryModifiers: map[string]int{},
	}
	a.recompute()
	return a
}

func (a *Ability) ID() AbilityID       { return a.id }
func (a *Ability) BaseValue() int      { return a.baseValue }
func (a *Ability) RacialModifier() int { return a.racialModifier }
func (a *Ability) Total() int          { return a.total }
func (a *Ability) Modifier() int       { return a.modifier }

// TemporaryModifiers returns a copy of the temporary modifiers keyed by source
func (a *Ability) TemporaryModifiers() map[string]int {
	return cloneInts(a.temporaryModifiers)
}

// IncrementBaseValue raises (or lowers) the base score by delta and returns the
// points consumed. With hasCost the consumption is the point-buy cost
// difference, otherwise it is delta itself. A zero return means the change
// was rejected and nothing was modified.
func (a *Ability) IncrementBaseValue(delta int, hasCost bool, availableAbilityPoints int) int {
	spent, err := a.tryIncrement(delta, hasCost, availableAbilityPoints)
	if err != nil {
		return 0
	}
	return spent
}

func (a *Ability) tryIncrement(delta int, hasCost bool, pool int) (int, error) {
	newValue := a.baseValue + delta
	if newValue < BaseAbilityScore {
		return 0, errors.OutOfRangef("%s cannot drop below %d", a.id.Name(), BaseAbilityScore).
			WithMeta("ability", string(a.id)).
			WithMeta("value", newValue)
	}

	spent := delta
	if hasCost {
		oldCost, err := PointBuyCost(a.baseValue)
		if err != nil {
			return 0, err
		}
		newCost, err := PointBuyCost(newValue)
		if err != nil {
			return 0, err
		}
		spent = newCost - oldCost
	}

	if pool < spent {
		return 0, errors.InsufficientPoints("ability", spent, pool).
			WithMeta("ability", string(a.id))
	}

	a.baseValue = newValue
	a.recompute()
	return spent, nil
}

// SetBaseValue sets the base score unconditionally and returns its point-buy
// cost. A score above 18 is still applied but reports a zero cost and an
// out of range error.
func (a *Ability) SetBaseValue(value int) (int, error) {
	a.baseValue = value
	a.recompute()
	return PointBuyCost(value)
}

// SetRacialModifier replaces the racial modifier
func (a *Ability) SetRacialModifier(value int) {
	a.racialModifier = value
	a.recompute()
}

// SetTemporaryModifiers replaces the whole temporary modifier map
func (a *Ability) SetTemporaryModifiers(modifiers map[string]int) {
	a.temporaryModifiers = cloneInts(modifiers)
	a.recompute()
}

func (a *Ability) recompute() {
	total := a.baseValue + a.racialModifier
	for _, v := range a.temporaryModifiers {
		total += v
	}
	a.total = total
	a.modifier = AbilityModifier(total)
}

func (a *Ability) clone() *Ability {
	c := *a
	c.temporaryModifiers = cloneInts(a.temporaryModifiers)
	return &c
}

// AbilityModifier returns floor((score - 10) / 2)
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return -((-diff + 1) / 2)
	}
	return diff / 2
}

func cloneInts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
