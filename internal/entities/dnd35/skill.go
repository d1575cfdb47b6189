package dnd35

import (
	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

// MaxRankOffset is added to the character level to get the rank cap
const MaxRankOffset = 3

// MaxRank returns the highest rank allowed at the given character level
func MaxRank(level int) int {
	return level + MaxRankOffset
}

// Skill is a trained or trainable skill on a character
type Skill struct {
	id           string
	name         string
	keyAbility   string
	rank         int
	isClassSkill bool
	modifiers    map[string]int
	total        int
}

// NewSkill builds a skill from its catalog definition with rank 0
func NewSkill(def catalog.SkillDef, isClassSkill bool) *Skill {
	s := &Skill{
		id:           def.ID,
		name:         def.Name,
		keyAbility:   def.KeyAbility,
		isClassSkill: isClassSkill,
		modifiers:    map[string]int{},
	}
	s.recompute()
	return s
}

func (s *Skill) ID() string         { return s.id }
func (s *Skill) Name() string       { return s.name }
func (s *Skill) KeyAbility() string { return s.keyAbility }
func (s *Skill) Rank() int          { return s.rank }
func (s *Skill) IsClassSkill() bool { return s.isClassSkill }
func (s *Skill) Total() int         { return s.total }

// Modifiers returns a copy of the skill modifiers keyed by source
func (s *Skill) Modifiers() map[string]int {
	return cloneInts(s.modifiers)
}

// RankTotal is the effective rank: full for class skills, half (rounded down)
// for cross-class skills
func (s *Skill) RankTotal() int {
	if s.isClassSkill {
		return s.rank
	}
	return s.rank / 2
}

// IncrementRank changes the rank by delta and returns delta, or 0 when the
// new rank would leave [0, level+3] or the pool cannot cover delta.
func (s *Skill) IncrementRank(delta, availableSkillPoints, characterLevel int) int {
	spent, err := s.tryIncrementRank(delta, availableSkillPoints, characterLevel)
	if err != nil {
		return 0
	}
	return spent
}

func (s *Skill) tryIncrementRank(delta, pool, level int) (int, error) {
	newRank := s.rank + delta
	if newRank < 0 {
		return 0, errors.OutOfRangef("%s rank cannot drop below 0", s.name).
			WithMeta("skill", s.id).
			WithMeta("rank", newRank)
	}
	if maxRank := MaxRank(level); newRank > maxRank {
		return 0, errors.OutOfRangef("%s rank %d exceeds maximum %d at level %d", s.name, newRank, maxRank, level).
			WithMeta("skill", s.id).
			WithMeta("rank", newRank)
	}
	if pool < delta {
		return 0, errors.InsufficientPoints("skill", delta, pool).
			WithMeta("skill", s.id)
	}

	s.rank = newRank
	s.recompute()
	return delta, nil
}

// SetRank stores the absolute value of rank without any pool or cap checks
func (s *Skill) SetRank(rank int) {
	if rank < 0 {
		rank = -rank
	}
	s.rank = rank
	s.recompute()
}

// SetModifiers adds each value to the modifier already held for that source
func (s *Skill) SetModifiers(modifiers map[string]int) {
	for source, v := range modifiers {
		s.modifiers[source] += v
	}
	s.recompute()
}

func (s *Skill) recompute() {
	total := s.RankTotal()
	for _, v := range s.modifiers {
		total += v
	}
	s.total = total
}

func (s *Skill) clone() *Skill {
	c := *s
	c.modifiers = cloneInts(s.modifiers)
	return &c
}
