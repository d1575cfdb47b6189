// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
)

// CharacterDataBuilder provides a fluent interface for building dnd35.Data snapshots
type CharacterDataBuilder struct {
	data *dnd35.Data
}

// NewCharacterDataBuilder starts from a level 1 human fighter with every
// ability at 8 and the full point-buy pool
func NewCharacterDataBuilder() *CharacterDataBuilder {
	abilities := make(map[dnd35.AbilityID]dnd35.AbilityData, len(dnd35.AllAbilities))
	for _, id := range dnd35.AllAbilities {
		abilities[id] = dnd35.AbilityData{BaseValue: 8, Modifier: -1, Total: 8}
	}

	return &CharacterDataBuilder{
		data: &dnd35.Data{
			ID:                     "char-test-123",
			Name:                   "Test Character",
			ClassID:                "fighter",
			RaceID:                 "human",
			TotalLevel:             1,
			AvailableAbilityPoints: dnd35.StartingAbilityPoints,
			Abilities:              abilities,
			Skills: map[string]dnd35.SkillData{
				"climb": {Name: "Climb", KeyAbility: "str", IsClassSkill: true},
				"swim":  {Name: "Swim", KeyAbility: "str", IsClassSkill: true},
			},
			Feats: map[string]dnd35.Feat{},
			Details: dnd35.CharacterDetails{
				Size:                     "medium",
				Languages:                []string{"common"},
				BaseLandSpeed:            9,
				BonusSkillPointsPerLevel: 1,
			},
			LevelUpRollBackList: dnd35.RollbackLedger{},
		},
	}
}

// WithID sets the character ID
func (b *CharacterDataBuilder) WithID(id string) *CharacterDataBuilder {
	b.data.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterDataBuilder) WithName(name string) *CharacterDataBuilder {
	b.data.Name = name
	return b
}

// WithClass sets the class
func (b *CharacterDataBuilder) WithClass(classID string) *CharacterDataBuilder {
	b.data.ClassID = classID
	return b
}

// WithRace sets the race
func (b *CharacterDataBuilder) WithRace(raceID string) *CharacterDataBuilder {
	b.data.RaceID = raceID
	return b
}

// WithLevel sets the total level
func (b *CharacterDataBuilder) WithLevel(level int) *CharacterDataBuilder {
	b.data.TotalLevel = level
	return b
}

// WithAbility sets one ability's base value and derived fields
func (b *CharacterDataBuilder) WithAbility(id dnd35.AbilityID, base int) *CharacterDataBuilder {
	b.data.Abilities[id] = dnd35.AbilityData{
		BaseValue: base,
		Modifier:  dnd35.AbilityModifier(base),
		Total:     base,
	}
	return b
}

// WithSkillRank sets a skill's rank, adding it as a cross-class skill if needed
func (b *CharacterDataBuilder) WithSkillRank(id string, rank int) *CharacterDataBuilder {
	skill, ok := b.data.Skills[id]
	if !ok {
		skill = dnd35.SkillData{Name: id}
	}
	skill.Rank = rank
	skill.Total = rank
	if !skill.IsClassSkill {
		skill.Total = rank / 2
	}
	b.data.Skills[id] = skill
	return b
}

// WithPools sets the available ability and skill points
func (b *CharacterDataBuilder) WithPools(abilityPoints, skillPoints int) *CharacterDataBuilder {
	b.data.AvailableAbilityPoints = abilityPoints
	b.data.AvailableSkillPoints = skillPoints
	return b
}

// Build returns the snapshot
func (b *CharacterDataBuilder) Build() *dnd35.Data {
	return b.data
}
