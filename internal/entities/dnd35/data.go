package dnd35

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

// Data is the serializable snapshot of a Character used by repositories.
// Modifier and Total fields are written for readers of the snapshot and are
// recomputed on Restore.
type Data struct {
	ID                     string                    `json:"id"`
	Name                   string                    `json:"name"`
	ClassID                string                    `json:"class_id"`
	RaceID                 string                    `json:"race_id"`
	TotalLevel             int                       `json:"total_level"`
	AvailableAbilityPoints int                       `json:"available_ability_points"`
	AvailableSkillPoints   int                       `json:"available_skill_points"`
	Abilities              map[AbilityID]AbilityData `json:"abilities"`
	Skills                 map[string]SkillData      `json:"skills"`
	Feats                  map[string]Feat           `json:"feats,omitempty"`
	Details                CharacterDetails          `json:"details"`
	LevelUpRollBackList    RollbackLedger            `json:"level_up_roll_back_list,omitempty"`
	CreatedAt              int64                     `json:"created_at,omitempty"`
	UpdatedAt              int64                     `json:"updated_at,omitempty"`
}

// AbilityData is the stored form of an Ability
type AbilityData struct {
	BaseValue          int            `json:"base_value"`
	RacialModifier     int            `json:"racial_modifier,omitempty"`
	TemporaryModifiers map[string]int `json:"temporary_modifiers,omitempty"`
	Modifier           int            `json:"modifier"`
	Total              int            `json:"total"`
}

// SkillData is the stored form of a Skill
type SkillData struct {
	Name         string         `json:"name"`
	KeyAbility   string         `json:"key_ability"`
	Rank         int            `json:"rank"`
	IsClassSkill bool           `json:"is_class_skill"`
	Modifiers    map[string]int `json:"modifiers,omitempty"`
	Total        int            `json:"total"`
}

// ToData snapshots the character
func (c *Character) ToData() *Data {
	data := &Data{
		ID:                     c.id,
		Name:                   c.name,
		ClassID:                c.classID,
		RaceID:                 c.raceID,
		TotalLevel:             c.totalLevel,
		AvailableAbilityPoints: c.availableAbilityPoints,
		AvailableSkillPoints:   c.availableSkillPoints,
		Abilities:              make(map[AbilityID]AbilityData, len(c.abilities)),
		Skills:                 make(map[string]SkillData, len(c.skills)),
		Feats:                  make(map[string]Feat, len(c.feats)),
		Details:                c.details.clone(),
		LevelUpRollBackList:    c.ledger.clone(),
	}

	for id, a := range c.abilities {
		data.Abilities[id] = AbilityData{
			BaseValue:          a.baseValue,
			RacialModifier:     a.racialModifier,
			TemporaryModifiers: cloneInts(a.temporaryModifiers),
			Modifier:           a.modifier,
			Total:              a.total,
		}
	}
	for id, s := range c.skills {
		data.Skills[id] = SkillData{
			Name:         s.name,
			KeyAbility:   s.keyAbility,
			Rank:         s.rank,
			IsClassSkill: s.isClassSkill,
			Modifiers:    cloneInts(s.modifiers),
			Total:        s.total,
		}
	}
	for id, f := range c.feats {
		data.Feats[id] = f
	}

	return data
}

// Restore rebuilds a Character from a snapshot. Racial traits are not applied
// again; they are already part of the stored state.
func Restore(data *Data, cat *catalog.Catalog, roller dice.Roller) (*Character, error) {
	if data == nil {
		return nil, errors.InvalidArgument("data is required")
	}
	if cat == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("class_id", data.ClassID, vb)
	if data.TotalLevel < 1 {
		vb.Fieldf("total_level", "must be at least 1, got %d", data.TotalLevel)
	}
	for _, id := range AllAbilities {
		if _, ok := data.Abilities[id]; !ok {
			vb.Fieldf("abilities", "missing %s", id)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "invalid snapshot for character %s", data.ID)
	}

	class, ok := cat.Class(data.ClassID)
	if !ok {
		return nil, errors.UnknownIdentifier("class", data.ClassID)
	}

	c := newBareCharacter(data.ID, data.Name, class, data.RaceID, cat, roller)
	c.totalLevel = data.TotalLevel
	c.availableAbilityPoints = data.AvailableAbilityPoints
	c.availableSkillPoints = data.AvailableSkillPoints
	c.details = data.Details.clone()

	for _, id := range AllAbilities {
		stored := data.Abilities[id]
		a := NewAbility(id)
		a.baseValue = stored.BaseValue
		a.racialModifier = stored.RacialModifier
		a.temporaryModifiers = cloneInts(stored.TemporaryModifiers)
		a.recompute()
		c.abilities[id] = a
	}

	for id, stored := range data.Skills {
		s := NewSkill(catalog.SkillDef{ID: id, Name: stored.Name, KeyAbility: stored.KeyAbility}, stored.IsClassSkill)
		s.rank = stored.Rank
		s.modifiers = cloneInts(stored.Modifiers)
		s.recompute()
		c.skills[id] = s
	}

	for id, f := range data.Feats {
		c.feats[id] = f
	}

	if data.LevelUpRollBackList != nil {
		c.ledger = data.LevelUpRollBackList.clone()
	}

	return c, nil
}
