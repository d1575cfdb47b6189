package dnd35

import (
	"sort"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

// applyRacialTraits runs once at construction. Ability modifiers replace,
// skill modifiers stack, feats are granted and the remaining details are set
// or accumulated.
func (c *Character) applyRacialTraits(race catalog.RaceDef) error {
	for code, value := range race.AbilityModifiers {
		ability, ok := c.abilities[AbilityID(code)]
		if !ok {
			return errors.UnknownIdentifier("ability", code)
		}
		ability.SetRacialModifier(value)
	}

	// sorted so a bad table fails on the same skill every time
	skillIDs := make([]string, 0, len(race.SkillModifiers))
	for id := range race.SkillModifiers {
		skillIDs = append(skillIDs, id)
	}
	sort.Strings(skillIDs)
	for _, id := range skillIDs {
		skill, ok := c.skills[id]
		if !ok {
			var err error
			skill, err = c.skillFromCatalog(id)
			if err != nil {
				return err
			}
			c.skills[id] = skill
		}
		skill.SetModifiers(map[string]int{RacialModifierSource: race.SkillModifiers[id]})
	}

	for _, f := range race.Feats {
		c.feats[f.ID] = Feat{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
		}
	}

	other := race.Other
	if other.Size != "" {
		c.details.Size = other.Size
	}
	c.details.Languages = append(c.details.Languages, other.Languages...)
	c.details.Traits = append(c.details.Traits, other.Traits...)
	c.details.BaseLandSpeed += other.BaseLandSpeed
	c.details.BonusSkillPointsPerLevel += other.SkillPointsPerLevel

	return nil
}
