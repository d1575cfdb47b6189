package dnd35

import (
	"strings"

	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

// AbilityID identifies one of the six ability scores
type AbilityID string

// Ability score identifiers
const (
	AbilityStrength     AbilityID = "str"
	AbilityDexterity    AbilityID = "dex"
	AbilityConstitution AbilityID = "con"
	AbilityIntelligence AbilityID = "int"
	AbilityWisdom       AbilityID = "wis"
	AbilityCharisma     AbilityID = "cha"
)

// AllAbilities lists the abilities in sheet order
var AllAbilities = []AbilityID{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[AbilityID]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// Name returns the display name, or the raw id when unknown
func (a AbilityID) Name() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return string(a)
}

// Valid reports whether a is one of the six abilities
func (a AbilityID) Valid() bool {
	_, ok := abilityNames[a]
	return ok
}

// ParseAbilityID accepts either the three letter code or the full name
func ParseAbilityID(s string) (AbilityID, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for id, name := range abilityNames {
		if normalized == string(id) || normalized == strings.ToLower(name) {
			return id, nil
		}
	}
	return "", errors.UnknownIdentifier("ability", s)
}
