package sheet

import (
	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
	dicesession "github.com/KirkDiggler/dnd35-sheet/internal/repositories/dice_session"
)

// Ability generation methods accepted by CreateCharacter
const (
	MethodPointBuy       = "point_buy"
	MethodRandomPointBuy = "random_point_buy"
	Method4d6            = "4d6"
)

// AbilityScoreNotation is the notation recorded for generated ability rolls
const AbilityScoreNotation = "4d6"

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name    string
	ClassID string
	RaceID  string
	// Method is one of the Method constants; empty means MethodPointBuy
	Method string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *dnd35.Data
	// Rolls is set when Method4d6 was used
	Rolls []*dicesession.DiceRoll
	// RolledCost is the point-buy value of rolled scores
	RolledCost int
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *dnd35.Data
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	ClassID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*dnd35.Data
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	RollsDeleted int
}

// IncrementAbilityInput defines the request for raising an ability score
type IncrementAbilityInput struct {
	CharacterID string
	Ability     dnd35.AbilityID
	Delta       int
	// Free skips the point cost and records the change in the level window
	Free bool
}

// IncrementAbilityOutput defines the response for raising an ability score
type IncrementAbilityOutput struct {
	Character   *dnd35.Data
	PointsSpent int
}

// IncrementSkillInput defines the request for buying skill ranks
type IncrementSkillInput struct {
	CharacterID string
	SkillID     string
	Delta       int
}

// IncrementSkillOutput defines the response for buying skill ranks
type IncrementSkillOutput struct {
	Character   *dnd35.Data
	PointsSpent int
}

// LevelUpInput defines the request for gaining levels
type LevelUpInput struct {
	CharacterID string
	Levels      int
}

// LevelUpOutput defines the response for gaining levels
type LevelUpOutput struct {
	Character *dnd35.Data
}

// RollAbilityScoresInput defines the request for rolling 4d6 ability scores
type RollAbilityScoresInput struct {
	CharacterID string
}

// RollAbilityScoresOutput defines the response for rolling ability scores
type RollAbilityScoresOutput struct {
	Character  *dnd35.Data
	Rolls      []*dicesession.DiceRoll
	RolledCost int
	Session    *dicesession.DiceSession
}

// RandomizeAbilityScoresInput defines the request for a random point-buy spend
type RandomizeAbilityScoresInput struct {
	CharacterID string
}

// RandomizeAbilityScoresOutput defines the response for a random point-buy spend
type RandomizeAbilityScoresOutput struct {
	Character *dnd35.Data
}

// RollBackLevelInput defines the request for undoing the current level window
type RollBackLevelInput struct {
	CharacterID string
}

// RollBackLevelOutput defines the response for undoing the current level window
type RollBackLevelOutput struct {
	Character *dnd35.Data
}

// GetAbilityRollsInput defines the request for reading the roll audit trail
type GetAbilityRollsInput struct {
	CharacterID string
}

// GetAbilityRollsOutput defines the response for reading the roll audit trail
type GetAbilityRollsOutput struct {
	Session *dicesession.DiceSession
}
