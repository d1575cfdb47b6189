// Package sheet orchestrates character sheet operations: it restores the
// stored character, applies one rules operation, saves the snapshot and
// announces the change on the event bus.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/dnd35-sheet/internal/orchestrators/sheet Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
	"github.com/KirkDiggler/dnd35-sheet/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/dnd35-sheet/internal/repositories/character"
	dicesession "github.com/KirkDiggler/dnd35-sheet/internal/repositories/dice_session"
)

// Service defines the character sheet operations
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Point-buy and rank purchases
	IncrementAbility(ctx context.Context, input *IncrementAbilityInput) (*IncrementAbilityOutput, error)
	IncrementSkill(ctx context.Context, input *IncrementSkillInput) (*IncrementSkillOutput, error)

	// Level transitions
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)
	RollBackLevel(ctx context.Context, input *RollBackLevelInput) (*RollBackLevelOutput, error)

	// Ability generation
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
	RandomizeAbilityScores(ctx context.Context, input *RandomizeAbilityScoresInput) (*RandomizeAbilityScoresOutput, error)
	GetAbilityRolls(ctx context.Context, input *GetAbilityRollsInput) (*GetAbilityRollsOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	CharacterRepo   characterrepo.Repository
	DiceSessionRepo dicesession.Repository
	Catalog         *catalog.Catalog
	IDGenerator     idgen.Generator

	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	// EventBus defaults to a private events.NewBus() with no subscribers;
	// pass a bus with SubscribeAuditLog or other handlers attached to observe changes
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo   characterrepo.Repository
	diceSessionRepo dicesession.Repository
	catalog         *catalog.Catalog
	idGen           idgen.Generator
	roller          dice.Roller
	eventBus        events.EventBus
}

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	return &orchestrator{
		characterRepo:   cfg.CharacterRepo,
		diceSessionRepo: cfg.DiceSessionRepo,
		catalog:         cfg.Catalog,
		idGen:           cfg.IDGenerator,
		roller:          roller,
		eventBus:        bus,
	}, nil
}

// CreateCharacter builds a level 1 character, generates its ability scores
// with the requested method and stores it
func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	method := input.Method
	if method == "" {
		method = MethodPointBuy
	}
	switch method {
	case MethodPointBuy, MethodRandomPointBuy, Method4d6:
	default:
		return nil, errors.InvalidArgumentf("unknown ability generation method: %s", input.Method)
	}

	c, err := dnd35.NewCharacter(&dnd35.CharacterConfig{
		ID:      o.idGen.Generate(),
		Name:    input.Name,
		ClassID: input.ClassID,
		RaceID:  input.RaceID,
		Catalog: o.catalog,
		Roller:  o.roller,
	})
	if err != nil {
		return nil, err
	}

	output := &CreateCharacterOutput{}
	var abilityRolls []dnd35.AbilityRoll
	switch method {
	case MethodRandomPointBuy:
		if err := c.RandomizePointBuy(); err != nil {
			return nil, errors.Wrap(err, "failed to randomize ability scores")
		}
	case Method4d6:
		cost, rolls, err := c.RollAbilities4d6()
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll ability scores")
		}
		output.RolledCost = cost
		abilityRolls = rolls
	}

	c.UpdateAvailableSkillPoints()

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{CharacterData: c.ToData()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}
	output.Character = created.CharacterData

	if len(abilityRolls) > 0 {
		diceRolls, _, err := o.recordAbilityRolls(ctx, c.ID(), abilityRolls)
		if err != nil {
			return nil, err
		}
		output.Rolls = diceRolls
	}

	slog.InfoContext(ctx, "character created",
		"character_id", c.ID(),
		"class_id", c.ClassID(),
		"race_id", c.RaceID(),
		"method", method)

	o.publish(ctx, EventCharacterCreated, output.Character)

	return output, nil
}

// GetCharacter returns the stored snapshot
func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: c.ToData()}, nil
}

// ListCharacters returns stored characters, optionally filtered by class
func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		input = &ListCharactersInput{}
	}
	if input.ClassID != "" {
		if _, ok := o.catalog.Class(input.ClassID); !ok {
			return nil, errors.UnknownIdentifier("class", input.ClassID)
		}
	}

	listed, err := o.characterRepo.List(ctx, characterrepo.ListInput{ClassID: input.ClassID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: listed.Characters}, nil
}

// DeleteCharacter removes the character and its roll audit trail
func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.CharacterID)
	}

	output := &DeleteCharacterOutput{}
	deleted, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.CharacterID,
		Context:  dicesession.ContextAbilityScores,
	})
	switch {
	case err == nil:
		output.RollsDeleted = deleted.RollsDeleted
	case errors.IsNotFound(err):
	default:
		slog.WarnContext(ctx, "failed to delete ability roll session",
			"character_id", input.CharacterID,
			"error", err)
	}

	slog.InfoContext(ctx, "character deleted", "character_id", input.CharacterID)

	o.publish(ctx, EventCharacterDeleted, &dnd35.Data{ID: input.CharacterID})

	return output, nil
}

// IncrementAbility raises an ability score, paying from the ability pool
// unless the increment is free
func (o *orchestrator) IncrementAbility(ctx context.Context, input *IncrementAbilityInput) (*IncrementAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	spent, err := c.IncrementAbilityBaseValue(input.Ability, !input.Free, input.Delta)
	if err != nil {
		return nil, err
	}

	data, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "ability increased",
		"character_id", c.ID(),
		"ability", string(input.Ability),
		"delta", input.Delta,
		"free", input.Free,
		"spent", spent)

	o.publish(ctx, EventAbilityIncreased, data)

	return &IncrementAbilityOutput{Character: data, PointsSpent: spent}, nil
}

// IncrementSkill buys skill ranks from the skill pool
func (o *orchestrator) IncrementSkill(ctx context.Context, input *IncrementSkillInput) (*IncrementSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	spent, err := c.IncrementSkillRank(input.SkillID, input.Delta)
	if err != nil {
		return nil, err
	}

	data, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "skill increased",
		"character_id", c.ID(),
		"skill_id", input.SkillID,
		"delta", input.Delta,
		"spent", spent)

	o.publish(ctx, EventSkillIncreased, data)

	return &IncrementSkillOutput{Character: data, PointsSpent: spent}, nil
}

// LevelUp advances the character and opens a new rollback window
func (o *orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if err := c.LevelUp(input.Levels); err != nil {
		return nil, err
	}

	data, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character leveled up",
		"character_id", c.ID(),
		"level", c.TotalLevel())

	o.publish(ctx, EventCharacterLeveledUp, data)

	return &LevelUpOutput{Character: data}, nil
}

// RollBackLevel reverts the free increments recorded since the last level-up
func (o *orchestrator) RollBackLevel(ctx context.Context, input *RollBackLevelInput) (*RollBackLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if c.LevelUpRollBackList().IsEmpty() {
		return &RollBackLevelOutput{Character: c.ToData()}, nil
	}

	c.RollBackLevelWindow()

	data, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "level window rolled back", "character_id", c.ID())

	o.publish(ctx, EventLevelRolledBack, data)

	return &RollBackLevelOutput{Character: data}, nil
}

// RollAbilityScores replaces the ability scores with 4d6 drop-lowest rolls
// and appends the rolls to the character's audit session
func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if c.TotalLevel() != 1 {
		return nil, errors.FailedPreconditionf("ability scores can only be rolled at level 1, character is level %d", c.TotalLevel())
	}

	cost, rolls, err := c.RollAbilities4d6()
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}
	refreshStartingSkillPoints(c)

	data, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	diceRolls, session, err := o.recordAbilityRolls(ctx, c.ID(), rolls)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "ability scores rolled",
		"character_id", c.ID(),
		"rolled_cost", cost)

	o.publish(ctx, EventAbilitiesRolled, data)

	return &RollAbilityScoresOutput{
		Character:  data,
		Rolls:      diceRolls,
		RolledCost: cost,
		Session:    session,
	}, nil
}

// RandomizeAbilityScores spends the remaining ability pool at random
func (o *orchestrator) RandomizeAbilityScores(ctx context.Context, input *RandomizeAbilityScoresInput) (*RandomizeAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if err := c.RandomizePointBuy(); err != nil {
		return nil, errors.Wrap(err, "failed to randomize ability scores")
	}
	refreshStartingSkillPoints(c)

	data, err := o.save(ctx, c)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "ability scores randomized",
		"character_id", c.ID(),
		"remaining_points", c.AvailableAbilityPoints())

	o.publish(ctx, EventAbilitiesRandomized, data)

	return &RandomizeAbilityScoresOutput{Character: data}, nil
}

// GetAbilityRolls returns the recorded 4d6 rolls for a character
func (o *orchestrator) GetAbilityRolls(ctx context.Context, input *GetAbilityRollsInput) (*GetAbilityRollsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.CharacterID,
		Context:  dicesession.ContextAbilityScores,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ability rolls for %s", input.CharacterID)
	}

	return &GetAbilityRollsOutput{Session: got.Session}, nil
}

func (o *orchestrator) load(ctx context.Context, characterID string) (*dnd35.Character, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", characterID)
	}

	c, err := dnd35.Restore(got.CharacterData, o.catalog, o.roller)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to restore character %s", characterID)
	}

	return c, nil
}

func (o *orchestrator) save(ctx context.Context, c *dnd35.Character) (*dnd35.Data, error) {
	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: c.ToData()})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", c.ID())
	}
	return updated.CharacterData, nil
}

// recordAbilityRolls appends rolls to the character's ability score session,
// creating the session when none is live
func (o *orchestrator) recordAbilityRolls(ctx context.Context, characterID string, rolls []dnd35.AbilityRoll) ([]*dicesession.DiceRoll, *dicesession.DiceSession, error) {
	diceRolls := make([]*dicesession.DiceRoll, 0, len(rolls))
	for _, r := range rolls {
		diceRolls = append(diceRolls, &dicesession.DiceRoll{
			RollID:      o.idGen.Generate(),
			Notation:    AbilityScoreNotation,
			Dice:        append([]int(nil), r.Dice...),
			Dropped:     []int{r.Dropped},
			Total:       r.Score,
			Description: r.Ability.Name(),
		})
	}

	existing, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: characterID,
		Context:  dicesession.ContextAbilityScores,
	})
	if err != nil && !errors.IsNotFound(err) {
		return nil, nil, errors.Wrapf(err, "failed to get ability roll session for %s", characterID)
	}

	if err == nil {
		session := existing.Session
		for _, r := range diceRolls {
			session.Rolls = append(session.Rolls, *r)
		}
		if err := o.diceSessionRepo.Update(ctx, session); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to update ability roll session for %s", characterID)
		}
		return diceRolls, session, nil
	}

	sessionRolls := make([]dicesession.DiceRoll, 0, len(diceRolls))
	for _, r := range diceRolls {
		sessionRolls = append(sessionRolls, *r)
	}
	created, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
		EntityID: characterID,
		Context:  dicesession.ContextAbilityScores,
		Rolls:    sessionRolls,
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create ability roll session for %s", characterID)
	}

	return diceRolls, created.Session, nil
}

// publish announces a saved change. Delivery failures are logged only; the
// change is already stored.
func (o *orchestrator) publish(ctx context.Context, eventType string, data *dnd35.Data) {
	event := events.NewGameEvent(eventType, wrapCharacter(data), nil)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"event_type", eventType,
			"character_id", data.ID,
			"error", err)
	}
}

// refreshStartingSkillPoints recomputes the level 1 skill pool after the
// Intelligence score changed, as long as no ranks have been bought yet
func refreshStartingSkillPoints(c *dnd35.Character) {
	if c.TotalLevel() != 1 {
		return
	}
	for _, id := range c.SkillIDs() {
		if s, ok := c.Skill(id); ok && s.Rank() > 0 {
			return
		}
	}
	c.UpdateAvailableSkillPoints()
}
