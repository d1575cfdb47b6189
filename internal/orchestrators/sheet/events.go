package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
)

// Event types published on the bus after a change has been saved
const (
	EventCharacterCreated    = "sheet.character.created"
	EventCharacterDeleted    = "sheet.character.deleted"
	EventAbilityIncreased    = "sheet.ability.increased"
	EventSkillIncreased      = "sheet.skill.increased"
	EventCharacterLeveledUp  = "sheet.character.leveled_up"
	EventAbilitiesRolled     = "sheet.abilities.rolled"
	EventAbilitiesRandomized = "sheet.abilities.randomized"
	EventLevelRolledBack     = "sheet.level.rolled_back"
)

// EventTypes lists every event type the orchestrator publishes
var EventTypes = []string{
	EventCharacterCreated,
	EventCharacterDeleted,
	EventAbilityIncreased,
	EventSkillIncreased,
	EventCharacterLeveledUp,
	EventAbilitiesRolled,
	EventAbilitiesRandomized,
	EventLevelRolledBack,
}

const auditPriority = 100

// CharacterEntity wraps a character snapshot to implement core.Entity
type CharacterEntity struct {
	*dnd35.Data
}

var _ core.Entity = (*CharacterEntity)(nil)

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return "character"
}

func wrapCharacter(data *dnd35.Data) *CharacterEntity {
	return &CharacterEntity{Data: data}
}

// SubscribeAuditLog writes one info record per sheet event to logger and
// returns the subscription IDs
func SubscribeAuditLog(bus events.EventBus, logger *slog.Logger) []string {
	handler := func(ctx context.Context, e events.Event) error {
		attrs := []any{"event", e.Type()}
		if src := e.Source(); src != nil {
			attrs = append(attrs, "character_id", src.GetID())
			if ch, ok := src.(*CharacterEntity); ok && ch.Data != nil {
				attrs = append(attrs,
					"total_level", ch.TotalLevel,
					"available_ability_points", ch.AvailableAbilityPoints,
					"available_skill_points", ch.AvailableSkillPoints)
			}
		}
		logger.InfoContext(ctx, "sheet event", attrs...)
		return nil
	}

	ids := make([]string, 0, len(EventTypes))
	for _, eventType := range EventTypes {
		ids = append(ids, bus.SubscribeFunc(eventType, auditPriority, handler))
	}
	return ids
}
