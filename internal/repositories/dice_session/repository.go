// Package dicesession stores the audit trail of ability-score rolls
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/dnd35-sheet/internal/repositories/dice_session Repository

// ContextAbilityScores groups the 4d6 rolls made while generating abilities
const ContextAbilityScores = "ability_scores"

// DiceSession is a collection of rolls grouped by character and context
type DiceSession struct {
	// Character that owns these rolls
	EntityID string `json:"entity_id"`

	// Context for grouping related rolls, e.g. ContextAbilityScores
	Context string `json:"context"`

	Rolls []DiceRoll `json:"rolls"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DiceRoll is one recorded roll
type DiceRoll struct {
	// Unique identifier for this roll within the session
	RollID string `json:"roll_id"`

	// Dice notation that was rolled, e.g. "4d6"
	Notation string `json:"notation"`

	// Individual dice values
	Dice []int `json:"dice"`

	// Dice discarded by a drop-lowest rule
	Dropped []int `json:"dropped,omitempty"`

	// Sum of the kept dice
	Total int `json:"total"`

	// What the roll was for, e.g. "Strength"
	Description string `json:"description"`
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	TTL      time.Duration // zero uses the repository default
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a new dice session with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dice session by entity ID and context
	// Returns errors.NotFound when missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing dice session, keeping its expiry
	Update(ctx context.Context, session *DiceSession) error
}
