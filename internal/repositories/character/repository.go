// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/dnd35-sheet/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character snapshot
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character snapshot by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character snapshot
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character and its index entries
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every stored character, optionally narrowed to one class
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	CharacterData *dnd35.Data
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	CharacterData *dnd35.Data
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	CharacterData *dnd35.Data
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	CharacterData *dnd35.Data
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	CharacterData *dnd35.Data
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing characters
type ListInput struct {
	// ClassID limits the results to one class when set
	ClassID string
}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*dnd35.Data
}
