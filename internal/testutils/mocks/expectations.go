// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/dnd35-sheet/internal/repositories/character"
	charactermock "github.com/KirkDiggler/dnd35-sheet/internal/repositories/character/mock"
	dicesession "github.com/KirkDiggler/dnd35-sheet/internal/repositories/dice_session"
	dicesessionmock "github.com/KirkDiggler/dnd35-sheet/internal/repositories/dice_session/mock"
)

// ExpectCharacterGet sets up a mock expectation for loading a character snapshot
func ExpectCharacterGet(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	characterID string, data *dnd35.Data, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, characterrepo.GetInput{ID: characterID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: characterID}).
		Return(&characterrepo.GetOutput{CharacterData: data}, nil)
}

// ExpectCharacterCreate sets up a mock expectation for storing a new character
func ExpectCharacterCreate(ctx context.Context, mockRepo *charactermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			// Simulate repository behavior - it would set timestamps
			now := clock.Now().Unix()
			input.CharacterData.CreatedAt = now
			input.CharacterData.UpdatedAt = now
			return &characterrepo.CreateOutput{CharacterData: input.CharacterData}, nil
		})
}

// ExpectCharacterUpdate sets up a mock expectation for saving a character and
// captures the saved snapshot into saved when it is not nil
func ExpectCharacterUpdate(ctx context.Context, mockRepo *charactermock.MockRepository, saved **dnd35.Data) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			input.CharacterData.UpdatedAt = clock.Now().Unix()
			if saved != nil {
				*saved = input.CharacterData
			}
			return &characterrepo.UpdateOutput{CharacterData: input.CharacterData}, nil
		})
}

// ExpectCharacterDelete sets up a mock expectation for deleting a character
func ExpectCharacterDelete(ctx context.Context, mockRepo *charactermock.MockRepository, characterID string, err error) {
	mockRepo.EXPECT().
		Delete(ctx, characterrepo.DeleteInput{ID: characterID}).
		Return(&characterrepo.DeleteOutput{}, err)
}

// ExpectNoAbilityRollSession makes the dice session lookup report a missing session
func ExpectNoAbilityRollSession(ctx context.Context, mockRepo *dicesessionmock.MockRepository, characterID string) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, dicesession.GetInput{EntityID: characterID, Context: dicesession.ContextAbilityScores}).
		Return(nil, errors.NotFoundf("dice session not found for entity %s", characterID))
}

// ExpectAbilityRollSessionCreate sets up a mock expectation for creating an
// ability roll session and echoes the stored session back
func ExpectAbilityRollSessionCreate(ctx context.Context, mockRepo *dicesessionmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input dicesession.CreateInput) (*dicesession.CreateOutput, error) {
			now := clock.Now()
			return &dicesession.CreateOutput{Session: &dicesession.DiceSession{
				EntityID:  input.EntityID,
				Context:   input.Context,
				Rolls:     input.Rolls,
				CreatedAt: now,
				ExpiresAt: now.Add(dicesession.DefaultTTL),
			}}, nil
		})
}

var clock = &testClock{}

type testClock struct{}

func (c *testClock) Now() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}
