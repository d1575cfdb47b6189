package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
	"github.com/KirkDiggler/dnd35-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dnd35-sheet/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	classIndexPrefix   = "character:class:"
	allIndexKey        = "character:index:all"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errClassIDEmpty     = "character class cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func validateData(data *dnd35.Data) error {
	if data == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if data.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	if data.ClassID == "" {
		return errors.InvalidArgument(errClassIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	key := characterKeyPrefix + input.CharacterData.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.CharacterData.ID)
	}

	stored := *input.CharacterData
	now := r.clock.Now().Unix()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allIndexKey, stored.ID)
	pipe.SAdd(ctx, classIndexPrefix+stored.ClassID, stored.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{CharacterData: &stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{CharacterData: data}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*dnd35.Data, error) {
	result, err := r.client.Get(ctx, characterKeyPrefix+id).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var data dnd35.Data
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}

	return &data, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	existing, err := r.load(ctx, input.CharacterData.ID)
	if err != nil {
		return nil, err
	}

	stored := *input.CharacterData
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+stored.ID, data, 0)
	if existing.ClassID != stored.ClassID {
		pipe.SRem(ctx, classIndexPrefix+existing.ClassID, stored.ID)
		pipe.SAdd(ctx, classIndexPrefix+stored.ClassID, stored.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{CharacterData: &stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	existing, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	pipe.SRem(ctx, allIndexKey, input.ID)
	pipe.SRem(ctx, classIndexPrefix+existing.ClassID, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	indexKey := allIndexKey
	if input.ClassID != "" {
		indexKey = classIndexPrefix + input.ClassID
	}

	characters, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters",
			"class_id", input.ClassID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	slog.DebugContext(ctx, "listed characters",
		"class_id", input.ClassID,
		"count", len(characters))

	return &ListOutput{Characters: characters}, nil
}

// listByIndex loads every character named in an index set, dropping ids
// whose snapshot has gone missing
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*dnd35.Data, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}
	sort.Strings(ids)

	characters := make([]*dnd35.Data, 0, len(ids))
	for _, id := range ids {
		data, err := r.load(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, data)
	}

	return characters, nil
}
