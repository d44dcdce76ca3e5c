package character

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
	"github.com/KirkDiggler/vtm-sheets/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/vtm-sheets/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	// indexKey is a sorted set of record keys scored by first save time,
	// which gives List a stable enumeration order
	indexKey = "character:index"
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

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	keys, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read character index",
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	slog.DebugContext(ctx, "read character index",
		"index_key", indexKey,
		"count", len(keys))

	return &ListOutput{Keys: keys}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	key := characterKeyPrefix + input.Key
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character %s not found", input.Key).
				WithMeta("key", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	char, err := Unmarshal([]byte(result))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", input.Key).WithMeta("key", input.Key)
	}

	return &GetOutput{Character: char}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	key := characterKeyPrefix + input.Key

	if !input.Overwrite {
		exists, err := r.client.Exists(ctx, key).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check existence")
		}
		if exists > 0 {
			return nil, errors.AlreadyExistsf("character %s already exists", input.Key).
				WithMeta("key", input.Key)
		}
	}

	data, err := Marshal(input.Character)
	if err != nil {
		return nil, err
	}

	// Start transaction
	pipe := r.client.TxPipeline()

	pipe.Set(ctx, key, data, 0) // No TTL for characters

	// NX keeps the original position when a record is overwritten
	pipe.ZAddNX(ctx, indexKey, redis.Z{
		Score:  float64(r.clock.Now().UnixNano()),
		Member: input.Key,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}

	slog.DebugContext(ctx, "saved character",
		"key", input.Key,
		"bytes", len(data))

	return &SaveOutput{Key: input.Key}, nil
}
