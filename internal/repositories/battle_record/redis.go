package battlerecord

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
)

const (
	// Key pattern: battle_record:{id}
	recordKeyPrefix = "battle_record:"

	// IndexKey holds battle ids newest first
	IndexKey = "battle_record:index"

	defaultTTL      = 30 * 24 * time.Hour
	defaultMaxIndex = 500
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL for each record; zero uses 30 days
	TTL time.Duration
	// MaxIndex bounds the recent-battles index; zero uses 500
	MaxIndex int
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	if c.MaxIndex < 0 {
		vb.Field("MaxIndex", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client   redisclient.Client
	ttl      time.Duration
	maxIndex int
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// NewRedis creates a new Redis repository for battle records
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	maxIndex := cfg.MaxIndex
	if maxIndex == 0 {
		maxIndex = defaultMaxIndex
	}

	return &redisRepository{
		client:   cfg.Client,
		ttl:      ttl,
		maxIndex: maxIndex,
	}, nil
}

// Save stores the result and moves its id to the head of the recent index.
// Saving an id again replaces the record and keeps a single index entry.
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Result)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal battle result")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, RecordKey(input.Result.ID), data, r.ttl)
	pipe.LRem(ctx, IndexKey, 0, input.Result.ID)
	pipe.LPush(ctx, IndexKey, input.Result.ID)
	pipe.LTrim(ctx, IndexKey, 0, int64(r.maxIndex-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store battle result in Redis")
	}

	return &SaveOutput{Result: input.Result}, nil
}

// Get retrieves a battle result by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	data, err := r.client.Get(ctx, RecordKey(input.ID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("battle %s not found", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get battle result from Redis")
	}

	var result entities.BattleResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal battle result")
	}

	return &GetOutput{Result: &result}, nil
}

// ListRecent walks the index newest first, skipping records that have expired
func (r *redisRepository) ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	limit := listLimit(input)

	ids, err := r.client.LRange(ctx, IndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read battle index from Redis")
	}
	if len(ids) == 0 {
		return &ListRecentOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = RecordKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read battle results from Redis")
	}

	results := make([]*entities.BattleResult, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var result entities.BattleResult
		if err := json.Unmarshal([]byte(s), &result); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal battle result")
		}
		results = append(results, &result)
	}

	return &ListRecentOutput{Results: results}, nil
}

// RecordKey returns the key holding the battle with the given id
func RecordKey(id string) string {
	return recordKeyPrefix + id
}
