// Package cache implements the report cache used to memoize computed views.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// KeyPrefix namespaces every cached view.
const KeyPrefix = "ledger"

// scanBatch is the SCAN COUNT hint and the UNLINK batch size during invalidation.
const scanBatch = 100

// redisCache implements adapter.ReportCache on top of Redis.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient creates a Redis client from configuration and checks connectivity.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// NewRedisCache creates a report cache storing JSON values with the given TTL.
// A non-positive ttl stores values without expiry.
func NewRedisCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	if ttl < 0 {
		ttl = 0
	}
	return &redisCache{
		client: client,
		ttl:    ttl,
	}
}

// Key builds the Redis key of a view: ledger:<owner>:<view>.
func Key(userID uuid.UUID, view string) string {
	return fmt.Sprintf("%s:%s:%s", KeyPrefix, userID, view)
}

// Get loads a cached view into dest. It reports false on a miss.
func (c *redisCache) Get(ctx context.Context, userID uuid.UUID, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, Key(userID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cached view: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached view: %w", err)
	}
	return true, nil
}

// generationKey holds the owner's invalidation counter. It sits outside the
// ledger:<owner>:* namespace so view scans never match it.
func generationKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", KeyPrefix, userID)
}

// Generation returns the owner's invalidation counter; a missing key is 0.
func (c *redisCache) Generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return gen, nil
}

// Set stores a view if the owner's generation still matches. The write runs
// in a WATCH transaction on the generation key, so an invalidation racing
// with it aborts the write.
func (c *redisCache) Set(ctx context.Context, userID uuid.UUID, generation int64, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}

	genKey := generationKey(userID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, Key(userID, key), raw, c.ttl)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to write cached view: %w", err)
	}
	return nil
}

// InvalidateOwner advances the owner's generation, then drops every cached
// view. Keys are collected before any is deleted so the SCAN cursor never
// walks a keyspace it is mutating.
func (c *redisCache) InvalidateOwner(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Incr(ctx, generationKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to advance cache generation: %w", err)
	}

	pattern := Key(userID, "*")
	iter := c.client.Scan(ctx, 0, pattern, scanBatch).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached views: %w", err)
	}

	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		if err := c.client.Unlink(ctx, keys[start:end]...).Err(); err != nil {
			return fmt.Errorf("failed to drop cached views: %w", err)
		}
	}
	return nil
}
