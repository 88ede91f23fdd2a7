// Package cache implements the note list cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notehub/internal/config"
	"notehub/internal/domain/entities"
	"notehub/internal/ports/cache"
	"notehub/pkg/logger"
)

// Error messages.
const (
	ErrorFailedToConnect    = "failed to connect to redis"
	ErrorFailedToGet        = "failed to get note list from redis"
	ErrorFailedToSet        = "failed to set note list in redis"
	ErrorFailedToInvalidate = "failed to invalidate note list in redis"
	ErrorFailedToClose      = "failed to close redis connection"
	ErrorFailedToMarshal    = "failed to marshal note list"
	ErrorFailedToUnmarshal  = "failed to unmarshal note list"
)

const noteListKeyPrefix = "notes:user:"

// RedisNoteListCache implements cache.NoteListCache. Each user has a single
// key holding the JSON-encoded note list; the value is only ever replaced
// wholesale.
type RedisNoteListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisNoteListCache connects to Redis and returns the cache.
func NewRedisNoteListCache(ctx context.Context, cfg *config.RedisConfig) (cache.NoteListCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddress(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}

	return &RedisNoteListCache{client: client, ttl: cfg.DefaultTTL}, nil
}

func noteListKey(userID string) string {
	return noteListKeyPrefix + userID
}

// GetList returns the cached note list for the user, or (nil, nil) on a miss.
func (c *RedisNoteListCache) GetList(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "RedisNoteListCache.GetList"), zap.String("userID", userID))

	value, err := c.client.Get(ctx, noteListKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	var notes []*entities.Note
	if err := json.Unmarshal([]byte(value), &notes); err != nil {
		log.Error(ctx, ErrorFailedToUnmarshal, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToUnmarshal, err)
	}

	return notes, nil
}

// SetList replaces the user's cached note list.
func (c *RedisNoteListCache) SetList(ctx context.Context, userID string, notes []*entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "RedisNoteListCache.SetList"), zap.String("userID", userID))

	payload, err := json.Marshal(notes)
	if err != nil {
		log.Error(ctx, ErrorFailedToMarshal, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToMarshal, err)
	}

	if err := c.client.Set(ctx, noteListKey(userID), payload, c.ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Invalidate drops the user's cached note list.
func (c *RedisNoteListCache) Invalidate(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "RedisNoteListCache.Invalidate"), zap.String("userID", userID))

	if err := c.client.Del(ctx, noteListKey(userID)).Err(); err != nil {
		log.Error(ctx, ErrorFailedToInvalidate, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToInvalidate, err)
	}

	return nil
}

// Close closes the Redis connection.
func (c *RedisNoteListCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
