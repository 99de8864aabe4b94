package contextstore

import (
	"StudyVault/model"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "upload:context:"

// RedisStore is a Store shared across bot instances. The staleness window
// maps onto the Redis key TTL; GETDEL keeps Take atomic per key.
type RedisStore struct {
	client *redis.Client
	maxAge time.Duration
}

// NewRedisStore creates a Redis-backed context store.
func NewRedisStore(client *redis.Client, maxAge time.Duration) *RedisStore {
	return &RedisStore{client: client, maxAge: maxAge}
}

// Set overwrites the user's context.
func (s *RedisStore) Set(ctx context.Context, userID string, uc model.UploadContext) error {
	uc.CreatedAt = time.Now()
	data, err := json.Marshal(uc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+userID, string(data), s.maxAge).Err()
}

// Take removes and returns the user's context in one round trip.
func (s *RedisStore) Take(ctx context.Context, userID string) (model.UploadContext, bool, error) {
	val, err := s.client.GetDel(ctx, redisKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return model.UploadContext{}, false, nil
	}
	if err != nil {
		return model.UploadContext{}, false, err
	}
	var uc model.UploadContext
	if err := json.Unmarshal([]byte(val), &uc); err != nil {
		return model.UploadContext{}, false, err
	}
	return uc, true, nil
}
