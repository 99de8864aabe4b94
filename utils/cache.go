package utils

import (
	"StudyVault/internal/repo"
	"StudyVault/model"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get reads a cached value.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Set writes a cached value.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, string(data), expiration).Err()
}

// Delete removes a cache entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// DeleteByPattern deletes cache entries by pattern.
func (c *RedisCache) DeleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}

type CacheManager struct {
	cache Cache
}

var globalCacheManager *CacheManager
var cacheManagerOnce sync.Once

// InitCacheManager initializes the cache manager.
func InitCacheManager() {
	cacheManagerOnce.Do(func() {
		globalCacheManager = &CacheManager{
			cache: NewRedisCache(repo.Redis),
		}
	})
}

// GetCacheManager returns the cache manager.
func GetCacheManager() *CacheManager {
	if globalCacheManager == nil {
		InitCacheManager()
	}
	return globalCacheManager
}

// BuildCacheKey builds a cache key.
func BuildCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += fmt.Sprintf(":%v", strings.ToLower(fmt.Sprintf("%v", param)))
	}
	return key
}

const (
	CacheKeyNotesList = "notes:list"
)

// GetNotesListFromCache reads a cached notes listing.
func GetNotesListFromCache(ctx context.Context, subject, chapter string) ([]model.FileRecord, bool) {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyNotesList, subject, chapter)

	var result []model.FileRecord
	if err := manager.cache.Get(ctx, key, &result); err != nil {
		return nil, false
	}
	return result, true
}

// SetNotesListToCache writes a cached notes listing.
func SetNotesListToCache(ctx context.Context, subject, chapter string, records []model.FileRecord, expiration time.Duration) error {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyNotesList, subject, chapter)
	return manager.cache.Set(ctx, key, records, expiration)
}

// InvalidateNotesListCache clears all cached notes listings. Listings use
// partial-match queries, so a new record can appear in any of them.
func InvalidateNotesListCache(ctx context.Context) error {
	manager := GetCacheManager()
	cache, ok := manager.cache.(*RedisCache)
	if !ok {
		return nil
	}
	return cache.DeleteByPattern(ctx, CacheKeyNotesList+":*")
}
