package services

import (
	"context"
	"encoding/json"
	"time"

	"zreyas-photo-service/config"

	"github.com/go-redis/redis/v8"
)

// Cache keys and TTL for the public read endpoints
const (
	cacheKeyLeaderboard  = "winners:leaderboard"
	cacheKeyPhotosPrefix = "photos:all:"
	cacheTTL             = 30 * time.Second
)

// InterfaceRedisService defines cache operations for hot read paths
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(keys ...string) error
	CachePhotoList(sort string, photos interface{}) error
	GetPhotoList(sort string, dest interface{}) error
	CacheLeaderboard(entries interface{}) error
	GetLeaderboard(dest interface{}) error
	InvalidateContestCaches()
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes keys from Redis
func (s *RedisService) Delete(keys ...string) error {
	return s.Client.Del(s.Ctx, keys...).Err()
}

// CachePhotoList caches a sorted photo listing
func (s *RedisService) CachePhotoList(sort string, photos interface{}) error {
	return s.Set(cacheKeyPhotosPrefix+sort, photos, cacheTTL)
}

// GetPhotoList gets a cached photo listing
func (s *RedisService) GetPhotoList(sort string, dest interface{}) error {
	return s.Get(cacheKeyPhotosPrefix+sort, dest)
}

// CacheLeaderboard caches the public leaderboard projection
func (s *RedisService) CacheLeaderboard(entries interface{}) error {
	return s.Set(cacheKeyLeaderboard, entries, cacheTTL)
}

// GetLeaderboard gets the cached leaderboard projection
func (s *RedisService) GetLeaderboard(dest interface{}) error {
	return s.Get(cacheKeyLeaderboard, dest)
}

// InvalidateContestCaches drops every cached listing after a mutation.
// Failures are logged and ignored; the cache will expire on its own.
func (s *RedisService) InvalidateContestCaches() {
	keys := []string{
		cacheKeyLeaderboard,
		cacheKeyPhotosPrefix + "likes",
		cacheKeyPhotosPrefix + "newest",
	}
	if err := s.Delete(keys...); err != nil {
		config.Warning("Failed to invalidate contest caches: %v", err)
	}
}
