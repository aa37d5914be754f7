package session

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/google/uuid"       // Random session tokens
	"github.com/redis/go-redis/v9" // Redis client
)

// RedisStore implements Store on Redis. Each session is a JSON document under
// "session:<token>" with a TTL, so restarting Redis invalidates every session
// the same way the panel's predecessor regenerated its secret per start.
type RedisStore struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Session lifetime
}

// NewRedisStore returns a session store backed by the given Redis client.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = TTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// key builds the Redis key for a session token
func (s *RedisStore) key(token string) string {
	return "session:" + token
}

// Create implements Store.
func (s *RedisStore) Create(ctx context.Context, data Data) (string, error) {
	token := uuid.NewString() // Opaque session token
	if err := s.set(ctx, token, data); err != nil {
		return "", err
	}
	return token, nil
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, token string) (*Data, error) {
	val, err := s.rdb.Get(ctx, s.key(token)).Result() // Get value from Redis
	if err == redis.Nil {
		return nil, ErrNotFound // Token unknown or expired
	} else if err != nil {
		return nil, err // Other Redis error
	}
	var data Data
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, s.key(token)).Err() // Delete key from Redis
}

// AddFlash implements Store.
func (s *RedisStore) AddFlash(ctx context.Context, token string, f Flash) error {
	data, err := s.Get(ctx, token)
	if err != nil {
		return err
	}
	data.Flashes = append(data.Flashes, f)
	return s.set(ctx, token, *data)
}

// PopFlashes implements Store.
func (s *RedisStore) PopFlashes(ctx context.Context, token string) ([]Flash, error) {
	data, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	flashes := data.Flashes
	if len(flashes) == 0 {
		return nil, nil
	}
	data.Flashes = nil
	return flashes, s.set(ctx, token, *data)
}

// set marshals the payload and stores it with the session TTL
func (s *RedisStore) set(ctx context.Context, token string, data Data) error {
	b, err := json.Marshal(data) // Marshal value to JSON
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(token), b, s.ttl).Err() // Set value in Redis with TTL
}
