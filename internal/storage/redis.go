package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one browser client's keys in Redis under
// "<namespace>:<clientID>:<key>".
type RedisStore struct {
	client   redis.UniversalClient
	prefix   string
	clientID string
	ttl      time.Duration
}

// NewRedisStore scopes a Redis client to a single browser client.
// A zero ttl keeps keys until removed.
func NewRedisStore(client redis.UniversalClient, namespace, clientID string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:   client,
		prefix:   namespace + ":" + clientID + ":",
		clientID: clientID,
		ttl:      ttl,
	}
}

// ClientID returns the browser client this store is scoped to.
func (s *RedisStore) ClientID() string {
	return s.clientID
}

// Get returns the client's value for key; a missing key is not an error.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

// Set stores value under key, refreshing the client TTL.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Remove deletes key; absent keys are ignored.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
