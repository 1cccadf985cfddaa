package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"codeberg.org/skillsprint/webfront/internal/session"
	"github.com/redis/go-redis/v9"
)

const keySnapshot = "skillsprint:session:%s"

// RedisStore implements session.SnapshotStore on Redis. Each browser
// session's snapshot lives under its own key with the session TTL, so a
// reloaded tab (and any sibling tab) rehydrates the last known state.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// creates a Redis-backed snapshot store from an existing client
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// creates a Redis-backed snapshot store from a URL
func NewRedisStoreFromURL(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// writes a session snapshot, refreshing its TTL
func (s *RedisStore) Save(ctx context.Context, key string, snap session.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return s.client.Set(ctx, fmt.Sprintf(keySnapshot, key), payload, s.ttl).Err()
}

// reads a session snapshot; the second return reports presence
func (s *RedisStore) Load(ctx context.Context, key string) (session.Snapshot, bool, error) {
	payload, err := s.client.Get(ctx, fmt.Sprintf(keySnapshot, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Snapshot{}, false, nil
	}
	if err != nil {
		return session.Snapshot{}, false, err
	}

	var snap session.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return session.Snapshot{}, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return snap, true, nil
}

// removes a session snapshot
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, fmt.Sprintf(keySnapshot, key)).Err()
}

// closes the underlying Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
