package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store persists sessions under opaque identifiers. A missing session is
// reported as (nil, nil), not as an error.
type Store interface {
	Save(ctx context.Context, id string, session *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a session store backed by Redis.
func NewRedisStore(client *redis.Client) (Store, error) {
	if client == nil {
		return nil, errors.New("Redis client is not initialized")
	}
	return &redisStore{client: client}, nil
}

func (s *redisStore) Save(ctx context.Context, id string, session *Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(id), payload, ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
