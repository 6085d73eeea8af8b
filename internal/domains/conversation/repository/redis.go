package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"whatsapp-reviews/internal/domains/conversation/model"
)

const stateKeyPrefix = "conversation:"

// RedisStateStore survives restarts and lets several API replicas share
// conversations. Expiry is delegated to Redis key TTLs.
type RedisStateStore struct {
	client redis.Cmdable
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisStateStore(client redis.Cmdable, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func stateKey(contact string) string {
	return stateKeyPrefix + contact
}

func (s *RedisStateStore) Get(ctx context.Context, contact string) (*model.State, error) {
	raw, err := s.client.Get(ctx, stateKey(contact)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load conversation state: %w", err)
	}

	var state model.State
	if err := json.Unmarshal(raw, &state); err != nil {
		// A corrupt entry is as good as no entry; the contact starts over.
		_ = s.client.Del(ctx, stateKey(contact)).Err()
		return nil, model.ErrStateNotFound
	}
	return &state, nil
}

func (s *RedisStateStore) Set(ctx context.Context, contact string, state *model.State) error {
	state.LastSeen = s.now()

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode conversation state: %w", err)
	}

	if err := s.client.Set(ctx, stateKey(contact), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save conversation state: %w", err)
	}
	return nil
}

func (s *RedisStateStore) Clear(ctx context.Context, contact string) error {
	if err := s.client.Del(ctx, stateKey(contact)).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation state: %w", err)
	}
	return nil
}

// CleanupExpired is a no-op: Redis evicts keys when their TTL elapses
func (s *RedisStateStore) CleanupExpired(context.Context) error {
	return nil
}
