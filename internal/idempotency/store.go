// Package idempotency replays the first response of a mutating request when a
// client retries it with the same Idempotency-Key.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedResponse is what gets replayed for a repeated key
type CachedResponse struct {
	StatusCode int                 `json:"status_code"`
	Body       []byte              `json:"body"`
	Headers    map[string][]string `json:"headers,omitempty"`
}

// Store persists responses by key
type Store interface {
	// Get returns nil, nil on a miss
	Get(ctx context.Context, key string) (*CachedResponse, error)
	Save(ctx context.Context, key string, resp CachedResponse, ttl time.Duration) error
	// Reserve marks key as in flight. It reports false when another request
	// already holds it.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisStore implements Store on Redis
type RedisStore struct {
	client redis.Cmdable
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*CachedResponse, error) {
	val, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetKeyFailed, err)
	}

	var resp CachedResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil, fmt.Errorf(ErrMsgUnmarshalResponse, err)
	}
	return &resp, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, resp CachedResponse, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalResponse, err)
	}
	if err := s.client.Set(ctx, KeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf(ErrMsgSaveKeyFailed, err)
	}
	return nil
}

func (s *RedisStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, LockKeyPrefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf(ErrMsgReserveKeyFailed, err)
	}
	return ok, nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, LockKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf(ErrMsgReleaseKeyFailed, err)
	}
	return nil
}
