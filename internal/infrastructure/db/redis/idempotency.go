package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hbnb/rental-directory/internal/core/ports"
)

const keyPrefix = "idem:"

// IdempotencyStore keeps POST responses keyed by Idempotency-Key.
// Key format: idem:<idempotency_key>
type IdempotencyStore struct {
	client *redis.Client
}

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) (*ports.IdempotencyRecord, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("idempotency get: %w", err)
	}
	return decodeRecord(raw)
}

func (s *IdempotencyStore) Reserve(ctx context.Context, key, fingerprint string, ttl time.Duration) (bool, error) {
	raw, err := encodeRecord(ports.IdempotencyRecord{Fingerprint: fingerprint, Pending: true})
	if err != nil {
		return false, err
	}
	ok, err := s.client.SetNX(ctx, s.key(key), raw, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency reserve: %w", err)
	}
	return ok, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key string, rec ports.IdempotencyRecord, ttl time.Duration) error {
	rec.Pending = false
	raw, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *IdempotencyStore) key(k string) string {
	return keyPrefix + k
}

func encodeRecord(rec ports.IdempotencyRecord) ([]byte, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("idempotency encode: %w", err)
	}
	return raw, nil
}

func decodeRecord(raw []byte) (*ports.IdempotencyRecord, error) {
	var rec ports.IdempotencyRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("idempotency decode: %w", err)
	}
	return &rec, nil
}
