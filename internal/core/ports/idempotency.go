package ports

import (
	"context"
	"time"
)

// IdempotencyRecord is a stored response for a POST carrying an
// Idempotency-Key header. Fingerprint identifies the request it answered.
type IdempotencyRecord struct {
	Fingerprint string `json:"fingerprint"`
	Pending     bool   `json:"pending,omitempty"`
	Status      int    `json:"status,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body,omitempty"`
}

// IdempotencyStore persists idempotency records across requests.
type IdempotencyStore interface {
	// Get returns the record for key, or (nil, nil) when there is none.
	Get(ctx context.Context, key string) (*IdempotencyRecord, error)
	// Reserve stores a pending record for key unless one already exists,
	// reporting whether the reservation was taken.
	Reserve(ctx context.Context, key, fingerprint string, ttl time.Duration) (bool, error)
	// Complete replaces the pending record with the final response.
	Complete(ctx context.Context, key string, rec IdempotencyRecord, ttl time.Duration) error
	// Release drops a pending record so the request can be retried.
	Release(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
