package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hbnb/rental-directory/internal/core/ports"
)

func TestRecordEncoding(t *testing.T) {
	in := ports.IdempotencyRecord{
		Fingerprint: "abc",
		Status:      201,
		ContentType: "application/json",
		Body:        []byte(`{"id":"1"}`),
	}
	raw, err := encodeRecord(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := decodeRecord(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Fingerprint != in.Fingerprint || out.Status != in.Status || string(out.Body) != string(in.Body) {
		t.Errorf("record changed in transit: %+v", out)
	}
}

func TestDecodeRecord_Corrupt(t *testing.T) {
	if _, err := decodeRecord([]byte("not json")); err == nil {
		t.Fatal("expected error for corrupt payload")
	}
}

func TestKeyFormat(t *testing.T) {
	s := NewIdempotencyStore(nil)
	if got := s.key("k-1"); got != "idem:k-1" {
		t.Errorf("unexpected key %q", got)
	}
}

// TestIdempotencyStore_Redis runs against a live server when REDIS_ADDR is set.
func TestIdempotencyStore_Redis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := Connect(ctx, Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	s := NewIdempotencyStore(client)
	key := uuid.NewString()
	defer func() { _ = s.Release(ctx, key) }()

	rec, err := s.Get(ctx, key)
	if err != nil || rec != nil {
		t.Fatalf("expected empty lookup, got %+v, %v", rec, err)
	}

	ok, err := s.Reserve(ctx, key, "fp", time.Minute)
	if err != nil || !ok {
		t.Fatalf("first reserve: ok=%v err=%v", ok, err)
	}
	ok, err = s.Reserve(ctx, key, "fp", time.Minute)
	if err != nil || ok {
		t.Fatalf("second reserve must fail: ok=%v err=%v", ok, err)
	}

	if err := s.Complete(ctx, key, ports.IdempotencyRecord{Fingerprint: "fp", Status: 201, Body: []byte("{}")}, time.Minute); err != nil {
		t.Fatalf("complete: %v", err)
	}
	rec, err = s.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Pending || rec.Status != 201 {
		t.Errorf("unexpected record %+v", rec)
	}
}
