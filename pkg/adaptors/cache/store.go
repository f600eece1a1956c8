package cache

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock.go

// Store keeps raw results until they expire.
type Store interface {
	// Get returns the value of key, or false when it is missing or expired.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage, ttl time.Duration) error
	// DeleteExpired removes expired entries and returns how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
