package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per-entry expiration. Backed by Redis in
// deployments and by MemoryStore in tests and single-node setups.
type Store interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
