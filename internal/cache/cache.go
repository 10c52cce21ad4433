package cache

import (
	"context"
	"time"

	commonerrors "github.com/akovalyov/authcore/internal/common/errors"
)

// Cache is a byte-value store with per-key expiry. Get returns
// commonerrors.ErrCacheMiss for absent or expired keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

var ErrCacheMiss = commonerrors.ErrCacheMiss
