package ports

import (
	"context"
	"time"
)

// Cache is a small key-value capability used for best-effort status hints.
// The sqlite adapter ignores TTLs; entries live until overwritten or deleted.
type Cache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
