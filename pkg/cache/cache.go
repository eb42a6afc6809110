// Package cache provides key/value storage used to remember what was last
// sent to a room, so unchanged overlays are not uploaded again.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: JSON files under the user cache directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for several senders per room
//   - [NullCache]: stores nothing; disables deduplication
//
// Keys are produced by a [Keyer] so that several tenants can share one
// backend without collisions.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
//
// Get reports a miss as (nil, false, nil). A ttl of 0 means the entry never
// expires. Implementations must be safe for use by a single goroutine; the
// Redis backend is also safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
