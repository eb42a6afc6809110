package upload

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svglayer/pkg/cache"
	"github.com/matzehuels/svglayer/pkg/observability"
)

// DefaultDedupeTTL bounds how long a sent overlay is remembered. Rooms are
// short-lived, so a stale entry only costs one redundant upload.
const DefaultDedupeTTL = 12 * time.Hour

const keyTypeLayer = "layer"

// Deduper skips uploads of content a room already shows.
type Deduper struct {
	client *Client
	cache  cache.Cache
	keyer  cache.Keyer
	ttl    time.Duration
	logger *log.Logger
}

// DeduperOption configures a Deduper.
type DeduperOption func(*Deduper)

// WithKeyer sets the cache key generator.
func WithKeyer(k cache.Keyer) DeduperOption {
	return func(d *Deduper) {
		if k != nil {
			d.keyer = k
		}
	}
}

// WithTTL sets how long sent content is remembered. Zero means forever.
func WithTTL(ttl time.Duration) DeduperOption {
	return func(d *Deduper) { d.ttl = ttl }
}

// WithDedupeLogger sets the logger.
func WithDedupeLogger(l *log.Logger) DeduperOption {
	return func(d *Deduper) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDeduper wraps client with a content cache. A nil cache disables
// deduplication.
func NewDeduper(client *Client, c cache.Cache, opts ...DeduperOption) *Deduper {
	if c == nil {
		c = cache.NewNullCache()
	}
	d := &Deduper{
		client: client,
		cache:  c,
		keyer:  cache.NewDefaultKeyer(),
		ttl:    DefaultDedupeTTL,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send uploads svg unless the same content was the last one sent to this
// room and z-index. It reports whether a request was made. Cache failures
// are logged and never prevent the upload.
func (d *Deduper) Send(ctx context.Context, accessKey string, svg []byte, zIndex int) (bool, error) {
	key := d.keyer.LayerKey(accessKey, zIndex)
	hash := cache.Hash(svg)
	hooks := observability.Cache()

	prev, hit, err := d.cache.Get(ctx, key)
	switch {
	case err != nil:
		d.logger.Warn("dedupe cache unavailable", "err", err)
	case hit && string(prev) == hash:
		hooks.OnCacheHit(ctx, keyTypeLayer)
		observability.Upload().OnUploadSkipped(ctx, zIndex)
		d.logger.Debug("layer unchanged, skipping upload", "z-index", zIndex)
		return false, nil
	default:
		hooks.OnCacheMiss(ctx, keyTypeLayer)
	}

	if err := d.client.SendLayer(ctx, accessKey, svg, zIndex); err != nil {
		return false, err
	}

	if err := d.cache.Set(ctx, key, []byte(hash), d.ttl); err != nil {
		d.logger.Warn("dedupe cache write failed", "err", err)
	} else {
		hooks.OnCacheSet(ctx, keyTypeLayer, len(hash))
	}
	return true, nil
}

// Clear removes the layer from the room and forgets what was sent.
func (d *Deduper) Clear(ctx context.Context, accessKey string, zIndex int) error {
	if err := d.client.ClearLayer(ctx, accessKey, zIndex); err != nil {
		return err
	}
	if err := d.cache.Delete(ctx, d.keyer.LayerKey(accessKey, zIndex)); err != nil {
		d.logger.Warn("dedupe cache delete failed", "err", err)
	}
	return nil
}

// Forget drops the remembered content so the next Send always uploads.
func (d *Deduper) Forget(ctx context.Context, accessKey string, zIndex int) error {
	return d.cache.Delete(ctx, d.keyer.LayerKey(accessKey, zIndex))
}
