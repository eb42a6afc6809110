package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer generates cache keys.
type Keyer interface {
	// LayerKey identifies the overlay shown at zIndex in the room behind
	// accessKey. The access key itself never appears in the key.
	LayerKey(accessKey string, zIndex int) string
}

// DefaultKeyer produces keys of the form "layer:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayerKey implements Keyer.
func (DefaultKeyer) LayerKey(accessKey string, zIndex int) string {
	return hashKey("layer", accessKey, zIndex)
}

// ScopedKeyer wraps a Keyer with a prefix so several users or deployments
// can share one Redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayerKey implements Keyer.
func (k *ScopedKeyer) LayerKey(accessKey string, zIndex int) string {
	return k.prefix + k.inner.LayerKey(accessKey, zIndex)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
