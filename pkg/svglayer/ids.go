package svglayer

import (
	"crypto/rand"
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for gradients and filters.
// Generated ids must be valid XML names; a layer guarantees uniqueness
// within its document on top of whatever the generator provides.
type IDGenerator interface {
	NextID() string
}

// IDFunc adapts a function to IDGenerator.
type IDFunc func() string

// NextID calls f.
func (f IDFunc) NextID() string { return f() }

// resetter is implemented by generators that restart when a layer is cleared.
type resetter interface {
	Reset()
}

const idAlphabet = "_-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// RandomIDs returns short random ids: a leading letter followed by size
// symbols drawn from a 64-symbol alphabet.
func RandomIDs(size int) IDGenerator {
	return IDFunc(func() string {
		raw := make([]byte, size)
		_, _ = rand.Read(raw)
		id := make([]byte, 0, size+1)
		id = append(id, 'l')
		for _, b := range raw {
			id = append(id, idAlphabet[b&63])
		}
		return string(id)
	})
}

// UUIDIDs returns ids derived from random (v4) UUIDs.
func UUIDIDs() IDGenerator {
	return IDFunc(func() string { return "id-" + uuid.NewString() })
}

// Counter generates sequential ids such as "def1", "def2".
// It restarts from 1 when the owning layer is cleared, so rebuilding the same
// scene yields byte-identical output.
type Counter struct {
	prefix string
	n      int
}

// CounterIDs returns a Counter using prefix, or "def" when prefix is empty.
func CounterIDs(prefix string) *Counter {
	if prefix == "" {
		prefix = "def"
	}
	return &Counter{prefix: prefix}
}

// NextID returns the next sequential id.
func (c *Counter) NextID() string {
	c.n++
	return c.prefix + strconv.Itoa(c.n)
}

// Reset restarts the sequence.
func (c *Counter) Reset() { c.n = 0 }
