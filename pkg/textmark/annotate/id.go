package annotate

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// IDGen mints opaque, time-sortable annotation IDs.
type IDGen struct {
	entropy *ulid.MonotonicEntropy
}

// NewIDGen creates a new ID generator.
func NewIDGen() *IDGen {
	return &IDGen{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewID returns a fresh ULID string.
func (g *IDGen) NewID() string {
	return ulid.MustNew(ulid.Now(), g.entropy).String()
}
