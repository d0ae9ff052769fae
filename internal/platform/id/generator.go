package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// snapshot IDs travel in URLs and CSV filenames, so keep them short,
// lowercase and prefixed for greppability.
const snapshotIDPrefix = "snap_"

// Generator creates the opaque public IDs handed out for stored
// snapshots.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return snapshotIDPrefix + hex.EncodeToString(buf), nil
}
