// Package random provides the randomness used to set up a game: drawing
// roles from a pool and picking the schadenfreuder's enemy.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/cbodonnell/grouphell/pkg/game/types"
)

// Provider is the source of randomness consumed by the game manager.
type Provider interface {
	// Sample returns n distinct roles drawn from pool.
	Sample(pool []types.Role, n int) ([]types.Role, error)
	// Choose returns one of candidates uniformly at random.
	Choose(candidates []string) (string, error)
}

// Source is a Provider backed by a seeded math/rand generator, so a game
// can be replayed from its seed.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func (s *Source) Sample(pool []types.Role, n int) ([]types.Role, error) {
	if n < 0 || n > len(pool) {
		return nil, fmt.Errorf("cannot sample %d roles from a pool of %d", n, len(pool))
	}
	shuffled := append([]types.Role(nil), pool...)
	// partial Fisher-Yates: the first n slots end up uniformly sampled
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:n], nil
}

func (s *Source) Choose(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("no candidates to choose from")
	}
	return candidates[s.rng.Intn(len(candidates))], nil
}
