package sampling

import (
	"math/rand/v2"
	"sync"
)

// seedStream decorrelates the second PCG word from the seed.
const seedStream = 0x9e3779b97f4a7c15

// RNG is a seeded, resettable random source.
// It implements rand.Source and is safe for concurrent use.
type RNG struct {
	mu   sync.Mutex
	pcg  *rand.PCG
	seed uint64
}

var _ rand.Source = (*RNG)(nil)

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		pcg:  rand.NewPCG(seed, seed^seedStream),
		seed: seed,
	}
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pcg.Uint64()
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pcg.Seed(r.seed, r.seed^seedStream)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}
