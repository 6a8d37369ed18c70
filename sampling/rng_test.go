package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func draw(r *RNG, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.Uint64()
	}
	return out
}

func TestRNGSameSeed(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)
	assert.Equal(t, draw(a, 16), draw(b, 16))
}

func TestRNGDifferentSeed(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(42)
	assert.NotEqual(t, draw(a, 16), draw(b, 16))
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := draw(rng, 10)

	rng.Reset()
	v2 := draw(rng, 10)

	assert.Equal(t, v1, v2)
	assert.Equal(t, uint64(4711), rng.Seed())
}
