package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/logreg/dataset"
	"github.com/hupe1980/logreg/sampling"
	"github.com/hupe1980/logreg/vector"
)

// ReferenceNoise is the standard deviation of the reference label noise.
const ReferenceNoise = 5.0

// ReferenceCoefficients returns the reference decision boundary.
func ReferenceCoefficients() vector.Vector {
	return vector.Of(1, 50, 10, -20, 0.1)
}

// UnitRanges returns dim feature ranges: the constant 1 for the bias
// followed by dim-1 copies of [-1, 1].
func UnitRanges(dim int) []sampling.Range {
	if dim <= 0 {
		return nil
	}
	unit := sampling.MustInterval(-1, 1)
	ranges := make([]sampling.Range, 0, dim)
	ranges = append(ranges, sampling.Point(1))
	for range dim - 1 {
		ranges = append(ranges, unit)
	}
	return ranges
}

// Linear returns a generator for coeff over UnitRanges, seeded with seed.
func Linear(tb testing.TB, coeff vector.Vector, noise sampling.Distribution, seed uint64) *dataset.Linear {
	tb.Helper()

	g, err := dataset.NewLinear(coeff, UnitRanges(coeff.Dim()), noise, sampling.NewRNG(seed))
	require.NoError(tb, err)
	return g
}

// ReferenceSamples draws n samples from the reference scenario.
// Noise and features share one RNG, as in a full run.
func ReferenceSamples(tb testing.TB, seed uint64, n int) []dataset.Sample {
	tb.Helper()

	rng := sampling.NewRNG(seed)
	noise, err := sampling.NewGaussian(ReferenceNoise, rng)
	require.NoError(tb, err)

	coeff := ReferenceCoefficients()
	g, err := dataset.NewLinear(coeff, UnitRanges(coeff.Dim()), noise, rng)
	require.NoError(tb, err)

	samples, err := g.Generate(n)
	require.NoError(tb, err)
	return samples
}

// InDeltaVector asserts that expected and actual have the same dimension
// and agree element-wise within delta.
func InDeltaVector(tb testing.TB, expected, actual vector.Vector, delta float64) {
	tb.Helper()

	require.Equal(tb, expected.Dim(), actual.Dim(), "dimension")
	for i := range expected {
		require.InDelta(tb, expected[i], actual[i], delta, "element %d", i)
	}
}
