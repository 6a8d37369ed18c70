package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/logreg/sampling"
)

func TestUnitRanges(t *testing.T) {
	ranges := UnitRanges(3)

	require.Len(t, ranges, 3)
	assert.True(t, ranges[0].IsPoint())
	assert.Equal(t, 1.0, ranges[0].Lo())
	for _, r := range ranges[1:] {
		assert.Equal(t, -1.0, r.Lo())
		assert.Equal(t, 1.0, r.Hi())
	}

	assert.Nil(t, UnitRanges(0))
}

func TestLinear(t *testing.T) {
	g := Linear(t, ReferenceCoefficients(), sampling.Constant(0), 4711)

	samples, err := g.Generate(10)
	require.NoError(t, err)
	require.Len(t, samples, 10)
	for _, s := range samples {
		assert.Equal(t, 1.0, s.Features[0])
	}
}

func TestReferenceSamplesDeterministic(t *testing.T) {
	a := ReferenceSamples(t, 4711, 50)
	b := ReferenceSamples(t, 4711, 50)

	require.Len(t, a, 50)
	for i := range a {
		InDeltaVector(t, a[i].Features, b[i].Features, 0)
		assert.Equal(t, a[i].Label, b[i].Label)
	}
}
