package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/logreg/dataset"
	"github.com/hupe1980/logreg/sampling"
	"github.com/hupe1980/logreg/testutil"
	"github.com/hupe1980/logreg/vector"
)

func linearGenerator(t *testing.T, coeff vector.Vector, noise sampling.Distribution, seed uint64) *dataset.Linear {
	t.Helper()
	return testutil.Linear(t, coeff, noise, seed)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		coeff    vector.Vector
		features vector.Vector
		want     float64
	}{
		{"Positive", vector.Of(0, 1), vector.Of(1, 0.1), 1},
		{"Negative", vector.Of(0, 1), vector.Of(1, -0.1), 0},
		{"Boundary", vector.Of(1, -1), vector.Of(1, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.coeff, tt.features)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Classify(vector.Of(1, 2), vector.Of(1))
	var dm *vector.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
}

func TestEvaluatePerfectModelWithoutNoise(t *testing.T) {
	truth := vector.Of(1, 50, 10, -20, 0.1)
	g := linearGenerator(t, truth, sampling.Constant(0), 1)

	r, err := Evaluate(truth, g, DefaultValidationSize)
	require.NoError(t, err)

	assert.Equal(t, DefaultValidationSize, r.Total)
	assert.Equal(t, DefaultValidationSize, r.Correct)
	assert.Equal(t, 1.0, r.Accuracy())
	assert.True(t, r.Misclassified.IsEmpty())
}

func TestEvaluateInvertedModel(t *testing.T) {
	truth := vector.Of(1, 50, 10, -20, 0.1)
	g := linearGenerator(t, truth, sampling.Constant(0), 2)

	inverted := truth.Clone()
	for i := range inverted {
		inverted[i] = -inverted[i]
	}

	r, err := Evaluate(inverted, g, 500)
	require.NoError(t, err)

	// only samples with a decision value of exactly 0 could agree
	assert.Less(t, r.Accuracy(), 0.01)
	assert.Equal(t, uint64(r.Errors()), r.Misclassified.GetCardinality())
}

func TestEvaluateWithNoise(t *testing.T) {
	truth := vector.Of(1, 50, 10, -20, 0.1)
	noise, err := sampling.NewGaussian(5, sampling.NewRNG(3))
	require.NoError(t, err)
	g := linearGenerator(t, truth, noise, 4)

	r, err := Evaluate(truth, g, 2000)
	require.NoError(t, err)

	acc := r.Accuracy()
	assert.GreaterOrEqual(t, acc, 0.0)
	assert.LessOrEqual(t, acc, 1.0)
	// the true boundary mislabels only samples whose margin is inside the noise
	assert.Greater(t, acc, 0.8)
	assert.Less(t, acc, 1.0)
	assert.Equal(t, uint64(r.Total-r.Correct), r.Misclassified.GetCardinality())
}

func TestEvaluateDrawsFreshSamples(t *testing.T) {
	g := linearGenerator(t, vector.Of(0, 1), sampling.Constant(0), 5)

	first, err := g.Generate(10)
	require.NoError(t, err)

	r, err := Evaluate(vector.Of(0, 1), g, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Total)

	second, err := g.Generate(10)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestEvaluateValidation(t *testing.T) {
	g := linearGenerator(t, vector.Of(0, 1), sampling.Constant(0), 6)

	_, err := Evaluate(vector.Of(0, 1), nil, 10)
	assert.ErrorIs(t, err, ErrNilGenerator)

	_, err = Evaluate(vector.Of(0, 1, 2), g, 10)
	var dm *vector.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)

	_, err = Evaluate(vector.Of(0, 1), g, -1)
	assert.ErrorIs(t, err, dataset.ErrNegativeCount)
}

func TestScoreMisclassifiedIndices(t *testing.T) {
	samples := []dataset.Sample{
		{Features: vector.Of(1, 1), Label: 1},
		{Features: vector.Of(1, -1), Label: 1},
		{Features: vector.Of(1, -1), Label: 0},
		{Features: vector.Of(1, 1), Label: 0},
	}

	r, err := Score(vector.Of(0, 1), samples)
	require.NoError(t, err)

	assert.Equal(t, 4, r.Total)
	assert.Equal(t, 2, r.Correct)
	assert.Equal(t, 0.5, r.Accuracy())
	assert.Equal(t, []uint32{1, 3}, r.Misclassified.ToArray())
	assert.Equal(t, "accuracy 0.5 (2/4 correct)", r.String())
}

func TestEmptyReport(t *testing.T) {
	r, err := Score(vector.Of(1), nil)
	require.NoError(t, err)
	assert.Zero(t, r.Accuracy())
	assert.Zero(t, r.Errors())
}
