package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, Vector{0, 0, 0}, v)

	_, err = New(0)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = New(-1)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestOfCopies(t *testing.T) {
	vals := []float64{1, 2, 3}
	v := Of(vals...)
	vals[0] = 42
	assert.Equal(t, 1.0, v[0])
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected float64
	}{
		{"Simple", Of(1, 2, 3), Of(4, 5, 6), 32},
		{"Zero", Of(0, 0, 0), Of(0, 0, 0), 0},
		{"Mixed", Of(1, -1, 2), Of(1, 1, -2), -4},
		{"Single", Of(2), Of(3), 6},
		{"Bias", Of(1.0, 50.0, 10.0, -20, 0.1), Of(1, 0.5, -0.5, 0.25, 1), 1 + 25 - 5 - 5 + 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Dot(tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestDotCommutative(t *testing.T) {
	pairs := [][2]Vector{
		{Of(1, 2, 3), Of(-4, 5.5, 6)},
		{Of(0.1, 0.2, 0.3, 0.4, 0.5), Of(1e3, -1e-3, 7, 0, -2)},
		{Of(math.Pi), Of(math.E)},
	}

	for _, p := range pairs {
		ab, err := p[0].Dot(p[1])
		require.NoError(t, err)
		ba, err := p[1].Dot(p[0])
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
	}
}

func TestDotDimensionMismatch(t *testing.T) {
	_, err := Of(1, 2, 3).Dot(Of(1, 2))
	require.Error(t, err)

	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)
}

func TestSubtractScaled(t *testing.T) {
	a := Of(1, 2, 3, 4)
	b := Of(0.5, -1, 2, 0)
	want := make(Vector, len(a))
	for i := range a {
		want[i] = a[i] - b[i]*3
	}

	got, err := a.SubtractScaled(b, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, got.Dim())
	assert.InDeltaSlice(t, want, got, 1e-12)
	// receiver is mutated in place and returned for chaining
	assert.InDeltaSlice(t, want, a, 1e-12)
	got[0] = 99
	assert.Equal(t, 99.0, a[0])
	// operand is untouched
	assert.Equal(t, Of(0.5, -1, 2, 0), b)
}

func TestSubtractScaledChaining(t *testing.T) {
	v := Of(10, 10)
	_, err := v.SubtractScaled(Of(1, 2), 1)
	require.NoError(t, err)
	_, err = v.SubtractScaled(Of(1, 2), 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{7, 4}, v, 1e-12)
}

func TestSubtractScaledDimensionMismatch(t *testing.T) {
	a := Of(1, 2, 3)
	_, err := a.SubtractScaled(Of(1, 2, 3, 4), 1)

	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	// no truncation or partial update
	assert.Equal(t, Of(1, 2, 3), a)
}

func TestClone(t *testing.T) {
	a := Of(1, 2)
	b := a.Clone()
	b[0] = 5
	assert.Equal(t, 1.0, a[0])
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Of(1, -2, 0).IsFinite())
	assert.False(t, Of(1, math.NaN()).IsFinite())
	assert.False(t, Of(math.Inf(-1)).IsFinite())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1, 50, 10, -20, 0.1]", Of(1.0, 50.0, 10.0, -20, 0.1).String())
	assert.Equal(t, "[]", Vector{}.String())
}
