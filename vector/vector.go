package vector

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is a dense, fixed-length vector of float64 values.
//
// A Vector is an owned value: operations that mutate it (SubtractScaled) do so
// in place, and callers that need an independent copy use Clone.
type Vector []float64

// New returns a zero vector of the given dimension.
func New(dim int) (Vector, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	return make(Vector, dim), nil
}

// Of returns a vector holding a copy of vals.
func Of(vals ...float64) Vector {
	return slices.Clone(Vector(vals))
}

// Dim returns the dimension of v.
func (v Vector) Dim() int {
	return len(v)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// Dot returns the sum of the elementwise products of v and other.
func (v Vector) Dot(other Vector) (float64, error) {
	if err := CheckDim(other, len(v)); err != nil {
		return 0, err
	}
	return floats.Dot(v, other), nil
}

// SubtractScaled performs v[i] -= other[i]*s in place and returns v.
func (v Vector) SubtractScaled(other Vector, s float64) (Vector, error) {
	if err := CheckDim(other, len(v)); err != nil {
		return v, err
	}
	floats.AddScaled(v, -s, other)
	return v, nil
}

// IsFinite reports whether every element of v is neither NaN nor ±Inf.
func (v Vector) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// String renders v as "[v0, v1, ...]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
