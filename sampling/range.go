package sampling

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Range is the set of values a single feature can take: either a constant
// or a closed interval [lo, hi]. The zero value is the constant 0.
type Range struct {
	lo, hi float64
}

// Point returns the degenerate range that always yields v.
func Point(v float64) Range {
	return Range{lo: v, hi: v}
}

// Interval returns the closed interval [lo, hi].
func Interval(lo, hi float64) (Range, error) {
	if !finite(lo) || !finite(hi) {
		return Range{}, fmt.Errorf("%w: bounds [%g, %g] must be finite", ErrInvalidRange, lo, hi)
	}
	if lo > hi {
		return Range{}, fmt.Errorf("%w: lo %g > hi %g", ErrInvalidRange, lo, hi)
	}
	return Range{lo: lo, hi: hi}, nil
}

// Lo returns the lower bound.
func (r Range) Lo() float64 { return r.lo }

// Hi returns the upper bound.
func (r Range) Hi() float64 { return r.hi }

// IsPoint reports whether r is a degenerate single-value range.
func (r Range) IsPoint() bool { return r.lo == r.hi }

// Contains reports whether lo <= v <= hi.
func (r Range) Contains(v float64) bool {
	return v >= r.lo && v <= r.hi
}

// RandomPoint draws a uniformly distributed value from r using src.
// A degenerate range returns its constant without consuming entropy.
func (r Range) RandomPoint(src rand.Source) float64 {
	if r.IsPoint() {
		return r.lo
	}
	return distuv.Uniform{Min: r.lo, Max: r.hi, Src: src}.Rand()
}

func (r Range) String() string {
	if r.IsPoint() {
		return fmt.Sprintf("%g", r.lo)
	}
	return fmt.Sprintf("[%g, %g]", r.lo, r.hi)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MustInterval is like Interval but panics if the bounds are invalid.
// It is intended for package-level or constant configuration.
func MustInterval(lo, hi float64) Range {
	r, err := Interval(lo, hi)
	if err != nil {
		panic(err)
	}
	return r
}
