package sampling

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution produces one real-valued draw per call.
// Successive draws are independent.
type Distribution interface {
	Sample() float64
}

// Uniform draws from [lo, hi].
type Uniform struct {
	dist distuv.Uniform
}

// NewUniform creates a uniform distribution over [lo, hi] drawing from src.
func NewUniform(lo, hi float64, src rand.Source) (*Uniform, error) {
	if _, err := Interval(lo, hi); err != nil {
		return nil, err
	}
	return &Uniform{dist: distuv.Uniform{Min: lo, Max: hi, Src: src}}, nil
}

// Sample implements Distribution.
func (u *Uniform) Sample() float64 {
	if u.dist.Min == u.dist.Max {
		return u.dist.Min
	}
	return u.dist.Rand()
}

// Gaussian draws from a normal distribution with mean 0.
type Gaussian struct {
	dist distuv.Normal
}

// NewGaussian creates a zero-mean normal distribution with the given
// standard deviation drawing from src. A zero stddev always yields 0.
func NewGaussian(stddev float64, src rand.Source) (*Gaussian, error) {
	if !finite(stddev) || stddev < 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidStdDev, stddev)
	}
	return &Gaussian{dist: distuv.Normal{Mu: 0, Sigma: stddev, Src: src}}, nil
}

// StdDev returns the standard deviation.
func (g *Gaussian) StdDev() float64 {
	return g.dist.Sigma
}

// Sample implements Distribution.
func (g *Gaussian) Sample() float64 {
	return g.dist.Rand()
}

// Constant is a Distribution that always returns the same value.
// Constant(0) turns a generator into a noise-free one.
type Constant float64

// Sample implements Distribution.
func (c Constant) Sample() float64 {
	return float64(c)
}
