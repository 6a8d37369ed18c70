package dataset

import (
	"math/rand/v2"
	"slices"

	"github.com/hupe1980/logreg/sampling"
	"github.com/hupe1980/logreg/vector"
)

// Linear generates samples whose labels follow a linear decision boundary
// perturbed by additive noise.
type Linear struct {
	coefficients vector.Vector
	ranges       []sampling.Range
	noise        sampling.Distribution
	src          rand.Source
}

var _ Generator = (*Linear)(nil)

// NewLinear creates a linear generator. ranges must hold one entry per
// coefficient; by convention the first is sampling.Point(1) so that the
// first coefficient acts as a bias. coeff and ranges are copied.
func NewLinear(coeff vector.Vector, ranges []sampling.Range, noise sampling.Distribution, src rand.Source) (*Linear, error) {
	if coeff.Dim() == 0 {
		return nil, ErrInvalidDimension
	}
	if len(ranges) != coeff.Dim() {
		return nil, &ErrRangeCountMismatch{Dimension: coeff.Dim(), Ranges: len(ranges)}
	}
	if noise == nil {
		return nil, ErrNilNoise
	}
	if src == nil {
		return nil, ErrNilSource
	}

	return &Linear{
		coefficients: coeff.Clone(),
		ranges:       slices.Clone(ranges),
		noise:        noise,
		src:          src,
	}, nil
}

// Dim implements Generator.
func (g *Linear) Dim() int {
	return g.coefficients.Dim()
}

// Coefficients returns a copy of the true decision boundary.
func (g *Linear) Coefficients() vector.Vector {
	return g.coefficients.Clone()
}

// Generate implements Generator.
func (g *Linear) Generate(n int) ([]Sample, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	samples := make([]Sample, n)
	for i := range samples {
		s, err := g.sample()
		if err != nil {
			return nil, err
		}
		samples[i] = s
	}

	return samples, nil
}

func (g *Linear) sample() (Sample, error) {
	features := make(vector.Vector, len(g.ranges))
	for i, r := range g.ranges {
		features[i] = r.RandomPoint(g.src)
	}

	value, err := g.coefficients.Dot(features)
	if err != nil {
		return Sample{}, err
	}

	return Sample{Features: features, Label: Label(value + g.noise.Sample())}, nil
}
