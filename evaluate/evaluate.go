package evaluate

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/logreg/dataset"
	"github.com/hupe1980/logreg/trainer"
	"github.com/hupe1980/logreg/vector"
)

// DefaultValidationSize is the number of validation samples drawn by the
// reference configuration.
const DefaultValidationSize = 1000

var (
	// ErrNilGenerator is returned when no sample generator is supplied.
	ErrNilGenerator = errors.New("evaluate: generator is nil")

	// ErrTooManySamples is returned when the validation set cannot be indexed
	// by the misclassification bitmap.
	ErrTooManySamples = errors.New("evaluate: validation set exceeds uint32 range")
)

// Classify returns 1 if sigmoid(coeff·features) > 0.5, otherwise 0.
func Classify(coeff, features vector.Vector) (float64, error) {
	h, err := trainer.Hypothesis(coeff, features)
	if err != nil {
		return 0, err
	}
	if h > 0.5 {
		return 1, nil
	}
	return 0, nil
}

// Evaluate draws n fresh samples from gen and classifies each with coeff.
// The validation draws are independent of any previous Generate call.
func Evaluate(coeff vector.Vector, gen dataset.Generator, n int) (*Report, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if n < 0 {
		return nil, dataset.ErrNegativeCount
	}
	if uint64(n) > math.MaxUint32 {
		return nil, ErrTooManySamples
	}
	if err := vector.CheckDim(coeff, gen.Dim()); err != nil {
		return nil, err
	}

	samples, err := gen.Generate(n)
	if err != nil {
		return nil, err
	}

	return Score(coeff, samples)
}

// Score classifies an existing sample set with coeff.
func Score(coeff vector.Vector, samples []dataset.Sample) (*Report, error) {
	if uint64(len(samples)) > math.MaxUint32 {
		return nil, ErrTooManySamples
	}

	r := &Report{
		Total:         len(samples),
		Misclassified: roaring.New(),
	}

	for i, s := range samples {
		class, err := Classify(coeff, s.Features)
		if err != nil {
			return nil, fmt.Errorf("evaluate: sample %d: %w", i, err)
		}
		if (class > 0.5) == s.Positive() {
			r.Correct++
		} else {
			r.Misclassified.Add(uint32(i))
		}
	}

	return r, nil
}
