package logreg

import (
	"fmt"

	"github.com/hupe1980/logreg/evaluate"
	"github.com/hupe1980/logreg/sampling"
	"github.com/hupe1980/logreg/trainer"
	"github.com/hupe1980/logreg/vector"
)

// Config holds the hyperparameters of a training and evaluation scenario.
type Config struct {
	// Coefficients is the true decision boundary of the data generator.
	// The first entry is the bias by convention.
	Coefficients vector.Vector

	// Ranges holds one feature range per coefficient.
	Ranges []sampling.Range

	// NoiseStdDev is the standard deviation of the Gaussian label noise.
	NoiseStdDev float64

	// TrainingSize is the number of generated training samples.
	TrainingSize int

	// ValidationSize is the number of freshly generated validation samples.
	ValidationSize int

	// Iterations is the fixed gradient-descent budget.
	Iterations int

	// InitialRate and FinalRate bound the learning-rate schedule.
	InitialRate float64
	FinalRate   float64

	// OvershootFactor multiplies the rate after a step that increased the error.
	// Zero derives it from the decay (see schedule.OvershootFactor).
	OvershootFactor float64

	// Start is the coefficient vector gradient descent starts from.
	Start vector.Vector
}

// DefaultConfig returns the reference scenario: a five-dimensional boundary
// with a constant bias feature, four features in [-1, 1] and Gaussian noise
// with standard deviation 5.
func DefaultConfig() Config {
	// feature ranges stay small and centred on 0; gradient descent degrades otherwise
	unit := sampling.MustInterval(-1, 1)

	return Config{
		Coefficients:    vector.Of(1.0, 50.0, 10.0, -20, 0.1),
		Ranges:          []sampling.Range{sampling.Point(1.0), unit, unit, unit, unit},
		NoiseStdDev:     5.0,
		TrainingSize:    10000,
		ValidationSize:  evaluate.DefaultValidationSize,
		Iterations:      trainer.DefaultIterations,
		InitialRate:     trainer.DefaultInitialRate,
		FinalRate:       trainer.DefaultFinalRate,
		Start:           vector.Of(0.1, 0.1, -0.1, 0.1, -0.1),
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	dim := c.Coefficients.Dim()
	switch {
	case dim == 0:
		return &ErrInvalidDimension{Dimension: dim}
	case c.Start.Dim() != dim:
		return &ErrDimensionMismatch{Expected: dim, Actual: c.Start.Dim()}
	case len(c.Ranges) != dim:
		return fmt.Errorf("%w: %d feature ranges for dimension %d", ErrInvalidConfig, len(c.Ranges), dim)
	case c.TrainingSize <= 0:
		return fmt.Errorf("%w: training size %d must be positive", ErrInvalidConfig, c.TrainingSize)
	case c.ValidationSize < 0:
		return fmt.Errorf("%w: validation size %d must not be negative", ErrInvalidConfig, c.ValidationSize)
	}
	return nil
}
