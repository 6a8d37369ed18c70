package logreg

import (
	"errors"
	"fmt"

	"github.com/hupe1980/logreg/dataset"
	"github.com/hupe1980/logreg/sampling"
	"github.com/hupe1980/logreg/schedule"
	"github.com/hupe1980/logreg/trainer"
	"github.com/hupe1980/logreg/vector"
)

var (
	// ErrInvalidConfig is returned when scenario hyperparameters are inconsistent.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ErrDimensionMismatch indicates a vector dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates an invalid configured dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Dimension normalization.
	var dm *vector.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	if errors.Is(err, vector.ErrInvalidDimension) || errors.Is(err, dataset.ErrInvalidDimension) {
		return &ErrInvalidDimension{cause: err}
	}

	// Hyperparameter validation.
	var rc *dataset.ErrRangeCountMismatch
	if errors.As(err, &rc) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, target := range []error{
		sampling.ErrInvalidRange,
		sampling.ErrInvalidStdDev,
		schedule.ErrInvalidPolicy,
		trainer.ErrInvalidIterations,
		dataset.ErrNegativeCount,
	} {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	return err
}
