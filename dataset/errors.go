package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned for an empty coefficient vector.
	ErrInvalidDimension = errors.New("dataset: coefficient vector must not be empty")

	// ErrNilNoise is returned when a generator is built without a noise source.
	ErrNilNoise = errors.New("dataset: noise distribution is nil")

	// ErrNilSource is returned when a generator is built without a random source.
	ErrNilSource = errors.New("dataset: random source is nil")

	// ErrNegativeCount is returned when a negative number of samples is requested.
	ErrNegativeCount = errors.New("dataset: sample count must not be negative")
)

// ErrRangeCountMismatch indicates that the number of feature ranges does not
// match the dimension of the coefficient vector.
type ErrRangeCountMismatch struct {
	Dimension int
	Ranges    int
}

func (e *ErrRangeCountMismatch) Error() string {
	return fmt.Sprintf("dataset: %d feature ranges for %d coefficients", e.Ranges, e.Dimension)
}
