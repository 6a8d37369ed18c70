package trainer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSamples is returned when training is requested on an empty sample set.
	ErrNoSamples = errors.New("trainer: no training samples")

	// ErrInvalidIterations is returned for a non-positive iteration budget.
	ErrInvalidIterations = errors.New("trainer: iteration budget must be positive")

	// ErrNonFinite is returned when WithFailOnNonFinite is set and the error
	// or the coefficients become NaN or ±Inf.
	ErrNonFinite = errors.New("trainer: non-finite value encountered")
)

// SampleError reports which training sample failed validation.
type SampleError struct {
	Index int
	Err   error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("trainer: sample %d: %v", e.Index, e.Err)
}

func (e *SampleError) Unwrap() error { return e.Err }
