package sampling

import "errors"

var (
	// ErrInvalidRange is returned for an interval with lo > hi or non-finite bounds.
	ErrInvalidRange = errors.New("sampling: invalid range")

	// ErrInvalidStdDev is returned for a negative or non-finite standard deviation.
	ErrInvalidStdDev = errors.New("sampling: invalid standard deviation")
)
