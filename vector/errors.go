package vector

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned when a vector is requested with a
// non-positive dimension.
var ErrInvalidDimension = errors.New("vector: dimension must be positive")

// ErrDimensionMismatch indicates that two operands have different dimensions.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("vector: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// CheckDim returns an *ErrDimensionMismatch if v does not have dimension dim.
func CheckDim(v Vector, dim int) error {
	if len(v) != dim {
		return &ErrDimensionMismatch{Expected: dim, Actual: len(v)}
	}
	return nil
}
