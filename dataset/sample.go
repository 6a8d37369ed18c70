package dataset

import (
	"fmt"

	"github.com/hupe1980/logreg/vector"
)

// Sample is a feature vector paired with its binary class label (0 or 1).
// Samples are treated as immutable once created.
type Sample struct {
	Features vector.Vector
	Label    float64
}

// Positive reports whether the sample belongs to class 1.
func (s Sample) Positive() bool {
	return s.Label > 0.5
}

func (s Sample) String() string {
	return fmt.Sprintf("%g : %s", s.Label, s.Features)
}

// Label maps a decision value to a class: 1 if value > 0, otherwise 0.
func Label(value float64) float64 {
	if value > 0 {
		return 1
	}
	return 0
}
