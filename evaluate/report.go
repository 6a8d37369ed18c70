package evaluate

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Report summarizes a validation run.
type Report struct {
	Total   int
	Correct int

	// Misclassified holds the indices of wrongly classified validation samples.
	Misclassified *roaring.Bitmap
}

// Accuracy returns the fraction of correctly classified samples in [0, 1].
// An empty report has accuracy 0.
func (r *Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Errors returns the number of misclassified samples.
func (r *Report) Errors() int {
	return r.Total - r.Correct
}

func (r *Report) String() string {
	return fmt.Sprintf("accuracy %g (%d/%d correct)", r.Accuracy(), r.Correct, r.Total)
}
