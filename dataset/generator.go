package dataset

// Generator produces independent labeled samples.
type Generator interface {
	// Dim returns the dimension of the generated feature vectors.
	Dim() int

	// Generate returns n freshly drawn samples.
	Generate(n int) ([]Sample, error)
}
