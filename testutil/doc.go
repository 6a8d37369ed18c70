// Package testutil provides testing utilities for logreg.
//
// This package is intended for use in tests and benchmarks only.
// It builds seeded generators over the reference feature layout
// (a constant bias feature followed by features in [-1, 1]).
//
//	g := testutil.Linear(t, vector.Of(1, 50, 10, -20, 0.1), sampling.Constant(0), 4711)
//	samples := testutil.ReferenceSamples(t, 4711, 1000)
package testutil
