// Package sampling provides the scalar random primitives the data generator
// consumes: a seeded random source, feature ranges and noise distributions.
//
// Draws are delegated to gonum's stat/distuv package; all randomness flows
// through an injected math/rand/v2 Source so that a run is reproducible for
// a fixed seed.
//
// # Ranges
//
//	bias := sampling.Point(1.0)            // always 1.0
//	x, _ := sampling.Interval(-1, 1)       // uniform in [-1, 1]
//	v := x.RandomPoint(rng)
//
// # Distributions
//
//	noise, _ := sampling.NewGaussian(5.0, rng)
//	e := noise.Sample()
package sampling
