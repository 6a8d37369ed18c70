// Package vector provides the dense float64 vector used for feature values
// and model coefficients.
//
// Kernels are delegated to gonum's floats package. Every binary operation
// checks operand dimensions first and reports a mismatch as an error instead
// of truncating or padding.
//
// # Usage
//
//	a := vector.Of(1, 2, 3)
//	b := vector.Of(4, 5, 6)
//	d, _ := a.Dot(b)              // 32
//	_, _ = a.SubtractScaled(b, 2) // a = [-7, -8, -9]
package vector
