package trainer

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/logreg/dataset"
	"github.com/hupe1980/logreg/vector"
)

// Sigmoid is the logistic function 1/(1+exp(-z)).
func Sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// Hypothesis returns sigmoid(coeff·x).
func Hypothesis(coeff, x vector.Vector) (float64, error) {
	z, err := coeff.Dot(x)
	if err != nil {
		return 0, err
	}
	return Sigmoid(z), nil
}

// Error returns the mean over samples of (h(x)-label)^2.
func Error(samples []dataset.Sample, coeff vector.Vector) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	if err := checkSamples(samples, coeff.Dim()); err != nil {
		return 0, err
	}
	return objective(samples, coeff, nil), nil
}

// Gradient returns, per coefficient j, the mean over samples of
// x_j*(h(x)-label).
func Gradient(samples []dataset.Sample, coeff vector.Vector) (vector.Vector, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if err := checkSamples(samples, coeff.Dim()); err != nil {
		return nil, err
	}
	grad := make(vector.Vector, coeff.Dim())
	objective(samples, coeff, grad)
	return grad, nil
}

// objective computes the error at coeff in one pass and, if grad is
// non-nil, overwrites it with the gradient at coeff. Dimensions must have
// been validated by the caller.
func objective(samples []dataset.Sample, coeff, grad vector.Vector) float64 {
	for j := range grad {
		grad[j] = 0
	}

	var errSum float64
	for _, s := range samples {
		residual := Sigmoid(floats.Dot(coeff, s.Features)) - s.Label
		errSum += residual * residual
		for j := range grad {
			grad[j] += s.Features[j] * residual
		}
	}

	n := float64(len(samples))
	for j := range grad {
		grad[j] /= n
	}
	return errSum / n
}

func checkSamples(samples []dataset.Sample, dim int) error {
	for i := range samples {
		if err := vector.CheckDim(samples[i].Features, dim); err != nil {
			return &SampleError{Index: i, Err: err}
		}
	}
	return nil
}
