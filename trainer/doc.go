// Package trainer fits a logistic-regression decision boundary with
// full-batch gradient descent.
//
// The hypothesis is h(x) = sigmoid(coeff·x). Each iteration applies
// coeff -= gradient*rate, recomputes the mean squared classification error
// and feeds the comparison with the previous error into a schedule.Policy.
// The loop always runs the configured number of iterations; there is no
// convergence-based early exit.
//
// The update direction is the mean of x_j*(h(x)-label), i.e. the log-loss
// gradient, while the reported error is the mean squared error of h.
package trainer
