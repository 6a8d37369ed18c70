// Package evaluate measures the accuracy of a learned decision boundary on
// a freshly generated validation set.
package evaluate
