// Package dataset defines labeled samples and the generators that produce
// them.
//
// Linear is the ground-truth generator: features are drawn per dimension
// from a sampling.Range, and the label is the sign of the true linear
// combination plus a noise draw. Other generators plug in through the
// Generator interface without touching the trainer.
package dataset
