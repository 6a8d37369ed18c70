// Package schedule implements the adaptive learning-rate policy used by
// gradient descent.
//
// The rate decays geometrically after every step that did not increase the
// training error. A step that did increase it is treated as an overshoot and
// multiplies the rate by a back-off factor below the decay instead. Unless
// set explicitly, the back-off is the smaller of 0.5 and decay squared.
//
//	decay := schedule.DecayFactor(0.01, 0.000001, 100000)
//	p, _ := schedule.New(0.01, decay)
//	lr := p.Rate()
//	p.Next()      // error did not increase
//	p.Overshoot() // error increased
package schedule
