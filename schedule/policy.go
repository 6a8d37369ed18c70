package schedule

import (
	"errors"
	"fmt"
	"math"
)

// DefaultOvershootFactor caps the multiplier applied to the rate after an
// overshoot when no explicit factor is set.
const DefaultOvershootFactor = 0.5

// ErrInvalidPolicy is returned for policy parameters outside their domain.
var ErrInvalidPolicy = errors.New("schedule: invalid policy parameters")

// DecayFactor returns the per-step factor that takes a rate from initial to
// final in exactly iterations consecutive decay steps.
func DecayFactor(initial, final float64, iterations int) float64 {
	return math.Exp(math.Log(final/initial) / float64(iterations))
}

// Option configures a Policy.
type Option func(*Policy)

// WithOvershootFactor sets the multiplier applied on Overshoot.
// It must lie in (0, decay).
func WithOvershootFactor(f float64) Option {
	return func(p *Policy) {
		p.overshootFactor = f
		p.overshootSet = true
	}
}

// OvershootFactor returns the back-off used for a given decay when no
// explicit factor is set: min(DefaultOvershootFactor, decay*decay).
// For decay < 1 it is strictly below decay.
func OvershootFactor(decay float64) float64 {
	return min(DefaultOvershootFactor, decay*decay)
}

// Policy is a stateful learning-rate schedule.
type Policy struct {
	rate            float64
	decay           float64
	overshootFactor float64
	overshootSet    bool

	steps      int
	overshoots int
}

// New creates a policy starting at initial that decays by decay per step.
// Without WithOvershootFactor the back-off is OvershootFactor(decay).
// An explicit factor must be strictly smaller than decay so that an
// overshoot always shrinks the rate more than a routine step.
func New(initial, decay float64, opts ...Option) (*Policy, error) {
	p := &Policy{
		rate:  initial,
		decay: decay,
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.overshootSet {
		p.overshootFactor = OvershootFactor(decay)
	}

	switch {
	case !(initial > 0) || math.IsInf(initial, 0):
		return nil, fmt.Errorf("%w: initial rate %g must be positive and finite", ErrInvalidPolicy, initial)
	case !(decay > 0 && decay <= 1):
		return nil, fmt.Errorf("%w: decay %g must be in (0, 1]", ErrInvalidPolicy, decay)
	case p.overshootSet && !(p.overshootFactor > 0 && p.overshootFactor < decay):
		return nil, fmt.Errorf("%w: overshoot factor %g must be in (0, %g)", ErrInvalidPolicy, p.overshootFactor, decay)
	}

	return p, nil
}

// Rate returns the current learning rate.
func (p *Policy) Rate() float64 {
	return p.rate
}

// Decay returns the routine per-step decay factor.
func (p *Policy) Decay() float64 {
	return p.decay
}

// Backoff returns the multiplier applied on Overshoot.
func (p *Policy) Backoff() float64 {
	return p.overshootFactor
}

// Next advances the schedule after a step that did not increase the error.
func (p *Policy) Next() {
	p.rate *= p.decay
	p.steps++
}

// Overshoot backs off after a step that increased the error.
func (p *Policy) Overshoot() {
	p.rate *= p.overshootFactor
	p.steps++
	p.overshoots++
}

// Steps returns the number of transitions applied so far.
func (p *Policy) Steps() int {
	return p.steps
}

// Overshoots returns the number of overshoot transitions applied so far.
func (p *Policy) Overshoots() int {
	return p.overshoots
}
