package trainer

import (
	"log/slog"
	"time"
)

// Defaults of the reference configuration.
const (
	DefaultIterations       = 100000
	DefaultInitialRate      = 0.01
	DefaultFinalRate        = 0.000001
	DefaultProgressInterval = time.Second
)

// Option defines a configuration option for the Trainer.
type Option func(*Trainer)

// WithIterations sets the fixed iteration budget.
func WithIterations(n int) Option {
	return func(t *Trainer) {
		t.iterations = n
	}
}

// WithLearningRates sets the initial rate and the rate reached after the
// full budget of non-overshooting iterations.
func WithLearningRates(initial, final float64) Option {
	return func(t *Trainer) {
		t.initialRate = initial
		t.finalRate = final
	}
}

// WithOvershootFactor sets the rate multiplier applied after an overshoot.
// It must be below the decay derived from the rates and the budget.
// Without it the back-off is schedule.OvershootFactor(decay).
func WithOvershootFactor(f float64) Option {
	return func(t *Trainer) {
		t.overshootFactor = f
		t.overshootSet = true
	}
}

// WithLogger sets the logger for the trainer.
// A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(t *Trainer) {
		t.logger = l
	}
}

// WithProgressInterval sets the minimum time between two debug-level
// progress records. The first iteration is always logged.
func WithProgressInterval(d time.Duration) Option {
	return func(t *Trainer) {
		t.progressInterval = d
	}
}

// WithFailOnNonFinite makes Train stop with ErrNonFinite as soon as the
// error or a coefficient becomes NaN or ±Inf.
func WithFailOnNonFinite() Option {
	return func(t *Trainer) {
		t.failOnNonFinite = true
	}
}
