package trainer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/logreg/dataset"
	"github.com/hupe1980/logreg/schedule"
	"github.com/hupe1980/logreg/vector"
)

// Trainer runs batch gradient descent with an adaptive learning rate.
// It holds configuration only and can be reused across Train calls.
type Trainer struct {
	iterations       int
	initialRate      float64
	finalRate        float64
	overshootFactor  float64
	overshootSet     bool
	progressInterval time.Duration
	failOnNonFinite  bool
	logger           *slog.Logger
}

// Result holds the learned coefficients and training statistics.
type Result struct {
	Coefficients vector.Vector
	Iterations   int
	Overshoots   int
	InitialError float64
	FinalError   float64
	FinalRate    float64
	Duration     time.Duration
}

// New creates a trainer with the reference defaults, adjusted by opts.
func New(opts ...Option) (*Trainer, error) {
	t := &Trainer{
		iterations:       DefaultIterations,
		initialRate:      DefaultInitialRate,
		finalRate:        DefaultFinalRate,
		progressInterval: DefaultProgressInterval,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.iterations <= 0 {
		return nil, ErrInvalidIterations
	}
	if _, err := t.policy(); err != nil {
		return nil, err
	}

	return t, nil
}

// Iterations returns the configured iteration budget.
func (t *Trainer) Iterations() int {
	return t.iterations
}

func (t *Trainer) policy() (*schedule.Policy, error) {
	decay := schedule.DecayFactor(t.initialRate, t.finalRate, t.iterations)
	var opts []schedule.Option
	if t.overshootSet {
		opts = append(opts, schedule.WithOvershootFactor(t.overshootFactor))
	}
	return schedule.New(t.initialRate, decay, opts...)
}

// Train fits coefficients to samples starting from start, which is not
// modified. Every sample must have start's dimension.
//
// The loop is deterministic: the same samples and start always produce the
// same coefficients. ctx is checked between iterations.
func (t *Trainer) Train(ctx context.Context, samples []dataset.Sample, start vector.Vector) (*Result, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if start.Dim() == 0 {
		return nil, vector.ErrInvalidDimension
	}
	if err := checkSamples(samples, start.Dim()); err != nil {
		return nil, err
	}

	policy, err := t.policy()
	if err != nil {
		return nil, err
	}

	began := time.Now()
	cur := start.Clone()
	grad := make(vector.Vector, cur.Dim())

	prevErr := objective(samples, cur, grad)
	initialErr := prevErr

	if t.logger != nil {
		t.logger.DebugContext(ctx, "Training started",
			"samples", len(samples),
			"dimension", cur.Dim(),
			"iterations", t.iterations,
			"initialError", initialErr,
		)
	}

	progress := &rate.Sometimes{Interval: t.progressInterval}
	verbose := t.logger != nil && t.logger.Enabled(ctx, slog.LevelDebug)

	for i := range t.iterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := cur.SubtractScaled(grad, policy.Rate()); err != nil {
			return nil, err
		}

		curErr := objective(samples, cur, grad)
		if t.failOnNonFinite && (math.IsNaN(curErr) || math.IsInf(curErr, 0) || !cur.IsFinite()) {
			return nil, fmt.Errorf("%w: iteration %d, error %g, coefficients %s", ErrNonFinite, i, curErr, cur)
		}

		if curErr > prevErr {
			policy.Overshoot()
		} else {
			policy.Next()
		}
		prevErr = curErr

		if verbose {
			progress.Do(func() {
				t.logger.DebugContext(ctx, "Training progress",
					"iteration", i,
					"error", curErr,
					"rate", policy.Rate(),
					"overshoots", policy.Overshoots(),
				)
			})
		}
	}

	res := &Result{
		Coefficients: cur,
		Iterations:   t.iterations,
		Overshoots:   policy.Overshoots(),
		InitialError: initialErr,
		FinalError:   prevErr,
		FinalRate:    policy.Rate(),
		Duration:     time.Since(began),
	}

	if t.logger != nil {
		t.logger.DebugContext(ctx, "Training completed",
			"iterations", res.Iterations,
			"overshoots", res.Overshoots,
			"finalError", res.FinalError,
			"finalRate", res.FinalRate,
			"duration", res.Duration,
		)
	}

	return res, nil
}
