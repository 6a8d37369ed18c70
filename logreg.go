package logreg

import (
	"context"
	"time"

	"github.com/hupe1980/logreg/dataset"
	"github.com/hupe1980/logreg/evaluate"
	"github.com/hupe1980/logreg/sampling"
	"github.com/hupe1980/logreg/trainer"
	"github.com/hupe1980/logreg/vector"
)

// Result is the outcome of a training and evaluation run.
type Result struct {
	// Model is the learned decision boundary.
	Model vector.Vector

	// Seed is the random seed the run used.
	Seed uint64

	Training *trainer.Result
	Report   *evaluate.Report
}

// Performance returns the validation accuracy in [0, 1].
func (r *Result) Performance() float64 {
	return r.Report.Accuracy()
}

// Run generates a training set from the configured linear boundary, fits a
// logistic-regression model by gradient descent and evaluates it on a fresh
// validation set drawn from the same generator.
func Run(ctx context.Context, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)
	cfg := o.config

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := o.logger.WithSeed(o.seed).WithDimension(cfg.Coefficients.Dim())

	rng := sampling.NewRNG(o.seed)
	noise, err := sampling.NewGaussian(cfg.NoiseStdDev, rng)
	if err != nil {
		return nil, translateError(err)
	}
	gen, err := dataset.NewLinear(cfg.Coefficients, cfg.Ranges, noise, rng)
	if err != nil {
		return nil, translateError(err)
	}

	samples, err := gen.Generate(cfg.TrainingSize)
	logger.LogGenerate(ctx, "training", cfg.TrainingSize, err)
	if err != nil {
		return nil, translateError(err)
	}

	trainerOpts := []trainer.Option{
		trainer.WithIterations(cfg.Iterations),
		trainer.WithLearningRates(cfg.InitialRate, cfg.FinalRate),
		trainer.WithLogger(logger.Logger),
	}
	if cfg.OvershootFactor != 0 {
		trainerOpts = append(trainerOpts, trainer.WithOvershootFactor(cfg.OvershootFactor))
	}

	tr, err := trainer.New(trainerOpts...)
	if err != nil {
		return nil, translateError(err)
	}

	began := time.Now()
	trained, err := tr.Train(ctx, samples, cfg.Start)
	if trained != nil {
		o.metricsCollector.RecordTraining(trained.Iterations, trained.Overshoots, trained.Duration, nil)
	} else {
		o.metricsCollector.RecordTraining(0, 0, time.Since(began), err)
	}
	logger.LogTraining(ctx, trained, err)
	if err != nil {
		return nil, translateError(err)
	}

	began = time.Now()
	report, err := evaluate.Evaluate(trained.Coefficients, gen, cfg.ValidationSize)
	if report != nil {
		o.metricsCollector.RecordEvaluation(report.Total, report.Correct, time.Since(began), nil)
	} else {
		o.metricsCollector.RecordEvaluation(0, 0, time.Since(began), err)
	}
	logger.LogEvaluation(ctx, report, err)
	if err != nil {
		return nil, translateError(err)
	}

	return &Result{
		Model:    trained.Coefficients,
		Seed:     o.seed,
		Training: trained,
		Report:   report,
	}, nil
}
