// Package logreg trains a logistic-regression classifier by batch gradient
// descent on synthetic data drawn from a known linear decision boundary,
// and reports how well the learned boundary classifies fresh samples.
//
// # Quick Start
//
//	ctx := context.Background()
//	res, err := logreg.Run(ctx, logreg.WithSeed(4711))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Performance(), res.Model)
//
// # Scenario
//
// A run follows the reference scenario unless configured otherwise:
//
//   - 10000 training samples from the boundary (1, 50, 10, -20, 0.1), where
//     the first feature is the constant bias 1 and the rest lie in [-1, 1]
//   - Gaussian label noise with standard deviation 5
//   - 100000 iterations with the rate decaying from 0.01 to 0.000001
//   - 1000 fresh validation samples from the same generator
//
// Use WithConfig to change any of these:
//
//	cfg := logreg.DefaultConfig()
//	cfg.Iterations = 5000
//	cfg.InitialRate = 0.5
//	res, err := logreg.Run(ctx, logreg.WithConfig(cfg))
//
// # Learning Rate
//
// The rate shrinks geometrically each iteration so that it reaches the
// final rate after the full budget. After an iteration that increases the
// training error (an overshoot) the rate is multiplied by a back-off factor
// instead of the decay. The back-off defaults to the smaller of 0.5 and the
// squared decay, so it always shrinks the rate faster than a routine step.
//
// # Building Blocks
//
// The sub-packages can be used on their own:
//
//   - vector: fixed-dimension coefficient and feature vectors
//   - sampling: seeded randomness, feature ranges and noise distributions
//   - dataset: labelled samples and the noisy linear generator
//   - schedule: the adaptive learning-rate policy
//   - trainer: the logistic objective and the gradient-descent loop
//   - evaluate: classification accuracy on a validation set
//
// # Observability
//
// Structured logging uses log/slog through Logger. Run summaries are
// reported to a MetricsCollector:
//
//	metrics := &logreg.BasicMetricsCollector{}
//	res, err := logreg.Run(ctx,
//	    logreg.WithLogger(logreg.NewJSONLogger(slog.LevelInfo)),
//	    logreg.WithMetricsCollector(metrics),
//	)
package logreg
