package logreg

import (
	"log/slog"
	"time"
)

type options struct {
	config           Config
	seed             uint64
	seedSet          bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Run.
type Option func(*options)

// WithConfig replaces the reference hyperparameters.
//
// Example:
//
//	cfg := logreg.DefaultConfig()
//	cfg.Iterations = 1000
//	res, _ := logreg.Run(ctx, logreg.WithConfig(cfg))
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithSeed fixes the random seed so that a run is reproducible.
// Without it, the seed is derived from the current time.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &logreg.BasicMetricsCollector{}
//	_, _ = logreg.Run(ctx, logreg.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Accuracy: %g, Overshoots: %d\n", stats.EvaluationAccuracy, stats.TrainingOvershoots)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for a run.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := logreg.NewJSONLogger(slog.LevelInfo)
//	_, _ = logreg.Run(ctx, logreg.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		config:           DefaultConfig(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if !o.seedSet {
		o.seed = uint64(time.Now().UnixNano())
	}
	return o
}
