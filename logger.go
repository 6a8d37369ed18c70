package logreg

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/logreg/evaluate"
	"github.com/hupe1980/logreg/trainer"
)

// Logger wraps slog.Logger with logreg-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSeed adds the random seed to the logger.
func (l *Logger) WithSeed(seed uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogGenerate logs the generation of a sample set.
func (l *Logger) LogGenerate(ctx context.Context, purpose string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sample generation failed",
			"purpose", purpose,
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "samples generated",
			"purpose", purpose,
			"count", count,
		)
	}
}

// LogTraining logs the outcome of a training run.
func (l *Logger) LogTraining(ctx context.Context, res *trainer.Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "training failed",
			"error", err,
		)
		return
	}
	if res.Overshoots > 0 {
		l.WarnContext(ctx, "training completed with overshoots",
			"iterations", res.Iterations,
			"overshoots", res.Overshoots,
			"final_error", res.FinalError,
			"final_rate", res.FinalRate,
			"duration", res.Duration,
		)
	} else {
		l.InfoContext(ctx, "training completed",
			"iterations", res.Iterations,
			"final_error", res.FinalError,
			"final_rate", res.FinalRate,
			"duration", res.Duration,
		)
	}
}

// LogEvaluation logs a validation report.
func (l *Logger) LogEvaluation(ctx context.Context, report *evaluate.Report, err error) {
	if err != nil {
		l.ErrorContext(ctx, "evaluation failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "evaluation completed",
			"total", report.Total,
			"correct", report.Correct,
			"accuracy", report.Accuracy(),
		)
	}
}
