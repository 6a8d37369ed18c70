package logreg

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting run metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordTraining is called after each training run.
	// iterations and overshoots come from the learning-rate schedule,
	// err is nil if successful.
	RecordTraining(iterations, overshoots int, duration time.Duration, err error)

	// RecordEvaluation is called after each validation run.
	// total is the validation set size, correct the number of matching labels.
	RecordEvaluation(total, correct int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTraining(int, int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordEvaluation(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TrainingCount      atomic.Int64
	TrainingErrors     atomic.Int64
	TrainingIterations atomic.Int64
	TrainingOvershoots atomic.Int64
	TrainingTotalNanos atomic.Int64
	EvaluationCount    atomic.Int64
	EvaluationErrors   atomic.Int64
	EvaluationSamples  atomic.Int64
	EvaluationCorrect  atomic.Int64
}

// RecordTraining implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTraining(iterations, overshoots int, duration time.Duration, err error) {
	b.TrainingCount.Add(1)
	b.TrainingTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TrainingErrors.Add(1)
		return
	}
	b.TrainingIterations.Add(int64(iterations))
	b.TrainingOvershoots.Add(int64(overshoots))
}

// RecordEvaluation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluation(total, correct int, duration time.Duration, err error) {
	b.EvaluationCount.Add(1)
	if err != nil {
		b.EvaluationErrors.Add(1)
		return
	}
	b.EvaluationSamples.Add(int64(total))
	b.EvaluationCorrect.Add(int64(correct))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TrainingCount:      b.TrainingCount.Load(),
		TrainingErrors:     b.TrainingErrors.Load(),
		TrainingIterations: b.TrainingIterations.Load(),
		TrainingOvershoots: b.TrainingOvershoots.Load(),
		TrainingAvgNanos:   b.getAvgTrainingNanos(),
		EvaluationCount:    b.EvaluationCount.Load(),
		EvaluationErrors:   b.EvaluationErrors.Load(),
		EvaluationAccuracy: b.getAccuracy(),
	}
}

func (b *BasicMetricsCollector) getAvgTrainingNanos() int64 {
	count := b.TrainingCount.Load()
	if count == 0 {
		return 0
	}
	return b.TrainingTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAccuracy() float64 {
	total := b.EvaluationSamples.Load()
	if total == 0 {
		return 0
	}
	return float64(b.EvaluationCorrect.Load()) / float64(total)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TrainingCount      int64
	TrainingErrors     int64
	TrainingIterations int64
	TrainingOvershoots int64
	TrainingAvgNanos   int64
	EvaluationCount    int64
	EvaluationErrors   int64

	// EvaluationAccuracy is the pooled accuracy over all recorded validation samples.
	EvaluationAccuracy float64
}
