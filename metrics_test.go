package logreg

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordTraining(100, 2, 2*time.Millisecond, nil)
	m.RecordTraining(0, 0, 4*time.Millisecond, errors.New("cancelled"))
	m.RecordEvaluation(10, 9, time.Millisecond, nil)
	m.RecordEvaluation(30, 21, time.Millisecond, nil)
	m.RecordEvaluation(0, 0, time.Millisecond, errors.New("boom"))

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.TrainingCount)
	assert.Equal(t, int64(1), stats.TrainingErrors)
	assert.Equal(t, int64(100), stats.TrainingIterations)
	assert.Equal(t, int64(2), stats.TrainingOvershoots)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.TrainingAvgNanos)
	assert.Equal(t, int64(3), stats.EvaluationCount)
	assert.Equal(t, int64(1), stats.EvaluationErrors)
	assert.InDelta(t, 0.75, stats.EvaluationAccuracy, 1e-12)
}

func TestBasicMetricsCollectorEmpty(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()
	assert.Zero(t, stats.TrainingAvgNanos)
	assert.Zero(t, stats.EvaluationAccuracy)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordTraining(1, 1, time.Second, nil)
	m.RecordEvaluation(1, 1, time.Second, nil)
}
