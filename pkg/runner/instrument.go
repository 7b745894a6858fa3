package runner

import (
	"context"
	"errors"
	"time"

	aferrors "github.com/vnykmshr/asyncflow/pkg/common/errors"
	"github.com/vnykmshr/asyncflow/pkg/delay"
	"github.com/vnykmshr/asyncflow/pkg/metrics"
)

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCompleted
	case aferrors.IsCanceled(err), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeFailed
	}
}

func (r *Runner) recordTask(d time.Duration, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.TasksTotal.WithLabelValues(outcome(err)).Inc()
	if err == nil {
		r.metrics.TaskDelay.Observe(d.Seconds())
	}
}

// batchStarted marks a batch of the given kind as active and returns the
// function that records its end.
func (r *Runner) batchStarted(kind string) func(total delay.Seconds, err error) {
	if r.metrics == nil {
		return func(delay.Seconds, error) {}
	}
	r.metrics.ActiveBatches.WithLabelValues(kind).Inc()
	return func(total delay.Seconds, err error) {
		r.metrics.ActiveBatches.WithLabelValues(kind).Dec()
		r.metrics.BatchesTotal.WithLabelValues(kind, outcome(err)).Inc()
		if err == nil {
			r.metrics.BatchSeconds.WithLabelValues(kind).Observe(float64(total))
		}
	}
}

// strategyStarted returns the function that records a strategy's outcome
// and wall time. It is meant to be deferred with a pointer to the named
// error result.
func (r *Runner) strategyStarted(strategy string) func(errp *error) {
	start := time.Now()
	return func(errp *error) {
		if r.metrics == nil {
			return
		}
		var err error
		if errp != nil {
			err = *errp
		}
		r.metrics.StrategyRuns.WithLabelValues(strategy, outcome(err)).Inc()
		r.metrics.StrategyDuration.WithLabelValues(strategy).Observe(time.Since(start).Seconds())
	}
}
