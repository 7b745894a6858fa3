package runner

import (
	"context"

	"github.com/vnykmshr/asyncflow/pkg/delay"
	"github.com/vnykmshr/asyncflow/pkg/logsink"
	"github.com/vnykmshr/asyncflow/pkg/scheduling/launch"
)

var labels = [...]string{"a", "b"}

type batchFunc func(ctx context.Context, label string) (delay.Seconds, error)

// Sequential runs SequentialBatch "a" and then "b", reporting each result,
// while the stopwatch is running.
func (r *Runner) Sequential(ctx context.Context) (a, b delay.Seconds, err error) {
	defer r.strategyStarted(StrategySequential)(&err)

	r.watch.Begin()
	defer r.watch.End()

	var totals [len(labels)]delay.Seconds
	for i, label := range labels {
		if totals[i], err = r.SequentialBatch(ctx, label); err != nil {
			return 0, 0, err
		}
		logsink.Styled(r.sink, logsink.Results, "Completed with result: %s", totals[i])
	}
	return totals[0], totals[1], nil
}

// Detached starts SequentialBatch "a" and "b" and returns without waiting
// for either. Their results are discarded; failures only reach
// Config.OnDetachedError. The stopwatch is hidden and never started.
func (r *Runner) Detached(ctx context.Context) {
	var err error
	defer r.strategyStarted(StrategyDetached)(&err)

	r.watch.Hide()
	for _, label := range labels {
		r.detached.Go(ctx, label, launch.TaskFunc(func(ctx context.Context) error {
			_, err := r.SequentialBatch(ctx, label)
			return err
		}))
	}
}

// Joined runs SequentialBatch "a" and "b" concurrently and returns once
// both have finished. Totals are returned in launch order.
func (r *Runner) Joined(ctx context.Context) (a, b delay.Seconds, err error) {
	defer r.strategyStarted(StrategyJoined)(&err)
	return r.joinPair(ctx, r.SequentialBatch)
}

// FullyConcurrent runs ConcurrentBatch "a" and "b" concurrently and returns
// once both have finished: ten tasks per batch, two batches, joined twice.
func (r *Runner) FullyConcurrent(ctx context.Context) (a, b delay.Seconds, err error) {
	defer r.strategyStarted(StrategyFullyConcurrent)(&err)
	return r.joinPair(ctx, r.ConcurrentBatch)
}

// joinPair runs batch for both labels under the stopwatch and joins them.
func (r *Runner) joinPair(ctx context.Context, batch batchFunc) (delay.Seconds, delay.Seconds, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	r.watch.Begin()
	defer r.watch.End()

	runs := make([]func(context.Context) (delay.Seconds, error), len(labels))
	for i, label := range labels {
		runs[i] = func(ctx context.Context) (delay.Seconds, error) {
			return batch(ctx, label)
		}
	}

	totals, err := launch.All(ctx, runs...)
	if err != nil {
		return 0, 0, err
	}

	logsink.Styled(r.sink, logsink.Results, "Completed with results: %s, %s", totals[0], totals[1])
	return totals[0], totals[1], nil
}
