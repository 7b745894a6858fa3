package runner

import (
	"context"
	"time"

	aferrors "github.com/vnykmshr/asyncflow/pkg/common/errors"
	"github.com/vnykmshr/asyncflow/pkg/delay"
	"github.com/vnykmshr/asyncflow/pkg/logsink"
	"github.com/vnykmshr/asyncflow/pkg/scheduling/launch"
)

// SequentialBatch runs every item through Task one at a time and returns
// the sum of the delays, rounded once at the end.
func (r *Runner) SequentialBatch(ctx context.Context, label string) (delay.Seconds, error) {
	done := r.batchStarted(KindSequential)
	logsink.Styled(r.sink, logsink.Begin, "Beginning example 1-%s...", label)

	var total time.Duration
	for _, item := range items {
		d := r.draw(item)
		if _, err := r.Task(ctx, item, d); err != nil {
			done(0, err)
			return 0, aferrors.NewOperationError("runner", "SequentialBatch", err).
				WithContext("label " + label)
		}
		total += d
	}

	secs := delay.FromDuration(total)
	logsink.Styled(r.sink, logsink.Step, "Example 1-%s complete. Total seconds: %s", label, secs)
	done(secs, nil)
	return secs, nil
}

// ConcurrentBatch starts a Task for every item at once, waits for all of
// them and returns the sum of their delays. The delays are drawn and the
// tasks started in item order; the sum is taken in that same order, so
// the total does not depend on which task finishes first.
func (r *Runner) ConcurrentBatch(ctx context.Context, label string) (delay.Seconds, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	done := r.batchStarted(KindConcurrent)
	logsink.Styled(r.sink, logsink.Begin, "Beginning example 2-%s...", label)

	tasks := make([]func(context.Context) (time.Duration, error), len(items))
	for i, item := range items {
		d := r.draw(item)
		tasks[i] = func(ctx context.Context) (time.Duration, error) {
			if _, err := r.Task(ctx, item, d); err != nil {
				return 0, err
			}
			return d, nil
		}
	}

	delays, err := launch.All(ctx, tasks...)
	if err != nil {
		done(0, err)
		return 0, aferrors.NewOperationError("runner", "ConcurrentBatch", err).
			WithContext("label " + label)
	}

	var total time.Duration
	for _, d := range delays {
		total += d
	}

	secs := delay.FromDuration(total)
	logsink.Styled(r.sink, logsink.Step, "Example 2-%s complete. Total seconds: %s", label, secs)
	done(secs, nil)
	return secs, nil
}
