package runner

import (
	"context"
	"fmt"
	"time"

	aferrors "github.com/vnykmshr/asyncflow/pkg/common/errors"
	"github.com/vnykmshr/asyncflow/pkg/delay"
	"github.com/vnykmshr/asyncflow/pkg/logsink"
)

// Task is the simulated task: it waits d, emits the item and returns d in
// seconds rounded to three decimals.
//
// The wait is never cut short unless ctx is canceled, in which case Task
// emits nothing and returns an error wrapping errors.ErrCanceled.
func (r *Runner) Task(ctx context.Context, item int, d time.Duration) (delay.Seconds, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if d < 0 {
		d = 0
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		r.recordTask(d, ctx.Err())
		return 0, fmt.Errorf("%w: item %d: %w", aferrors.ErrCanceled, item, ctx.Err())
	}

	secs := delay.FromDuration(d)
	logsink.Value(r.sink, fmt.Sprintf("Waiting %s seconds...", secs))
	logsink.Value(r.sink, item)

	r.recordTask(d, nil)
	return secs, nil
}

// draw returns the next delay for item, clamped at zero.
func (r *Runner) draw(item int) time.Duration {
	d := r.gen.Next(item)
	if d < 0 {
		return 0
	}
	return d
}
