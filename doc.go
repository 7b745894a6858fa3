/*
Package asyncflow compares sequential and concurrent execution of batches of
simulated tasks.

A simulated task waits a random delay, prints its item and returns the delay
in seconds. A batch runs the items 1..10 either one after another or all at
once, and four strategies combine two batches ("a" and "b"):

Runner (pkg/runner):
  - Sequential: batch a, then batch b, timed
  - Detached: both batches launched, never awaited
  - Joined: both batches concurrently, awaited together, timed
  - FullyConcurrent: all twenty tasks concurrently, awaited, timed

Supporting packages:
  - pkg/delay: injectable delay generators and the three-decimal Seconds type
  - pkg/logsink: the demonstration output (console, slog, in-memory recorder)
  - pkg/stopwatch: Idle/Running stopwatch shown for timed strategies
  - pkg/metrics: Prometheus collectors for tasks, batches and strategies
  - pkg/scheduling/launch: joined groups and detached launches with panic recovery
  - pkg/scheduling/trigger: named triggers and a cron scheduler

Example usage:

	import (
		"github.com/vnykmshr/asyncflow/pkg/logsink"
		"github.com/vnykmshr/asyncflow/pkg/runner"
	)

	r := runner.New(runner.Config{Sink: logsink.NewWriter(os.Stdout, true)})
	a, b, err := r.Joined(ctx)
	fmt.Println(a, b, r.Stopwatch().Display())

The asyncflow command (cmd/asyncflow) exposes the strategies as the triggers
sequential, parallel, parallel-await-all and parallel-best.
*/
package asyncflow
