/*
Package runner demonstrates four ways of scheduling the same simulated work.

Every strategy is built from one primitive, Task, which waits a delay and then
emits an item. A batch walks the fixed item sequence 1..10:

  - SequentialBatch waits for each task before starting the next one, so its
    wall time is the sum of its delays.
  - ConcurrentBatch starts all ten tasks at once and joins them, so its wall
    time is the longest delay.

The strategies combine two batches labeled "a" and "b":

	r := runner.New(runner.Config{Sink: logsink.NewWriter(os.Stdout, true)})

	r.Sequential(ctx)      // "a" then "b", timed
	r.Detached(ctx)        // "a" and "b" launched and forgotten, returns at once
	r.Joined(ctx)          // "a" and "b" concurrently, joined, timed
	r.FullyConcurrent(ctx) // two ConcurrentBatch runs, joined, timed

Totals are Seconds rounded to three decimals. A batch adds up the exact delays
and rounds once, so its total equals round(sum(delays), 3) whatever the order
in which tasks finished.

Delays come from Config.Generator. The default draws uniformly from [0, 600ms);
tests pass delay.Fixed or delay.Scripted.

Stopwatch:

Sequential, Joined and FullyConcurrent start the stopwatch before launching
work and stop it once their outermost join resolves. Detached only hides the
display; its batches keep running after it returns and the stopwatch never
sees them. Use Runner.Wait to drain them before the process exits.

Failures:

No task fails unless its context is canceled. Joined strategies return the
first failure and cancel the sibling batch. A detached batch's failure is
never returned to its launcher; it is counted in metrics and passed to
Config.OnDetachedError when set.
*/
package runner
