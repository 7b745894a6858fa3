package runner

import (
	"github.com/vnykmshr/asyncflow/pkg/delay"
	"github.com/vnykmshr/asyncflow/pkg/logsink"
	"github.com/vnykmshr/asyncflow/pkg/metrics"
	"github.com/vnykmshr/asyncflow/pkg/scheduling/launch"
	"github.com/vnykmshr/asyncflow/pkg/stopwatch"
)

// Strategy names, also used as metric labels.
const (
	StrategySequential      = "sequential"
	StrategyDetached        = "parallel"
	StrategyJoined          = "parallel-await-all"
	StrategyFullyConcurrent = "parallel-best"
)

// Batch kinds, used as metric labels.
const (
	KindSequential = "sequential"
	KindConcurrent = "concurrent"
)

// items is the fixed sequence every batch walks through.
var items = [...]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// Items returns a copy of the item sequence 1..10.
func Items() []int {
	out := make([]int, len(items))
	copy(out, items[:])
	return out
}

// Config holds configuration options for creating a Runner.
type Config struct {
	// Generator draws the delay of every simulated task.
	// If nil, delays are uniform in [0, 600ms).
	Generator delay.Generator

	// Sink receives the demonstration output. If nil, output is discarded.
	Sink logsink.Sink

	// Stopwatch tracks timed strategies. If nil, the runner creates one;
	// retrieve it with Runner.Stopwatch.
	Stopwatch *stopwatch.Stopwatch

	// Metrics records task, batch and strategy metrics. Nil disables metrics.
	Metrics *metrics.Registry

	// OnDetachedError is called when a detached batch fails. The strategy
	// that launched the batch never sees the failure.
	OnDetachedError func(label string, err error)
}

// Runner runs the demonstration strategies. It is safe for concurrent use.
type Runner struct {
	gen     delay.Generator
	sink    logsink.Sink
	watch   *stopwatch.Stopwatch
	metrics *metrics.Registry

	detached *launch.Detacher
}

// New creates a Runner, filling unset Config fields with defaults.
func New(cfg Config) *Runner {
	if cfg.Generator == nil {
		cfg.Generator = delay.Uniform(delay.DefaultMax)
	}
	if cfg.Sink == nil {
		cfg.Sink = logsink.Discard
	}
	if cfg.Stopwatch == nil {
		cfg.Stopwatch = stopwatch.New(nil)
	}

	r := &Runner{
		gen:     cfg.Generator,
		sink:    cfg.Sink,
		watch:   cfg.Stopwatch,
		metrics: cfg.Metrics,
	}

	onDetachedError := cfg.OnDetachedError
	r.detached = &launch.Detacher{
		OnFailure: func(res launch.Result) {
			if r.metrics != nil {
				r.metrics.DetachedFailures.Inc()
			}
			if onDetachedError != nil {
				onDetachedError(res.Name, res.Error)
			}
		},
	}
	return r
}

// Stopwatch returns the stopwatch updated by the timed strategies.
func (r *Runner) Stopwatch() *stopwatch.Stopwatch {
	return r.watch
}

// Wait blocks until all detached batches have finished. Detached never
// calls it; it exists so a process can drain background work before exiting.
func (r *Runner) Wait() {
	r.detached.Wait()
}

// Inflight returns the number of detached batches still running.
func (r *Runner) Inflight() int {
	return r.detached.Inflight()
}
