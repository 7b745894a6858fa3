package launch

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	aferrors "github.com/vnykmshr/asyncflow/pkg/common/errors"
)

// Task represents a unit of work that can be launched.
type Task interface {
	// Execute runs the task with the given context.
	// It should respect context cancellation and return any error encountered.
	Execute(ctx context.Context) error
}

// TaskFunc is a function type that implements the Task interface.
type TaskFunc func(ctx context.Context) error

// Execute implements the Task interface for TaskFunc.
func (f TaskFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

// Result describes a finished detached task.
type Result struct {
	// Name identifies the task in logs, e.g. the batch label
	Name string

	// Error is any error that occurred during task execution
	Error error

	// Duration is how long the task took to execute
	Duration time.Duration
}

// Run executes task, converting a panic into an error wrapping
// errors.ErrTaskPanicked.
func Run(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\nStack trace:\n%s", aferrors.ErrTaskPanicked, r, debug.Stack())
		}
	}()
	return task.Execute(ctx)
}

// Group launches tasks concurrently and joins them. The first failure
// cancels the group's context; Wait returns it after every task has returned.
type Group struct {
	eg *errgroup.Group
}

// NewGroup creates a Group whose tasks receive a context derived from ctx.
func NewGroup(ctx context.Context) (*Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	eg, gctx := errgroup.WithContext(ctx)
	return &Group{eg: eg}, gctx
}

// Go starts task in a new goroutine. Go returns immediately.
func (g *Group) Go(ctx context.Context, task Task) {
	g.eg.Go(func() error {
		return Run(ctx, task)
	})
}

// Wait blocks until every task launched with Go has returned.
func (g *Group) Wait() error {
	return g.eg.Wait()
}

// All runs every fn concurrently, waits for all of them and returns their
// values in the order the functions were given, whatever order they finished
// in. On failure the remaining functions see a canceled context and the
// first error is returned.
func All[T any](ctx context.Context, fns ...func(ctx context.Context) (T, error)) ([]T, error) {
	results := make([]T, len(fns))
	g, gctx := NewGroup(ctx)
	for i, fn := range fns {
		g.Go(gctx, TaskFunc(func(ctx context.Context) error {
			v, err := fn(ctx)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		}))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Detacher launches fire-and-forget tasks. The launcher never sees their
// outcome; failures only reach the optional OnFailure hook.
type Detacher struct {
	// OnFailure, if set, is called from the task's goroutine for every task
	// that returns an error or panics.
	OnFailure func(Result)

	wg       sync.WaitGroup
	inflight atomic.Int64
}

// Go starts task in a new goroutine and returns immediately. The task runs
// with a context that keeps ctx's values but ignores its cancellation.
func (d *Detacher) Go(ctx context.Context, name string, task Task) {
	if task == nil {
		panic("launch: task cannot be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithoutCancel(ctx)

	d.wg.Add(1)
	d.inflight.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.inflight.Add(-1)

		start := time.Now()
		err := Run(ctx, task)
		if err != nil && d.OnFailure != nil {
			d.OnFailure(Result{Name: name, Error: err, Duration: time.Since(start)})
		}
	}()
}

// Inflight returns the number of detached tasks still running.
func (d *Detacher) Inflight() int {
	return int(d.inflight.Load())
}

// Wait blocks until every detached task has finished. It is meant for
// process shutdown and tests, not for the code that launched the tasks.
func (d *Detacher) Wait() {
	d.wg.Wait()
}

// Drained returns a channel that closes once every task launched so far
// has finished.
func (d *Detacher) Drained() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	return done
}
