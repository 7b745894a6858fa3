package trigger

import (
	"context"
	"strings"

	aferrors "github.com/vnykmshr/asyncflow/pkg/common/errors"
	"github.com/vnykmshr/asyncflow/pkg/delay"
)

// Name identifies one of the four zero-argument triggers.
type Name string

// Available triggers.
const (
	Sequential       Name = "sequential"
	Parallel         Name = "parallel"
	ParallelAwaitAll Name = "parallel-await-all"
	ParallelBest     Name = "parallel-best"
)

var names = []Name{Sequential, Parallel, ParallelAwaitAll, ParallelBest}

var descriptions = map[Name]string{
	Sequential:       "run batch a, then batch b, one task at a time (timed)",
	Parallel:         "launch batches a and b and return without waiting",
	ParallelAwaitAll: "run batches a and b concurrently and wait for both (timed)",
	ParallelBest:     "run every task of both batches concurrently and wait for all (timed)",
}

// Names returns the trigger names in display order.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

// Describe returns a one-line description of the trigger.
func (n Name) Describe() string {
	return descriptions[n]
}

// Timed reports whether the trigger runs under the stopwatch.
func (n Name) Timed() bool {
	return n != Parallel
}

// Parse resolves s to a trigger name, ignoring case and surrounding space.
func Parse(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := descriptions[n]; ok {
		return n, nil
	}

	valid := make([]string, len(names))
	for i, name := range names {
		valid[i] = string(name)
	}
	return "", aferrors.NewValidationError("trigger", "name", s, "unknown trigger").
		WithHint("use one of: " + strings.Join(valid, ", "))
}

// Target runs the strategies behind the triggers. *runner.Runner satisfies it.
type Target interface {
	Sequential(ctx context.Context) (a, b delay.Seconds, err error)
	Detached(ctx context.Context)
	Joined(ctx context.Context) (a, b delay.Seconds, err error)
	FullyConcurrent(ctx context.Context) (a, b delay.Seconds, err error)
}

// Fire invokes the strategy behind name on target and returns its error.
// Parallel returns as soon as its batches are launched.
func Fire(ctx context.Context, target Target, name Name) error {
	if target == nil {
		return aferrors.NewValidationError("trigger", "target", nil, "cannot be nil")
	}

	name, err := Parse(string(name))
	if err != nil {
		return err
	}

	switch name {
	case Sequential:
		_, _, err = target.Sequential(ctx)
	case Parallel:
		target.Detached(ctx)
	case ParallelAwaitAll:
		_, _, err = target.Joined(ctx)
	case ParallelBest:
		_, _, err = target.FullyConcurrent(ctx)
	}
	return err
}
