package delay

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vnykmshr/asyncflow/pkg/common/validation"
)

// DefaultMax is the exclusive upper bound of a random task delay.
const DefaultMax = 600 * time.Millisecond

// Generator produces the delay of one simulated task.
type Generator interface {
	// Next returns the delay for the given item. Implementations must be
	// safe for concurrent use and must never return a negative duration.
	Next(item int) time.Duration
}

// GeneratorFunc is a function type that implements the Generator interface.
type GeneratorFunc func(item int) time.Duration

// Next implements the Generator interface for GeneratorFunc.
func (f GeneratorFunc) Next(item int) time.Duration {
	return f(item)
}

type uniform struct {
	max time.Duration

	mu  sync.Mutex
	rng *rand.Rand // nil means the shared top-level source
}

// Uniform returns a Generator drawing delays uniformly from [0, max).
// Panics if max is not positive; use UniformSafe to get an error instead.
func Uniform(max time.Duration) Generator {
	g, err := UniformSafe(max)
	if err != nil {
		panic(err)
	}
	return g
}

// UniformSafe is like Uniform but returns a ValidationError for a
// non-positive max.
func UniformSafe(max time.Duration) (Generator, error) {
	if err := validation.ValidatePositiveDuration("delay", "max", max); err != nil {
		return nil, err
	}
	return &uniform{max: max}, nil
}

// NewUniform is like Uniform but draws from a seeded source, so two
// generators with the same seed produce the same sequence of delays.
func NewUniform(max time.Duration, seed uint64) Generator {
	g := Uniform(max).(*uniform)
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return g
}

func (g *uniform) Next(int) time.Duration {
	if g.rng == nil {
		return time.Duration(rand.Int64N(int64(g.max)))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return time.Duration(g.rng.Int64N(int64(g.max)))
}

// Fixed returns a Generator that always yields d.
func Fixed(d time.Duration) Generator {
	if d < 0 {
		d = 0
	}
	return GeneratorFunc(func(int) time.Duration { return d })
}

// Scripted returns a Generator yielding ds[item-1]. Items beyond len(ds)
// wrap around. An empty script yields zero delays.
func Scripted(ds ...time.Duration) Generator {
	script := make([]time.Duration, len(ds))
	for i, d := range ds {
		if d < 0 {
			d = 0
		}
		script[i] = d
	}
	return GeneratorFunc(func(item int) time.Duration {
		if len(script) == 0 {
			return 0
		}
		i := (item - 1) % len(script)
		if i < 0 {
			i += len(script)
		}
		return script[i]
	})
}
