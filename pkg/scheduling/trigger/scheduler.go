package trigger

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	aferrors "github.com/vnykmshr/asyncflow/pkg/common/errors"
	"github.com/vnykmshr/asyncflow/pkg/common/validation"
	"github.com/vnykmshr/asyncflow/pkg/metrics"
)

// Config holds scheduler configuration.
type Config struct {
	// Target runs the strategies. Required.
	Target Target

	// Trigger is the trigger fired on every tick. Required.
	Trigger Name

	// Cron is the schedule. Seconds are optional, descriptors such as
	// "@every 5s" or "@hourly" are accepted.
	Cron string

	// MaxRuns stops the scheduler after that many firings (0 = unlimited).
	// Skipped ticks do not count.
	MaxRuns int

	// Location is used to evaluate the cron expression (default: time.Local).
	Location *time.Location

	// Metrics records fired and skipped ticks. Nil disables metrics.
	Metrics *metrics.Registry

	// OnError is called when a firing returns an error.
	OnError func(name Name, err error)

	// OnSkip is called when a tick is skipped because the previous firing
	// is still running.
	OnSkip func(name Name)
}

// Scheduler fires one trigger on a cron schedule. A tick that arrives while
// the previous firing is still running is skipped, so at most one timed
// strategy runs at a time.
type Scheduler struct {
	cfg      Config
	cron     *cron.Cron
	schedule cron.Schedule
	entry    cron.EntryID

	ctx    context.Context
	cancel context.CancelFunc

	busy atomic.Bool
	runs atomic.Int64

	mu       sync.Mutex
	started  bool
	stopped  bool
	done     chan struct{}
	doneOnce sync.Once
}

var parser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateCronExpression validates a cron expression without scheduling it.
func ValidateCronExpression(expr string) error {
	if err := validation.ValidateNotEmpty("trigger", "cron", expr); err != nil {
		return err
	}
	if _, err := parser.Parse(expr); err != nil {
		return aferrors.NewValidationError("trigger", "cron", expr, err.Error()).
			WithHint(`use e.g. "*/5 * * * * *" or "@every 5s"`)
	}
	return nil
}

// NewScheduler validates cfg and creates a stopped Scheduler.
func NewScheduler(cfg Config) (*Scheduler, error) {
	if cfg.Target == nil {
		return nil, aferrors.NewValidationError("trigger", "target", nil, "cannot be nil")
	}
	name, err := Parse(string(cfg.Trigger))
	if err != nil {
		return nil, err
	}
	cfg.Trigger = name
	if err := validation.ValidateNonNegative("trigger", "max_runs", cfg.MaxRuns); err != nil {
		return nil, err
	}
	if err := ValidateCronExpression(cfg.Cron); err != nil {
		return nil, err
	}
	schedule, _ := parser.Parse(cfg.Cron)

	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cfg:      cfg,
		cron:     cron.New(cron.WithParser(parser), cron.WithLocation(cfg.Location)),
		schedule: schedule,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	s.entry = s.cron.Schedule(schedule, cron.FuncJob(s.fire))
	return s, nil
}

// Start begins firing. It returns an error if the scheduler was stopped.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return fmt.Errorf("cannot start scheduler: %w", aferrors.ErrClosed)
	}
	if s.started {
		return nil
	}
	s.started = true
	s.cron.Start()
	return nil
}

// Stop prevents further ticks and cancels the context of a firing in
// progress. The returned channel closes once that firing has returned.
func (s *Scheduler) Stop() <-chan struct{} {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.cancel()
	stopCtx := s.cron.Stop()
	s.finish()

	stopped := make(chan struct{})
	go func() {
		<-stopCtx.Done()
		close(stopped)
	}()
	return stopped
}

// Done returns a channel that closes when the scheduler stops, either
// through Stop or because MaxRuns was reached.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Runs returns the number of firings so far.
func (s *Scheduler) Runs() int {
	return int(s.runs.Load())
}

// Next returns the next time the trigger will fire, or the zero time once
// the scheduler is done.
func (s *Scheduler) Next() time.Time {
	select {
	case <-s.done:
		return time.Time{}
	default:
	}

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	if started {
		if next := s.cron.Entry(s.entry).Next; !next.IsZero() {
			return next
		}
	}
	return s.schedule.Next(time.Now().In(s.cfg.Location))
}

func (s *Scheduler) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

// fire runs on cron's goroutine for every tick.
func (s *Scheduler) fire() {
	name := s.cfg.Trigger

	if !s.busy.CompareAndSwap(false, true) {
		s.record(metrics.OutcomeSkipped)
		if s.cfg.OnSkip != nil {
			s.cfg.OnSkip(name)
		}
		return
	}
	defer s.busy.Store(false)

	if s.ctx.Err() != nil || s.limitReached() {
		return
	}

	run := s.runs.Add(1)
	s.record(metrics.OutcomeFired)
	if err := Fire(s.ctx, s.cfg.Target, name); err != nil && s.cfg.OnError != nil {
		s.cfg.OnError(name, err)
	}

	if s.cfg.MaxRuns > 0 && run >= int64(s.cfg.MaxRuns) {
		s.cron.Stop()
		s.finish()
	}
}

func (s *Scheduler) limitReached() bool {
	return s.cfg.MaxRuns > 0 && s.runs.Load() >= int64(s.cfg.MaxRuns)
}

func (s *Scheduler) record(outcome string) {
	if s.cfg.Metrics == nil {
		return
	}
	s.cfg.Metrics.TriggerFirings.WithLabelValues(string(s.cfg.Trigger), outcome).Inc()
}
