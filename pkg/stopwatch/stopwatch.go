// Package stopwatch tracks the wall time of a timed strategy.
//
// A Stopwatch moves Idle -> Running on Begin and back to Idle on End. Runs
// may overlap: each Begin must be paired with an End, and the stopwatch only
// returns to Idle when the last open run ends. While idle it keeps reporting
// the elapsed time of the last run until Hide is called. The zero value is
// not usable; create one with New.
package stopwatch

import (
	"sync"
	"time"

	"github.com/vnykmshr/asyncflow/pkg/delay"
)

// RunningText is what Display shows while a run is in progress.
const RunningText = "timer running..."

// State is the observable state of a Stopwatch.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Clock abstracts time.Now for tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Stopwatch is safe for concurrent use.
type Stopwatch struct {
	clock Clock

	mu      sync.RWMutex
	active  int // open Begin calls
	running bool
	visible bool
	start   time.Time
	end     time.Time
}

// New creates an idle, hidden Stopwatch. A nil clock uses the system clock.
func New(clock Clock) *Stopwatch {
	if clock == nil {
		clock = systemClock{}
	}
	return &Stopwatch{clock: clock}
}

// Begin makes the stopwatch visible and opens a run. From Idle it starts
// timing afresh; while already running it only joins the current timing.
func (s *Stopwatch) Begin() {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
	if s.active == 0 {
		s.running = true
		s.start = now
		s.end = time.Time{}
	}
	s.active++
}

// End closes a run opened by Begin. The elapsed time freezes when the last
// open run ends. Calling End on an idle stopwatch does nothing.
func (s *Stopwatch) End() {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == 0 {
		return
	}
	s.active--
	if s.active > 0 {
		return
	}
	s.running = false
	s.end = now
}

// Hide clears the display. It is ignored while a run is in progress.
func (s *Stopwatch) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.visible = false
}

// State returns Running while any run is open, Idle otherwise.
func (s *Stopwatch) State() State {
	if s.Running() {
		return Running
	}
	return Idle
}

// Running reports whether a run is in progress.
func (s *Stopwatch) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Visible reports whether the display is shown.
func (s *Stopwatch) Visible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// Elapsed returns the length of the current or last run. It is zero before
// the first Begin.
func (s *Stopwatch) Elapsed() delay.Seconds {
	s.mu.RLock()
	start, end, running := s.start, s.end, s.running
	s.mu.RUnlock()

	switch {
	case start.IsZero():
		return 0
	case running:
		return delay.FromDuration(s.clock.Now().Sub(start))
	default:
		return delay.FromDuration(end.Sub(start))
	}
}

// Display renders the stopwatch: empty when hidden, RunningText while
// running and the elapsed seconds with three decimals otherwise.
func (s *Stopwatch) Display() string {
	s.mu.RLock()
	visible, running := s.visible, s.running
	s.mu.RUnlock()

	switch {
	case !visible:
		return ""
	case running:
		return RunningText
	default:
		return s.Elapsed().String()
	}
}
