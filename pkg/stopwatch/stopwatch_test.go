package stopwatch

import (
	"sync"
	"testing"
	"time"

	"github.com/vnykmshr/asyncflow/internal/testutil"
)

func TestLifecycle(t *testing.T) {
	clock := testutil.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	sw := New(clock)

	testutil.AssertEqual(t, sw.State(), Idle)
	testutil.AssertEqual(t, sw.Visible(), false)
	testutil.AssertEqual(t, sw.Display(), "")
	testutil.AssertEqual(t, sw.Elapsed().String(), "0.000")

	sw.Begin()
	testutil.AssertEqual(t, sw.State(), Running)
	testutil.AssertEqual(t, sw.Visible(), true)
	testutil.AssertEqual(t, sw.Display(), RunningText)

	clock.Advance(1234 * time.Millisecond)
	testutil.AssertEqual(t, sw.Elapsed().String(), "1.234")

	sw.End()
	testutil.AssertEqual(t, sw.State(), Idle)
	testutil.AssertEqual(t, sw.Display(), "1.234")

	// Elapsed is frozen once the run ends.
	clock.Advance(time.Hour)
	testutil.AssertEqual(t, sw.Display(), "1.234")

	sw.Hide()
	testutil.AssertEqual(t, sw.Visible(), false)
	testutil.AssertEqual(t, sw.Display(), "")
}

func TestHideIgnoredWhileRunning(t *testing.T) {
	clock := testutil.NewMockClock(time.Time{})
	sw := New(clock)

	sw.Begin()
	sw.Hide()
	testutil.AssertEqual(t, sw.Visible(), true)
	testutil.AssertEqual(t, sw.Display(), RunningText)
}

func TestEndWhenIdle(t *testing.T) {
	clock := testutil.NewMockClock(time.Time{})
	sw := New(clock)

	sw.End()
	testutil.AssertEqual(t, sw.State(), Idle)
	testutil.AssertEqual(t, sw.Elapsed().String(), "0.000")

	sw.Begin()
	clock.Advance(500 * time.Millisecond)
	sw.End()
	clock.Advance(500 * time.Millisecond)
	sw.End()
	testutil.AssertEqual(t, sw.Elapsed().String(), "0.500")
}

func TestOverlappingRuns(t *testing.T) {
	clock := testutil.NewMockClock(time.Time{})
	sw := New(clock)

	sw.Begin() // long run
	clock.Advance(100 * time.Millisecond)
	sw.Begin() // short run inside it
	clock.Advance(50 * time.Millisecond)
	sw.End()

	// The long run is still open.
	testutil.AssertEqual(t, sw.State(), Running)
	testutil.AssertEqual(t, sw.Display(), RunningText)

	clock.Advance(100 * time.Millisecond)
	sw.End()
	testutil.AssertEqual(t, sw.State(), Idle)
	testutil.AssertEqual(t, sw.Display(), "0.250")

	// Unpaired End calls do not go negative.
	sw.End()
	sw.Begin()
	testutil.AssertEqual(t, sw.State(), Running)
	sw.End()
	testutil.AssertEqual(t, sw.State(), Idle)
}

func TestBeginRestarts(t *testing.T) {
	clock := testutil.NewMockClock(time.Time{})
	sw := New(clock)

	sw.Begin()
	clock.Advance(2 * time.Second)
	sw.End()

	sw.Begin()
	clock.Advance(250 * time.Millisecond)
	sw.End()

	testutil.AssertEqual(t, sw.Display(), "0.250")
}

func TestStateString(t *testing.T) {
	testutil.AssertEqual(t, Idle.String(), "idle")
	testutil.AssertEqual(t, Running.String(), "running")
}

func TestSystemClock(t *testing.T) {
	sw := New(nil)

	sw.Begin()
	time.Sleep(20 * time.Millisecond)
	sw.End()

	if sw.Elapsed() < 0.02 {
		t.Errorf("elapsed %v should be at least 0.020", sw.Elapsed())
	}
}

func TestConcurrentReads(t *testing.T) {
	sw := New(nil)
	sw.Begin()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = sw.Display()
				_ = sw.Elapsed()
			}
		}()
	}
	sw.End()
	wg.Wait()

	testutil.AssertEqual(t, sw.State(), Idle)
}
