package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/gravitor/core"
	"github.com/lixenwraith/gravitor/parameter"
)

// Stepper is advanced once per scheduler tick
type Stepper interface {
	Step()
}

// SchedulerState is the lifecycle of a ClockScheduler
type SchedulerState uint8

const (
	SchedulerStopped SchedulerState = iota
	SchedulerRunning
	SchedulerStopping
)

func (s SchedulerState) String() string {
	switch s {
	case SchedulerStopped:
		return "Stopped"
	case SchedulerRunning:
		return "Running"
	case SchedulerStopping:
		return "Stopping"
	default:
		return "Unknown"
	}
}

// ClockScheduler drives a Stepper on a fixed tick
// Deadline based: ticks keep their cadence regardless of step duration, and a loop that
// falls more than two intervals behind resyncs instead of bursting
type ClockScheduler struct {
	stepper      Stepper
	tickInterval time.Duration
	logger       *slog.Logger

	// Per-run control, guarded by mu
	mu       sync.Mutex
	state    SchedulerState
	stopChan chan struct{}
	doneChan chan struct{}

	isPaused  atomic.Bool
	tickCount atomic.Uint64

	overrunLimiter *rate.Limiter

	// Frame synchronization: signalled after every tick, never blocks the loop
	updateDone chan struct{}
}

// NewClockScheduler creates a stopped scheduler and returns the updateDone channel
// the render consumer waits on
func NewClockScheduler(stepper Stepper, tickInterval time.Duration, logger *slog.Logger) (*ClockScheduler, <-chan struct{}) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	updateDone := make(chan struct{}, 1)
	cs := &ClockScheduler{
		stepper:        stepper,
		tickInterval:   tickInterval,
		logger:         logger.With("component", "scheduler"),
		overrunLimiter: rate.NewLimiter(rate.Limit(parameter.OverrunLogsPerSecond), parameter.OverrunLogBurst),
		updateDone:     updateDone,
	}
	return cs, updateDone
}

// Start launches the loop; no-op returning false unless the scheduler is stopped
func (cs *ClockScheduler) Start() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.state != SchedulerStopped {
		return false
	}
	cs.state = SchedulerRunning
	stop := make(chan struct{})
	done := make(chan struct{})
	cs.stopChan, cs.doneChan = stop, done

	// core.Go routes a panic in a tick to the crash handler
	core.Go(func() { cs.schedulerLoop(stop, done) })
	return true
}

// Stop signals the loop and blocks until it has exited
// An in-progress tick completes first. Safe to call repeatedly and concurrently;
// callers arriving while stopping wait for the same exit, and a stopped scheduler returns at once
// Stop must not be called from inside a tick (a Stepper or an event Handler it dispatches):
// the loop cannot exit while its own tick waits on it. Use RequestStop there
func (cs *ClockScheduler) Stop() {
	if done := cs.signalStop(); done != nil {
		<-done
	}
}

// RequestStop signals the loop without waiting for it to exit and returns whether this call
// initiated the stop. Safe from inside a tick; the loop exits once the current tick returns
func (cs *ClockScheduler) RequestStop() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.state != SchedulerRunning {
		return false
	}
	cs.state = SchedulerStopping
	close(cs.stopChan)
	return true
}

// signalStop moves a running scheduler to Stopping and returns the channel closed on loop exit,
// nil when already stopped
func (cs *ClockScheduler) signalStop() <-chan struct{} {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	switch cs.state {
	case SchedulerStopped:
		return nil
	case SchedulerRunning:
		cs.state = SchedulerStopping
		close(cs.stopChan)
	}
	return cs.doneChan
}

// State reports the lifecycle state
func (cs *ClockScheduler) State() SchedulerState {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.state
}

// Pause suspends ticking without stopping the loop
func (cs *ClockScheduler) Pause() {
	if cs.isPaused.CompareAndSwap(false, true) {
		cs.logger.Info("scheduler paused", "ticks", cs.tickCount.Load())
	}
}

// Resume restarts ticking after Pause; the next tick is one interval away
func (cs *ClockScheduler) Resume() {
	if cs.isPaused.CompareAndSwap(true, false) {
		cs.logger.Info("scheduler resumed")
	}
}

// TogglePause flips the pause state and returns the new one
func (cs *ClockScheduler) TogglePause() bool {
	if cs.isPaused.Load() {
		cs.Resume()
		return false
	}
	cs.Pause()
	return true
}

func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// TickCount is the number of ticks run since construction
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs until stop is closed; done is closed once the state is back to Stopped
func (cs *ClockScheduler) schedulerLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer func() {
		cs.mu.Lock()
		cs.state = SchedulerStopped
		cs.mu.Unlock()
		close(done)
		cs.logger.Info("scheduler stopped", "ticks", cs.tickCount.Load())
	}()

	cs.logger.Info("scheduler started", "interval", cs.tickInterval)
	nextTickDeadline := time.Now().Add(cs.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.isPaused.Load() {
			// Poll slower while paused; the deadline slides so resume does not burst
			sleepDuration = cs.tickInterval * 2
			nextTickDeadline = time.Now().Add(cs.tickInterval)
		} else {
			now := time.Now()
			if !now.Before(nextTickDeadline) {
				cs.processTick()

				nextTickDeadline = nextTickDeadline.Add(cs.tickInterval)
				maxBehind := cs.tickInterval * 2
				if now.Sub(nextTickDeadline) > maxBehind {
					nextTickDeadline = now.Add(cs.tickInterval)
				}

				select {
				case cs.updateDone <- struct{}{}:
				default:
				}

				sleepDuration = max(time.Until(nextTickDeadline), 0)
			} else {
				sleepDuration = nextTickDeadline.Sub(now)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-stop:
				return
			}
		}
	}
}

// processTick runs one step and reports overruns, throttled
func (cs *ClockScheduler) processTick() {
	start := time.Now()
	cs.stepper.Step()
	elapsed := time.Since(start)

	ticks := cs.tickCount.Add(1)
	if elapsed > cs.tickInterval && cs.overrunLimiter.Allow() {
		cs.logger.Warn("tick overrun", "tick", ticks, "elapsed", elapsed, "interval", cs.tickInterval)
	}
}
