package server

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var errNoTimeSet = errors.New("set a time first")

type timerKey struct {
	nightID string
	roundID int
}

// TimerState is a point-in-time copy of one round's countdown. The zero
// value doubles as the idle state, which is what absent timers report.
type TimerState struct {
	Remaining int
	Running   bool
}

type roundTimer struct {
	remaining int
	running   bool
	// handle is the pending one-second tick. Every transition out of
	// running must stop it before touching remaining, otherwise a stale
	// fire can decrement state that has already been reset.
	handle *time.Timer
}

// timerEngine owns the per-round countdowns, keyed by night and round id.
// A key with no entry is a timer that has never been started (idle at zero).
type timerEngine struct {
	mu       sync.Mutex
	interval time.Duration
	fire     func(key timerKey)
	timers   map[timerKey]*roundTimer
}

func newTimerEngine(interval time.Duration, fire func(key timerKey)) *timerEngine {
	return &timerEngine{
		interval: interval,
		fire:     fire,
		timers:   make(map[timerKey]*roundTimer),
	}
}

// Start moves the timer to running. Already-running timers are left alone.
// An idle timer is seeded from configuredSeconds; a paused one resumes with
// whatever it had left.
func (e *timerEngine) Start(key timerKey, configuredSeconds int) (TimerState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t := e.timers[key]
	if t == nil {
		t = &roundTimer{}
		e.timers[key] = t
	}
	if t.running {
		return t.state(), nil
	}
	if t.remaining == 0 {
		if configuredSeconds <= 0 {
			delete(e.timers, key)
			return TimerState{}, errNoTimeSet
		}
		t.remaining = configuredSeconds
	}
	t.running = true
	t.handle = e.schedule(key)
	return t.state(), nil
}

// Pause stops the countdown keeping the remaining time. Not running is a no-op.
func (e *timerEngine) Pause(key timerKey) TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.timers[key]
	if !ok {
		return TimerState{}
	}
	if t.running {
		t.stop()
	}
	return t.state()
}

// Reset cancels any pending tick and drops the timer back to idle at zero.
func (e *timerEngine) Reset(key timerKey) TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.timers[key]
	if !ok {
		return TimerState{}
	}
	t.stop()
	delete(e.timers, key)
	return TimerState{}
}

// Drop removes the timer entirely, cancelling any pending tick. Used when
// its round is deleted.
func (e *timerEngine) Drop(key timerKey) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t, ok := e.timers[key]; ok {
		t.stop()
		delete(e.timers, key)
	}
}

func (e *timerEngine) State(key timerKey) TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t, ok := e.timers[key]; ok {
		return t.state()
	}
	return TimerState{}
}

// NightStates copies the timer states for one night, keyed by round id.
func (e *timerEngine) NightStates(nightID string) map[int]TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	states := make(map[int]TimerState)
	for key, t := range e.timers {
		if key.nightID == nightID {
			states[key.roundID] = t.state()
		}
	}
	return states
}

// tick is the scheduled one-second step. A fire that raced a cancellation
// finds the timer gone or stopped and does nothing.
func (e *timerEngine) tick(key timerKey) (TimerState, bool, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.timers[key]
	if !ok || !t.running {
		return TimerState{}, false, false
	}
	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.running = false
		t.handle = nil
		return t.state(), true, true
	}
	t.handle = e.schedule(key)
	return t.state(), false, true
}

func (e *timerEngine) schedule(key timerKey) *time.Timer {
	return time.AfterFunc(e.interval, func() {
		e.fire(key)
	})
}

func (t *roundTimer) stop() {
	if t.handle != nil {
		t.handle.Stop()
		t.handle = nil
	}
	t.running = false
}

func (t *roundTimer) state() TimerState {
	return TimerState{Remaining: t.remaining, Running: t.running}
}

// urgencyTier classifies remaining seconds for display: normal above 30,
// warning from 30 down to 11, danger from 10 down to 1, expired at 0.
func urgencyTier(remaining int) string {
	switch {
	case remaining <= 0:
		return tierExpired
	case remaining <= 10:
		return tierDanger
	case remaining <= 30:
		return tierWarning
	default:
		return tierNormal
	}
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
