package engine

import (
	"sync"
	"time"
)

// PausableClock provides pausable game time over a base provider
// Game time stands still while paused; effect timers and lap clocks read it
type PausableClock struct {
	mu sync.RWMutex

	base TimeProvider

	paused          bool
	pauseStartTime  time.Time     // base time when the current pause started
	totalPausedTime time.Duration // cumulative pause duration
}

// NewPausableClock wraps base, nil uses the monotonic system clock
func NewPausableClock(base TimeProvider) *PausableClock {
	if base == nil {
		base = NewMonotonicTimeProvider()
	}
	return &PausableClock{base: base}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.base.Now().Add(-pc.totalPausedTime)
}

// RealTime returns base time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.base.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.base.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.base.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a running pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.base.Now().Sub(pc.pauseStartTime)
	}
	return total
}
