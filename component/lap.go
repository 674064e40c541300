package component

import (
	"time"

	"github.com/lixenwraith/pixel-racer/parameter"
)

// LapState tracks lap counting and timing for one car
type LapState struct {
	Started        bool
	RaceStart      time.Time
	LapStart       time.Time
	LastCompletion time.Time // zero until the first lap completes
	Count          int
	BestLap        time.Duration // zero until the first lap completes
	Checkpoint     bool

	Frozen        bool
	FrozenElapsed time.Duration

	// OnFinish is true while the silhouette overlaps the finish line, used to
	// edge-trigger the wrong-way signal
	OnFinish bool
}

// Begin starts the race and lap clocks
func (l *LapState) Begin(now time.Time) {
	*l = LapState{Started: true, RaceStart: now, LapStart: now}
}

// PassCheckpoint sets the checkpoint flag, idempotent
func (l *LapState) PassCheckpoint() {
	l.Checkpoint = true
}

// Complete registers a finish crossing and reports whether a lap was counted
// A lap needs the checkpoint flag and the cooldown since the previous lap
func (l *LapState) Complete(now time.Time) bool {
	if !l.Started || l.Frozen || !l.Checkpoint {
		return false
	}
	if !l.LastCompletion.IsZero() && now.Sub(l.LastCompletion) < parameter.LapCooldown {
		return false
	}

	lap := now.Sub(l.LapStart)
	l.Count++
	if l.BestLap == 0 || lap < l.BestLap {
		l.BestLap = lap
	}
	l.LastCompletion = now
	l.LapStart = now
	l.Checkpoint = false
	return true
}

// RestartLap restarts the current lap timer after a sprint reset
func (l *LapState) RestartLap(now time.Time) {
	l.LapStart = now
	l.Checkpoint = false
	l.OnFinish = false
}

// Freeze stops the displayed race time
func (l *LapState) Freeze(now time.Time) {
	if l.Frozen {
		return
	}
	l.FrozenElapsed = l.Elapsed(now)
	l.Frozen = true
}

// Elapsed returns total race time, the frozen snapshot once frozen
func (l *LapState) Elapsed(now time.Time) time.Duration {
	switch {
	case l.Frozen:
		return l.FrozenElapsed
	case !l.Started:
		return 0
	default:
		return now.Sub(l.RaceStart)
	}
}

// CurrentLap returns time spent in the running lap
func (l *LapState) CurrentLap(now time.Time) time.Duration {
	if !l.Started || l.Frozen {
		return 0
	}
	return now.Sub(l.LapStart)
}
