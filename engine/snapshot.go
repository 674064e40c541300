package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/track"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// CarView is a read-only copy of one car for presentation
type CarView struct {
	ID       component.CarID
	Variant  component.Variant
	Pos      vmath.Vec2
	Heading  float64
	Velocity float64
	Bounds   vmath.Rect
	Color    component.RGB

	Power          component.PowerKind
	PowerRemaining time.Duration
	Permeable      bool
	Ammo           int
	Stunned        bool

	Laps       int
	BestLap    time.Duration
	Elapsed    time.Duration
	CurrentLap time.Duration
	Checkpoint bool

	WaypointIndex int
}

// Snapshot is a deep copy of the session taken between ticks
type Snapshot struct {
	SessionID string
	Track     *track.Geometry // immutable, shared
	Phase     Phase
	Frame     uint64
	Countdown time.Duration
	Paused    bool
	Outcome   Outcome

	LapsToWin int
	Mode      config.RaceMode

	Cars        []CarView
	PowerUps    []component.PowerUp
	Projectiles []component.Projectile
}

// Snapshot copies the presentation-relevant state
func (s *Session) Snapshot() Snapshot {
	now := s.clock.Now()
	snap := Snapshot{
		SessionID:   s.ID.String(),
		Track:       s.Track,
		Phase:       s.phase,
		Frame:       s.frame,
		Paused:      s.Paused(),
		Outcome:     s.final,
		LapsToWin:   s.Config.LapsToWin,
		Mode:        s.Config.Mode,
		PowerUps:    slices.Clone(s.PowerUps),
		Projectiles: slices.Clone(s.Projectiles),
	}
	if s.phase == PhaseCountdown {
		snap.Countdown = max(s.countdownEnd.Sub(now), 0)
	}

	for _, h := range s.Humans {
		v := viewOf(h, now)
		v.Color = h.Color
		v.Power = h.Power
		if h.Power != component.PowerNone {
			v.PowerRemaining = max(h.PowerExpiry.Sub(now), 0)
		}
		v.Permeable = h.Permeable
		v.Ammo = h.Ammo
		snap.Cars = append(snap.Cars, v)
	}
	if a := s.AI; a != nil {
		v := viewOf(a, now)
		v.Color = a.Color
		v.WaypointIndex = a.WaypointIndex
		snap.Cars = append(snap.Cars, v)
	}
	return snap
}

func viewOf(c component.Car, now time.Time) CarView {
	b := c.Kinematics()
	l := c.Laps()
	return CarView{
		ID:         c.ID(),
		Variant:    c.Variant(),
		Pos:        b.Pos,
		Heading:    b.Heading,
		Velocity:   b.Velocity,
		Bounds:     b.Bounds(),
		Stunned:    c.Stunned(now),
		Laps:       l.Count,
		BestLap:    l.BestLap,
		Elapsed:    l.Elapsed(now),
		CurrentLap: l.CurrentLap(now),
		Checkpoint: l.Checkpoint,
	}
}

// Result is the race summary handed to the leaderboard
type Result struct {
	SessionID  string
	Outcome    Outcome
	Winner     component.CarID
	Time       time.Duration
	Track      string
	Difficulty config.Difficulty
	Laps       int
	Players    int
	AIEnabled  bool
}

// Result returns the summary once the race is finished
func (s *Session) Result() (Result, bool) {
	if s.phase != PhaseFinished {
		return Result{}, false
	}
	return Result{
		SessionID:  s.ID.String(),
		Outcome:    s.final,
		Winner:     s.winner,
		Time:       s.raceTime(s.winner, s.finishedAt),
		Track:      s.Track.Name,
		Difficulty: s.Config.Difficulty,
		Laps:       s.Config.LapsToWin,
		Players:    s.Config.Players,
		AIEnabled:  s.Config.AIEnabled,
	}, true
}

// raceTime returns the elapsed race time of a car
func (s *Session) raceTime(id component.CarID, now time.Time) time.Duration {
	for _, c := range s.Cars() {
		if c.ID() == id {
			return c.Laps().Elapsed(now)
		}
	}
	return 0
}
