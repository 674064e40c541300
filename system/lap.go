package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/physics"
	"github.com/lixenwraith/pixel-racer/status"
)

// LapSystem counts laps and turns them into race outcomes
// Cars are checked humans first in slot order, then the AI; only the first
// final outcome of a tick counts
type LapSystem struct{}

func NewLapSystem() engine.System {
	return &LapSystem{}
}

func (l *LapSystem) Name() string { return "lap" }

func (l *LapSystem) Priority() int {
	return parameter.PriorityLap
}

func (l *LapSystem) Update(s *engine.Session, now time.Time) {
	g := s.Track
	for _, c := range s.Cars() {
		b := c.Kinematics()
		lap := c.Laps()

		if b.Pos.Dist(g.Checkpoint) < parameter.CheckpointRadius {
			lap.PassCheckpoint()
		}

		onFinish := physics.Touches(b, g.Finish, g.FinishPos)
		entered := onFinish && !lap.OnFinish
		lap.OnFinish = onFinish
		if !onFinish {
			continue
		}

		if !lap.Checkpoint {
			if entered {
				s.Status.Inc(status.MetricWrongWay)
				s.Emit(event.GameEvent{Type: event.EventWrongWay, Pos: b.Pos, Car: c.ID()})
			}
			continue
		}
		if !lap.Complete(now) {
			continue
		}

		s.Status.Inc(status.MetricLaps)
		best := s.Status.Floats.Get(status.GaugeBestLap)
		if secs := lap.BestLap.Seconds(); best.Get() == 0 || secs < best.Get() {
			best.Set(secs)
		}
		s.Emit(event.GameEvent{
			Type:      event.EventLapCelebration,
			Pos:       b.Pos,
			Color:     carColor(c),
			Particles: parameter.ParticleCountFinish,
			Car:       c.ID(),
		})
		s.Log.Debug("lap completed",
			zap.Stringer("car", c.ID()),
			zap.Int("lap", lap.Count),
			zap.Duration("best", lap.BestLap),
		)

		applyLapRules(s, c, now)
		if s.Phase() == engine.PhaseFinished {
			return
		}
	}
}

// applyLapRules maps a counted lap to an outcome under the configured mode and rotation
func applyLapRules(s *engine.Session, c component.Car, now time.Time) {
	cfg := s.Config
	id := c.ID()
	human := c.Variant() == component.VariantHuman

	if c.Laps().Count >= cfg.LapsToWin {
		switch {
		case !human:
			s.Signal(engine.OutcomeLose, id, now)
		case cfg.Players == 1:
			s.Signal(engine.OutcomeWin, id, now)
		case id == component.Player1:
			s.Signal(engine.OutcomeP1Win, id, now)
		default:
			s.Signal(engine.OutcomeP2Win, id, now)
		}
		return
	}

	if cfg.Rotation == config.RotationPerLap {
		s.RequestTrackChange()
	}

	switch cfg.Mode {
	case config.ModeSprint:
		if human {
			s.Signal(lapWin(id), id, now)
		}
		s.RequestPositionReset()
	case config.ModeContinuous:
		if cfg.Rotation == config.RotationPerLap {
			s.Signal(engine.OutcomeChangeMap, id, now)
		}
	}
}

func lapWin(id component.CarID) engine.Outcome {
	if id == component.Player2 {
		return engine.OutcomeP2LapWin
	}
	return engine.OutcomeP1LapWin
}
