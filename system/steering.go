package system

import (
	"time"

	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/navigation"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/physics"
)

// SteeringSystem drives the AI car along its waypoint loop at constant speed
type SteeringSystem struct{}

func NewSteeringSystem() engine.System {
	return &SteeringSystem{}
}

func (st *SteeringSystem) Name() string { return "steering" }

func (st *SteeringSystem) Priority() int {
	return parameter.PrioritySteering
}

func (st *SteeringSystem) Update(s *engine.Session, now time.Time) {
	a := s.AI
	if a == nil || a.Stunned(now) {
		return
	}
	if a.Stalled {
		a.Velocity = a.MaxVelocity
		a.Stalled = false
	}
	if !navigation.Pursue(a) {
		return
	}
	physics.Move(&a.Body)
}
