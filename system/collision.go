package system

import (
	"image"
	"time"

	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/physics"
	"github.com/lixenwraith/pixel-racer/status"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// CollisionSystem resolves human car contact with walls
// The AI keeps a constant drive along its path and is exempt
type CollisionSystem struct{}

func NewCollisionSystem() engine.System {
	return &CollisionSystem{}
}

func (c *CollisionSystem) Name() string { return "collision" }

func (c *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (c *CollisionSystem) Update(s *engine.Session, now time.Time) {
	walls := s.Track.Walls
	for _, h := range s.Humans {
		contact := physics.Probe(&h.Body, walls, image.Point{})
		if len(contact) == 0 {
			continue
		}
		s.Status.Inc(status.MetricWallHits)

		if h.Sliding() {
			physics.PushOut(&h.Body, walls, contact)
			s.Status.Inc(status.MetricPushOuts)
		} else {
			physics.Bounce(&h.Body)
		}

		s.Emit(event.GameEvent{
			Type:      event.EventWallSpark,
			Pos:       vmath.V(float64(contact[0].X), float64(contact[0].Y)),
			Color:     SparkColor,
			Particles: parameter.ParticleCountCollision,
			Car:       h.Slot,
		})
	}
}
