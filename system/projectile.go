package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/status"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// ProjectileSystem fires, flies and resolves shots
// Fire is edge-triggered on the intent; projectiles ignore walls and leave at
// the track bounds
type ProjectileSystem struct{}

func NewProjectileSystem() engine.System {
	return &ProjectileSystem{}
}

func (p *ProjectileSystem) Name() string { return "projectile" }

func (p *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

func (p *ProjectileSystem) Update(s *engine.Session, now time.Time) {
	for _, h := range s.Humans {
		if s.Intents[h.Slot].Fire && !s.PrevIntents[h.Slot].Fire {
			Fire(s, h, now)
		}
	}

	bounds := s.Track.Bounds()
	cars := s.Cars()
	kept := s.Projectiles[:0]
	for _, pr := range s.Projectiles {
		pr.Advance()
		if !bounds.Contains(pr.Pos) {
			continue
		}
		if target := firstHit(pr, cars); target != nil {
			stun(s, target, now)
			s.Status.Inc(status.MetricHits)
			s.Emit(event.GameEvent{
				Type:      event.EventProjectileExplosion,
				Pos:       pr.Pos,
				Color:     ExplosionColor,
				Particles: parameter.ParticleCountExplosion,
				Car:       target.ID(),
			})
			continue
		}
		kept = append(kept, pr)
	}
	s.Projectiles = kept
}

// Fire spawns a projectile at the car's forward edge, no-op without ammo or while stunned
func Fire(s *engine.Session, h *component.HumanCar, now time.Time) bool {
	if h.Ammo <= 0 || h.Stunned(now) {
		return false
	}
	h.Ammo--
	nose := h.Pos.Add(vmath.Forward(h.Heading).Scale(float64(h.Height) / 2))
	s.Projectiles = append(s.Projectiles, component.Projectile{
		Pos:     nose,
		Heading: h.Heading,
		Speed:   parameter.ProjectileSpeed,
		Owner:   h.Slot,
	})
	s.Status.Inc(status.MetricShots)
	return true
}

func firstHit(pr component.Projectile, cars []component.Car) component.Car {
	box := pr.Bounds()
	for _, c := range cars {
		if c.ID() == pr.Owner {
			continue
		}
		if box.Intersects(c.Kinematics().Bounds()) {
			return c
		}
	}
	return nil
}

// stun stalls the AI in place facing its start heading, humans only lose control
func stun(s *engine.Session, c component.Car, now time.Time) {
	switch car := c.(type) {
	case *component.AICar:
		car.Heading = car.Start.Heading
		car.Velocity = 0
		car.Stalled = true
		car.StunUntil = now.Add(parameter.AIStunDuration)
	case *component.HumanCar:
		car.StunUntil = now.Add(parameter.HumanStunDuration)
	}
	s.Log.Debug("car stunned", zap.Stringer("car", c.ID()))
}
