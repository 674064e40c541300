package system

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/physics"
	"github.com/lixenwraith/pixel-racer/status"
	"github.com/lixenwraith/pixel-racer/track"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// SpawnRules bounds power-up placement sampling
type SpawnRules struct {
	Margin     int     // excluded band along every track edge
	Attempts   int     // samples per instance before giving up
	Separation float64 // minimum distance to existing instances
}

// DefaultSpawnRules returns the in-game sampling bounds
func DefaultSpawnRules() SpawnRules {
	return SpawnRules{
		Margin:     parameter.PowerUpSpawnMargin,
		Attempts:   parameter.PowerUpSpawnAttempts,
		Separation: parameter.PowerUpSeparation,
	}
}

// SpawnPowerUps samples up to count new instances on drivable, wall-free
// pixels; fewer are returned when sampling runs out of attempts
func SpawnPowerUps(g *track.Geometry, rng *rand.Rand, existing []component.PowerUp, count int, rules SpawnRules) []component.PowerUp {
	w, h := g.Width(), g.Height()
	margin := rules.Margin
	if w <= 2*margin || h <= 2*margin {
		margin = 0
	}
	spanX, spanY := w-2*margin, h-2*margin
	if spanX <= 0 || spanY <= 0 {
		return nil
	}

	placed := make([]component.PowerUp, 0, count)
	taken := func(pos vmath.Vec2) bool {
		for _, p := range existing {
			if p.Pos.Dist(pos) < rules.Separation {
				return true
			}
		}
		for _, p := range placed {
			if p.Pos.Dist(pos) < rules.Separation {
				return true
			}
		}
		return false
	}

	for n := 0; n < count; n++ {
		for attempt := 0; attempt < rules.Attempts; attempt++ {
			x := margin + rng.IntN(spanX)
			y := margin + rng.IntN(spanY)
			if !g.Drivable(x, y) {
				continue
			}
			pos := vmath.V(float64(x), float64(y))
			if taken(pos) {
				continue
			}
			placed = append(placed, component.PowerUp{
				Kind:  component.PowerKinds[rng.IntN(len(component.PowerKinds))],
				Pos:   pos,
				Phase: rng.Float64() * 2 * math.Pi,
			})
			break
		}
	}
	return placed
}

// PowerUpSystem owns the collectible lifecycle: effect expiry, spawning,
// pickup and the presentation phase
type PowerUpSystem struct {
	rules SpawnRules
}

func NewPowerUpSystem(rules SpawnRules) engine.System {
	return &PowerUpSystem{rules: rules}
}

func (p *PowerUpSystem) Name() string { return "powerup" }

func (p *PowerUpSystem) Priority() int {
	return parameter.PriorityPowerUp
}

func (p *PowerUpSystem) Update(s *engine.Session, now time.Time) {
	for _, h := range s.Humans {
		if h.Power != component.PowerNone && !now.Before(h.PowerExpiry) {
			ClearEffect(h)
		}
	}
	if !s.Config.PowerUps {
		return
	}

	p.spawn(s, now)
	p.pickup(s, now)

	for i := range s.PowerUps {
		s.PowerUps[i].Phase = math.Mod(s.PowerUps[i].Phase+parameter.PowerUpPhaseStep, 2*math.Pi)
	}
}

func (p *PowerUpSystem) spawn(s *engine.Session, now time.Time) {
	want := 0
	switch {
	case s.PowerUpRefill:
		want = parameter.PowerUpSpawnCount - len(s.PowerUps)
		s.PowerUpRefill = false
		s.LastSpawn = now
	case now.Sub(s.LastSpawn) >= parameter.PowerUpSpawnInterval:
		s.LastSpawn = now
		if len(s.PowerUps) < parameter.PowerUpSpawnCount {
			want = 1
		}
	}
	if want <= 0 {
		return
	}

	added := SpawnPowerUps(s.Track, s.Rand, s.PowerUps, want, p.rules)
	s.PowerUps = append(s.PowerUps, added...)
	s.Status.Ints.Get(status.MetricSpawns).Add(int64(len(added)))
}

// pickup hands each instance to at most one car, player 1 before player 2
func (p *PowerUpSystem) pickup(s *engine.Session, now time.Time) {
	kept := s.PowerUps[:0]
	for _, pu := range s.PowerUps {
		var taker *component.HumanCar
		for _, h := range s.Humans {
			if h.Pos.Dist(pu.Pos) < parameter.PickupRadius {
				taker = h
				break
			}
		}
		if taker == nil {
			kept = append(kept, pu)
			continue
		}

		ApplyEffect(taker, pu.Kind, now)
		s.Status.Inc(status.MetricPickups)
		s.Emit(event.GameEvent{
			Type:      event.EventPickupSparkle,
			Pos:       pu.Pos,
			Color:     PowerColor(pu.Kind),
			Particles: parameter.ParticleCountPickup,
			Car:       taker.Slot,
		})
	}
	s.PowerUps = kept
}

// ApplyEffect ends any running effect and starts kind for the effect duration
// Ammo stacks across pickups; the indicator shows the latest kind
func ApplyEffect(h *component.HumanCar, kind component.PowerKind, now time.Time) {
	ClearEffect(h)
	switch kind {
	case component.PowerSpeedBoost:
		h.MaxVelocity = h.BaseMaxVelocity * parameter.BoostMultiplier
	case component.PowerWallPermeability:
		h.Permeable = true
	case component.PowerWeaponCharge:
		h.Ammo += parameter.WeaponAmmoPerPickup
	}
	h.Power = kind
	h.PowerExpiry = now.Add(parameter.PowerUpDuration)
}

// ClearEffect restores the car to its unboosted state
func ClearEffect(h *component.HumanCar) {
	if h.Power == component.PowerSpeedBoost {
		h.MaxVelocity = h.BaseMaxVelocity
		physics.ClampVelocity(&h.Body)
	}
	h.Permeable = false
	h.Power = component.PowerNone
	h.PowerExpiry = time.Time{}
}
