package render

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// Particle is one cosmetic spark, never read by the simulation
type Particle struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Color component.RGB
	TTL   int
}

// ParticleField expands event particle hints into short-lived sparks
type ParticleField struct {
	rng   *rand.Rand
	items []Particle
}

func NewParticleField(seed uint64) *ParticleField {
	return &ParticleField{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Emit spawns the event's particle count around its position
// The oldest particles are dropped past ParticleMax
func (f *ParticleField) Emit(ev event.GameEvent) {
	for i := 0; i < ev.Particles; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := 0.5 + f.rng.Float64()*(parameter.ParticleMaxSpeed-0.5)
		f.items = append(f.items, Particle{
			Pos:   ev.Pos,
			Vel:   vmath.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
			Color: ev.Color,
			TTL:   parameter.ParticleMinTTL + f.rng.IntN(parameter.ParticleMaxTTL-parameter.ParticleMinTTL+1),
		})
	}
	if over := len(f.items) - parameter.ParticleMax; over > 0 {
		f.items = append(f.items[:0], f.items[over:]...)
	}
}

// Step advances every particle one frame and drops expired ones
func (f *ParticleField) Step() {
	kept := f.items[:0]
	for _, p := range f.items {
		p.TTL--
		if p.TTL <= 0 {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel)
		kept = append(kept, p)
	}
	f.items = kept
}

// Clear drops every particle
func (f *ParticleField) Clear() {
	f.items = f.items[:0]
}

func (f *ParticleField) Len() int { return len(f.items) }

// Each visits live particles
func (f *ParticleField) Each(fn func(p Particle)) {
	for _, p := range f.items {
		fn(p)
	}
}
