package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/status"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// shotAt returns a projectile that lands on pos after one advance
func shotAt(pos vmath.Vec2, heading float64, owner component.CarID) component.Projectile {
	return component.Projectile{
		Pos:     pos.Sub(vmath.Forward(heading).Scale(parameter.ProjectileSpeed)),
		Heading: heading,
		Speed:   parameter.ProjectileSpeed,
		Owner:   owner,
	}
}

func TestFireWithoutAmmo(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.AIEnabled = false })
	h := s.Humans[0]

	assert.False(t, Fire(s, h, clock.Now()))
	clock.Step()
	s.Tick(engine.Intents{{Fire: true}})
	assert.Empty(t, s.Projectiles)
	assert.Zero(t, h.Ammo)
	assert.Zero(t, s.Status.Int(status.MetricShots))
}

func TestFireIsEdgeTriggered(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.AIEnabled = false })
	h := s.Humans[0]
	h.Ammo = 3

	fire := engine.Intents{{Fire: true}}
	clock.Step()
	s.Tick(fire)
	require.Len(t, s.Projectiles, 1)
	assert.Equal(t, 2, h.Ammo)
	assert.Equal(t, component.Player1, s.Projectiles[0].Owner)
	nose := h.Pos.Add(vmath.Forward(h.Heading).Scale(float64(h.Height)/2 + parameter.ProjectileSpeed))
	assert.InDelta(t, nose.X, s.Projectiles[0].Pos.X, 1e-9)

	clock.Step()
	s.Tick(fire)
	assert.Equal(t, 2, h.Ammo, "holding fire shoots once")

	clock.Step()
	s.Tick(engine.Intents{})
	clock.Step()
	s.Tick(fire)
	assert.Equal(t, 1, h.Ammo)
	assert.Equal(t, int64(2), s.Status.Int(status.MetricShots))
}

func TestProjectileLeavesTrack(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.AIEnabled = false })
	s.Projectiles = []component.Projectile{{Pos: vmath.V(2, 2), Heading: 0, Speed: parameter.ProjectileSpeed}}

	clock.Step()
	s.Tick(engine.Intents{})
	assert.Empty(t, s.Projectiles)
}

func TestProjectileStunsHuman(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) {
		c.AIEnabled = false
		c.Players = 2
	})
	p1 := s.Humans[0]
	s.Projectiles = []component.Projectile{shotAt(p1.Pos, p1.Heading, component.Player2)}
	s.Events.Consume()

	clock.Step()
	s.Tick(engine.Intents{})
	assert.Empty(t, s.Projectiles)
	assert.Equal(t, clock.Now().Add(parameter.HumanStunDuration), p1.StunUntil)
	assert.Len(t, eventsOf(s, event.EventProjectileExplosion), 1)
	assert.Equal(t, int64(1), s.Status.Int(status.MetricHits))

	p1.Ammo = 1
	clock.Step()
	s.Tick(engine.Intents{{Accelerate: true, Fire: true}})
	assert.Zero(t, p1.Velocity, "stunned car ignores input")
	assert.Equal(t, 1, p1.Ammo, "stunned car cannot fire")

	clock.Advance(parameter.HumanStunDuration)
	s.Tick(engine.Intents{{Accelerate: true}})
	assert.InDelta(t, parameter.CarAcceleration, p1.Velocity, 1e-9)
}

func TestOwnerIsNeverHit(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.AIEnabled = false })
	p1 := s.Humans[0]
	s.Projectiles = []component.Projectile{shotAt(p1.Pos, p1.Heading, component.Player1)}

	clock.Step()
	s.Tick(engine.Intents{})
	assert.Len(t, s.Projectiles, 1)
	assert.True(t, p1.StunUntil.IsZero())
}

func TestAIStunHoldsPositionAndWaypoint(t *testing.T) {
	s, clock := newRace(t, nil)
	a := s.AI
	require.NotNil(t, a)

	// Drive until the current waypoint is well outside the arrival radius
	for i := 0; i < 200; i++ {
		clock.Step()
		s.Tick(engine.Intents{})
		target, _ := a.Target()
		if i >= 20 && a.Pos.Dist(target) > 2*parameter.WaypointArrivalRadius {
			break
		}
	}
	target, _ := a.Target()
	require.Greater(t, a.Pos.Dist(target), 2*parameter.WaypointArrivalRadius)

	s.Projectiles = []component.Projectile{shotAt(a.Pos, a.Heading, component.Player1)}
	clock.Step()
	s.Tick(engine.Intents{})
	require.True(t, a.Stunned(clock.Now()))
	assert.True(t, a.Stalled)
	assert.Zero(t, a.Velocity)
	assert.Equal(t, a.Start.Heading, a.Heading)

	held, index := a.Pos, a.WaypointIndex
	until := a.StunUntil
	assert.Equal(t, clock.Now().Add(parameter.AIStunDuration), until)
	for clock.Now().Add(parameter.TickInterval).Before(until) {
		clock.Step()
		s.Tick(engine.Intents{})
		require.Equal(t, held, a.Pos)
		require.Equal(t, index, a.WaypointIndex)
	}

	clock.SetTime(until)
	s.Tick(engine.Intents{})
	assert.False(t, a.Stalled)
	assert.Equal(t, a.MaxVelocity, a.Velocity)
	assert.Equal(t, index, a.WaypointIndex, "resumes toward the same waypoint")
	assert.NotEqual(t, held, a.Pos)
}
