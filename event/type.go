package event

import (
	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// EventType represents the type of cosmetic race event
type EventType int

const (
	// EventWallSpark marks a wall contact
	// Trigger: CollisionSystem | Particles: ParticleCountCollision
	EventWallSpark EventType = iota

	// EventPickupSparkle marks a collected power-up
	// Trigger: PowerUpSystem | Particles: ParticleCountPickup
	EventPickupSparkle

	// EventProjectileExplosion marks a projectile hitting a car
	// Trigger: ProjectileSystem | Particles: ParticleCountExplosion
	EventProjectileExplosion

	// EventLapCelebration marks a counted lap
	// Trigger: LapSystem | Particles: ParticleCountFinish
	EventLapCelebration

	// EventWrongWay marks a finish crossing without the checkpoint
	// Trigger: LapSystem | Particles: none, HUD warning only
	EventWrongWay
)

func (t EventType) String() string {
	switch t {
	case EventWallSpark:
		return "wall-spark"
	case EventPickupSparkle:
		return "pickup-sparkle"
	case EventProjectileExplosion:
		return "projectile-explosion"
	case EventLapCelebration:
		return "lap-celebration"
	case EventWrongWay:
		return "wrong-way"
	default:
		return "unknown"
	}
}

// GameEvent is a presentation hint produced by a tick, the simulation never reads it back
type GameEvent struct {
	Type      EventType
	Pos       vmath.Vec2
	Color     component.RGB
	Particles int
	Car       component.CarID
	Frame     uint64
}
