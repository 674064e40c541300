package component

import (
	"time"

	"github.com/lixenwraith/pixel-racer/vmath"
)

// CarID identifies a car slot in the session
type CarID int

const (
	Player1 CarID = iota
	Player2
	AI
)

func (id CarID) String() string {
	switch id {
	case Player1:
		return "p1"
	case Player2:
		return "p2"
	case AI:
		return "ai"
	default:
		return "unknown"
	}
}

// Variant tags the control source of a car
type Variant int

const (
	VariantHuman Variant = iota
	VariantAI
)

// Car is the common view of both variants used by lap, projectile and render code
type Car interface {
	ID() CarID
	Variant() Variant
	Kinematics() *Body
	Laps() *LapState
	Stunned(now time.Time) bool
}

// RGB is a presentation color hint
type RGB struct {
	R, G, B uint8
}

// HumanCar is driven by per-tick intents
type HumanCar struct {
	Body
	Slot  CarID
	Color RGB

	Power       PowerKind // indicator shown on the HUD, PowerNone when idle
	PowerExpiry time.Time
	Permeable   bool
	Ammo        int
	StunUntil   time.Time

	Lap LapState
}

func (h *HumanCar) ID() CarID         { return h.Slot }
func (h *HumanCar) Variant() Variant  { return VariantHuman }
func (h *HumanCar) Kinematics() *Body { return &h.Body }
func (h *HumanCar) Laps() *LapState   { return &h.Lap }
func (h *HumanCar) Stunned(now time.Time) bool {
	return now.Before(h.StunUntil)
}

// Boosted reports an active speed boost
func (h *HumanCar) Boosted() bool {
	return h.Power == PowerSpeedBoost
}

// Sliding reports whether wall contact resolves by push-out instead of bounce
func (h *HumanCar) Sliding() bool {
	return h.Power == PowerSpeedBoost || h.Permeable
}

// AICar follows a fixed waypoint loop
type AICar struct {
	Body
	Color RGB

	Waypoints     []vmath.Vec2
	WaypointIndex int

	StunUntil time.Time
	Stalled   bool // set while a stun is pending restore

	Lap LapState
}

func (a *AICar) ID() CarID         { return AI }
func (a *AICar) Variant() Variant  { return VariantAI }
func (a *AICar) Kinematics() *Body { return &a.Body }
func (a *AICar) Laps() *LapState   { return &a.Lap }
func (a *AICar) Stunned(now time.Time) bool {
	return now.Before(a.StunUntil)
}

// Target returns the current waypoint, false when the path is empty
func (a *AICar) Target() (vmath.Vec2, bool) {
	if len(a.Waypoints) == 0 {
		return vmath.Vec2{}, false
	}
	if a.WaypointIndex < 0 || a.WaypointIndex >= len(a.Waypoints) {
		a.WaypointIndex = 0
	}
	return a.Waypoints[a.WaypointIndex], true
}

// AdvanceWaypoint moves to the next waypoint, looping back after the last
func (a *AICar) AdvanceWaypoint() {
	if len(a.Waypoints) == 0 {
		return
	}
	a.WaypointIndex = (a.WaypointIndex + 1) % len(a.Waypoints)
}
