package navigation

import (
	"math"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// SteerToward turns heading toward target by at most rate degrees without
// overshooting the desired bearing, returns the new heading
func SteerToward(pos vmath.Vec2, heading, rate float64, target vmath.Vec2) float64 {
	desired := vmath.Bearing(pos, target)
	diff := vmath.SignedAngleDiff(desired, heading)
	step := math.Min(rate, math.Abs(diff))
	if diff < 0 {
		return heading - step
	}
	return heading + step
}

// Arrived reports whether pos is within the waypoint arrival radius
func Arrived(pos, target vmath.Vec2) bool {
	return pos.Dist(target) < parameter.WaypointArrivalRadius
}

// Pursue runs one steering tick for an AI car: turn toward the current
// waypoint, advance the index on arrival, then report whether the car
// should integrate. Empty paths leave the car in place
func Pursue(a *component.AICar) bool {
	target, ok := a.Target()
	if !ok {
		return false
	}
	a.Heading = SteerToward(a.Pos, a.Heading, a.RotationRate, target)
	if Arrived(a.Pos, target) {
		a.AdvanceWaypoint()
	}
	return true
}
