package vmath

import "math"

// Headings are in degrees with 0 pointing up (-Y) and positive values turning
// counter-clockwise on screen. They are never wrapped; only sin/cos are consumed

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Forward returns the unit direction of travel for a heading
func Forward(heading float64) Vec2 {
	rad := Radians(heading)
	return Vec2{-math.Sin(rad), -math.Cos(rad)}
}

// Bearing returns the heading that points from one position to another
// atan2 covers the zero vertical delta without a division
func Bearing(from, to Vec2) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	return Degrees(math.Atan2(-dx, -dy))
}

// SignedAngleDiff returns a-b normalized into (-180, 180]
func SignedAngleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
