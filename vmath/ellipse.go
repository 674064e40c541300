package vmath

// EllipseDistSq returns the normalized squared distance of (dx, dy) from an
// axis-aligned ellipse center; <= 1 means inside
func EllipseDistSq(dx, dy, rx, ry float64) float64 {
	if rx <= 0 || ry <= 0 {
		return 2
	}
	nx := dx / rx
	ny := dy / ry
	return nx*nx + ny*ny
}

// EllipseContains returns true if (dx, dy) is inside or on the ellipse boundary
func EllipseContains(dx, dy, rx, ry float64) bool {
	return EllipseDistSq(dx, dy, rx, ry) <= 1
}

// EllipseRingContains returns true if (dx, dy) lies inside the outer ellipse
// but outside the inner one
func EllipseRingContains(dx, dy, outerRx, outerRy, innerRx, innerRy float64) bool {
	return EllipseContains(dx, dy, outerRx, outerRy) && !EllipseContains(dx, dy, innerRx, innerRy)
}
