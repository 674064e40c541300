package track

import (
	"image"
	"math"

	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// OvalSpec describes a generated elliptical ring track, radii are in pixels
// Travel is clockwise on screen, the finish line crosses the top straight
type OvalSpec struct {
	Name          string
	Width, Height int
	OuterRx       float64
	OuterRy       float64
	InnerRx       float64
	InnerRy       float64
	WallThickness float64
	FinishWidth   int
	Waypoints     int
}

// Speedway is the default 900x900 oval
func Speedway() OvalSpec {
	return OvalSpec{
		Name:          "speedway",
		Width:         900,
		Height:        900,
		OuterRx:       350,
		OuterRy:       300,
		InnerRx:       250,
		InnerRy:       200,
		WallThickness: parameter.TrackWallThickness,
		FinishWidth:   parameter.TrackFinishWidth,
		Waypoints:     parameter.TrackWaypointCount,
	}
}

// Superoval is a wider and flatter ring with a broader road
func Superoval() OvalSpec {
	return OvalSpec{
		Name:          "superoval",
		Width:         1000,
		Height:        800,
		OuterRx:       460,
		OuterRy:       340,
		InnerRx:       330,
		InnerRy:       210,
		WallThickness: parameter.TrackWallThickness,
		FinishWidth:   parameter.TrackFinishWidth,
		Waypoints:     parameter.TrackWaypointCount,
	}
}

// GenerateOval rasterizes the ring into surface, wall and finish masks and
// derives checkpoint, centerline waypoints and start poses
func GenerateOval(spec OvalSpec) *Geometry {
	cx := float64(spec.Width) / 2
	cy := float64(spec.Height) / 2
	t := spec.WallThickness

	surface := NewBitmap(spec.Width, spec.Height)
	walls := NewBitmap(spec.Width, spec.Height)

	for y := 0; y < spec.Height; y++ {
		dy := float64(y) + 0.5 - cy
		for x := 0; x < spec.Width; x++ {
			dx := float64(x) + 0.5 - cx
			if vmath.EllipseRingContains(dx, dy, spec.OuterRx, spec.OuterRy, spec.InnerRx, spec.InnerRy) {
				surface.Set(x, y, true)
				continue
			}
			outerBand := vmath.EllipseRingContains(dx, dy, spec.OuterRx+t, spec.OuterRy+t, spec.OuterRx, spec.OuterRy)
			innerBand := vmath.EllipseRingContains(dx, dy, spec.InnerRx, spec.InnerRy, spec.InnerRx-t, spec.InnerRy-t)
			if outerBand || innerBand {
				walls.Set(x, y, true)
			}
		}
	}

	// Finish strip spans the top straight from outer to inner edge
	top := int(math.Floor(cy - spec.OuterRy))
	road := int(math.Ceil(spec.OuterRy - spec.InnerRy))
	finish := NewFilledBitmap(spec.FinishWidth, road)
	finishPos := image.Point{X: int(cx), Y: top}

	midRx := (spec.OuterRx + spec.InnerRx) / 2
	midRy := (spec.OuterRy + spec.InnerRy) / 2

	n := max(spec.Waypoints, 1)
	waypoints := make([]vmath.Vec2, n)
	for i := range waypoints {
		// First waypoint lies just past the finish line
		theta := 2 * math.Pi * float64(i+1) / float64(n)
		waypoints[i] = vmath.V(cx+midRx*math.Sin(theta), cy-midRy*math.Cos(theta))
	}

	startX := cx + float64(spec.FinishWidth) + parameter.TrackStartGap
	laneY := cy - midRy
	heading := -90.0 // moving +X along the top straight

	return &Geometry{
		Name:       spec.Name,
		Surface:    surface,
		Walls:      walls,
		Finish:     finish,
		FinishPos:  finishPos,
		Checkpoint: vmath.V(cx, cy+midRy),
		Waypoints:  waypoints,
		P1Start:    Start{Pos: vmath.V(startX, laneY-parameter.TrackLaneOffset), Heading: heading},
		P2Start:    Start{Pos: vmath.V(startX, laneY+parameter.TrackLaneOffset), Heading: heading},
		AIStart:    Start{Pos: vmath.V(startX, laneY), Heading: heading},
	}
}
