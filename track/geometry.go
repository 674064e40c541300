package track

import (
	"errors"
	"fmt"
	"image"

	"github.com/lixenwraith/pixel-racer/vmath"
)

var (
	ErrNoSurface       = errors.New("track has no drivable surface")
	ErrNoWalls         = errors.New("track has no wall mask")
	ErrNoFinish        = errors.New("track has no finish line")
	ErrNoWaypoints     = errors.New("track has no waypoints")
	ErrSizeMismatch    = errors.New("track masks differ in size")
	ErrUnknownTrack    = errors.New("unknown track")
	ErrInvalidManifest = errors.New("invalid track manifest")
)

// Start is a car spawn pose, Pos is the silhouette center
type Start struct {
	Pos     vmath.Vec2
	Heading float64
}

// Geometry is the immutable description of one track
// The race core only queries it
type Geometry struct {
	Name string

	Surface *Bitmap // drivable pixels
	Walls   *Bitmap
	Finish  *Bitmap

	// FinishPos places the finish bitmap origin in track coordinates
	FinishPos image.Point

	Checkpoint vmath.Vec2
	Waypoints  []vmath.Vec2

	P1Start Start
	P2Start Start
	AIStart Start
}

// Width returns the track width in pixels
func (g *Geometry) Width() int { return g.Surface.Width() }

// Height returns the track height in pixels
func (g *Geometry) Height() int { return g.Surface.Height() }

// Bounds returns the track extent as a rectangle
func (g *Geometry) Bounds() vmath.Rect {
	return vmath.Rect{W: float64(g.Width()), H: float64(g.Height())}
}

// Drivable reports a legal spawn pixel: on the surface and not on a wall
func (g *Geometry) Drivable(x, y int) bool {
	return g.Surface.Get(x, y) && !g.Walls.Get(x, y)
}

// Validate checks that the geometry is usable for a race with an AI car
func (g *Geometry) Validate() error {
	switch {
	case g.Surface == nil || g.Surface.Count() == 0:
		return fmt.Errorf("%s: %w", g.Name, ErrNoSurface)
	case g.Walls == nil:
		return fmt.Errorf("%s: %w", g.Name, ErrNoWalls)
	case g.Finish == nil || g.Finish.Count() == 0:
		return fmt.Errorf("%s: %w", g.Name, ErrNoFinish)
	case len(g.Waypoints) == 0:
		return fmt.Errorf("%s: %w", g.Name, ErrNoWaypoints)
	}
	if g.Walls.Width() != g.Surface.Width() || g.Walls.Height() != g.Surface.Height() {
		return fmt.Errorf("%s: walls %dx%d, surface %dx%d: %w", g.Name,
			g.Walls.Width(), g.Walls.Height(), g.Surface.Width(), g.Surface.Height(), ErrSizeMismatch)
	}
	return nil
}
