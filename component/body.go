package component

import (
	"image"
	"math"

	"github.com/lixenwraith/pixel-racer/track"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// Body is the kinematic state shared by every car variant
// Pos is the silhouette center, Heading is in degrees and never wrapped
type Body struct {
	Pos     vmath.Vec2
	PrevPos vmath.Vec2
	Heading float64

	Velocity        float64 // signed, along heading
	Acceleration    float64
	MaxVelocity     float64
	BaseMaxVelocity float64 // restored when a boost expires
	RotationRate    float64

	// Unrotated silhouette size in pixels, length along the heading
	Width, Height int

	Start track.Start

	mask        *track.Bitmap
	maskHeading float64
}

// NewBody places a body at its start pose at rest
func NewBody(start track.Start, maxVelocity, rotationRate, acceleration float64, width, height int) Body {
	return Body{
		Pos:             start.Pos,
		PrevPos:         start.Pos,
		Heading:         start.Heading,
		Acceleration:    acceleration,
		MaxVelocity:     maxVelocity,
		BaseMaxVelocity: maxVelocity,
		RotationRate:    rotationRate,
		Width:           width,
		Height:          height,
		Start:           start,
	}
}

// ResetToStart returns the body to its start pose with zero velocity
func (b *Body) ResetToStart() {
	b.Pos = b.Start.Pos
	b.PrevPos = b.Start.Pos
	b.Heading = b.Start.Heading
	b.Velocity = 0
}

// Silhouette returns the occupancy mask of the car at its current heading
// and the mask origin in track pixels
func (b *Body) Silhouette() (*track.Bitmap, image.Point) {
	if b.mask == nil || b.maskHeading != b.Heading {
		b.mask = rasterize(b.Width, b.Height, b.Heading)
		b.maskHeading = b.Heading
	}
	px, py := b.Pos.Pixel()
	return b.mask, image.Point{X: px - b.mask.Width()/2, Y: py - b.mask.Height()/2}
}

// Bounds returns the axis-aligned box around the rotated silhouette
func (b *Body) Bounds() vmath.Rect {
	w, h := rotatedExtent(b.Width, b.Height, b.Heading)
	return vmath.Rect{
		X: b.Pos.X - float64(w)/2,
		Y: b.Pos.Y - float64(h)/2,
		W: float64(w),
		H: float64(h),
	}
}

// rotatedExtent returns the integer bounding box of a w x h box turned by heading
func rotatedExtent(w, h int, heading float64) (int, int) {
	rad := vmath.Radians(heading)
	s, c := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	fw, fh := float64(w), float64(h)
	// Epsilon absorbs sin/cos residue at right angles
	const eps = 1e-9
	return int(math.Ceil(fw*c + fh*s - eps)), int(math.Ceil(fw*s + fh*c - eps))
}

// rasterize builds the rotated rectangle mask sampled at pixel centers
func rasterize(w, h int, heading float64) *track.Bitmap {
	bw, bh := rotatedExtent(w, h, heading)
	bm := track.NewBitmap(bw, bh)

	fwd := vmath.Forward(heading)
	right := vmath.V(-fwd.Y, fwd.X)
	halfW, halfH := float64(w)/2, float64(h)/2
	cx, cy := float64(bw)/2, float64(bh)/2

	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			d := vmath.V(float64(x)+0.5-cx, float64(y)+0.5-cy)
			lx := d.X*right.X + d.Y*right.Y
			ly := d.X*fwd.X + d.Y*fwd.Y
			if math.Abs(lx) <= halfW && math.Abs(ly) <= halfH {
				bm.Set(x, y, true)
			}
		}
	}
	return bm
}
