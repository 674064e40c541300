package physics

import (
	"image"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/track"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// Probe returns the overlapping pixels between the car silhouette and a bitmap
// placed at offset, in bitmap coordinates; nil when there is no contact
func Probe(b *component.Body, bm *track.Bitmap, offset image.Point) []image.Point {
	mask, origin := b.Silhouette()
	return bm.OverlapPoints(mask, origin.X-offset.X, origin.Y-offset.Y)
}

// Touches reports any overlap between the silhouette and a bitmap at offset
func Touches(b *component.Body, bm *track.Bitmap, offset image.Point) bool {
	mask, origin := b.Silhouette()
	_, hit := bm.Overlap(mask, origin.X-offset.X, origin.Y-offset.Y)
	return hit
}

// Bounce inverts velocity, clamped to the reverse cap, and re-integrates one step
func Bounce(b *component.Body) {
	b.Velocity = -b.Velocity
	ClampVelocity(b)
	Move(b)
}

// PushOut slides the car out of the walls along the vector from the contact
// centroid to the silhouette center, reverting to the pre-move position when
// no displacement up to PushOutMaxSteps clears the contact
// Velocity is halved in every case; reports whether a displacement succeeded
func PushOut(b *component.Body, walls *track.Bitmap, contact []image.Point) bool {
	dir := pushDirection(b, contact)
	base := b.Pos

	resolved := false
	for step := 1; step <= parameter.PushOutMaxSteps; step++ {
		b.Pos = base.Add(dir.Scale(float64(step)))
		if !Touches(b, walls, image.Point{}) {
			resolved = true
			break
		}
	}
	if !resolved {
		b.Pos = b.PrevPos
	}
	b.Velocity *= parameter.PushOutVelocityFactor
	return resolved
}

// pushDirection averages the contact pixels and points from them to the
// silhouette center, falling back to the reverse heading
func pushDirection(b *component.Body, contact []image.Point) vmath.Vec2 {
	if len(contact) > 0 {
		var sum vmath.Vec2
		for _, p := range contact {
			sum = sum.Add(vmath.V(float64(p.X)+0.5, float64(p.Y)+0.5))
		}
		centroid := sum.Scale(1 / float64(len(contact)))
		d := b.Pos.Sub(centroid)
		if d.Len() > parameter.PushOutCenterEpsilon {
			return d.Normalize()
		}
	}
	return vmath.Forward(b.Heading).Scale(-1)
}
