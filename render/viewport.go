package render

import (
	"image"
	"math"

	"github.com/lixenwraith/pixel-racer/vmath"
)

// Viewport maps track pixels onto terminal cells
// One cell covers Scale pixels across and 2*Scale pixels down, matching the
// usual 1:2 cell aspect
type Viewport struct {
	X, Y       int // top-left screen cell
	Cols, Rows int
	Scale      float64
}

// Fit returns the largest viewport showing the whole track inside the screen
// area, centered
func Fit(trackW, trackH, x, y, cols, rows int) Viewport {
	if cols <= 0 || rows <= 0 || trackW <= 0 || trackH <= 0 {
		return Viewport{X: x, Y: y}
	}
	scale := math.Max(float64(trackW)/float64(cols), float64(trackH)/float64(2*rows))
	used := func(n float64, limit int) int {
		return min(int(math.Ceil(n-1e-9)), limit)
	}
	uc := used(float64(trackW)/scale, cols)
	ur := used(float64(trackH)/(2*scale), rows)
	return Viewport{
		X:     x + (cols-uc)/2,
		Y:     y + (rows-ur)/2,
		Cols:  uc,
		Rows:  ur,
		Scale: scale,
	}
}

// Cell returns the screen cell of a track position
func (v Viewport) Cell(p vmath.Vec2) (int, int, bool) {
	if v.Scale <= 0 {
		return 0, 0, false
	}
	cx := int(math.Floor(p.X / v.Scale))
	cy := int(math.Floor(p.Y / (2 * v.Scale)))
	if cx < 0 || cy < 0 || cx >= v.Cols || cy >= v.Rows {
		return 0, 0, false
	}
	return v.X + cx, v.Y + cy, true
}

// Block returns the track pixels covered by a viewport cell
func (v Viewport) Block(cx, cy int) image.Rectangle {
	return image.Rect(
		int(float64(cx)*v.Scale),
		int(float64(cy)*2*v.Scale),
		int(float64(cx+1)*v.Scale),
		int(float64(cy+1)*2*v.Scale),
	)
}
