package track

import (
	"image"
	"image/color"
	"math/bits"
)

// AlphaThreshold is the alpha value above which an image pixel is occupied
const AlphaThreshold = 127

// Bitmap is a per-pixel occupancy surface packed into 64-bit words
// Coordinates outside the bitmap are never occupied
type Bitmap struct {
	width, height int
	stride        int // words per row
	words         []uint64
}

// NewBitmap creates an empty bitmap, negative sizes are treated as zero
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + 63) / 64
	return &Bitmap{
		width:  width,
		height: height,
		stride: stride,
		words:  make([]uint64, stride*height),
	}
}

// NewFilledBitmap creates a bitmap with every pixel occupied
func NewFilledBitmap(width, height int) *Bitmap {
	b := NewBitmap(width, height)
	b.FillRect(0, 0, width, height)
	return b
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

func (b *Bitmap) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Get reports occupancy, out-of-range coordinates are free
func (b *Bitmap) Get(x, y int) bool {
	if b == nil || !b.inBounds(x, y) {
		return false
	}
	return b.words[y*b.stride+x>>6]&(1<<(uint(x)&63)) != 0
}

// Set marks or clears one pixel, out-of-range writes are ignored
func (b *Bitmap) Set(x, y int, on bool) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.stride + x>>6
	mask := uint64(1) << (uint(x) & 63)
	if on {
		b.words[idx] |= mask
	} else {
		b.words[idx] &^= mask
	}
}

// FillRect occupies the clipped rectangle [x, x+w) x [y, y+h)
func (b *Bitmap) FillRect(x, y, w, h int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.width), min(y+h, b.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b.Set(px, py, true)
		}
	}
}

// Count returns the number of occupied pixels
func (b *Bitmap) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap returns the first pixel, in this bitmap's coordinates, occupied in
// both this bitmap and other placed at (offX, offY)
func (b *Bitmap) Overlap(other *Bitmap, offX, offY int) (image.Point, bool) {
	var hit image.Point
	found := false
	b.eachOverlap(other, offX, offY, func(x, y int) bool {
		hit = image.Point{X: x, Y: y}
		found = true
		return false
	})
	return hit, found
}

// OverlapPoints returns every shared occupied pixel in this bitmap's coordinates
func (b *Bitmap) OverlapPoints(other *Bitmap, offX, offY int) []image.Point {
	var pts []image.Point
	b.eachOverlap(other, offX, offY, func(x, y int) bool {
		pts = append(pts, image.Point{X: x, Y: y})
		return true
	})
	return pts
}

// eachOverlap walks the clipped intersection row-major, fn returns false to stop
func (b *Bitmap) eachOverlap(other *Bitmap, offX, offY int, fn func(x, y int) bool) {
	if b == nil || other == nil {
		return
	}
	x0, y0 := max(offX, 0), max(offY, 0)
	x1, y1 := min(offX+other.width, b.width), min(offY+other.height, b.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if b.Get(x, y) && other.Get(x-offX, y-offY) {
				if !fn(x, y) {
					return
				}
			}
		}
	}
}

// FromImage builds a bitmap from image alpha, pixels above AlphaThreshold are occupied
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
			if a > AlphaThreshold {
				b.Set(x-bounds.Min.X, y-bounds.Min.Y, true)
			}
		}
	}
	return b
}

// ToImage renders occupied pixels in c over a transparent background
func (b *Bitmap) ToImage(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Get(x, y) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}
