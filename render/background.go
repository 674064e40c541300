package render

import (
	"github.com/lixenwraith/pixel-racer/track"
)

// Terrain classifies one cell of the downsampled track
type Terrain uint8

const (
	TerrainGrass Terrain = iota
	TerrainRoad
	TerrainWall
	TerrainFinish
)

// Background is the static terrain of a track for one viewport
type Background struct {
	geometry *track.Geometry
	view     Viewport
	cells    []Terrain
}

// BuildBackground samples every pixel of each cell block
// Finish wins over wall, any wall pixel marks the cell, road needs a majority
func BuildBackground(g *track.Geometry, v Viewport) *Background {
	b := &Background{geometry: g, view: v, cells: make([]Terrain, v.Cols*v.Rows)}
	fp := g.FinishPos
	for cy := 0; cy < v.Rows; cy++ {
		for cx := 0; cx < v.Cols; cx++ {
			block := v.Block(cx, cy)
			var total, road, walls, finish int
			for y := block.Min.Y; y < block.Max.Y; y++ {
				for x := block.Min.X; x < block.Max.X; x++ {
					total++
					if g.Surface.Get(x, y) {
						road++
					}
					if g.Walls.Get(x, y) {
						walls++
					}
					if g.Finish.Get(x-fp.X, y-fp.Y) {
						finish++
					}
				}
			}

			t := TerrainGrass
			switch {
			case finish > 0:
				t = TerrainFinish
			case walls > 0:
				t = TerrainWall
			case total > 0 && road*2 >= total:
				t = TerrainRoad
			}
			b.cells[cy*v.Cols+cx] = t
		}
	}
	return b
}

// Matches reports whether the background was built for this track and viewport
func (b *Background) Matches(g *track.Geometry, v Viewport) bool {
	return b != nil && b.geometry == g && b.view == v
}

// At returns the terrain of a viewport cell, grass outside
func (b *Background) At(cx, cy int) Terrain {
	if cx < 0 || cy < 0 || cx >= b.view.Cols || cy >= b.view.Rows {
		return TerrainGrass
	}
	return b.cells[cy*b.view.Cols+cx]
}
