package track

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pixel-racer/vmath"
)

func TestGeneratedOvalsAreValid(t *testing.T) {
	for _, spec := range []OvalSpec{Speedway(), Superoval()} {
		t.Run(spec.Name, func(t *testing.T) {
			g := GenerateOval(spec)
			require.NoError(t, g.Validate())
			assert.Equal(t, spec.Width, g.Width())
			assert.Equal(t, spec.Height, g.Height())
			assert.Len(t, g.Waypoints, spec.Waypoints)

			for _, wp := range g.Waypoints {
				x, y := wp.Pixel()
				assert.True(t, g.Drivable(x, y), "waypoint %v off road", wp)
			}
			for _, s := range []Start{g.P1Start, g.P2Start, g.AIStart} {
				x, y := s.Pos.Pixel()
				assert.True(t, g.Drivable(x, y), "start %v off road", s.Pos)
				assert.Equal(t, -90.0, s.Heading)
			}
			cx, cy := g.Checkpoint.Pixel()
			assert.True(t, g.Drivable(cx, cy))

			// Starts sit past the finish line in the travel direction
			assert.Greater(t, g.P1Start.Pos.X, float64(g.FinishPos.X+g.Finish.Width()))
		})
	}
}

func TestOvalWallsSeparateRoad(t *testing.T) {
	g := GenerateOval(Speedway())
	// Walking down from the top edge crosses outer wall, road, inner wall
	x := g.Width() / 2
	var seq []string
	last := ""
	for y := 0; y < g.Height()/2; y++ {
		kind := "none"
		switch {
		case g.Walls.Get(x, y):
			kind = "wall"
		case g.Surface.Get(x, y):
			kind = "road"
		}
		if kind != last {
			seq = append(seq, kind)
			last = kind
		}
	}
	assert.Equal(t, []string{"none", "wall", "road", "wall", "none"}, seq)
}

func TestWaypointsTravelClockwise(t *testing.T) {
	g := GenerateOval(Speedway())
	start := g.AIStart
	heading := vmath.Bearing(start.Pos, g.Waypoints[0])
	// First waypoint lies ahead of the start heading
	assert.InDelta(t, 0, vmath.SignedAngleDiff(heading, start.Heading), 45)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"speedway", "superoval"}, r.Names())

	g1, err := r.Get("speedway")
	require.NoError(t, err)
	g2, err := r.Get("speedway")
	require.NoError(t, err)
	assert.Same(t, g1, g2)

	_, err = r.Get("nowhere")
	assert.ErrorIs(t, err, ErrUnknownTrack)

	list, err := r.Resolve([]string{"superoval", "speedway", "superoval"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "superoval", list[0].Name)
}

func TestManifestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	g := GenerateOval(Speedway())

	path, err := Save(dir, g)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ManifestFile), path)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, g.Name, loaded.Name)
	assert.Equal(t, g.FinishPos, loaded.FinishPos)
	assert.Equal(t, g.Checkpoint, loaded.Checkpoint)
	assert.Equal(t, g.Waypoints, loaded.Waypoints)
	assert.Equal(t, g.P2Start, loaded.P2Start)
	assert.Equal(t, g.Surface.Count(), loaded.Surface.Count())
	assert.Equal(t, g.Walls.Count(), loaded.Walls.Count())
	assert.Equal(t, g.Finish.Count(), loaded.Finish.Count())
}

func TestLoadRejectsIncompleteManifest(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRegistryLoadDir(t *testing.T) {
	dir := t.TempDir()
	spec := Superoval()
	spec.Name = "loaded"
	_, err := Save(filepath.Join(dir, "loaded"), GenerateOval(spec))
	require.NoError(t, err)

	r := NewRegistry()
	names, err := r.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"loaded"}, names)
	assert.Equal(t, []string{"loaded", "speedway", "superoval"}, r.Names())

	// An empty directory is not an error
	names, err = NewRegistry().LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, names)
}
