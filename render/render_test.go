package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/track"
	"github.com/lixenwraith/pixel-racer/vmath"
)

var speedway = track.GenerateOval(track.Speedway())

func TestFitKeepsAspect(t *testing.T) {
	vp := Fit(900, 900, 0, 1, 120, 38)
	assert.InDelta(t, 900.0/76, vp.Scale, 1e-9)
	assert.Equal(t, 76, vp.Cols)
	assert.Equal(t, 38, vp.Rows)
	assert.Equal(t, 22, vp.X, "centered horizontally")
	assert.Equal(t, 1, vp.Y)

	x, y, ok := vp.Cell(vmath.V(0, 0))
	require.True(t, ok)
	assert.Equal(t, [2]int{22, 1}, [2]int{x, y})

	_, _, ok = vp.Cell(vmath.V(899, 899))
	assert.True(t, ok)
	_, _, ok = vp.Cell(vmath.V(-1, 10))
	assert.False(t, ok)
}

func TestBackgroundTerrain(t *testing.T) {
	vp := Fit(speedway.Width(), speedway.Height(), 0, 0, 120, 40)
	bg := BuildBackground(speedway, vp)

	at := func(p vmath.Vec2) Terrain {
		x, y, ok := vp.Cell(p)
		require.True(t, ok)
		return bg.At(x-vp.X, y-vp.Y)
	}
	assert.Equal(t, TerrainGrass, at(vmath.V(450, 450)), "infield")
	assert.Equal(t, TerrainRoad, at(speedway.Checkpoint))
	assert.Equal(t, TerrainFinish, at(vmath.V(452, 200)))
	assert.Equal(t, TerrainWall, at(vmath.V(95, 450)))
	assert.True(t, bg.Matches(speedway, vp))
	assert.False(t, bg.Matches(speedway, Fit(900, 900, 0, 0, 80, 24)))
}

func TestParticlesExpire(t *testing.T) {
	f := NewParticleField(3)
	f.Emit(event.GameEvent{Type: event.EventWallSpark, Pos: vmath.V(10, 10), Particles: 5})
	assert.Equal(t, 5, f.Len())

	for i := 0; i < 40; i++ {
		f.Step()
	}
	assert.Zero(t, f.Len())
}

func TestHUDText(t *testing.T) {
	assert.Equal(t, "1:23.45", FormatDuration(83*time.Second+450*time.Millisecond))
	assert.Equal(t, "0:00.00", FormatDuration(-time.Second))

	snap := engine.Snapshot{Phase: engine.PhaseCountdown, Countdown: 2300 * time.Millisecond}
	assert.Equal(t, "3", Banner(snap))

	snap = engine.Snapshot{Phase: engine.PhaseFinished, Outcome: engine.OutcomeLose}
	assert.True(t, strings.HasPrefix(Banner(snap), "YOU LOSE"))

	snap.Paused = true
	assert.Equal(t, "PAUSED", Banner(snap))

	line := StatusLine(engine.Snapshot{
		Track:     speedway,
		LapsToWin: 3,
		Cars: []engine.CarView{{
			ID:             component.Player1,
			Laps:           1,
			Power:          component.PowerSpeedBoost,
			PowerRemaining: 2500 * time.Millisecond,
			Ammo:           2,
		}},
	})
	assert.Contains(t, line, "speedway")
	assert.Contains(t, line, "P1 1/3")
	assert.Contains(t, line, "[speed-boost 2.5s]")
	assert.Contains(t, line, "ammo 2")
}

func TestHeadingGlyph(t *testing.T) {
	assert.Equal(t, '↑', HeadingGlyph(0))
	assert.Equal(t, '→', HeadingGlyph(-90))
	assert.Equal(t, '←', HeadingGlyph(450))
	assert.Equal(t, '↓', HeadingGlyph(-180))
}

func TestRendererDrawsFrame(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(120, 40)

	r := NewRenderer(screen)
	car := engine.CarView{
		ID:      component.Player1,
		Pos:     speedway.P1Start.Pos,
		Heading: -90,
		Color:   component.RGB{R: 0, G: 120, B: 255},
	}
	snap := engine.Snapshot{
		Track:     speedway,
		Phase:     engine.PhaseRacing,
		Frame:     10,
		LapsToWin: 3,
		Cars:      []engine.CarView{car},
	}
	events := []event.GameEvent{{Type: event.EventWrongWay, Car: component.Player1, Frame: 10}}
	res := engine.TickResult{Outcome: engine.OutcomeP1LapWin, Phase: engine.PhaseRacing, Frame: 10}
	require.NoError(t, r.Frame(snap, events, res))

	vp := Fit(speedway.Width(), speedway.Height(), 0, 1, 120, 38)
	x, y, ok := vp.Cell(car.Pos)
	require.True(t, ok)
	ch, _, _, _ := screen.GetContent(x, y)
	assert.Equal(t, '→', ch)

	assert.Contains(t, rowText(screen, 0, 120), "speedway")
	assert.Contains(t, rowText(screen, 39, 120), "q quit")
	assert.Contains(t, rowText(screen, 1+38/2, 120), "PLAYER 1 TAKES THE LAP")
	assert.Contains(t, rowText(screen, 1+38/2+2, 120), "P1 WRONG WAY")
}

func rowText(s tcell.Screen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}
