package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/system"
	"github.com/lixenwraith/pixel-racer/vmath"
)

var (
	styleGrass  = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 64, 24))
	styleRoad   = tcell.StyleDefault.Background(tcell.NewRGBColor(58, 58, 62))
	styleWall   = tcell.StyleDefault.Background(tcell.NewRGBColor(150, 150, 150))
	styleFinish = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleHUD    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleHelp   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	styleBanner = tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite).Bold(true)
	styleWarn   = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true)
)

// Heading buckets of 45 degrees starting at up, turning left
var arrows = []rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

func rgb(c component.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// HeadingGlyph returns the arrow closest to a heading
func HeadingGlyph(heading float64) rune {
	n := math.Mod(heading, 360)
	if n < 0 {
		n += 360
	}
	return arrows[int(math.Round(n/45))%len(arrows)]
}

// Renderer draws snapshots onto a tcell screen
// It owns only presentation state: the terrain cache, particles and notices
type Renderer struct {
	screen    tcell.Screen
	bg        *Background
	particles *ParticleField

	notice      string
	noticeUntil uint64
	wrongWay    map[component.CarID]uint64
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:    screen,
		particles: NewParticleField(1),
		wrongWay:  make(map[component.CarID]uint64),
	}
}

// Frame draws and flushes one frame, implementing engine.FrameSink
func (r *Renderer) Frame(snap engine.Snapshot, events []event.GameEvent, res engine.TickResult) error {
	r.Draw(snap, events, res)
	r.screen.Show()
	return nil
}

// Draw composes the frame without flushing
func (r *Renderer) Draw(snap engine.Snapshot, events []event.GameEvent, res engine.TickResult) {
	r.absorb(snap, events, res)

	w, h := r.screen.Size()
	r.screen.Clear()
	if snap.Track == nil || w <= 0 || h <= parameter.TopMargin+parameter.BottomMargin {
		return
	}

	vp := Fit(snap.Track.Width(), snap.Track.Height(), 0, parameter.TopMargin, w, h-parameter.TopMargin-parameter.BottomMargin)
	if !r.bg.Matches(snap.Track, vp) {
		r.bg = BuildBackground(snap.Track, vp)
	}

	r.drawTerrain(vp)
	r.drawPowerUps(vp, snap)
	r.drawProjectiles(vp, snap)
	r.drawCars(vp, snap)
	r.drawParticles(vp)

	drawText(r.screen, 0, 0, w, StatusLine(snap), styleHUD)
	drawText(r.screen, 0, h-1, w, parameter.HelpText, styleHelp)

	mid := parameter.TopMargin + (h-parameter.TopMargin-parameter.BottomMargin)/2
	if text := Banner(snap); text != "" {
		drawCentered(r.screen, mid, w, " "+text+" ", styleBanner)
	} else if r.notice != "" && snap.Frame < r.noticeUntil {
		drawCentered(r.screen, mid, w, " "+r.notice+" ", styleBanner)
	}
	row := mid + 2
	for _, c := range snap.Cars {
		if until, ok := r.wrongWay[c.ID]; ok && snap.Frame < until {
			drawCentered(r.screen, row, w, " "+carLabel(c.ID)+" WRONG WAY ", styleWarn)
			row++
		}
	}
}

// absorb folds the tick's events and outcome into presentation state
func (r *Renderer) absorb(snap engine.Snapshot, events []event.GameEvent, res engine.TickResult) {
	if snap.Frame <= 1 {
		r.particles.Clear()
		clear(r.wrongWay)
		r.notice = ""
	}
	if !snap.Paused {
		r.particles.Step()
	}
	for _, ev := range events {
		if ev.Type == event.EventWrongWay {
			r.wrongWay[ev.Car] = ev.Frame + parameter.WrongWayFrames
			continue
		}
		r.particles.Emit(ev)
	}
	if res.Outcome != engine.OutcomeNone && !res.Outcome.Final() {
		r.notice = OutcomeText(res.Outcome)
		r.noticeUntil = res.Frame + parameter.NoticeFrames
	}
}

func (r *Renderer) drawTerrain(vp Viewport) {
	for cy := 0; cy < vp.Rows; cy++ {
		for cx := 0; cx < vp.Cols; cx++ {
			ch, style := ' ', styleGrass
			switch r.bg.At(cx, cy) {
			case TerrainRoad:
				style = styleRoad
			case TerrainWall:
				style = styleWall
			case TerrainFinish:
				ch, style = '▚', styleFinish
			}
			r.screen.SetContent(vp.X+cx, vp.Y+cy, ch, nil, style)
		}
	}
}

func (r *Renderer) drawPowerUps(vp Viewport, snap engine.Snapshot) {
	for _, p := range snap.PowerUps {
		x, y, ok := vp.Cell(p.Pos)
		if !ok {
			continue
		}
		style := styleRoad.Foreground(rgb(system.PowerColor(p.Kind)))
		if math.Sin(p.Phase) > 0 {
			style = style.Bold(true)
		}
		r.screen.SetContent(x, y, '◆', nil, style)
	}
}

func (r *Renderer) drawProjectiles(vp Viewport, snap engine.Snapshot) {
	for _, p := range snap.Projectiles {
		if x, y, ok := vp.Cell(p.Pos); ok {
			r.screen.SetContent(x, y, '•', nil, styleRoad.Foreground(rgb(system.ExplosionColor)))
		}
	}
}

func (r *Renderer) drawCars(vp Viewport, snap engine.Snapshot) {
	for _, c := range snap.Cars {
		body := tcell.StyleDefault.Background(rgb(c.Color)).Foreground(tcell.ColorBlack)
		if c.Stunned {
			body = body.Blink(true)
		}
		if c.Power != component.PowerNone {
			body = body.Foreground(rgb(system.PowerColor(c.Power))).Bold(true)
		}

		// Body fills the cells of its bounding box, the nose glyph sits at the center
		minX, minY, okMin := vp.Cell(vmath.V(c.Bounds.X, c.Bounds.Y))
		maxX, maxY, okMax := vp.Cell(vmath.V(c.Bounds.X+c.Bounds.W-1, c.Bounds.Y+c.Bounds.H-1))
		if okMin && okMax {
			for y := minY; y <= maxY; y++ {
				for x := minX; x <= maxX; x++ {
					r.screen.SetContent(x, y, ' ', nil, body)
				}
			}
		}
		if x, y, ok := vp.Cell(c.Pos); ok {
			r.screen.SetContent(x, y, HeadingGlyph(c.Heading), nil, body)
		}
	}
}

func (r *Renderer) drawParticles(vp Viewport) {
	r.particles.Each(func(p Particle) {
		x, y, ok := vp.Cell(p.Pos)
		if !ok {
			return
		}
		ch := '·'
		if p.TTL > parameter.ParticleMinTTL {
			ch = '*'
		}
		r.screen.SetContent(x, y, ch, nil, styleRoad.Foreground(rgb(p.Color)))
	})
}

func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		if col >= x+width {
			break
		}
		s.SetContent(col, y, ch, nil, style)
		col++
	}
	for ; col < x+width; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}

func drawCentered(s tcell.Screen, y, width int, text string, style tcell.Style) {
	n := len([]rune(text))
	x := max((width-n)/2, 0)
	for i, ch := range []rune(text) {
		if x+i >= width {
			break
		}
		s.SetContent(x+i, y, ch, nil, style)
	}
}
