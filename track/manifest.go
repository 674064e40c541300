package track

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/pixel-racer/vmath"
)

// ManifestFile is the manifest file name inside an exported track directory
const ManifestFile = "track.yaml"

// Manifest is the on-disk track description, masks are PNG files relative to
// the manifest directory
type Manifest struct {
	Name       string       `yaml:"name"`
	Surface    string       `yaml:"surface"`
	Walls      string       `yaml:"walls"`
	Finish     string       `yaml:"finish"`
	FinishPos  Point        `yaml:"finish_pos"`
	Checkpoint Point        `yaml:"checkpoint"`
	Waypoints  []Point      `yaml:"waypoints"`
	Starts     ManifestPose `yaml:"starts"`
}

// ManifestPose groups the three spawn poses
type ManifestPose struct {
	P1 Pose `yaml:"p1"`
	P2 Pose `yaml:"p2"`
	AI Pose `yaml:"ai"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Pose struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"`
}

var maskColors = map[string]color.NRGBA{
	"surface": {R: 90, G: 90, B: 90, A: 255},
	"walls":   {R: 220, G: 40, B: 40, A: 255},
	"finish":  {R: 255, G: 255, B: 255, A: 255},
}

func toPoint(v vmath.Vec2) Point { return Point{X: v.X, Y: v.Y} }
func (p Point) vec() vmath.Vec2  { return vmath.V(p.X, p.Y) }

func toPose(s Start) Pose   { return Pose{X: s.Pos.X, Y: s.Pos.Y, Heading: s.Heading} }
func (p Pose) start() Start { return Start{Pos: vmath.V(p.X, p.Y), Heading: p.Heading} }

// Save writes the geometry as PNG masks plus a YAML manifest into dir
func Save(dir string, g *Geometry) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create track dir: %w", err)
	}

	m := Manifest{
		Name:       g.Name,
		Surface:    g.Name + "_surface.png",
		Walls:      g.Name + "_walls.png",
		Finish:     g.Name + "_finish.png",
		FinishPos:  Point{X: float64(g.FinishPos.X), Y: float64(g.FinishPos.Y)},
		Checkpoint: toPoint(g.Checkpoint),
		Starts: ManifestPose{
			P1: toPose(g.P1Start),
			P2: toPose(g.P2Start),
			AI: toPose(g.AIStart),
		},
	}
	for _, wp := range g.Waypoints {
		m.Waypoints = append(m.Waypoints, toPoint(wp))
	}

	masks := []struct {
		file string
		kind string
		bm   *Bitmap
	}{
		{m.Surface, "surface", g.Surface},
		{m.Walls, "walls", g.Walls},
		{m.Finish, "finish", g.Finish},
	}
	for _, mk := range masks {
		if err := writePNG(filepath.Join(dir, mk.file), mk.bm.ToImage(maskColors[mk.kind])); err != nil {
			return "", err
		}
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// Load reads a manifest and its masks, the result is validated
func Load(path string) (*Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.Name == "" || m.Surface == "" || m.Walls == "" || m.Finish == "" {
		return nil, fmt.Errorf("%s: name and mask files are required: %w", path, ErrInvalidManifest)
	}

	dir := filepath.Dir(path)
	g := &Geometry{
		Name:       m.Name,
		FinishPos:  image.Point{X: int(m.FinishPos.X), Y: int(m.FinishPos.Y)},
		Checkpoint: m.Checkpoint.vec(),
		P1Start:    m.Starts.P1.start(),
		P2Start:    m.Starts.P2.start(),
		AIStart:    m.Starts.AI.start(),
	}
	for _, wp := range m.Waypoints {
		g.Waypoints = append(g.Waypoints, wp.vec())
	}
	if g.Surface, err = readMask(filepath.Join(dir, m.Surface)); err != nil {
		return nil, err
	}
	if g.Walls, err = readMask(filepath.Join(dir, m.Walls)); err != nil {
		return nil, err
	}
	if g.Finish, err = readMask(filepath.Join(dir, m.Finish)); err != nil {
		return nil, err
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mask: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode mask %s: %w", path, err)
	}
	return f.Close()
}

func readMask(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mask: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode mask %s: %w", path, err)
	}
	return FromImage(img), nil
}
