package component

import (
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// Projectile is a fired shot travelling at fixed speed
type Projectile struct {
	Pos     vmath.Vec2 // center
	Heading float64
	Speed   float64
	Owner   CarID
}

// Advance moves the projectile one tick along its heading
func (p *Projectile) Advance() {
	p.Pos = p.Pos.Add(vmath.Forward(p.Heading).Scale(p.Speed))
}

// Bounds returns the hit box
func (p *Projectile) Bounds() vmath.Rect {
	half := parameter.ProjectileSize / 2
	return vmath.Rect{X: p.Pos.X - half, Y: p.Pos.Y - half, W: parameter.ProjectileSize, H: parameter.ProjectileSize}
}
