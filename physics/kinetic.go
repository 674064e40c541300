package physics

import (
	"math"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/vmath"
)

// Accelerate raises velocity toward max velocity then integrates
func Accelerate(b *component.Body) {
	b.Velocity = math.Min(b.Velocity+b.Acceleration, b.MaxVelocity)
	Move(b)
}

// Brake lowers velocity toward the reverse cap then integrates
func Brake(b *component.Body) {
	b.Velocity = math.Max(b.Velocity-b.Acceleration, -b.MaxVelocity*parameter.CarReverseFactor)
	Move(b)
}

// Coast decays velocity toward zero from either direction then integrates
func Coast(b *component.Body) {
	step := b.Acceleration * parameter.CarCoastFactor
	switch {
	case b.Velocity > 0:
		b.Velocity = math.Max(b.Velocity-step, 0)
	case b.Velocity < 0:
		b.Velocity = math.Min(b.Velocity+step, 0)
	}
	Move(b)
}

// Rotate turns by the rotation rate, dir > 0 is left, dir < 0 is right
// Heading is never wrapped
func Rotate(b *component.Body, dir int) {
	switch {
	case dir > 0:
		b.Heading += b.RotationRate
	case dir < 0:
		b.Heading -= b.RotationRate
	}
}

// Move snapshots the previous position and integrates one tick along the heading
func Move(b *component.Body) {
	b.PrevPos = b.Pos
	b.Pos = b.Pos.Add(vmath.Forward(b.Heading).Scale(b.Velocity))
}

// ClampVelocity enforces the velocity invariant after max velocity changes
func ClampVelocity(b *component.Body) {
	reverse := -b.MaxVelocity * parameter.CarReverseFactor
	b.Velocity = math.Max(math.Min(b.Velocity, b.MaxVelocity), reverse)
}
