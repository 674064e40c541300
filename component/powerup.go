package component

import (
	"github.com/lixenwraith/pixel-racer/vmath"
)

// PowerKind enumerates collectible effects
type PowerKind int

const (
	PowerNone PowerKind = iota
	PowerSpeedBoost
	PowerWallPermeability
	PowerWeaponCharge
)

// PowerKinds lists the spawnable kinds
var PowerKinds = []PowerKind{PowerSpeedBoost, PowerWallPermeability, PowerWeaponCharge}

func (k PowerKind) String() string {
	switch k {
	case PowerSpeedBoost:
		return "speed-boost"
	case PowerWallPermeability:
		return "wall-permeability"
	case PowerWeaponCharge:
		return "weapon-charge"
	default:
		return "none"
	}
}

// PowerUp is one collectible on the track
type PowerUp struct {
	Kind  PowerKind
	Pos   vmath.Vec2
	Phase float64 // animation only, never read by the simulation
}
