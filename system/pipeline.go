package system

import (
	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/engine"
)

// Event color hints
var (
	SparkColor     = component.RGB{R: 255, G: 170, B: 40}
	ExplosionColor = component.RGB{R: 255, G: 90, B: 20}
)

// PowerColor returns the display color of a collectible kind
func PowerColor(k component.PowerKind) component.RGB {
	switch k {
	case component.PowerSpeedBoost:
		return component.RGB{R: 255, G: 230, B: 0}
	case component.PowerWallPermeability:
		return component.RGB{R: 170, G: 80, B: 255}
	case component.PowerWeaponCharge:
		return component.RGB{R: 255, G: 60, B: 60}
	default:
		return component.RGB{R: 200, G: 200, B: 200}
	}
}

func carColor(c component.Car) component.RGB {
	switch car := c.(type) {
	case *component.HumanCar:
		return car.Color
	case *component.AICar:
		return car.Color
	}
	return component.RGB{}
}

// Default returns the race pipeline: intents and AI steering, collision,
// laps, collectibles, projectiles
func Default() []engine.System {
	return []engine.System{
		NewDriveSystem(),
		NewSteeringSystem(),
		NewCollisionSystem(),
		NewLapSystem(),
		NewPowerUpSystem(DefaultSpawnRules()),
		NewProjectileSystem(),
	}
}
