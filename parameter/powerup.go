package parameter

import "time"

// Effects
const (
	// PowerUpDuration is how long a power-up effect or indicator lasts
	PowerUpDuration = 5 * time.Second

	// BoostMultiplier scales max velocity while speed-boost is active
	BoostMultiplier = 1.8

	// WeaponAmmoPerPickup is the ammo granted per weapon-charge pickup
	WeaponAmmoPerPickup = 1
)

// Pickup & Spawn
const (
	// PickupRadius is the distance in pixels at which a car claims a power-up
	PickupRadius = 30.0

	// PowerUpSpawnCount is the target number of power-ups on track
	PowerUpSpawnCount = 4

	// PowerUpSpawnInterval is the delay between top-up spawns while under the target count
	PowerUpSpawnInterval = 12 * time.Second

	// PowerUpSpawnMargin keeps spawn samples this many pixels away from the image edges
	PowerUpSpawnMargin = 50

	// PowerUpSpawnAttempts bounds rejection sampling per requested instance
	PowerUpSpawnAttempts = 200

	// PowerUpSeparation is the minimum distance between two spawned instances
	PowerUpSeparation = PickupRadius

	// PowerUpPhaseStep advances the cosmetic bob animation per tick (radians)
	PowerUpPhaseStep = 0.1
)
