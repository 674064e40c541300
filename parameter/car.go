package parameter

// Kinematics
const (
	// CarAcceleration is the velocity change per tick while accelerating or braking
	CarAcceleration = 0.1

	// CarCoastFactor scales acceleration when no drive input is held
	CarCoastFactor = 2.0

	// CarReverseFactor caps reverse velocity as a fraction of max velocity
	CarReverseFactor = 0.5

	// PlayerMaxVelocity is the human car top speed in pixels per tick
	PlayerMaxVelocity = 4.0

	// PlayerRotationRate is the human car turn rate in degrees per tick
	PlayerRotationRate = 4.0
)

// Silhouette dimensions in pixels, the collision mask of every car
const (
	CarMaskWidth  = 14
	CarMaskHeight = 24
)

// AI difficulty tiers as (max velocity, rotation rate) pairs
const (
	AIEasyMaxVelocity    = 3.0
	AIEasyRotationRate   = 3.0
	AIMediumMaxVelocity  = 4.0
	AIMediumRotationRate = 4.0
	AIHardMaxVelocity    = 4.8
	AIHardRotationRate   = 5.0
)
