package parameter

// Particle counts carried as hints on cosmetic events
const (
	ParticleCountCollision = 5
	ParticleCountPickup    = 10
	ParticleCountExplosion = 15
	ParticleCountFinish    = 20
)

// Cosmetic particle field limits, in track pixels and frames
const (
	ParticleMax      = 512
	ParticleMinTTL   = 10
	ParticleMaxTTL   = 30
	ParticleMaxSpeed = 3.0
)
