package parameter

import "time"

// Projectile
const (
	// ProjectileSpeed is the projectile travel distance per tick in pixels
	ProjectileSpeed = 8.0

	// ProjectileSize is the side of the projectile hit box in pixels
	ProjectileSize = 6.0
)

// Stun
const (
	// AIStunDuration is how long an AI car stalls after a projectile hit
	AIStunDuration = 3 * time.Second

	// HumanStunDuration is how long a human car ignores drive input after a hit
	HumanStunDuration = 2 * time.Second
)
