package parameter

import "time"

// Simulation Loop Timing
const (
	// TickRate is the fixed simulation rate in ticks per second
	TickRate = 60

	// TickInterval is the wall duration of one simulation tick
	TickInterval = time.Second / TickRate

	// CountdownDuration is the default pre-race countdown before cars may move
	CountdownDuration = 3 * time.Second
)

// EventQueueSize is the capacity of the per-frame cosmetic event ring
const EventQueueSize = 256

// System priorities, lower runs first within a tick
const (
	PriorityDrive      = 10
	PrioritySteering   = 20
	PriorityCollision  = 30
	PriorityLap        = 40
	PriorityPowerUp    = 50
	PriorityProjectile = 60
)
