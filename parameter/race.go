package parameter

import "time"

// Lap rules
const (
	// LapCooldown is the minimum time between two lap increments of the same car
	LapCooldown = 2 * time.Second

	// CheckpointRadius is the distance from the checkpoint that marks it as passed
	CheckpointRadius = 40.0

	// DefaultLapsToWin is used when no lap target is configured
	DefaultLapsToWin = 3

	// MinLapsToWin and MaxLapsToWin bound the configurable lap target
	MinLapsToWin = 1
	MaxLapsToWin = 99
)
