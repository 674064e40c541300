package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/pixel-racer/parameter"
)

var (
	ErrInvalidLaps       = errors.New("laps to win out of range")
	ErrInvalidMode       = errors.New("unknown race mode")
	ErrInvalidRotation   = errors.New("unknown track rotation")
	ErrInvalidDifficulty = errors.New("unknown difficulty")
	ErrInvalidPlayers    = errors.New("players must be 1 or 2")
	ErrNoCars            = errors.New("race needs at least one car")
	ErrNoTracks          = errors.New("race needs at least one track")
	ErrRotationPool      = errors.New("per-lap rotation needs at least two tracks")
)

// RaceMode selects the lap outcome rules
type RaceMode int

const (
	// ModeContinuous laps accumulate until the lap target
	ModeContinuous RaceMode = iota
	// ModeSprint resets every car to its start after each lap
	ModeSprint
)

func (m RaceMode) String() string {
	if m == ModeSprint {
		return "sprint"
	}
	return "continuous"
}

func ParseRaceMode(s string) (RaceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "continuous":
		return ModeContinuous, nil
	case "sprint":
		return ModeSprint, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidMode)
}

// TrackRotation selects whether a lap switches to the next track
type TrackRotation int

const (
	RotationManual TrackRotation = iota
	RotationPerLap
)

func (r TrackRotation) String() string {
	if r == RotationPerLap {
		return "per-lap"
	}
	return "manual"
}

func ParseTrackRotation(s string) (TrackRotation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "manual":
		return RotationManual, nil
	case "per-lap", "perlap", "per_lap":
		return RotationPerLap, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidRotation)
}

// Difficulty is the AI tier
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "medium"
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "", "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidDifficulty)
}

// AIProfile maps the tier to (max velocity, rotation rate)
func (d Difficulty) AIProfile() (maxVelocity, rotationRate float64) {
	switch d {
	case DifficultyEasy:
		return parameter.AIEasyMaxVelocity, parameter.AIEasyRotationRate
	case DifficultyHard:
		return parameter.AIHardMaxVelocity, parameter.AIHardRotationRate
	default:
		return parameter.AIMediumMaxVelocity, parameter.AIMediumRotationRate
	}
}

// RaceConfig is the immutable rule set of a session
type RaceConfig struct {
	LapsToWin  int
	Mode       RaceMode
	Rotation   TrackRotation
	PowerUps   bool
	Difficulty Difficulty

	Players   int // human cars, 0 to 2
	AIEnabled bool

	Countdown time.Duration

	// Tracks is the rotation pool by name, the first is raced first
	Tracks []string
}

// Default returns a single player race against a medium AI on the speedway
func Default() RaceConfig {
	return RaceConfig{
		LapsToWin:  parameter.DefaultLapsToWin,
		Mode:       ModeContinuous,
		Rotation:   RotationManual,
		PowerUps:   true,
		Difficulty: DifficultyMedium,
		Players:    1,
		AIEnabled:  true,
		Countdown:  parameter.CountdownDuration,
		Tracks:     []string{"speedway"},
	}
}

// Validate checks ranges, errors wrap the package sentinels
func (c RaceConfig) Validate() error {
	if c.LapsToWin < parameter.MinLapsToWin || c.LapsToWin > parameter.MaxLapsToWin {
		return fmt.Errorf("laps %d not in [%d, %d]: %w",
			c.LapsToWin, parameter.MinLapsToWin, parameter.MaxLapsToWin, ErrInvalidLaps)
	}
	if c.Mode != ModeContinuous && c.Mode != ModeSprint {
		return fmt.Errorf("mode %d: %w", c.Mode, ErrInvalidMode)
	}
	if c.Rotation != RotationManual && c.Rotation != RotationPerLap {
		return fmt.Errorf("rotation %d: %w", c.Rotation, ErrInvalidRotation)
	}
	if c.Difficulty < DifficultyEasy || c.Difficulty > DifficultyHard {
		return fmt.Errorf("difficulty %d: %w", c.Difficulty, ErrInvalidDifficulty)
	}
	if c.Players < 0 || c.Players > 2 {
		return fmt.Errorf("players %d: %w", c.Players, ErrInvalidPlayers)
	}
	if c.Players == 0 && !c.AIEnabled {
		return ErrNoCars
	}
	if len(c.Tracks) == 0 {
		return ErrNoTracks
	}
	if c.Countdown < 0 {
		return fmt.Errorf("countdown %v is negative", c.Countdown)
	}
	return nil
}
