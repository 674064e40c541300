package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/lixenwraith/pixel-racer/parameter"
)

// Viper keys, identical to the command line flag names
const (
	KeyLaps       = "laps"
	KeyMode       = "mode"
	KeyRotation   = "rotation"
	KeyPowerUps   = "powerups"
	KeyDifficulty = "difficulty"
	KeyPlayers    = "players"
	KeyAI         = "ai"
	KeyCountdown  = "countdown"
	KeyTracks     = "tracks"
	KeyTrackDir   = "track-dir"
	KeyLogLevel   = "log-level"
	KeyLogFile    = "log-file"
	KeyBoardFile  = "leaderboard"
	KeyName       = "name"
)

// SetDefaults registers the default race settings on v
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyLaps, d.LapsToWin)
	v.SetDefault(KeyMode, d.Mode.String())
	v.SetDefault(KeyRotation, d.Rotation.String())
	v.SetDefault(KeyPowerUps, d.PowerUps)
	v.SetDefault(KeyDifficulty, d.Difficulty.String())
	v.SetDefault(KeyPlayers, d.Players)
	v.SetDefault(KeyAI, d.AIEnabled)
	v.SetDefault(KeyCountdown, parameter.CountdownDuration)
	v.SetDefault(KeyTracks, d.Tracks)
	v.SetDefault(KeyLogLevel, "info")
}

// Load decodes and validates a RaceConfig from v
func Load(v *viper.Viper) (RaceConfig, error) {
	mode, err := ParseRaceMode(v.GetString(KeyMode))
	if err != nil {
		return RaceConfig{}, err
	}
	rotation, err := ParseTrackRotation(v.GetString(KeyRotation))
	if err != nil {
		return RaceConfig{}, err
	}
	difficulty, err := ParseDifficulty(v.GetString(KeyDifficulty))
	if err != nil {
		return RaceConfig{}, err
	}

	cfg := RaceConfig{
		LapsToWin:  v.GetInt(KeyLaps),
		Mode:       mode,
		Rotation:   rotation,
		PowerUps:   v.GetBool(KeyPowerUps),
		Difficulty: difficulty,
		Players:    v.GetInt(KeyPlayers),
		AIEnabled:  v.GetBool(KeyAI),
		Countdown:  v.GetDuration(KeyCountdown),
		Tracks:     v.GetStringSlice(KeyTracks),
	}
	if err := cfg.Validate(); err != nil {
		return RaceConfig{}, fmt.Errorf("race config: %w", err)
	}
	return cfg, nil
}
