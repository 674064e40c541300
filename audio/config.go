package audio

import (
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
)

// AudioConfig holds mixer settings and per-cue volumes in [0, 1]
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[event.EventType]float64
}

// DefaultAudioConfig returns the in-game mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: 0.5,
		EffectVolumes: map[event.EventType]float64{
			event.EventWallSpark:           0.4,
			event.EventPickupSparkle:       0.6,
			event.EventProjectileExplosion: 0.7,
			event.EventLapCelebration:      0.8,
			event.EventWrongWay:            0.5,
		},
	}
}
