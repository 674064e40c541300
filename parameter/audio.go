package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between two cues of the same kind
	MinSoundGap = 50 * time.Millisecond
)

// Spark Sound
const (
	SparkSoundDuration = 60 * time.Millisecond
	SparkSoundAttack   = 2 * time.Millisecond
	SparkSoundRelease  = 40 * time.Millisecond
)

// Pickup Sound
const (
	PickupSoundNote1Duration = 70 * time.Millisecond
	PickupSoundNote2Duration = 220 * time.Millisecond
	PickupSoundAttack        = 5 * time.Millisecond
	PickupSoundNote1Release  = 30 * time.Millisecond
	PickupSoundNote2Release  = 160 * time.Millisecond
)

// Explosion Sound
const (
	ExplosionSoundDuration = 350 * time.Millisecond
	ExplosionSoundAttack   = 3 * time.Millisecond
	ExplosionSoundRelease  = 300 * time.Millisecond
)

// Lap Sound
const (
	LapSoundDuration           = 600 * time.Millisecond
	LapSoundAttack             = 5 * time.Millisecond
	LapSoundFundamentalRelease = 550 * time.Millisecond
	LapSoundOvertoneRelease    = 200 * time.Millisecond
)

// Wrong Way Sound
const (
	WrongWaySoundDuration = 180 * time.Millisecond
	WrongWaySoundAttack   = 5 * time.Millisecond
	WrongWaySoundRelease  = 60 * time.Millisecond
)
