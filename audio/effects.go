package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s in a linear attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func (cfg *AudioConfig) volume(t event.EventType) float64 {
	return cfg.EffectVolumes[t] * cfg.MasterVolume
}

// CreateSparkSound generates a short scrape for wall contact
func CreateSparkSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	scrape := NewOscillator(0, parameter.SparkSoundDuration, WaveNoise, rate)
	grind := NewOscillator(180.0, parameter.SparkSoundDuration, WaveSaw, rate)
	mixed := beep.Mix(newVolume(scrape, 0.6), newVolume(grind, 0.4))
	shaped := NewEnvelope(mixed, parameter.SparkSoundDuration, parameter.SparkSoundAttack, parameter.SparkSoundRelease, rate)

	return newVolume(shaped, cfg.volume(event.EventWallSpark))
}

// CreatePickupSound generates a rising two-note chime for collecting a power-up
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, parameter.PickupSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.PickupSoundNote1Duration, parameter.PickupSoundAttack, parameter.PickupSoundNote1Release, rate)
	n2 := NewOscillator(1318.51, parameter.PickupSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.PickupSoundNote2Duration, parameter.PickupSoundAttack, parameter.PickupSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(event.EventPickupSparkle))
}

// CreateExplosionSound generates a noise burst over a low thump for projectile hits
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.ExplosionSoundDuration, WaveNoise, rate)
	thump := NewOscillator(60.0, parameter.ExplosionSoundDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.5), newVolume(thump, 0.5))
	shaped := NewEnvelope(mixed, parameter.ExplosionSoundDuration, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)

	return newVolume(shaped, cfg.volume(event.EventProjectileExplosion))
}

// CreateLapSound generates a bell for a completed lap
func CreateLapSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A5 with an octave overtone
	fund := NewOscillator(880.0, parameter.LapSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.LapSoundDuration, parameter.LapSoundAttack, parameter.LapSoundFundamentalRelease, rate)
	over := NewOscillator(1760.0, parameter.LapSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.LapSoundDuration, parameter.LapSoundAttack, parameter.LapSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
	return newVolume(beep.Take(rate.N(parameter.LapSoundDuration), mixed), cfg.volume(event.EventLapCelebration))
}

// CreateWrongWaySound generates a low square buzz
func CreateWrongWaySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(110.0, parameter.WrongWaySoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.WrongWaySoundDuration, parameter.WrongWaySoundAttack, parameter.WrongWaySoundRelease, rate)

	return newVolume(shaped, cfg.volume(event.EventWrongWay))
}

// CueFor returns the sound for an event type, nil for unknown types
func CueFor(t event.EventType, cfg *AudioConfig) beep.Streamer {
	switch t {
	case event.EventWallSpark:
		return CreateSparkSound(cfg)
	case event.EventPickupSparkle:
		return CreatePickupSound(cfg)
	case event.EventProjectileExplosion:
		return CreateExplosionSound(cfg)
	case event.EventLapCelebration:
		return CreateLapSound(cfg)
	case event.EventWrongWay:
		return CreateWrongWaySound(cfg)
	default:
		return nil
	}
}
