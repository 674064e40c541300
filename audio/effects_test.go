package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/pixel-racer/event"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples, got n=%d ok=%v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDrains verifies the stream ends after its duration
func TestOscillatorDrains(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 80)
	n, ok := osc.Stream(samples)
	if n != 50 || !ok {
		t.Fatalf("Expected partial read of 50, got n=%d ok=%v", n, ok)
	}

	n, ok = osc.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Expected drained stream, got n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeShape verifies silence at the start of attack and at the end of release
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release to fade: %f >= %f", samples[99][0], samples[90][0])
	}
}

// TestCueForEveryEvent verifies each race event has a finite cue
func TestCueForEveryEvent(t *testing.T) {
	cfg := DefaultAudioConfig()
	types := []event.EventType{
		event.EventWallSpark,
		event.EventPickupSparkle,
		event.EventProjectileExplosion,
		event.EventLapCelebration,
		event.EventWrongWay,
	}

	buf := make([][2]float64, 512)
	for _, typ := range types {
		cue := CueFor(typ, cfg)
		if cue == nil {
			t.Fatalf("No cue for %s", typ)
		}

		total := 0
		for i := 0; i < 1000; i++ {
			n, ok := cue.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total == 0 || total >= 1000*len(buf) {
			t.Errorf("Cue for %s streamed %d samples", typ, total)
		}
	}

	if CueFor(event.EventType(99), cfg) != nil {
		t.Error("Expected nil cue for unknown event type")
	}
}
