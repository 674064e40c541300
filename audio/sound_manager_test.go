package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	if sm.Play(event.EventLapCelebration) {
		t.Error("Expected no cue before initialization")
	}
	sm.Handle([]event.GameEvent{{Type: event.EventWallSpark}})
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never touches the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled initialization should be a no-op, got: %v", err)
	}
	if sm.Play(event.EventWallSpark) {
		t.Error("Expected no cue while disabled")
	}
}

// TestSoundManagerThrottle verifies repeated cues within the gap are dropped
func TestSoundManagerThrottle(t *testing.T) {
	sm := NewSoundManager(nil)
	if err := sm.Initialize(); err != nil {
		t.Skipf("Sound initialization failed (expected in test environment): %v", err)
	}
	defer sm.Cleanup()

	now := time.Unix(0, 0)
	sm.now = func() time.Time { return now }

	if !sm.Play(event.EventWallSpark) {
		t.Fatal("Expected first cue to play")
	}
	if sm.Play(event.EventWallSpark) {
		t.Error("Expected repeat within gap to be dropped")
	}
	if !sm.Play(event.EventPickupSparkle) {
		t.Error("Expected a different cue to play")
	}

	now = now.Add(parameter.MinSoundGap)
	if !sm.Play(event.EventWallSpark) {
		t.Error("Expected cue after the gap to play")
	}
}
