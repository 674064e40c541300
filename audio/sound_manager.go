package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
)

// SoundManager turns race events into short cues on the shared speaker
// Every method is safe to call when the speaker never initialized
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	lastPlayed  map[event.EventType]time.Time
	initialized bool
	now         func() time.Time
}

// NewSoundManager creates a new sound manager, nil cfg selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:        cfg,
		mixer:      &beep.Mixer{},
		lastPlayed: make(map[event.EventType]time.Time),
		now:        time.Now,
	}
}

// Initialize sets up the speaker, a disabled config is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
// beep has no speaker close, clearing the mixer leaves it silent
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues the cue for t unless the same cue played within MinSoundGap
// Reports whether a cue was queued
func (sm *SoundManager) Play(t event.EventType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	return sm.enqueue(t)
}

// Handle plays the cue of every event in a frame batch
func (sm *SoundManager) Handle(events []event.GameEvent) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	for _, ev := range events {
		sm.enqueue(ev.Type)
	}
}

func (sm *SoundManager) enqueue(t event.EventType) bool {
	now := sm.now()
	if last, ok := sm.lastPlayed[t]; ok && now.Sub(last) < parameter.MinSoundGap {
		return false
	}
	cue := CueFor(t, sm.cfg)
	if cue == nil {
		return false
	}
	sm.lastPlayed[t] = now

	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
	return true
}
