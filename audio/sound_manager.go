package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// masterVolume is a base-2 exponent applied to the mixed output, -1 halves amplitude
	masterVolume = -1.0
)

// Cue durations
const (
	tickSoundDuration  = 30 * time.Millisecond
	turnSoundDuration  = 60 * time.Millisecond
	crashSoundDuration = 400 * time.Millisecond
)

// SoundManager plays short gameplay cues through a single mixer
// All methods are no-ops until Initialize succeeds, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(&effects.Volume{
		Streamer: sm.mixer,
		Base:     2,
		Volume:   masterVolume,
	})
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences cues without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlayTick plays a faint click for every movement step
func (sm *SoundManager) PlayTick() {
	sm.play(beep.Take(sampleRate.N(tickSoundDuration), NewClickGenerator(sampleRate, 1200)))
}

// PlayTurn plays a short blip on direction change
func (sm *SoundManager) PlayTurn() {
	sm.play(beep.Take(sampleRate.N(turnSoundDuration), NewBuzzGenerator(sampleRate, 440)))
}

// PlayCrash plays the rumble when the snake leaves the grid
func (sm *SoundManager) PlayCrash() {
	sm.play(beep.Take(sampleRate.N(crashSoundDuration), NewDecayGenerator(sampleRate)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Active reports whether cues reach the speaker
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}
