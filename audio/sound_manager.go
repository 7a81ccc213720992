// Package audio plays short synthesized cues for shot outcomes.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager owns the speaker and mixes outcome cues.
// Every Play method is a no-op until Initialize succeeds, so the game runs silently without a device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
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

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the speaker
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

// Miss plays a dull splash
func (sm *SoundManager) Miss() {
	sm.play(sampleRate.N(time.Millisecond*250), NewSplashGenerator(sampleRate))
}

// Hit plays a rising two-tone chime
func (sm *SoundManager) Hit() {
	sm.play(sampleRate.N(time.Millisecond*300), NewChimeGenerator(sampleRate, 660, 990))
}

// Armored plays a metallic clank for damage that did not destroy the target
func (sm *SoundManager) Armored() {
	sm.play(sampleRate.N(time.Millisecond*200), NewClankGenerator(sampleRate))
}

// Reject plays a short low buzz for a refused coordinate
func (sm *SoundManager) Reject() {
	sm.play(sampleRate.N(time.Millisecond*150), NewBuzzGenerator(sampleRate, 120))
}

func (sm *SoundManager) play(n int, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(beep.Take(n, s))
	speaker.Unlock()
}
