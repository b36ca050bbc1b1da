// Package audio plays the game's sound cues. Cues are synthesized on the fly,
// so no sound assets ship with the binary.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/firewall/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues onto the system speaker.
// Play is safe to call before Init or after Close; it does nothing then.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before expecting sound.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue and returns immediately.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	cue := Cue(s)
	if cue == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// Silent discards every cue. Used when no audio device is available or sound
// is turned off.
type Silent struct{}

// Play does nothing.
func (Silent) Play(core.Sound) {}
