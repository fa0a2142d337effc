// Package audio plays short tones through the system speaker
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)

	reseedFreq     = 660.0
	reseedDuration = 60 * time.Millisecond
	reseedVolume   = -1.5 // base-2 attenuation
)

// Player emits a tone each time the board is reseeded
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer creates a player; nothing is audible until Initialize succeeds
func NewPlayer() *Player {
	return &Player{}
}

// Initialize opens the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	p.initialized = true
	return nil
}

// Reseed plays the reseed tone; no-op when audio is unavailable
func (p *Player) Reseed() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, err := newTone(reseedFreq, reseedDuration)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// newTone builds an attenuated sine of fixed length
func newTone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "sine %.0fHz", freq)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   reseedVolume,
	}, nil
}
