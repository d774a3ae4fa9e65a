package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/apophis/game/internal/config"
	"github.com/apophis/game/internal/core/event"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// maxVoices bounds concurrent tones; extra requests are dropped.
const maxVoices = 32

// Sink plays the tones the simulation asks for.
type Sink interface {
	Play(e event.SoundTriggered)
}

// Discard drops every tone.
type Discard struct{}

func (Discard) Play(event.SoundTriggered) {}

// Synth renders tones through the system speaker.
type Synth struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	started bool
	log     *zap.Logger
}

func NewSynth(cfg config.AudioConfig, log *zap.Logger) *Synth {
	return &Synth{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		log:    log,
	}
}

// Start opens the audio device with a 100 ms buffer.
func (s *Synth) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", int(s.rate), err)
	}
	speaker.Play(s.mixer)
	s.started = true
	s.log.Info("audio started", zap.Int("sample_rate", int(s.rate)), zap.Float64("volume", s.volume))
	return nil
}

// Close silences the speaker. Tones requested afterwards are dropped.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	speaker.Clear()
	s.started = false
}

func (s *Synth) Play(e event.SoundTriggered) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || e.Duration <= 0 {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if s.mixer.Len() >= maxVoices {
		return
	}
	s.mixer.Add(s.Tone(e))
}

// Tone builds the streamer for one tone at the master volume.
func (s *Synth) Tone(e event.SoundTriggered) beep.Streamer {
	return withVolume(newOscillator(e, s.rate), s.volume)
}

// withVolume scales a streamer by a linear gain. effects.Volume works in
// log2 steps, so zero is mapped to Silent.
func withVolume(st beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(gain)}
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
