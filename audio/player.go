package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	toneRate      = beep.SampleRate(44100)
	toneFrequency = 880
	toneDuration  = 50 * time.Millisecond
)

// Clip is a sound decoded into memory so it can be replayed without I/O
type Clip struct {
	buffer *beep.Buffer
}

// LoadClip decodes a WAV file
func LoadClip(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound: %w", err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	// Closes f as well
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sound %s: %w", path, err)
	}
	return &Clip{buffer: buffer}, nil
}

// ToneClip synthesizes a short hit tone
func ToneClip() (*Clip, error) {
	sine, err := generators.SineTone(toneRate, toneFrequency)
	if err != nil {
		return nil, fmt.Errorf("failed to create tone: %w", err)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: toneRate, NumChannels: 2, Precision: 2})
	buffer.Append(beep.Take(toneRate.N(toneDuration), sine))
	return &Clip{buffer: buffer}, nil
}

func (c *Clip) Len() int {
	return c.buffer.Len()
}

func (c *Clip) Format() beep.Format {
	return c.buffer.Format()
}

// Streamer returns a fresh streamer over the whole clip
func (c *Clip) Streamer() beep.StreamSeeker {
	return c.buffer.Streamer(0, c.buffer.Len())
}

// Player plays the eat sound. PlayEat never blocks.
type Player struct {
	mu          sync.Mutex
	clip        *Clip
	initialized bool
}

func NewPlayer(clip *Clip) *Player {
	return &Player{clip: clip}
}

// Initialize opens the speaker at the clip's sample rate
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := p.clip.Format().SampleRate
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	p.initialized = true
	return nil
}

func (p *Player) PlayEat() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Play(p.clip.Streamer())
}

// Close stops playback and releases the audio device
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

// Mute is used when sound is disabled
type Mute struct{}

func (Mute) PlayEat() {}
