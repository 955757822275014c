package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate   = beep.SampleRate(44100)
	BeepFreq     = 880
	BeepDuration = 120 * time.Millisecond
)

// Cue is a fire-and-forget sound effect.
type Cue interface {
	Play()
}

// Silent is the cue used when sound is disabled.
type Silent struct{}

func (Silent) Play() {}

// Beeper plays a short sine tone through the system speaker. The speaker is
// opened by Open, or on first Play if Open was never called; if that fails
// the beeper stays silent.
type Beeper struct {
	mu       sync.Mutex
	freq     float64
	duration time.Duration
	logger   *slog.Logger

	initOnce sync.Once
	initErr  error
	ready    bool
}

func NewBeeper(logger *slog.Logger) *Beeper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Beeper{freq: BeepFreq, duration: BeepDuration, logger: logger}
}

func (b *Beeper) init() {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		b.logger.Warn("audio unavailable", "error", err)
		b.initErr = err
		return
	}
	b.ready = true
}

// Open initializes the speaker ahead of the first Play.
func (b *Beeper) Open() error {
	b.initOnce.Do(b.init)
	return b.initErr
}

func (b *Beeper) Play() {
	b.initOnce.Do(b.init)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ready {
		return
	}

	tone, err := generators.SineTone(SampleRate, b.freq)
	if err != nil {
		b.logger.Warn("tone generation failed", "error", err)
		return
	}
	speaker.Play(beep.Take(SampleRate.N(b.duration), tone))
}

// Close releases the speaker if it was opened.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ready {
		speaker.Close()
		b.ready = false
	}
}

// Counter records how many times it was played. Used in tests.
type Counter struct {
	mu    sync.Mutex
	plays int
}

func (c *Counter) Play() {
	c.mu.Lock()
	c.plays++
	c.mu.Unlock()
}

func (c *Counter) Plays() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plays
}
