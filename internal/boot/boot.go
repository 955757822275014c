// Package boot drives the start-up screen: a cycling status message and a
// progress counter, each on its own timer.
package boot

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/retrosh/internal/audio"
)

const Complete = 100

var DefaultMessages = []string{
	"Initializing MLVS-OS v2.1...",
	"Checking system components...",
	"Loading terminal interface...",
	"Establishing secure connection...",
	"Verifying user credentials...",
	"System ready for access",
}

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

// MessageTickMsg advances the status message of the sequencer with the same id.
type MessageTickMsg struct{ ID int }

// ProgressTickMsg advances the progress counter of the sequencer with the same id.
type ProgressTickMsg struct{ ID int }

type Options struct {
	Messages         []string
	MessageInterval  time.Duration
	ProgressInterval time.Duration
	ProgressStep     int
}

type Sequencer struct {
	id               int
	messages         []string
	index            int
	progress         int
	step             int
	messageInterval  time.Duration
	progressInterval time.Duration
	stopped          bool
	activated        bool
	cue              audio.Cue
}

func New(opts Options, cue audio.Cue) *Sequencer {
	if len(opts.Messages) == 0 {
		opts.Messages = DefaultMessages
	}
	if opts.MessageInterval <= 0 {
		opts.MessageInterval = 1500 * time.Millisecond
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = 50 * time.Millisecond
	}
	if opts.ProgressStep <= 0 {
		opts.ProgressStep = 2
	}
	if cue == nil {
		cue = audio.Silent{}
	}
	return &Sequencer{
		id:               nextID(),
		messages:         opts.Messages,
		step:             opts.ProgressStep,
		messageInterval:  opts.MessageInterval,
		progressInterval: opts.ProgressInterval,
		cue:              cue,
	}
}

// Init starts both timers.
func (s *Sequencer) Init() tea.Cmd {
	return tea.Batch(s.messageTick(), s.progressTick())
}

// Update consumes the sequencer's own tick messages and reschedules them
// until progress completes or the sequencer is stopped.
func (s *Sequencer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case MessageTickMsg:
		if msg.ID != s.id || s.stopped {
			return nil
		}
		s.index = (s.index + 1) % len(s.messages)
		return s.messageTick()
	case ProgressTickMsg:
		if msg.ID != s.id || s.stopped {
			return nil
		}
		s.progress = min(s.progress+s.step, Complete)
		if s.progress >= Complete {
			s.stopped = true
			return nil
		}
		return s.progressTick()
	}
	return nil
}

// Activate reports true the first time it is called after progress
// completes. The returned command plays the sound cue off the update loop.
func (s *Sequencer) Activate() (tea.Cmd, bool) {
	if !s.Done() || s.activated {
		return nil, false
	}
	s.activated = true
	s.Stop()
	cue := s.cue
	return func() tea.Msg {
		cue.Play()
		return nil
	}, true
}

// ID identifies this sequencer's tick messages.
func (s *Sequencer) ID() int { return s.id }

// Stop cancels both timers; ticks already in flight are ignored.
func (s *Sequencer) Stop() { s.stopped = true }

func (s *Sequencer) Done() bool { return s.progress >= Complete }

func (s *Sequencer) Stopped() bool { return s.stopped }

func (s *Sequencer) Progress() int { return s.progress }

func (s *Sequencer) Message() string { return s.messages[s.index] }

func (s *Sequencer) messageTick() tea.Cmd {
	id := s.id
	return tea.Tick(s.messageInterval, func(time.Time) tea.Msg { return MessageTickMsg{ID: id} })
}

func (s *Sequencer) progressTick() tea.Cmd {
	id := s.id
	return tea.Tick(s.progressInterval, func(time.Time) tea.Msg { return ProgressTickMsg{ID: id} })
}
