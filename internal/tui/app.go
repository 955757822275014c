// Package tui hosts the boot screen and the console in a single Bubble Tea
// program. The current screen only changes through transition.
package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/retrosh/internal/audio"
	"github.com/san-kum/retrosh/internal/boot"
	"github.com/san-kum/retrosh/internal/config"
	"github.com/san-kum/retrosh/internal/console"
	"github.com/san-kum/retrosh/internal/theme"
)

type Screen int

const (
	ScreenBoot Screen = iota
	ScreenTerminal
)

func (s Screen) String() string {
	if s == ScreenTerminal {
		return "terminal"
	}
	return "boot"
}

type Event int

const (
	EventBootActivated Event = iota
	EventSkipBoot
)

// transition is the only place the current screen changes.
func transition(s Screen, e Event) Screen {
	switch s {
	case ScreenBoot:
		switch e {
		case EventBootActivated, EventSkipBoot:
			return ScreenTerminal
		}
	}
	return s
}

const (
	prompt     = "⇢ "
	statusLine = `SYSTEM READY | TYPE "HELP" FOR COMMANDS`
	bootFooter = "RETROSH (C) 2025 | ALL RIGHTS RESERVED"
	logo       = "▓▒░ R E T R O S H ░▒▓"
	accessText = "[ ACCESS TERMINAL ]"
	// logo, frame borders, input line, status bar
	chromeHeight = 7
	maxWidth     = 96
)

// revealTickMsg drives one typewriter step. gen ties it to the reveal run
// that scheduled it.
type revealTickMsg struct{ gen uint64 }

type Options struct {
	Config *config.Config
	Cue    audio.Cue
	Logger *slog.Logger
}

type Model struct {
	screen   Screen
	boot     *boot.Sequencer
	console  *console.Console
	input    textinput.Model
	viewport viewport.Model
	logger   *slog.Logger
	width    int
	height   int
}

func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Cue == nil {
		opts.Cue = audio.Silent{}
	}

	copts := cfg.ConsoleOptions()
	copts.Logger = opts.Logger

	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 256

	m := Model{
		screen: ScreenBoot,
		boot: boot.New(boot.Options{
			Messages:         cfg.Boot.Messages,
			MessageInterval:  cfg.Boot.MessageInterval,
			ProgressInterval: cfg.Boot.ProgressInterval,
			ProgressStep:     cfg.Boot.ProgressStep,
		}, opts.Cue),
		console:  console.New(copts),
		input:    ti,
		viewport: viewport.New(76, 24-chromeHeight),
		logger:   opts.Logger,
		width:    80,
		height:   24,
	}
	if cfg.SkipBoot {
		m.enterTerminal(EventSkipBoot)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == ScreenBoot {
		return m.boot.Init()
	}
	return tea.Batch(m.revealNow(), textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case boot.MessageTickMsg, boot.ProgressTickMsg:
		return m, m.boot.Update(msg)
	case revealTickMsg:
		return m.reveal(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == ScreenBoot {
			return m.bootKey(msg)
		}
		return m.terminalKey(msg)
	}

	if m.screen == ScreenTerminal {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) bootKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.boot.Stop()
		return m, tea.Quit
	case "enter", " ":
		playCue, ok := m.boot.Activate()
		if !ok {
			return m, nil
		}
		m.logger.Info("boot complete")
		m.enterTerminal(EventBootActivated)
		return m, tea.Batch(playCue, tea.ClearScreen, m.revealNow(), textinput.Blink)
	}
	return m, nil
}

func (m Model) terminalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.console.Clear()
		return m, tea.Quit
	case "pgup":
		m.viewport.HalfPageUp()
		return m, nil
	case "pgdown":
		m.viewport.HalfPageDown()
		return m, nil
	}

	if m.console.Busy() {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+l":
		m.console.Clear()
		m.refresh()
		return m, nil
	case "enter":
		return m.submit()
	case "up":
		m.input.SetValue(m.console.Previous())
		m.input.CursorEnd()
		return m, nil
	case "down":
		m.input.SetValue(m.console.Next())
		m.input.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.console.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	out := m.console.Submit(m.input.Value())
	m.input.SetValue(m.console.Input())
	m.refresh()
	if out == console.OutcomeReveal {
		cmd := m.syncInput()
		return m, tea.Batch(cmd, m.revealNow())
	}
	return m, nil
}

func (m Model) reveal(msg revealTickMsg) (Model, tea.Cmd) {
	if m.screen != ScreenTerminal || msg.gen != m.console.Generation() {
		return m, nil
	}
	delay, busy := m.console.Step()
	m.refresh()
	if !busy {
		cmd := m.syncInput()
		return m, cmd
	}
	gen := msg.gen
	return m, tea.Tick(delay, func(time.Time) tea.Msg { return revealTickMsg{gen: gen} })
}

func (m *Model) enterTerminal(e Event) {
	m.screen = transition(m.screen, e)
	m.boot.Stop()
	m.console.Start()
	m.layout()
	m.syncInput()
}

func (m Model) revealNow() tea.Cmd {
	gen := m.console.Generation()
	return func() tea.Msg { return revealTickMsg{gen: gen} }
}

// syncInput disables the input line while a reveal is running.
func (m *Model) syncInput() tea.Cmd {
	if m.console.Busy() {
		m.input.Blur()
		return nil
	}
	return m.input.Focus()
}

func (m *Model) layout() {
	w := min(m.width, maxWidth)
	m.viewport.Width = max(w-4, 10)
	m.viewport.Height = max(m.height-chromeHeight, 3)
	m.input.Width = max(w-8, 10)
	m.refresh()
}

// refresh re-renders the transcript into the viewport and pins it to the
// bottom.
func (m *Model) refresh() {
	st := newStyles(theme.Get(m.console.Theme()))
	m.input.PromptStyle = st.input
	m.input.TextStyle = st.text
	m.input.Cursor.Style = st.text

	var b strings.Builder
	for i, e := range m.console.Entries() {
		if i > 0 {
			b.WriteByte('\n')
		}
		if e.Kind == console.KindInput {
			b.WriteString(st.input.Render(e.Text))
			continue
		}
		b.WriteString(st.text.Render(e.Text))
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m Model) Screen() Screen { return m.screen }

func (m Model) Console() *console.Console { return m.console }

// Run starts the full screen program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
