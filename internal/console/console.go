package console

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/san-kum/retrosh/internal/theme"
)

const DefaultPrompt = "> "

// Outcome reports what Submit did with a line.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeReveal
	OutcomeMessage
	OutcomeTheme
	OutcomeCleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReveal:
		return "reveal"
	case OutcomeMessage:
		return "message"
	case OutcomeTheme:
		return "theme"
	case OutcomeCleared:
		return "cleared"
	default:
		return "ignored"
	}
}

type Options struct {
	Prompt       string
	Theme        string
	CharDelay    time.Duration
	LineDelay    time.Duration
	HistoryLimit int
	Logger       *slog.Logger
}

type Console struct {
	prompt     string
	theme      string
	input      string
	started    bool
	transcript *Transcript
	history    *History
	anim       *Animator
	logger     *slog.Logger
	lookup     func(string) (Command, bool)
}

// New builds an idle console. Zero option values fall back to defaults; an
// unknown theme falls back to the default theme.
func New(opts Options) *Console {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.CharDelay <= 0 {
		opts.CharDelay = DefaultCharDelay
	}
	if opts.LineDelay <= 0 {
		opts.LineDelay = DefaultLineDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	t := &Transcript{}
	return &Console{
		prompt:     opts.Prompt,
		theme:      theme.Get(opts.Theme).Name,
		transcript: t,
		history:    NewHistory(opts.HistoryLimit),
		anim:       NewAnimator(t, opts.CharDelay, opts.LineDelay),
		logger:     opts.Logger,
		lookup:     Lookup,
	}
}

// Start queues the startup commands. Only the first call has an effect.
func (c *Console) Start() {
	if c.started {
		return
	}
	c.started = true
	for _, name := range startup {
		c.dispatch(name, name, false)
	}
}

// Submit handles one line of user input. Empty input and input arriving
// while a reveal is in progress are ignored.
func (c *Console) Submit(raw string) Outcome {
	if strings.TrimSpace(raw) == "" || c.anim.Busy() {
		return OutcomeIgnored
	}
	cmd := strings.ToLower(strings.TrimSpace(raw))
	c.history.Push(cmd)
	c.input = ""
	out := c.dispatch(raw, cmd, true)
	c.logger.Debug("command submitted", "command", cmd, "outcome", out.String())
	return out
}

func (c *Console) dispatch(raw, cmd string, echo bool) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("command dispatch panicked", "command", cmd, "panic", r)
			c.anim.Cancel()
			c.notFound(cmd)
			out = OutcomeMessage
		}
	}()

	if strings.HasPrefix(cmd, cmdTheme+" ") {
		return c.switchTheme(strings.Split(cmd, " ")[1])
	}
	if entry, ok := c.lookup(cmd); ok {
		if echo {
			c.transcript.Append(Entry{Kind: KindInput, Text: c.prompt + raw})
		}
		c.anim.Enqueue(entry.Lines)
		return OutcomeReveal
	}
	if cmd == cmdClear {
		c.Clear()
		return OutcomeCleared
	}
	if cmd == "" {
		return OutcomeIgnored
	}
	c.notFound(cmd)
	return OutcomeMessage
}

func (c *Console) switchTheme(name string) Outcome {
	t, err := theme.Lookup(name)
	if err != nil {
		c.logger.Debug("theme rejected", "theme", name, "error", err)
		c.output(fmt.Sprintf("Invalid theme. Available: %s", strings.Join(theme.Names(), ", ")))
		return OutcomeMessage
	}
	c.theme = t.Name
	c.output(fmt.Sprintf("Terminal theme changed to %s", t.Name))
	return OutcomeTheme
}

func (c *Console) notFound(cmd string) {
	c.output(fmt.Sprintf("Command not found: %s", cmd))
}

func (c *Console) output(text string) {
	c.transcript.Append(Entry{Kind: KindOutput, Text: text})
}

// Clear empties the transcript and cancels any reveal in progress.
func (c *Console) Clear() {
	c.anim.Cancel()
	c.transcript.Reset()
}

// Step advances the typewriter; see Animator.Step.
func (c *Console) Step() (time.Duration, bool) { return c.anim.Step() }

// Flush completes every pending reveal immediately.
func (c *Console) Flush() { c.anim.Flush() }

func (c *Console) Busy() bool { return c.anim.Busy() }

func (c *Console) Generation() uint64 { return c.anim.Generation() }

// Previous recalls the next older command into the input buffer.
func (c *Console) Previous() string {
	if cmd, ok := c.history.Prev(); ok {
		c.input = cmd
	}
	return c.input
}

// Next recalls the next newer command, or empties the buffer once past the
// newest.
func (c *Console) Next() string {
	cmd, _ := c.history.Next()
	c.input = cmd
	return c.input
}

func (c *Console) Input() string { return c.input }

func (c *Console) SetInput(s string) { c.input = s }

func (c *Console) Theme() string { return c.theme }

func (c *Console) Prompt() string { return c.prompt }

func (c *Console) Entries() []Entry { return c.transcript.Entries() }

// History returns submitted commands oldest first.
func (c *Console) History() []string { return c.history.Entries() }

func (c *Console) HistoryCursor() int { return c.history.Cursor() }
