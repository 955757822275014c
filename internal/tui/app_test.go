package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/retrosh/internal/audio"
	"github.com/san-kum/retrosh/internal/boot"
	"github.com/san-kum/retrosh/internal/config"
	"github.com/san-kum/retrosh/internal/console"
)

func skipBootConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.SkipBoot = true
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// pumpReveal feeds reveal ticks until the console goes idle.
func pumpReveal(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; m.console.Busy(); i++ {
		if i > 10000 {
			t.Fatal("reveal never finished")
		}
		m = update(t, m, revealTickMsg{gen: m.console.Generation()})
	}
	return m
}

// runCmd executes cmd and any commands batched inside it.
func runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmd(c)
		}
	}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from Screen
		ev   Event
		want Screen
	}{
		{ScreenBoot, EventBootActivated, ScreenTerminal},
		{ScreenBoot, EventSkipBoot, ScreenTerminal},
		{ScreenTerminal, EventBootActivated, ScreenTerminal},
	}
	for _, tt := range tests {
		if got := transition(tt.from, tt.ev); got != tt.want {
			t.Errorf("%v + %v: expected %v, got %v", tt.from, tt.ev, tt.want, got)
		}
	}
}

func TestBootToTerminal(t *testing.T) {
	var cue audio.Counter
	m := New(Options{Cue: &cue})
	if m.Screen() != ScreenBoot {
		t.Fatalf("expected boot screen, got %v", m.Screen())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != ScreenBoot {
		t.Fatal("enter before completion must not leave the boot screen")
	}

	for !m.boot.Done() {
		m = update(t, m, boot.ProgressTickMsg{ID: m.boot.ID()})
	}
	if !strings.Contains(m.View(), accessText) {
		t.Error("expected access affordance once boot completes")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.Screen() != ScreenTerminal {
		t.Fatalf("expected terminal screen, got %v", m.Screen())
	}
	if cue.Plays() != 0 {
		t.Error("cue should play from a command, not inside Update")
	}
	runCmd(cmd)
	if cue.Plays() != 1 {
		t.Errorf("expected one sound cue, got %d", cue.Plays())
	}
	if !m.console.Busy() {
		t.Error("expected startup reveal to be running")
	}
}

func TestStartupReveal(t *testing.T) {
	m := New(Options{Config: skipBootConfig()})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})
	m = pumpReveal(t, m)

	entries := m.console.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected banner and help, got %d entries", len(entries))
	}
	if !strings.Contains(m.View(), "MLVS-OS COMMAND REFERENCE") {
		t.Error("expected help text in view")
	}
	if !m.input.Focused() {
		t.Error("input should be enabled once the reveal finishes")
	}
}

func TestInputDisabledWhileRevealing(t *testing.T) {
	m := New(Options{Config: skipBootConfig()})
	if m.input.Focused() {
		t.Error("input should be disabled during the startup reveal")
	}

	m = typeText(t, m, "about")
	if len(m.console.History()) != 0 {
		t.Error("submission during reveal should be ignored")
	}
}

func TestSubmitUnknownCommand(t *testing.T) {
	m := pumpReveal(t, New(Options{Config: skipBootConfig()}))
	m = typeText(t, m, "foobar")

	entries := m.console.Entries()
	last := entries[len(entries)-1]
	if last.Text != "Command not found: foobar" {
		t.Errorf("unexpected last entry %q", last.Text)
	}
	if m.input.Value() != "" {
		t.Errorf("expected empty input, got %q", m.input.Value())
	}
}

func TestHistoryKeys(t *testing.T) {
	m := pumpReveal(t, New(Options{Config: skipBootConfig()}))
	m = typeText(t, m, "theme amber")
	m = typeText(t, m, "foobar")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.input.Value() != "theme amber" {
		t.Errorf("expected oldest command, got %q", m.input.Value())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.input.Value() != "" {
		t.Errorf("expected empty input, got %q", m.input.Value())
	}
}

func TestCtrlLIgnoredWhileRevealing(t *testing.T) {
	m := New(Options{Config: skipBootConfig()})
	m = update(t, m, revealTickMsg{gen: m.console.Generation()})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if !m.console.Busy() {
		t.Fatal("ctrl+l must not cancel a running reveal")
	}
	if len(m.console.Entries()) == 0 {
		t.Error("ctrl+l must not clear the transcript during a reveal")
	}
}

func TestCtrlLClearsWhenIdle(t *testing.T) {
	m := pumpReveal(t, New(Options{Config: skipBootConfig()}))
	m = typeText(t, m, "about")
	gen := m.console.Generation()
	m = pumpReveal(t, m)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if len(m.console.Entries()) != 0 {
		t.Fatal("expected empty transcript after ctrl+l")
	}
	m = update(t, m, revealTickMsg{gen: gen})
	if len(m.console.Entries()) != 0 {
		t.Error("stale tick mutated the transcript")
	}
	if !m.input.Focused() {
		t.Error("input should stay enabled after clear")
	}
}

func TestNarrowWindow(t *testing.T) {
	for _, w := range []int{0, 1, 3, 5} {
		m := New(Options{})
		m = update(t, m, tea.WindowSizeMsg{Width: w, Height: 10})
		for !m.boot.Done() {
			m = update(t, m, boot.ProgressTickMsg{ID: m.boot.ID()})
		}
		_ = m.View()

		m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		_ = m.View()
	}
}

func TestThemeChangeKeepsTranscript(t *testing.T) {
	m := pumpReveal(t, New(Options{Config: skipBootConfig()}))
	m = typeText(t, m, "theme red")

	if m.console.Theme() != "red" {
		t.Errorf("expected red, got %s", m.console.Theme())
	}
	entries := m.console.Entries()
	if entries[len(entries)-1].Kind != console.KindOutput {
		t.Error("expected confirmation output entry")
	}
}
