package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/retrosh/internal/theme"
)

type styles struct {
	text    lipgloss.Style
	input   lipgloss.Style
	muted   lipgloss.Style
	glow    lipgloss.Style
	frame   lipgloss.Style
	cursor  lipgloss.Style
	blink   lipgloss.Style
	button  lipgloss.Style
	barFill lipgloss.Style
	barRest lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	return styles{
		text:  lipgloss.NewStyle().Foreground(t.Text),
		input: lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		muted: lipgloss.NewStyle().Foreground(t.Muted),
		glow: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			Background(t.Glow),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		cursor:  lipgloss.NewStyle().Foreground(t.Text).Faint(true),
		blink:   lipgloss.NewStyle().Foreground(t.Text).Blink(true),
		button:  lipgloss.NewStyle().Bold(true).Foreground(t.Text).Background(t.Glow).Padding(0, 1),
		barFill: lipgloss.NewStyle().Foreground(t.Text),
		barRest: lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// progressBar renders percent (0-100) across width cells.
func (s styles) progressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.barFill.Render(strings.Repeat("█", filled)) + s.barRest.Render(strings.Repeat("░", width-filled))
}

func (s styles) separator(width int) string {
	width = max(width, 0)
	mid := width / 2
	if mid < 3 {
		return s.muted.Render(strings.Repeat("─", width))
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", max(width-mid-3, 0))
	return s.muted.Render(left + " ◆ " + right)
}
