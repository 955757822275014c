package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/retrosh/internal/theme"
)

func (m Model) View() string {
	st := newStyles(theme.Get(m.console.Theme()))
	var body string
	if m.screen == ScreenBoot {
		body = m.bootView(st)
	} else {
		body = m.terminalView(st)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) bootView(st styles) string {
	w := max(min(m.width-4, 48), 1)
	var b strings.Builder
	b.WriteString(st.glow.Render(logo))
	b.WriteString("\n\n")
	b.WriteString(st.text.Render(m.boot.Message()))
	b.WriteString(st.blink.Render("_"))
	b.WriteString("\n\n")
	b.WriteString(st.progressBar(m.boot.Progress(), w))
	b.WriteString(st.text.Render(fmt.Sprintf(" %3d%%", m.boot.Progress())))
	b.WriteString("\n\n")
	if m.boot.Done() {
		b.WriteString(st.button.Render(accessText))
	} else {
		b.WriteString(" ")
	}
	b.WriteString("\n\n")
	b.WriteString(st.muted.Render(bootFooter))
	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}

func (m Model) terminalView(st styles) string {
	var input string
	if m.console.Busy() {
		input = st.input.Render(prompt) + st.cursor.Render("█")
	} else {
		input = m.input.View()
	}

	frame := st.frame.Width(m.viewport.Width + 2).Render(m.viewport.View() + "\n" + input)
	parts := []string{
		st.glow.Render(logo),
		frame,
		st.separator(m.viewport.Width + 4),
		st.muted.Render(statusLine),
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
