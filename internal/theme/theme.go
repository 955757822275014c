package theme

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownTheme is returned by Lookup for names outside the built-in set.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Theme is the colour scheme of the terminal view.
type Theme struct {
	Name   string
	Text   lipgloss.Color
	Border lipgloss.Color
	Glow   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	Green = Theme{
		Name:   "green",
		Text:   lipgloss.Color("#4ade80"), // phosphor
		Border: lipgloss.Color("#4ade80"),
		Glow:   lipgloss.Color("#14532d"),
		Muted:  lipgloss.Color("#166534"),
	}

	Amber = Theme{
		Name:   "amber",
		Text:   lipgloss.Color("#fbbf24"),
		Border: lipgloss.Color("#fbbf24"),
		Glow:   lipgloss.Color("#78350f"),
		Muted:  lipgloss.Color("#92400e"),
	}

	Blue = Theme{
		Name:   "blue",
		Text:   lipgloss.Color("#60a5fa"),
		Border: lipgloss.Color("#60a5fa"),
		Glow:   lipgloss.Color("#1e3a8a"),
		Muted:  lipgloss.Color("#1e40af"),
	}

	Red = Theme{
		Name:   "red",
		Text:   lipgloss.Color("#f87171"),
		Border: lipgloss.Color("#f87171"),
		Glow:   lipgloss.Color("#7f1d1d"),
		Muted:  lipgloss.Color("#991b1b"),
	}

	// Themes is ordered; Names and the invalid-theme message follow it.
	Themes = []Theme{Green, Amber, Blue, Red}
)

// Default returns the theme a fresh console starts with.
func Default() Theme { return Green }

// Lookup returns a theme by name.
func Lookup(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Get returns a theme by name, falling back to Default.
func Get(name string) Theme {
	t, err := Lookup(name)
	if err != nil {
		return Default()
	}
	return t
}

// Names returns list of available theme names
func Names() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
