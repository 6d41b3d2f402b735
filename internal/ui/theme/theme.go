// Package theme defines the visual styling used by the terminal output
// layer.
package theme

import "github.com/charmbracelet/lipgloss"

// ColorPalette holds the semantic colors of a theme
type ColorPalette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	Text         lipgloss.AdaptiveColor
	TextMuted    lipgloss.AdaptiveColor
	TextEmphasis lipgloss.AdaptiveColor
}

// Styles holds the lipgloss styles built from a palette
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Header    lipgloss.Style
	SubHeader lipgloss.Style

	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Emphasis lipgloss.Style

	Selected lipgloss.Style
	Cursor   lipgloss.Style

	Key   lipgloss.Style
	Value lipgloss.Style
}

// Symbols holds the status glyphs of a theme
type Symbols struct {
	Success string
	Error   string
	Warning string
	Info    string
	Bullet  string
}

// Theme is the interface all themes implement
type Theme interface {
	Name() string
	Palette() ColorPalette
	Styles() Styles
	Symbols() Symbols
}

var current Theme = NewDefaultTheme()

// Current returns the active theme
func Current() Theme {
	return current
}
