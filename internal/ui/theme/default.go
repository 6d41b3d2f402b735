package theme

import "github.com/charmbracelet/lipgloss"

// defaultTheme is the built-in dirkit style: minimal, cyan accents.
type defaultTheme struct {
	palette ColorPalette
	styles  Styles
	symbols Symbols
}

// NewDefaultTheme creates the default theme instance
func NewDefaultTheme() Theme {
	// AdaptiveColor gives automatic light/dark terminal support
	palette := ColorPalette{
		Primary:   lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}, // Cyan
		Secondary: lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}, // Blue

		Success: lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}, // Green
		Error:   lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ef4444"}, // Red
		Warning: lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}, // Yellow
		Info:    lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}, // Blue

		Text:         lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#f9fafb"},
		TextMuted:    lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"},
		TextEmphasis: lipgloss.AdaptiveColor{Light: "#111827", Dark: "#ffffff"},
	}

	symbols := Symbols{
		Success: "✓", // checkmark
		Error:   "✗", // X mark
		Warning: "!",
		Info:    "→", // arrow
		Bullet:  "•", // bullet
	}

	t := &defaultTheme{
		palette: palette,
		symbols: symbols,
	}

	t.styles = Styles{
		Success: lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(palette.Warning),
		Info: lipgloss.NewStyle().
			Foreground(palette.Info),

		Header: lipgloss.NewStyle().
			Foreground(palette.TextEmphasis).
			Bold(true),
		SubHeader: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		Bold: lipgloss.NewStyle().
			Foreground(palette.TextEmphasis).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(palette.TextMuted),
		Emphasis: lipgloss.NewStyle().
			Foreground(palette.Primary),

		Selected: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(palette.TextMuted),
		Value: lipgloss.NewStyle().
			Foreground(palette.Text),
	}

	return t
}

func (t *defaultTheme) Name() string {
	return "default"
}

func (t *defaultTheme) Palette() ColorPalette {
	return t.palette
}

func (t *defaultTheme) Styles() Styles {
	return t.styles
}

func (t *defaultTheme) Symbols() Symbols {
	return t.symbols
}
