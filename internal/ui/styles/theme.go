package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the journal.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - expanded items, active states
	Secondary lipgloss.Color // Gold - highlights, progress

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase    lipgloss.Color // Panel backgrounds
	BgOverlay lipgloss.Color // Lightbox backdrop

	// Borders
	Border      lipgloss.Color // Post borders without a derived accent
	BorderFocus lipgloss.Color // Expanded/hovered item borders

	// Status colors
	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Body text
	Muted    lipgloss.Style // Dates, captions
	Subtle   lipgloss.Style // Alt text, hints
	Title    lipgloss.Style // Post titles
	Expanded lipgloss.Style // Expanded image frame
	Error    lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:    lipgloss.Color("#1a1a1a"),
	BgOverlay: lipgloss.Color("#101010"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// SetAccent overrides the theme's primary accent. Called once at startup
// from the configured accent color, before any styles are built.
func SetAccent(c lipgloss.Color) {
	defaultTheme.Primary = c
	defaultTheme.BorderFocus = c
	defaultTheme.styles = nil
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Expanded: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
