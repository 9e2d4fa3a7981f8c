package styles

import "github.com/charmbracelet/lipgloss"

// PostPanel returns the bordered style for a post card, tinted with the
// post's derived accent color.
func PostPanel(accent lipgloss.Color) lipgloss.Style {
	if accent == "" {
		accent = defaultTheme.Border
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent)
}

// LightboxPanel returns the bordered style for the modal lightbox.
func LightboxPanel(accent lipgloss.Color) lipgloss.Style {
	if accent == "" {
		accent = defaultTheme.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Padding(0, 1)
}

// ItemFrame returns the style framing one gallery cell. Expanded items get
// the focus border.
func ItemFrame(expanded bool) lipgloss.Style {
	color := defaultTheme.Border
	if expanded {
		color = defaultTheme.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(color)
}
