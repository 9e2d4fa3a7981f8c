// Package headerbar renders the single-line bar above the feed: the
// journal title on the left and the reading-progress indicator on the
// right.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lbatteau/gazette/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// progressBarWidth is the width of the scroll progress bar.
const progressBarWidth = 20

// Render returns the header line for the given width. progress is the
// scroll position through the document in [0,1].
func Render(title string, progress float64, width int) string {
	if width < 20 {
		return ""
	}

	th := styles.T()
	left := styles.ApplyGradient(title, th.Primary, th.Secondary)

	pct := int(progress * 100)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	right := styles.ProgressBar(progress, progressBarWidth) + " " +
		th.S().Muted.Render(fmt.Sprintf("%3d%%", pct))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}
