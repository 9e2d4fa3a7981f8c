// Package overlay composites a modal view over the feed without disturbing
// the base content outside the modal's footprint.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
// This function is ANSI-aware and handles styled text correctly.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		// Strip ANSI to find visible content bounds
		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue // empty line (visually)
		}

		// Find visible start and end positions (in display columns)
		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}

		// Trim trailing spaces from end position
		trimmed := strings.TrimRight(plainOverlay, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		// Extract the overlay content (with ANSI codes intact)
		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		// Build new line: base prefix + overlay content + base suffix
		baseLine := baseLines[i]
		baseWidth := ansi.StringWidth(ansi.Strip(baseLine))

		// Pad base line if needed
		if baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		result := ansi.Cut(baseLine, 0, startCol) + overlayContent
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

// Center returns the modal padded so that Compose places it in the middle
// of a width x height base.
func Center(modal string, width, height int) string {
	lines := strings.Split(modal, "\n")
	modalWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > modalWidth {
			modalWidth = w
		}
	}

	left := max((width-modalWidth)/2, 0)
	top := max((height-len(lines))/2, 0)
	pad := strings.Repeat(" ", left)

	var b strings.Builder
	for range top {
		b.WriteByte('\n')
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pad)
		b.WriteString(line)
	}
	return b.String()
}
