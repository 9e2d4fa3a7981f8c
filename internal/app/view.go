package app

import (
	"strings"

	"github.com/lbatteau/gazette/internal/keymap"
	"github.com/lbatteau/gazette/internal/ui/headerbar"
	"github.com/lbatteau/gazette/internal/ui/overlay"
	"github.com/lbatteau/gazette/internal/ui/render"
	"github.com/lbatteau/gazette/internal/ui/styles"
)

// View renders the application UI: header, feed, status line, and any
// modal on top.
func (m *Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerbar.Render("gazette", m.Feed.ScrollProgress(), m.Width))
	b.WriteByte('\n')
	b.WriteString(m.Feed.View())
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	frame := b.String()

	if m.Lightbox.IsOpen() {
		frame = m.Lightbox.Overlay(frame, m.Width, m.Height)
	}
	if m.helpVisible {
		frame = overlay.Compose(frame,
			overlay.Center(m.renderHelp(), m.Width, m.Height), m.Width)
	}
	return frame
}

func (m *Model) statusLine() string {
	th := styles.T()
	if m.status != "" {
		return th.S().Base.Render(render.TruncateAndPad(m.status, m.Width))
	}
	if m.pending > 0 {
		line := m.spin.View() + th.S().Muted.Render(" loading images")
		return render.Pad(line, m.Width)
	}
	return th.S().Subtle.Render(render.TruncateAndPad("? help", m.Width))
}

// renderHelp builds the key binding overlay from the keymap tables.
var helpSections = []struct {
	context string
	label   string
}{
	{"global", "Global"},
	{"feed", "Feed"},
	{"lightbox", "Image Viewer"},
}

func (m *Model) renderHelp() string {
	th := styles.T()
	var b strings.Builder

	for i, sec := range helpSections {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(th.S().Title.Render(sec.label))
		b.WriteByte('\n')
		for _, kb := range keymap.ByContext(sec.context) {
			keys := strings.Join(kb.Keys, ", ")
			b.WriteString(th.S().Muted.Render(render.Pad(keys, 16)))
			b.WriteString(th.S().Base.Render(kb.Description))
			b.WriteByte('\n')
		}
	}

	return styles.PostPanel(th.Primary).Render(strings.TrimRight(b.String(), "\n"))
}
