package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbatteau/gazette/internal/keymap"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.helpVisible {
		m.helpVisible = false
		return m, nil
	}

	if m.Lightbox.IsOpen() {
		switch m.lightboxKeys.Resolve(key) {
		case keymap.ActionQuit:
			return m, tea.Quit
		case keymap.ActionLightboxClose:
			m.Lightbox.Close()
		case keymap.ActionLightboxNext:
			m.Lightbox.Next()
		case keymap.ActionLightboxPrev:
			m.Lightbox.Prev()
		case keymap.ActionHelp:
			m.helpVisible = true
		case keymap.ActionCopyLink:
			return m, m.copyLinkCmd()
		}
		return m, nil
	}

	switch m.feedKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.helpVisible = true
	case keymap.ActionCopyLink:
		return m, m.copyLinkCmd()
	case keymap.ActionScrollDown:
		m.Feed.ScrollByRows(3)
	case keymap.ActionScrollUp:
		m.Feed.ScrollByRows(-3)
	case keymap.ActionPageDown:
		m.Feed.ScrollByRows(m.feedHeight() / 2)
	case keymap.ActionPageUp:
		m.Feed.ScrollByRows(-m.feedHeight() / 2)
	case keymap.ActionJumpStart:
		m.Feed.JumpTop()
	case keymap.ActionJumpEnd:
		m.Feed.JumpBottom()
	case keymap.ActionOpenImages:
		return m, m.openCurrentPost()
	}
	return m, nil
}
