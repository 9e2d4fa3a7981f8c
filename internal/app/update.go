package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lbatteau/gazette/internal/errmsg"
	"github.com/lbatteau/gazette/internal/icons"
	"github.com/lbatteau/gazette/internal/share"
	"github.com/lbatteau/gazette/internal/ui/feedview"
	"github.com/lbatteau/gazette/internal/ui/headerbar"
)

// statusDuration is how long a transient status message stays visible.
const statusDuration = 3 * time.Second

// Update handles messages and returns the updated model and commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// The modal swallows pointer input; the page behind it stays inert.
		if m.Lightbox.IsOpen() || m.helpVisible {
			return m, nil
		}
		var cmd tea.Cmd
		m.Feed, cmd = m.Feed.Update(msg)
		return m, cmd

	case feedview.OpenLightboxMsg:
		if err := m.Lightbox.Open(msg.PostIndex, msg.ImageIndex); err != nil {
			log.Debug("lightbox open rejected", "post", msg.PostIndex, "err", err)
		}
		return m, nil

	case CopyLinkResultMsg:
		if msg.Err != nil {
			m.status = errmsg.Format(errmsg.OpClipboardCopy, msg.Err)
			log.Error("clipboard copy failed", "err", msg.Err)
		} else {
			m.status = icons.Link() + "copied " + msg.Link
		}
		return m, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return StatusExpiredMsg{}
		})

	case StatusExpiredMsg:
		m.status = ""
		return m, nil

	case feedview.ImageDecodedMsg:
		if m.pending > 0 {
			m.pending--
		}
		var cmd tea.Cmd
		m.Feed, cmd = m.Feed.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.Feed, cmd = m.Feed.Update(msg)
	return m, cmd
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	first := m.Width == 0
	m.Width = msg.Width
	m.Height = msg.Height
	m.Feed.SetSize(msg.Width, m.feedHeight(), headerbar.Height+1)

	if first && m.startSlug != "" {
		cmd := m.Feed.JumpToPost(m.startSlug)
		m.startSlug = ""
		return m, cmd
	}
	return m, nil
}

// feedHeight is the rows left for the feed between header and status line.
func (m *Model) feedHeight() int {
	h := m.Height - headerbar.Height - 1
	if h < 0 {
		return 0
	}
	return h
}

// copyLinkCmd builds the current post's permalink and copies it.
func (m *Model) copyLinkCmd() tea.Cmd {
	if !m.Cfg.HasBaseURL() {
		m.status = "no base_url configured"
		return tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return StatusExpiredMsg{}
		})
	}
	slug := m.Feed.CurrentSlug()
	if slug == "" {
		return nil
	}
	link := share.Link(m.Cfg.BaseURL, slug)
	return func() tea.Msg {
		return CopyLinkResultMsg{Link: link, Err: share.Copy(link)}
	}
}

// openCurrentPost opens the lightbox on the first image of the post at the
// top of the viewport.
func (m *Model) openCurrentPost() tea.Cmd {
	slug := m.Feed.CurrentSlug()
	for i := range m.Posts {
		if m.Feed.Slug(i) == slug {
			if err := m.Lightbox.Open(i, 0); err != nil {
				m.status = fmt.Sprintf("%s has no images", m.Posts[i].Title)
				return tea.Tick(statusDuration, func(time.Time) tea.Msg {
					return StatusExpiredMsg{}
				})
			}
			return nil
		}
	}
	return nil
}
