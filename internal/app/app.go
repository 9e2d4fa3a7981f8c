// Package app wires the feed, lightbox and header into the root bubbletea
// model and routes input between them.
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lbatteau/gazette/internal/config"
	"github.com/lbatteau/gazette/internal/feed"
	"github.com/lbatteau/gazette/internal/keymap"
	"github.com/lbatteau/gazette/internal/ui/feedview"
	"github.com/lbatteau/gazette/internal/ui/lightboxview"
	"github.com/lbatteau/gazette/internal/ui/styles"
)

// Model is the root application model.
type Model struct {
	Cfg      *config.Config
	Posts    []feed.Post
	Feed     *feedview.Model
	Lightbox *lightboxview.Model

	feedKeys     *keymap.Resolver
	lightboxKeys *keymap.Resolver

	startSlug   string
	helpVisible bool
	status      string

	spin    spinner.Model
	pending int // images still decoding

	Width  int
	Height int
}

// New creates the application model. startSlug, when non-empty, is the post
// anchor to scroll to once the first layout is known.
func New(cfg *config.Config, posts []feed.Post, startSlug string) *Model {
	fv := feedview.New(cfg, posts, nil)

	var pending int
	for _, p := range posts {
		pending += len(p.Images)
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.T().Primary)),
	)

	return &Model{
		Cfg:      cfg,
		Posts:    posts,
		Feed:     fv,
		Lightbox: lightboxview.New(posts, fv, fv, fv.Renderer()),

		feedKeys: keymap.NewResolver(
			append(keymap.ByContext("global"), keymap.ByContext("feed")...)),
		lightboxKeys: keymap.NewResolver(
			append(keymap.ByContext("global"), keymap.ByContext("lightbox")...)),

		startSlug: startSlug,
		spin:      sp,
		pending:   pending,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.pending > 0 {
		return tea.Batch(m.Feed.Init(), m.spin.Tick)
	}
	return m.Feed.Init()
}
