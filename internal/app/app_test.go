package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbatteau/gazette/internal/config"
	"github.com/lbatteau/gazette/internal/feed"
	"github.com/lbatteau/gazette/internal/ui/feedview"
)

func testApp() *Model {
	posts := []feed.Post{
		{
			Title: "Harbor",
			Date:  "2026-01-02",
			Body:  "Out before sunrise.",
			Images: []feed.Image{
				{Src: "a.jpg", Alt: "boats"},
				{Src: "b.jpg", Alt: "gulls"},
			},
		},
		{Title: "Quiet Day", Date: "2026-01-01"},
	}
	m := New(&config.Config{}, posts, "")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestQuitKey(t *testing.T) {
	m := testApp()
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLightboxOpensFromClickMessage(t *testing.T) {
	m := testApp()
	m.Update(feedview.OpenLightboxMsg{PostIndex: 0, ImageIndex: 1})
	assert.True(t, m.Lightbox.IsOpen())
}

func TestLightboxRejectsPostWithoutImages(t *testing.T) {
	m := testApp()
	m.Update(feedview.OpenLightboxMsg{PostIndex: 1})
	assert.False(t, m.Lightbox.IsOpen())
}

func TestLightboxKeysStayInModal(t *testing.T) {
	m := testApp()
	m.Update(feedview.OpenLightboxMsg{PostIndex: 0})
	require.True(t, m.Lightbox.IsOpen())

	// Feed scrolling is not bound while the modal is up.
	m.Update(keyMsg("j"))
	assert.True(t, m.Lightbox.IsOpen())

	m.Update(keyMsg("right"))
	m.Update(keyMsg("left"))
	assert.True(t, m.Lightbox.IsOpen())

	m.Update(keyMsg("esc"))
	assert.False(t, m.Lightbox.IsOpen())
}

func TestEscDoesNothingOnFeed(t *testing.T) {
	m := testApp()
	_, cmd := m.Update(keyMsg("esc"))
	assert.Nil(t, cmd)
	assert.False(t, m.Lightbox.IsOpen())
}

func TestHelpOverlayToggles(t *testing.T) {
	m := testApp()
	m.Update(keyMsg("?"))
	assert.True(t, m.helpVisible)
	assert.Contains(t, m.View(), "Image Viewer")

	// Any key dismisses help, without triggering its own action.
	m.Update(keyMsg("q"))
	assert.False(t, m.helpVisible)
}

func TestCopyLinkWithoutBaseURL(t *testing.T) {
	m := testApp()
	_, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	assert.Contains(t, m.statusLine(), "no base_url configured")
}

func TestViewFitsTerminal(t *testing.T) {
	m := testApp()
	out := m.View()
	assert.NotEmpty(t, out)
}
