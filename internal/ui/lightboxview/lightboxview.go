// Package lightboxview renders the modal image viewer over the feed. The
// session logic (wrap-around navigation, open/close) lives in the gallery
// package; this model owns presentation and bitmap placement.
package lightboxview

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lbatteau/gazette/internal/feed"
	"github.com/lbatteau/gazette/internal/gallery"
	"github.com/lbatteau/gazette/internal/ui/imgproto"
	"github.com/lbatteau/gazette/internal/ui/overlay"
	"github.com/lbatteau/gazette/internal/ui/render"
	"github.com/lbatteau/gazette/internal/ui/styles"
)

// ImageSource supplies decoded bitmaps; the feed view implements it, so
// the lightbox reuses what the grid already decoded.
type ImageSource interface {
	Image(post, idx int) (image.Image, bool)
}

// AccentSource supplies each post's derived accent color for the panel
// border.
type AccentSource interface {
	Accent(post int) lipgloss.Color
}

// Model is the lightbox presentation layer around a gallery session.
type Model struct {
	box     gallery.Lightbox
	posts   []feed.Post
	images  ImageSource
	accents AccentSource
	rend    *imgproto.Renderer
}

// New builds the lightbox view. rend is shared with the feed view so
// transmitted bitmaps are reused across both.
func New(posts []feed.Post, images ImageSource, accents AccentSource, rend *imgproto.Renderer) *Model {
	return &Model{
		posts:   posts,
		images:  images,
		accents: accents,
		rend:    rend,
	}
}

// Open starts a session on the clicked image.
func (m *Model) Open(postIndex, imageIndex int) error {
	if postIndex < 0 || postIndex >= len(m.posts) {
		return gallery.ErrNoImages
	}
	return m.box.Open(postIndex, len(m.posts[postIndex].Images), imageIndex)
}

// IsOpen reports whether the modal is showing. While open, the app routes
// Escape and the arrow keys here and nowhere else.
func (m *Model) IsOpen() bool { return m.box.IsOpen() }

func (m *Model) Close() { m.box.Close() }
func (m *Model) Next()  { m.box.Next() }
func (m *Model) Prev()  { m.box.Prev() }

// current returns the open post and image descriptor.
func (m *Model) current() (feed.Post, feed.Image) {
	p := m.posts[m.box.PostIndex()]
	return p, p.Images[m.box.ImageIndex()]
}

// modal dimensions for a given screen size: the panel leaves a margin all
// around and reserves two interior lines for caption and counter.
func modalSize(width, height int) (innerW, imgRows int) {
	innerW = width - 16
	if innerW > 100 {
		innerW = 100
	}
	if innerW < 20 {
		innerW = width - 4
	}
	imgRows = height - 10
	if imgRows > 40 {
		imgRows = 40
	}
	if imgRows < 4 {
		imgRows = 4
	}
	return innerW, imgRows
}

// Overlay composes the modal over the rendered base frame and appends the
// bitmap placement escapes. base must already be width x height cells.
func (m *Model) Overlay(base string, width, height int) string {
	if !m.box.IsOpen() || width < 24 || height < 8 {
		return base
	}

	post, img := m.current()
	innerW, imgRows := modalSize(width, height)

	th := styles.T()
	var b strings.Builder
	b.WriteString(imgproto.Placeholder(innerW, imgRows))
	b.WriteByte('\n')

	caption := img.Alt
	if caption == "" {
		caption = post.Title
	}
	b.WriteString(th.S().Base.Render(render.TruncateAndPad(caption, innerW)))
	b.WriteByte('\n')

	counter := fmt.Sprintf("%d / %d", m.box.ImageIndex()+1, m.box.Count())
	pad := (innerW - len(counter)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(th.S().Muted.Render(render.Pad(strings.Repeat(" ", pad)+counter, innerW)))

	modal := styles.LightboxPanel(m.accents.Accent(m.box.PostIndex())).Render(b.String())
	out := overlay.Compose(base, overlay.Center(modal, width, height), width)
	return out + m.placeCmd(modal, width, height, innerW, imgRows, img.Src)
}

// placeCmd positions the decoded bitmap over the modal's placeholder area.
func (m *Model) placeCmd(modal string, width, height, innerW, imgRows int, src string) string {
	if m.rend == nil || !m.rend.Enabled() {
		return ""
	}
	bm, ok := m.images.Image(m.box.PostIndex(), m.box.ImageIndex())
	if !ok {
		return ""
	}

	modalLines := strings.Count(modal, "\n") + 1
	modalW := lipgloss.Width(modal)
	topRow := (height - modalLines) / 2
	leftCol := (width - modalW) / 2
	if topRow < 0 {
		topRow = 0
	}
	if leftCol < 0 {
		leftCol = 0
	}

	out := m.rend.Prepare(src, bm, innerW, imgRows)
	// +2: 1-based coordinates plus the panel border.
	return out + m.rend.PlaceCmd(src, topRow+2, leftCol+2, innerW, imgRows)
}
