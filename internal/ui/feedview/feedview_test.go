package feedview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbatteau/gazette/internal/config"
	"github.com/lbatteau/gazette/internal/feed"
	"github.com/lbatteau/gazette/internal/gallery"
)

func testFeed(t *testing.T, posts []feed.Post) *Model {
	t.Helper()
	m := New(&config.Config{}, posts, func() time.Time { return time.Unix(0, 0) })
	m.SetSize(60, 20, 2)
	return m
}

func manyPosts(n int) []feed.Post {
	posts := make([]feed.Post, n)
	for i := range posts {
		posts[i] = feed.Post{
			Title:  "Post " + string(rune('A'+i)),
			Date:   "2026-01-02",
			Body:   "A few words about the day.",
			Images: []feed.Image{{Src: "a.jpg", Alt: "one"}, {Src: "b.jpg", Alt: "two"}},
		}
	}
	return posts
}

func TestScrollByRowsClamps(t *testing.T) {
	m := testFeed(t, manyPosts(5))
	require.Positive(t, m.doc.rows())

	m.ScrollByRows(100000)
	assert.InDelta(t, m.docHeightPx()-m.viewHeightPx(), m.scrollY, 0.001)

	m.ScrollByRows(-100000)
	assert.Zero(t, m.scrollY)
}

func TestCurrentSlugFollowsScroll(t *testing.T) {
	m := testFeed(t, manyPosts(5))

	assert.Equal(t, m.slugs[0], m.CurrentSlug())

	// Land exactly on the third post's header row.
	m.ScrollByRows(m.doc.postTops[m.slugs[2]])
	assert.Equal(t, m.slugs[2], m.CurrentSlug())
}

func TestMeasurePayloadFallsBackToContainer(t *testing.T) {
	m := testFeed(t, manyPosts(1))
	key := gallery.ItemKey{Grid: m.slugs[0], Index: 0}

	// Nothing decoded yet: the measurement is the current container height.
	assert.InDelta(t, m.ItemHeight(key), m.MeasurePayload(key), 0.001)
}

func TestImageDecodeUpdatesSpan(t *testing.T) {
	m := testFeed(t, manyPosts(1))
	key := gallery.ItemKey{Grid: m.slugs[0], Index: 0}
	before := m.engine.Item(key).Span

	// A tall 100x200 image at 17 inner cells (136px wide) renders 272px
	// high, well past the 160px fallback.
	m.Update(ImageDecodedMsg{
		Slug:  m.slugs[0],
		Index: 0,
		Src:   "a.jpg",
		Dims:  gallery.ImageDims{Width: 100, Height: 200},
	})

	it := m.engine.Item(key)
	require.True(t, it.Loaded)
	assert.Greater(t, it.Span, before)
}

func TestJumpToPostStartsAnimation(t *testing.T) {
	m := testFeed(t, manyPosts(5))

	cmd := m.JumpToPost(m.slugs[3])
	require.NotNil(t, cmd)
	assert.True(t, m.anim.active)

	// Unknown slug is a no-op.
	assert.Nil(t, m.JumpToPost("nope"))
}

func TestScrollProgressBounds(t *testing.T) {
	m := testFeed(t, manyPosts(5))

	assert.Zero(t, m.ScrollProgress())
	m.JumpBottom()
	assert.InDelta(t, 1.0, m.ScrollProgress(), 0.001)
}
