// Package feedview renders the scrollable journal feed: post text, masonry
// image grids, hover-driven expansion and smooth scrolling. It is the view
// surface the gallery state machines manipulate; all engine offsets are in
// layout units (pixels) and converted to terminal rows only at the edges.
package feedview

import (
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lbatteau/gazette/internal/accent"
	"github.com/lbatteau/gazette/internal/config"
	"github.com/lbatteau/gazette/internal/feed"
	"github.com/lbatteau/gazette/internal/gallery"
	"github.com/lbatteau/gazette/internal/share"
	"github.com/lbatteau/gazette/internal/ui/imgproto"
	"github.com/lbatteau/gazette/internal/ui/render"
)

const (
	cellWidthPx  = imgproto.CellWidthPx
	cellHeightPx = imgproto.CellHeightPx

	// Rows scrolled per wheel notch or j/k press.
	wheelRows = 3

	frameInterval = time.Second / 60
)

// Compile-time check that the model is a valid controller surface.
var _ gallery.Surface = (*Model)(nil)

// FrameMsg drives the animation loop. One is in flight whenever a scroll
// animation or the hover controller needs per-frame servicing.
type FrameMsg time.Time

// OpenLightboxMsg is emitted when a gallery item is clicked.
type OpenLightboxMsg struct {
	PostIndex  int
	ImageIndex int
}

type decodedImage struct {
	img  image.Image
	dims gallery.ImageDims
}

// Model is the feed view.
type Model struct {
	cfg   *config.Config
	posts []feed.Post
	slugs []string
	byIdx map[string]int // slug -> post index

	engine *gallery.Engine
	hover  *gallery.Controller
	rend   *imgproto.Renderer
	covers gallery.CoverStrategy

	width  int // feed width in cells
	height int // feed height in rows
	top    int // first terminal row of the feed area, 1-based

	doc     document
	scrollY float64
	anim    scrollAnim
	now     func() time.Time

	decoded map[string]decodedImage
	dims    map[string][]gallery.ImageDims
	accents map[string]lipgloss.Color

	hovered  gallery.ItemKey
	hasHover bool
	looping  bool
}

// fallbackItemPx is the container height assumed for an image that has not
// decoded yet: enough for a recognizable placeholder without dominating the
// column.
const fallbackItemPx = 160

// New builds the feed view over loaded posts. now may be nil.
func New(cfg *config.Config, posts []feed.Post, now func() time.Time) *Model {
	if now == nil {
		now = time.Now
	}
	m := &Model{
		cfg:     cfg,
		posts:   posts,
		byIdx:   make(map[string]int, len(posts)),
		rend:    imgproto.NewRenderer(),
		covers:  gallery.WidestImageCover,
		now:     now,
		decoded: make(map[string]decodedImage),
		dims:    make(map[string][]gallery.ImageDims),
		accents: make(map[string]lipgloss.Color),
		top:     1,
	}

	m.engine = gallery.NewEngine(func() gallery.Params { return cfg.GalleryParams() })
	for i, p := range posts {
		slug := share.Slugify(p.Title)
		m.slugs = append(m.slugs, slug)
		m.byIdx[slug] = i

		fallbacks := make([]float64, len(p.Images))
		for j := range fallbacks {
			fallbacks[j] = fallbackItemPx
		}
		m.engine.Mount(slug, fallbacks)
		m.dims[slug] = make([]gallery.ImageDims, len(p.Images))
	}

	m.hover = gallery.NewController(m.engine, m, now)
	return m
}

// Init starts the background decode of every post image.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for i, p := range m.posts {
		for j, img := range p.Images {
			cmds = append(cmds, decodeImageCmd(m.cfg.FeedDir, m.slugs[i], j, img.Src))
		}
	}
	return tea.Batch(cmds...)
}

// SetSize resizes the feed area. top is the 1-based terminal row where the
// feed starts, needed to place image bitmaps in absolute coordinates.
func (m *Model) SetSize(width, height, top int) {
	m.width = width
	m.height = height
	m.top = top

	m.engine.RecomputeAll()
	m.remeasureLoaded()
	m.rebuild()
}

// Slug returns the anchor slug of post i.
func (m *Model) Slug(i int) string {
	if i < 0 || i >= len(m.slugs) {
		return ""
	}
	return m.slugs[i]
}

// CurrentSlug returns the slug of the post at the top of the viewport, for
// the copy-link action.
func (m *Model) CurrentSlug() string {
	if len(m.slugs) == 0 {
		return ""
	}
	row := int(m.scrollY / cellHeightPx)
	cur := m.slugs[0]
	for _, slug := range m.slugs {
		top, ok := m.doc.postTops[slug]
		if !ok || top > row {
			break
		}
		cur = slug
	}
	return cur
}

// ScrollProgress reports reading progress through the document in 0..1.
func (m *Model) ScrollProgress() float64 {
	return gallery.Progress(m.scrollY, m.docHeightPx(), m.viewHeightPx())
}

// Image returns the decoded bitmap for post i, image j, if available.
func (m *Model) Image(post, idx int) (image.Image, bool) {
	if post < 0 || post >= len(m.posts) {
		return nil, false
	}
	imgs := m.posts[post].Images
	if idx < 0 || idx >= len(imgs) {
		return nil, false
	}
	d, ok := m.decoded[imgs[idx].Src]
	if !ok {
		return nil, false
	}
	return d.img, true
}

// Accent returns post i's derived accent color, or the default purple
// until a cover image has decoded.
func (m *Model) Accent(post int) lipgloss.Color {
	if post >= 0 && post < len(m.slugs) {
		if c, ok := m.accents[m.slugs[post]]; ok {
			return c
		}
	}
	return accent.Default
}

// Renderer exposes the shared image renderer so the lightbox reuses
// transmitted bitmaps.
func (m *Model) Renderer() *imgproto.Renderer { return m.rend }

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ImageDecodedMsg:
		return m, m.handleDecoded(msg)
	case FrameMsg:
		return m, m.stepFrame()
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleDecoded(msg ImageDecodedMsg) tea.Cmd {
	if msg.Err != nil {
		return nil
	}
	m.decoded[msg.Src] = decodedImage{img: msg.Img, dims: msg.Dims}
	if dd, ok := m.dims[msg.Slug]; ok && msg.Index < len(dd) {
		dd[msg.Index] = msg.Dims
	}

	key := gallery.ItemKey{Grid: msg.Slug, Index: msg.Index}
	m.engine.SetMeasured(key, m.MeasurePayload(key))
	m.refreshAccent(msg.Slug)
	m.rebuild()
	return nil
}

// refreshAccent re-derives the post's accent color from its cover image,
// picked by the cover strategy over the dimensions known so far.
func (m *Model) refreshAccent(slug string) {
	i, ok := m.byIdx[slug]
	if !ok || len(m.posts[i].Images) == 0 {
		return
	}
	cover := m.covers(m.dims[slug])
	src := m.posts[i].Images[cover].Src
	d, ok := m.decoded[src]
	if !ok {
		return
	}
	m.accents[slug] = accent.FromImage(d.img)
}

// stepFrame advances the scroll animation and the hover state machine by
// one frame, then reschedules while anything is still moving.
func (m *Model) stepFrame() tea.Cmd {
	now := m.now()
	off, _ := m.anim.at(now)
	m.scrollY = clampScroll(off, m.docHeightPx(), m.viewHeightPx())

	m.hover.Tick()
	m.hover.Settle()
	m.rebuild()

	if m.hover.Busy() || m.anim.active {
		return m.frameCmd()
	}
	m.looping = false
	return nil
}

func (m *Model) frameCmd() tea.Cmd {
	m.looping = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// ensureLoop returns a frame command unless one is already in flight.
func (m *Model) ensureLoop() tea.Cmd {
	if m.looping {
		return nil
	}
	if m.hover.Busy() || m.anim.active {
		return m.frameCmd()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (*Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ScrollByRows(-wheelRows)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.ScrollByRows(wheelRows)
		return m, nil
	}

	row := int(m.scrollY/cellHeightPx) + msg.Y - (m.top - 1)
	key, hit := m.doc.hitTest(row, msg.X)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if hit {
			if i, ok := m.byIdx[key.Grid]; ok {
				idx := key.Index
				return m, func() tea.Msg {
					return OpenLightboxMsg{PostIndex: i, ImageIndex: idx}
				}
			}
		}
		return m, nil
	}

	// Pointer motion: synthesize enter/leave transitions from the hit-test
	// delta since the last event.
	switch {
	case hit && (!m.hasHover || m.hovered != key):
		if m.hasHover {
			related := key
			m.hover.Leave(m.hovered, &related)
		}
		m.hovered = key
		m.hasHover = true
		m.hover.Enter(key)
	case !hit && m.hasHover:
		m.hover.Leave(m.hovered, nil)
		m.hasHover = false
	}

	m.rebuild()
	return m, m.ensureLoop()
}

// ScrollByRows scrolls the viewport by n terminal rows. Ignored while a
// forced scroll holds the lock.
func (m *Model) ScrollByRows(n int) {
	if m.hover.Lock().Locked() {
		return
	}
	m.anim.stop()
	m.scrollY = clampScroll(m.scrollY+float64(n*cellHeightPx), m.docHeightPx(), m.viewHeightPx())
}

// JumpTop and JumpBottom jump without animation.
func (m *Model) JumpTop() {
	if m.hover.Lock().Locked() {
		return
	}
	m.anim.stop()
	m.scrollY = 0
}

func (m *Model) JumpBottom() {
	if m.hover.Lock().Locked() {
		return
	}
	m.anim.stop()
	m.scrollY = clampScroll(m.docHeightPx(), m.docHeightPx(), m.viewHeightPx())
}

// JumpToPost animates to the post with the given slug. Returns a frame
// command when a scroll actually starts; used for deep links.
func (m *Model) JumpToPost(slug string) tea.Cmd {
	row, ok := m.doc.postTops[slug]
	if !ok || m.hover.Lock().Locked() {
		return nil
	}
	target := clampScroll(float64(row*cellHeightPx), m.docHeightPx(), m.viewHeightPx())
	m.anim.startTo(m.scrollY, target, m.now(), m.scrollDuration())
	return m.ensureLoop()
}

func (m *Model) scrollDuration() time.Duration {
	return time.Duration(m.cfg.ScrollDuration()) * time.Millisecond
}

func (m *Model) docHeightPx() float64  { return float64(m.doc.rows() * cellHeightPx) }
func (m *Model) viewHeightPx() float64 { return float64(m.height * cellHeightPx) }

// colWidth matches the masonry column width used by the document layout.
func (m *Model) colWidth() int {
	columns := m.cfg.Columns()
	if columns < 1 {
		columns = 1
	}
	w := (m.width - gutter*(columns-1)) / columns
	if w < 8 {
		return m.width
	}
	return w
}

// remeasureLoaded refreshes the measured height of every decoded item at
// the current width. Called on resize, where aspect-correct heights change
// with the column width.
func (m *Model) remeasureLoaded() {
	for _, g := range m.engine.Grids() {
		for _, it := range g.Items {
			if !it.Loaded {
				continue
			}
			m.engine.SetMeasured(it.Key, m.MeasurePayload(it.Key))
		}
	}
}

func (m *Model) rebuild() {
	params := m.cfg.GalleryParams()
	m.doc = buildDocument(m.posts, m.slugs, m.engine, params, m.accents, m.width, m.cfg.Columns())
	m.scrollY = clampScroll(m.scrollY, m.docHeightPx(), m.viewHeightPx())
}

// --- gallery.Surface ---

func (m *Model) ScrollY() float64        { return m.scrollY }
func (m *Model) ViewportHeight() float64 { return m.viewHeightPx() }
func (m *Model) DocHeight() float64      { return m.docHeightPx() }

func (m *Model) ItemTop(key gallery.ItemKey) float64 {
	r, ok := m.doc.rectFor(key)
	if !ok {
		return 0
	}
	return float64(r.row * cellHeightPx)
}

func (m *Model) ItemHeight(key gallery.ItemKey) float64 {
	r, ok := m.doc.rectFor(key)
	if !ok {
		return 0
	}
	return float64(r.rows * cellHeightPx)
}

func (m *Model) MeasurePayload(key gallery.ItemKey) float64 {
	it := m.engine.Item(key)
	if it == nil {
		return 0
	}
	i, ok := m.byIdx[key.Grid]
	if !ok || key.Index >= len(m.posts[i].Images) {
		return 0
	}
	d, decoded := m.decoded[m.posts[i].Images[key.Index].Src]
	if !decoded {
		return m.ItemHeight(key)
	}

	inner := m.colWidth() - 2
	if it.Expanded {
		inner = m.width - 2
	}
	return payloadHeight(d.dims, inner)
}

func (m *Model) StartLockedScroll(targetY float64) {
	target := clampScroll(targetY, m.docHeightPx(), m.viewHeightPx())
	m.anim.startTo(m.scrollY, target, m.now(), m.scrollDuration())
}

func (m *Model) RestoreScroll(targetY float64) {
	target := clampScroll(targetY, m.docHeightPx(), m.viewHeightPx())
	m.anim.startTo(m.scrollY, target, m.now(), m.scrollDuration())
}

func (m *Model) PointerItem() (gallery.ItemKey, bool) {
	return m.hovered, m.hasHover
}

// --- rendering ---

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	start := int(m.scrollY / cellHeightPx)
	var b strings.Builder
	for i := range m.height {
		r := start + i
		if i > 0 {
			b.WriteByte('\n')
		}
		if r >= 0 && r < m.doc.rows() {
			b.WriteString(m.doc.lines[r])
		} else {
			b.WriteString(render.EmptyLine(m.width))
		}
	}

	if m.rend.Enabled() {
		b.WriteString(m.imageOverlay(start))
	}
	return b.String()
}

// imageOverlay returns the graphics escape sequences placing decoded
// bitmaps over their placeholder interiors, for every item fully inside
// the viewport. Sequences are cursor-addressed and zero-width, so they ride
// along at the end of the frame.
func (m *Model) imageOverlay(startRow int) string {
	var b strings.Builder
	for _, r := range m.doc.rects {
		if r.row < startRow || r.row+r.rows > startRow+m.height {
			continue
		}
		i, ok := m.byIdx[r.key.Grid]
		if !ok || r.key.Index >= len(m.posts[i].Images) {
			continue
		}
		src := m.posts[i].Images[r.key.Index].Src
		d, ok := m.decoded[src]
		if !ok || r.imgRows <= 0 {
			continue
		}

		innerW := r.width - 2
		b.WriteString(m.rend.Prepare(src, d.img, innerW, r.imgRows))

		screenRow := m.top + (r.row - startRow) + 1 // +1 skips the border row
		screenCol := r.col + 2                      // border plus 1-based origin
		b.WriteString(m.rend.PlaceCmd(src, screenRow, screenCol, innerW, r.imgRows))
	}
	return b.String()
}
