package imgproto

import (
	"image"
	"sync"

	"github.com/nfnt/resize"
)

// Approximate terminal cell metrics in pixels, used to size transmitted
// bitmaps for a cell rectangle. Cells are roughly twice as tall as wide.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// Renderer manages transmitted gallery images. Unlike a single cover image,
// a feed shows many images at several sizes, so transmissions are cached
// per source and size and re-sent only when the target cell rectangle
// changes.
type Renderer struct {
	mu      sync.Mutex
	enabled bool
	nextID  uint32
	entries map[sizedKey]uint32
}

type sizedKey struct {
	src    string
	width  int // cells
	height int // cells
}

// NewRenderer creates a renderer. When the terminal has no image support
// every method degrades to placeholders and empty escape sequences.
func NewRenderer() *Renderer {
	return &Renderer{
		enabled: Supported(),
		entries: make(map[sizedKey]uint32),
	}
}

// Enabled reports whether images are actually drawn.
func (r *Renderer) Enabled() bool { return r.enabled }

// Prepare transmits img scaled for a width x height cell rectangle and
// returns the escape sequence to write, or "" if the image was already
// transmitted at this size (or images are disabled). src keys the cache.
func (r *Renderer) Prepare(src string, img image.Image, width, height int) string {
	if !r.enabled || img == nil || width <= 0 || height <= 0 {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := sizedKey{src: src, width: width, height: height}
	if _, ok := r.entries[key]; ok {
		return ""
	}

	pxW := uint(width * CellWidthPx)   //nolint:gosec // cell counts are small
	pxH := uint(height * CellHeightPx) //nolint:gosec // cell counts are small
	scaled := resize.Thumbnail(pxW, pxH, img, resize.Lanczos3)

	r.nextID++
	id := r.nextID
	cmd, err := Transmit(scaled, id)
	if err != nil {
		return ""
	}

	r.entries[key] = id
	return cmd
}

// PlaceCmd returns the escape sequence positioning a prepared image at the
// given 1-based terminal coordinates, or "" if nothing is prepared for this
// source and size.
func (r *Renderer) PlaceCmd(src string, row, col, width, height int) string {
	if !r.enabled {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.entries[sizedKey{src: src, width: width, height: height}]
	if !ok {
		return ""
	}
	return Place(id, row, col, width, height)
}

// Clear deletes every transmitted image and returns the combined escape
// sequence. Called when the feed reloads or the program exits.
func (r *Renderer) Clear() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out string
	for _, id := range r.entries {
		out += Delete(id)
	}
	r.entries = make(map[sizedKey]uint32)
	return out
}
