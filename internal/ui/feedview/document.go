package feedview

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lbatteau/gazette/internal/feed"
	"github.com/lbatteau/gazette/internal/gallery"
	"github.com/lbatteau/gazette/internal/icons"
	"github.com/lbatteau/gazette/internal/ui/imgproto"
	"github.com/lbatteau/gazette/internal/ui/render"
	"github.com/lbatteau/gazette/internal/ui/styles"
)

// gutter is the spacing between masonry columns, in cells.
const gutter = 1

// itemRect is one gallery item's footprint in the rendered document, used
// for pointer hit-testing and for the bounding-box checks of the hover
// state machine.
type itemRect struct {
	key     gallery.ItemKey
	row     int // first document row
	rows    int // height in rows
	col     int // first cell column
	width   int // width in cells
	imgRows int // interior rows available for the image bitmap
}

// document is the fully laid-out feed: every post stacked vertically with
// its masonry grid, expressed as padded text lines plus the rectangles of
// all gallery items.
type document struct {
	lines    []string
	rects    []itemRect
	postTops map[string]int // slug -> first row of the post header
	width    int
}

func (d *document) rows() int { return len(d.lines) }

// rectFor returns the rectangle of a gallery item, if it is in the layout.
func (d *document) rectFor(key gallery.ItemKey) (itemRect, bool) {
	for _, r := range d.rects {
		if r.key == key {
			return r, true
		}
	}
	return itemRect{}, false
}

// hitTest maps a document position to the gallery item under it.
func (d *document) hitTest(row, col int) (gallery.ItemKey, bool) {
	for _, r := range d.rects {
		if row >= r.row && row < r.row+r.rows && col >= r.col && col < r.col+r.width {
			return r.key, true
		}
	}
	return gallery.ItemKey{}, false
}

// buildDocument lays the whole feed out at the given width. Item heights
// come from the engine's current spans, so a rebuild after any span change
// reflows everything below it.
func buildDocument(posts []feed.Post, slugs []string, engine *gallery.Engine, params gallery.Params, accents map[string]lipgloss.Color, width, columns int) document {
	doc := document{postTops: make(map[string]int), width: width}
	if width < 20 {
		return doc
	}

	th := styles.T()
	for i, post := range posts {
		slug := slugs[i]
		doc.postTops[slug] = len(doc.lines)

		title := th.S().Title.Render(render.Truncate(post.Title, width))
		label := icons.FormatDate(feed.DateLabel(post.When(), time.Now()))
		date := th.S().Muted.Render(render.Truncate(label, width))
		doc.appendLine(render.Row(title, date, width))
		doc.appendLine(render.EmptyLine(width))

		if post.Body != "" {
			for _, line := range render.Wrap(post.Body, width) {
				doc.appendLine(render.Pad(th.S().Base.Render(line), width))
			}
			doc.appendLine(render.EmptyLine(width))
		}

		if g := engine.Grid(slug); g != nil && len(g.Items) > 0 {
			doc.appendGrid(post, g, params, width, columns)
		}

		// Separator tinted with the post's derived accent color.
		sep := th.S().Subtle
		if accent, ok := accents[slug]; ok {
			sep = lipgloss.NewStyle().Foreground(accent)
		}
		doc.appendLine(sep.Render(render.Separator(width)))
		doc.appendLine(render.EmptyLine(width))
	}

	return doc
}

func (d *document) appendLine(line string) {
	d.lines = append(d.lines, line)
}

// appendGrid packs one post's items into masonry columns. Collapsed items
// drop into the currently shortest column; an expanded item breaks the
// columns and takes the full row width, with the columns restarting below
// it.
func (d *document) appendGrid(post feed.Post, g *gallery.Grid, params gallery.Params, width, columns int) {
	if columns < 1 {
		columns = 1
	}
	colWidth := (width - gutter*(columns-1)) / columns
	if colWidth < 8 {
		columns = 1
		colWidth = width
	}

	base := len(d.lines)
	colRows := make([]int, columns)
	var rects []itemRect

	for _, it := range g.Items {
		rows := cellRows(it.Span, params)
		if it.Expanded {
			// Full-row expansion: start below every column.
			start := maxInt(colRows)
			rect := itemRect{
				key:   it.Key,
				row:   base + start,
				rows:  rows,
				col:   0,
				width: width,
			}
			rects = append(rects, rect)
			for c := range colRows {
				colRows[c] = start + rows + 1
			}
			continue
		}

		// Shortest column first.
		col := 0
		for c := 1; c < columns; c++ {
			if colRows[c] < colRows[col] {
				col = c
			}
		}
		rects = append(rects, itemRect{
			key:   it.Key,
			row:   base + colRows[col],
			rows:  rows,
			col:   col * (colWidth + gutter),
			width: colWidth,
		})
		colRows[col] += rows + 1
	}

	// Materialize the grid band and blit each item box into it.
	total := maxInt(colRows)
	if total > 0 {
		total-- // drop the trailing spacer of the tallest column
	}
	for range total {
		d.appendLine(render.EmptyLine(d.width))
	}

	for ri, rect := range rects {
		it := g.Item(rect.key.Index)
		var alt string
		if rect.key.Index < len(post.Images) {
			alt = post.Images[rect.key.Index].Alt
		}
		box, imgRows := renderItemBox(it, alt, rect.width, rect.rows)
		rects[ri].imgRows = imgRows
		d.blit(rect.row, rect.col, box)
	}

	d.rects = append(d.rects, rects...)
}

// cellRows converts a masonry span to terminal rows: the span's visual
// height in layout units divided by the cell height, never below the
// minimum a bordered box needs.
func cellRows(span int, params gallery.Params) int {
	h := params.SpanHeight(span)
	rows := int(h / float64(imgproto.CellHeightPx))
	if rows < 3 {
		return 3
	}
	return rows
}

// renderItemBox draws one gallery cell: a framed block whose interior is a
// blank image placeholder with the alt text on the bottom line. Returns
// the box and the interior rows left for the bitmap.
func renderItemBox(it *gallery.Item, alt string, width, rows int) (string, int) {
	innerW := width - 2
	innerH := rows - 2
	if innerW < 1 || innerH < 1 {
		return "", 0
	}

	imgRows := innerH
	var b strings.Builder
	if imgRows > 1 && alt != "" {
		imgRows--
		b.WriteString(imgproto.Placeholder(innerW, imgRows))
		b.WriteByte('\n')
		b.WriteString(styles.T().S().Subtle.Render(render.TruncateAndPad(icons.FormatCaption(alt), innerW)))
	} else {
		b.WriteString(imgproto.Placeholder(innerW, innerH))
	}

	return styles.ItemFrame(it.Expanded).Render(b.String()), imgRows
}

// blit overlays a block of styled lines onto the document at (row, col),
// preserving the content on either side. ANSI-aware, same approach as the
// lightbox overlay compositing.
func (d *document) blit(row, col int, block string) {
	for i, line := range strings.Split(block, "\n") {
		r := row + i
		if r < 0 || r >= len(d.lines) {
			continue
		}
		base := d.lines[r]
		w := ansi.StringWidth(line)
		left := ansi.Cut(base, 0, col)
		right := ansi.Cut(base, col+w, d.width)
		d.lines[r] = left + line + right
	}
}

func maxInt(vals []int) int {
	m := 0
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}
