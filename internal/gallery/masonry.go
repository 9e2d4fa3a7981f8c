// Package gallery implements the interactive gallery engine: masonry layout
// spans, the hover-driven expand state machine, the scroll lock guarding
// animated scrolls, the lightbox session, and the scroll progress value.
//
// The package is unit-agnostic: heights and scroll offsets are abstract
// layout units, and all terminal concerns (cells, escape sequences, mouse
// coordinates) live in the view layer. State is tracked by stable item keys
// rather than object identity, since the view may rebuild its render nodes
// on every frame.
package gallery

import "math"

// Params are the masonry grid parameters. A grid lays items into fixed-height
// rows separated by a fixed gap; an item's span is the number of rows its
// measured content covers.
type Params struct {
	RowHeight float64
	RowGap    float64
}

// Fallback grid parameters, used when the active configuration carries no
// usable values.
const (
	DefaultRowHeight = 8
	DefaultRowGap    = 16
)

// DefaultParams returns the fallback grid parameters.
func DefaultParams() Params {
	return Params{RowHeight: DefaultRowHeight, RowGap: DefaultRowGap}
}

// normalized replaces non-positive parameters with the fallback defaults.
func (p Params) normalized() Params {
	if p.RowHeight <= 0 {
		p.RowHeight = DefaultRowHeight
	}
	if p.RowGap <= 0 {
		p.RowGap = DefaultRowGap
	}
	return p
}

// SlotHeight is the vertical distance one span row accounts for: the row
// itself plus the gap that follows it.
func (p Params) SlotHeight() float64 {
	p = p.normalized()
	return p.RowHeight + p.RowGap
}

// SpanHeight returns the visual height of an item spanning n rows.
func (p Params) SpanHeight(n int) float64 {
	if n < 1 {
		n = 1
	}
	p = p.normalized()
	return float64(n)*p.RowHeight + float64(n-1)*p.RowGap
}

// ComputeSpan maps a measured content height to a row span: the nearest
// whole number of row slots. The gap is added to the height before dividing
// because an item spanning n rows also covers the n-1 gaps between them,
// plus the one gap that trails the item.
func ComputeSpan(measured float64, p Params) int {
	p = p.normalized()
	span := int(math.Round((measured + p.RowGap) / (p.RowHeight + p.RowGap)))
	if span < 1 {
		return 1
	}
	return span
}

// ItemKey identifies a gallery item across renders: the owning grid's ID
// (the post slug) plus the item's stable index within the grid.
type ItemKey struct {
	Grid  string
	Index int
}

// Item is the engine's record of one gallery item.
type Item struct {
	Key      ItemKey
	Measured float64 // last reported rendered height of the payload
	Fallback float64 // container height, used until the payload measures
	Loaded   bool    // payload measurement has been reported
	Span     int
	Expanded bool
}

// Height returns the height the span computation should use: the payload's
// rendered height once reported, the container height otherwise.
func (it *Item) Height() float64 {
	if it.Loaded {
		return it.Measured
	}
	return it.Fallback
}

// Grid is an ordered sequence of items sharing one masonry layout.
type Grid struct {
	ID    string
	Items []*Item
}

// Item returns the grid's item at index, or nil if out of range.
func (g *Grid) Item(index int) *Item {
	if index < 0 || index >= len(g.Items) {
		return nil
	}
	return g.Items[index]
}

// Engine tracks every mounted grid and keeps each item's row span consistent
// with its latest measurement. Parameters are read fresh on every
// computation so responsive configuration changes take effect on the next
// recompute rather than after a restart.
type Engine struct {
	params func() Params
	grids  map[string]*Grid
	order  []string
}

// NewEngine creates an engine reading grid parameters from params on each
// computation. A nil params falls back to DefaultParams.
func NewEngine(params func() Params) *Engine {
	if params == nil {
		params = DefaultParams
	}
	return &Engine{
		params: params,
		grids:  make(map[string]*Grid),
	}
}

// Mount registers (or replaces) a grid with the given per-item container
// fallback heights and computes initial spans. Items keep span >= 1 even
// before any payload has measured.
func (e *Engine) Mount(gridID string, fallbacks []float64) *Grid {
	g := &Grid{ID: gridID}
	for i, fb := range fallbacks {
		it := &Item{
			Key:      ItemKey{Grid: gridID, Index: i},
			Fallback: fb,
		}
		it.Span = ComputeSpan(it.Height(), e.params())
		g.Items = append(g.Items, it)
	}
	if _, exists := e.grids[gridID]; !exists {
		e.order = append(e.order, gridID)
	}
	e.grids[gridID] = g
	return g
}

// Grid returns the mounted grid with the given ID, or nil.
func (e *Engine) Grid(gridID string) *Grid {
	return e.grids[gridID]
}

// Grids returns all mounted grids in mount order.
func (e *Engine) Grids() []*Grid {
	out := make([]*Grid, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.grids[id])
	}
	return out
}

// Item returns the tracked item for key, or nil if the grid or index is
// unknown.
func (e *Engine) Item(key ItemKey) *Item {
	g := e.grids[key.Grid]
	if g == nil {
		return nil
	}
	return g.Item(key.Index)
}

// SetMeasured records a payload measurement for one item and recomputes that
// item's span only. This is the load-completion trigger: siblings are left
// untouched.
func (e *Engine) SetMeasured(key ItemKey, height float64) {
	it := e.Item(key)
	if it == nil {
		return
	}
	it.Measured = height
	it.Loaded = true
	it.Span = ComputeSpan(it.Height(), e.params())
}

// SetExpanded flips an item's expanded flag. The span is recomputed from the
// item's current measurement; the caller reports the post-expansion rendered
// height via SetMeasured once the new layout has settled.
func (e *Engine) SetExpanded(key ItemKey, expanded bool) {
	it := e.Item(key)
	if it == nil {
		return
	}
	it.Expanded = expanded
	it.Span = ComputeSpan(it.Height(), e.params())
}

// RecomputeAll recomputes every span in every grid. This is the viewport
// resize trigger; the computation is stateless per item, so redundant calls
// are harmless.
func (e *Engine) RecomputeAll() {
	p := e.params()
	for _, g := range e.grids {
		for _, it := range g.Items {
			it.Span = ComputeSpan(it.Height(), p)
		}
	}
}

// Expanded returns the currently expanded item, or nil. The hover controller
// guarantees at most one across all grids.
func (e *Engine) Expanded() *Item {
	for _, g := range e.grids {
		for _, it := range g.Items {
			if it.Expanded {
				return it
			}
		}
	}
	return nil
}
