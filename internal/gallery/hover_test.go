package gallery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeSurface is a scriptable view layer for controller tests. Item tops
// are laid out naively from spans so bounding boxes react to layout changes.
type fakeSurface struct {
	engine *Engine
	params Params

	scrollY float64
	viewH   float64
	docH    float64

	collapsedH map[ItemKey]float64
	expandedH  map[ItemKey]float64

	pointer    *ItemKey
	instant    bool // locked scrolls land immediately
	lockStarts []float64
	restores   []float64
}

func newFakeSurface(e *Engine) *fakeSurface {
	return &fakeSurface{
		engine:     e,
		params:     DefaultParams(),
		viewH:      600,
		docH:       3000,
		collapsedH: make(map[ItemKey]float64),
		expandedH:  make(map[ItemKey]float64),
		instant:    true,
	}
}

func (s *fakeSurface) ScrollY() float64        { return s.scrollY }
func (s *fakeSurface) ViewportHeight() float64 { return s.viewH }
func (s *fakeSurface) DocHeight() float64      { return s.docH }

func (s *fakeSurface) ItemTop(key ItemKey) float64 {
	// Stack items of the key's grid vertically by span height.
	top := 0.0
	g := s.engine.Grid(key.Grid)
	for _, it := range g.Items {
		if it.Key == key {
			break
		}
		top += s.params.SpanHeight(it.Span) + s.params.RowGap
	}
	return top
}

func (s *fakeSurface) ItemHeight(key ItemKey) float64 {
	it := s.engine.Item(key)
	return s.params.SpanHeight(it.Span)
}

func (s *fakeSurface) MeasurePayload(key ItemKey) float64 {
	it := s.engine.Item(key)
	if it.Expanded {
		if h, ok := s.expandedH[key]; ok {
			return h
		}
	}
	if h, ok := s.collapsedH[key]; ok {
		return h
	}
	return it.Fallback
}

func (s *fakeSurface) StartLockedScroll(target float64) {
	s.lockStarts = append(s.lockStarts, target)
	if s.instant {
		s.scrollY = target
	}
}

func (s *fakeSurface) RestoreScroll(target float64) {
	s.restores = append(s.restores, target)
	s.scrollY = target
}

func (s *fakeSurface) PointerItem() (ItemKey, bool) {
	if s.pointer == nil {
		return ItemKey{}, false
	}
	return *s.pointer, true
}

func key(grid string, i int) ItemKey { return ItemKey{Grid: grid, Index: i} }

// settle runs both settle checkpoints of a pending expansion.
func settle(c *Controller) {
	c.Settle()
	c.Settle()
}

func expandedKeys(e *Engine) []ItemKey {
	var keys []ItemKey
	for _, g := range e.Grids() {
		for _, it := range g.Items {
			if it.Expanded {
				keys = append(keys, it.Key)
			}
		}
	}
	return keys
}

func newTestController(heights []float64) (*Controller, *Engine, *fakeSurface) {
	e := NewEngine(nil)
	e.Mount("post", heights)
	s := newFakeSurface(e)
	for i, h := range heights {
		s.collapsedH[key("post", i)] = h
		s.expandedH[key("post", i)] = h * 2 // full-row payload renders taller
	}
	c := NewController(e, s, time.Now)
	return c, e, s
}

func TestHoverSingleExpansionInvariant(t *testing.T) {
	c, e, _ := newTestController([]float64{200, 400, 150, 600, 300})

	c.Enter(key("post", 0))
	settle(c)
	c.Tick()
	require.Equal(t, []ItemKey{key("post", 0)}, expandedKeys(e))

	// Hovering item 2 while item 0 is expanded collapses 0 and expands 2 in
	// the same settled pass.
	c.Enter(key("post", 2))
	require.Equal(t, []ItemKey{key("post", 2)}, expandedKeys(e))

	// Item 0 is back at its natural span.
	require.Equal(t, 9, e.Item(key("post", 0)).Span)

	settle(c)
	require.Equal(t, []ItemKey{key("post", 2)}, expandedKeys(e))

	// Arbitrary enter sequences never yield two expanded items.
	sequence := []int{4, 1, 1, 3, 0, 2, 4}
	for _, i := range sequence {
		c.Enter(key("post", i))
		require.Len(t, expandedKeys(e), 1, "after enter on %d", i)
		settle(c)
		c.Tick()
		require.Len(t, expandedKeys(e), 1, "after settle of %d", i)
	}
}

func TestHoverExpandMeasuresThenScrolls(t *testing.T) {
	c, e, s := newTestController([]float64{200, 400, 150, 600})
	s.scrollY = 0

	// Item 3 sits far below the viewport.
	c.Enter(key("post", 3))
	require.Equal(t, Expanding, c.State())

	// First settle: span recomputed from the expanded rendered height.
	c.Settle()
	require.Equal(t, ComputeSpan(1200, DefaultParams()), e.Item(key("post", 3)).Span)

	// Second settle: out-of-view item triggers a locked scroll biased above
	// the item top.
	c.Settle()
	require.Len(t, s.lockStarts, 1)
	wantTarget := s.ItemTop(key("post", 3)) - DefaultScrollBias
	require.Equal(t, wantTarget, s.lockStarts[0])
	require.True(t, c.Lock().Locked())

	c.Tick()
	require.False(t, c.Lock().Locked())
	require.Equal(t, Expanded, c.State())
}

func TestHoverNoScrollWhenComfortablyVisible(t *testing.T) {
	c, _, s := newTestController([]float64{80, 80})
	s.viewH = 2000
	s.scrollY = 0
	s.expandedH[key("post", 1)] = 160

	// Item 1 sits 96 units down, inside the comfortable band of a tall
	// viewport: no scroll is issued.
	c.Enter(key("post", 1))
	settle(c)
	require.Empty(t, s.lockStarts)
	require.Equal(t, Expanded, c.State())
}

func TestHoverScrollTargetClampsAtTop(t *testing.T) {
	c, _, s := newTestController([]float64{60})
	s.viewH = 2000
	s.scrollY = 0
	s.expandedH[key("post", 0)] = 120

	// Item 0 starts at the document top, inside the 80-unit margin, so a
	// scroll is issued; its -120 bias clamps at offset zero.
	c.Enter(key("post", 0))
	settle(c)
	require.Len(t, s.lockStarts, 1)
	require.Equal(t, 0.0, s.lockStarts[0])
}

func TestHoverScrollTargetClamped(t *testing.T) {
	c, _, s := newTestController([]float64{200, 400, 150, 600})
	s.viewH = 300
	s.docH = 900
	s.scrollY = 0

	c.Enter(key("post", 3))
	settle(c)
	require.Len(t, s.lockStarts, 1)
	require.LessOrEqual(t, s.lockStarts[0], s.docH-s.viewH, "bottom of document must not be overshot")
}

func TestHoverEnterIgnoredWhileLockedForOther(t *testing.T) {
	c, e, s := newTestController([]float64{200, 400, 150, 600})
	s.instant = false // keep the scroll in flight

	c.Enter(key("post", 3))
	settle(c)
	require.True(t, c.Lock().HeldFor(key("post", 3)))

	// Enters for other items are dropped entirely while the lock is held.
	c.Enter(key("post", 0))
	require.Equal(t, []ItemKey{key("post", 3)}, expandedKeys(e))
	require.True(t, c.Session().Active)
	require.Equal(t, key("post", 3), c.Session().Key)
}

func TestHoverLeaveRestoresOrigin(t *testing.T) {
	c, _, s := newTestController([]float64{200, 400, 150, 600})
	s.scrollY = 250

	c.Enter(key("post", 1))
	origin, ok := c.Session().OriginY()
	require.True(t, ok)
	require.Equal(t, 250.0, origin)

	settle(c)
	c.Tick()

	// Pointer leaves the grid entirely.
	c.Leave(key("post", 1), nil)
	require.Equal(t, Idle, c.State())
	require.Equal(t, []float64{250}, s.restores)
	require.False(t, c.Session().Active)
	_, ok = c.Session().OriginY()
	require.False(t, ok, "session origin must be cleared")
}

func TestHoverContinuousBrowsingKeepsSession(t *testing.T) {
	c, e, s := newTestController([]float64{200, 400, 150, 600})
	s.scrollY = 100

	c.Enter(key("post", 0))
	settle(c)
	c.Tick()

	// Moving to a sibling in the same grid: collapse but no scroll restore,
	// session stays open with the original origin.
	related := key("post", 1)
	c.Leave(key("post", 0), &related)
	require.Empty(t, s.restores)
	require.Empty(t, expandedKeys(e))

	c.Enter(key("post", 1))
	origin, ok := c.Session().OriginY()
	require.True(t, ok)
	require.Equal(t, 100.0, origin, "origin captured before the first expansion survives")

	settle(c)
	c.Tick()
	c.Leave(key("post", 1), nil)
	require.Equal(t, []float64{100}, s.restores)
}

func TestHoverDeferredCollapseWaitsForLock(t *testing.T) {
	c, e, s := newTestController([]float64{200, 400, 150, 600})
	s.instant = false

	c.Enter(key("post", 3))
	settle(c)
	require.True(t, c.Lock().Locked())

	// Pointer leaves while the lock still scrolls for this item: collapse
	// is deferred, the item stays expanded.
	c.Leave(key("post", 3), nil)
	require.Equal(t, Collapsing, c.State())
	require.Equal(t, []ItemKey{key("post", 3)}, expandedKeys(e))

	// Lock still in flight: nothing happens.
	c.Tick()
	require.Equal(t, []ItemKey{key("post", 3)}, expandedKeys(e))

	// Scroll lands; pointer is elsewhere, so the deferred collapse runs and
	// the origin offset is restored.
	s.scrollY = c.Lock().Target()
	c.Tick()
	require.Empty(t, expandedKeys(e))
	require.Equal(t, Idle, c.State())
	require.Len(t, s.restores, 1)
}

func TestHoverDeferredCollapseCancelledByReenter(t *testing.T) {
	c, e, s := newTestController([]float64{200, 400, 150, 600})
	s.instant = false

	c.Enter(key("post", 3))
	settle(c)
	c.Leave(key("post", 3), nil)

	// Pointer comes back to the same item before the lock clears: the
	// deferred collapse is cancelled.
	c.Enter(key("post", 3))

	s.scrollY = c.Lock().Target()
	c.Tick()
	require.Equal(t, []ItemKey{key("post", 3)}, expandedKeys(e))
	require.Equal(t, Expanded, c.State())
}

func TestHoverDeferredCollapseStillHoveredCheck(t *testing.T) {
	c, e, s := newTestController([]float64{200, 400, 150, 600})
	s.instant = false

	c.Enter(key("post", 3))
	settle(c)
	c.Leave(key("post", 3), nil)

	// At lock release the pointer is reported back inside the item: treat
	// as still hovered, no collapse.
	p := key("post", 3)
	s.pointer = &p
	s.scrollY = c.Lock().Target()
	c.Tick()
	require.Equal(t, []ItemKey{key("post", 3)}, expandedKeys(e))
	require.Equal(t, Expanded, c.State())
}

func TestHoverDeferredCollapseSupersededNoOp(t *testing.T) {
	c, e, s := newTestController([]float64{200, 400, 150, 600})
	s.instant = false

	c.Enter(key("post", 3))
	settle(c)
	c.Leave(key("post", 3), nil)

	// The newest enter is authoritative: by the time the lock clears, the
	// deferred target has already been collapsed in favor of a new item, so
	// the deferral must not touch the new expansion.
	e.SetExpanded(key("post", 3), false)
	e.SetExpanded(key("post", 1), true)

	s.scrollY = c.Lock().Target()
	c.Tick()
	require.Equal(t, []ItemKey{key("post", 1)}, expandedKeys(e))
}

func TestHoverLeaveOfUnexpandedItemIgnored(t *testing.T) {
	c, _, s := newTestController([]float64{200, 400})

	c.Leave(key("post", 0), nil)
	require.Equal(t, Idle, c.State())
	require.Empty(t, s.restores)
}

func TestHoverCrossGridExpansion(t *testing.T) {
	e := NewEngine(nil)
	e.Mount("a", []float64{200, 300})
	e.Mount("b", []float64{150})
	s := newFakeSurface(e)
	c := NewController(e, s, time.Now)

	c.Enter(key("a", 0))
	settle(c)
	c.Tick()

	// Expanding an item in another grid collapses the one in the first.
	c.Enter(key("b", 0))
	require.Equal(t, []ItemKey{key("b", 0)}, expandedKeys(e))
}
