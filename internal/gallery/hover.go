package gallery

import "time"

// State is the hover-expand machine's phase.
type State int

const (
	// Idle: nothing expanded.
	Idle State = iota
	// Expanding: an item is expanded and the engine is still measuring it
	// or scrolling it into view.
	Expanding
	// Expanded: the expanded item is settled and visible.
	Expanded
	// Collapsing: the pointer has left the expanded item; the collapse is
	// either applied or deferred behind the scroll lock.
	Collapsing
)

// Viewport comfort tuning: an expanded item already within Margin of both
// viewport edges is left alone; otherwise it is scrolled so its top sits
// Bias units below the viewport top.
const (
	DefaultComfortMargin = 80
	DefaultScrollBias    = 120
)

// Surface is the view layer the controller manipulates. All offsets are
// document-absolute layout units. Measurements are only meaningful after a
// settled frame, which is why the controller sequences them behind Settle
// calls instead of reading them inline.
type Surface interface {
	ScrollY() float64
	ViewportHeight() float64
	DocHeight() float64

	// ItemTop and ItemHeight locate an item's bounding box in the current
	// layout.
	ItemTop(key ItemKey) float64
	ItemHeight(key ItemKey) float64

	// MeasurePayload returns the rendered height of the item's visual
	// payload under the current expanded/collapsed styling, falling back to
	// the container height for payloads that never loaded.
	MeasurePayload(key ItemKey) float64

	// StartLockedScroll begins the animated scroll guarded by the lock.
	StartLockedScroll(targetY float64)

	// RestoreScroll animates back to a remembered offset. Not lock-guarded.
	RestoreScroll(targetY float64)

	// PointerItem returns the item currently under the pointer, if any.
	// Consulted when a deferred collapse finally runs.
	PointerItem() (ItemKey, bool)
}

// Session is the ephemeral record of one expansion session: from the first
// hover-enter with nothing expanded until the pointer fully leaves the grid.
// originY holds the scroll offset captured before any expansion in the
// session, so leaving the grid can put the reader back where they were.
type Session struct {
	Key       ItemKey
	Active    bool
	originY   float64
	originSet bool
}

// OriginY returns the captured pre-expansion scroll offset.
func (s Session) OriginY() (float64, bool) {
	return s.originY, s.originSet
}

type settlePhase int

const (
	phaseNone settlePhase = iota
	phaseMeasure
	phaseScroll
)

// Controller owns the hover-expand state machine. It is created once per
// page view and holds the scroll lock and expansion session as fields; the
// view layer feeds it pointer transitions (Enter, Leave), frame ticks
// (Tick), and layout checkpoints (Settle).
//
// Invariant: at most one item across all grids is expanded at any time.
// Collapsing a previously expanded item happens in the same pass as
// expanding its replacement.
type Controller struct {
	engine  *Engine
	surface Surface
	lock    ScrollLock
	now     func() time.Time

	Margin float64
	Bias   float64

	state    State
	session  Session
	pending  ItemKey
	phase    settlePhase
	deferred *ItemKey
}

// NewController wires a controller to its layout engine and view surface.
// now may be nil, in which case time.Now is used.
func NewController(engine *Engine, surface Surface, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		engine:  engine,
		surface: surface,
		now:     now,
		Margin:  DefaultComfortMargin,
		Bias:    DefaultScrollBias,
	}
}

// State returns the machine's current phase.
func (c *Controller) State() State { return c.state }

// Session returns a copy of the current expansion session.
func (c *Controller) Session() Session { return c.session }

// Lock exposes the scroll lock for the view layer's frame loop.
func (c *Controller) Lock() *ScrollLock { return &c.lock }

// Busy reports whether the controller still needs frame ticks: a settle
// sequence is pending, a locked scroll is in flight, or a collapse is
// deferred.
func (c *Controller) Busy() bool {
	return c.phase != phaseNone || c.lock.Locked() || c.deferred != nil
}

// Enter handles a pointer entering item key.
//
// While the lock is engaged for a different item the event is ignored
// entirely, not queued, so the in-flight scroll completes uninterrupted. A
// previously expanded item is collapsed in the same pass, keeping the
// single-expansion invariant. The first enter of a session captures the
// origin scroll offset before any layout changes.
func (c *Controller) Enter(key ItemKey) {
	if c.engine.Item(key) == nil {
		return
	}
	if c.lock.Locked() && !c.lock.HeldFor(key) {
		return
	}
	if c.deferred != nil && *c.deferred == key {
		// Pointer came back before the lock cleared; the deferred collapse
		// is off.
		c.deferred = nil
		c.state = Expanded
	}

	cur := c.engine.Expanded()
	if cur != nil && cur.Key == key {
		return
	}

	if !c.session.originSet {
		c.session.originY = c.surface.ScrollY()
		c.session.originSet = true
	}

	if cur != nil {
		c.engine.SetExpanded(cur.Key, false)
		c.engine.SetMeasured(cur.Key, c.surface.MeasurePayload(cur.Key))
	}

	c.engine.SetExpanded(key, true)
	c.session.Key = key
	c.session.Active = true
	c.state = Expanding
	c.pending = key
	c.phase = phaseMeasure
}

// Leave handles the pointer leaving item key. related is the item the
// pointer moved onto, if any.
//
// If the lock is still scrolling for this very item the collapse is
// deferred until the lock releases (see Tick). Moving to a sibling in the
// same grid is continuous browsing: the item collapses but the session and
// its origin offset stay open for the next enter. Leaving the grid entirely
// collapses, restores the origin scroll offset, and closes the session.
func (c *Controller) Leave(key ItemKey, related *ItemKey) {
	it := c.engine.Item(key)
	if it == nil || !it.Expanded {
		return
	}
	if c.lock.HeldFor(key) {
		k := key
		c.deferred = &k
		c.state = Collapsing
		return
	}
	c.state = Collapsing
	c.collapse(key, related)
}

// Tick advances the lock against the surface's current offset and runs any
// deferred collapse once the lock releases. The view layer calls this on
// every animation frame while Busy.
func (c *Controller) Tick() {
	released := c.lock.Tick(c.now(), c.surface.ScrollY())
	if !released || c.deferred == nil {
		return
	}
	key := *c.deferred
	c.deferred = nil

	it := c.engine.Item(key)
	if it == nil || !it.Expanded {
		// A newer enter already re-expanded something else; the deferred
		// collapse is a no-op.
		return
	}
	if under, ok := c.surface.PointerItem(); ok && under == key {
		// Pointer is back on the item: still hovered, no collapse.
		c.state = Expanded
		return
	}
	var related *ItemKey
	if under, ok := c.surface.PointerItem(); ok {
		related = &under
	}
	c.collapse(key, related)
}

// Settle runs one step of the expand sequence. Expansion needs two settled
// frames: the first to measure the payload at its new full-row size, the
// second to check the item's bounding box and scroll it into view if it
// sits outside the comfortable viewport band.
func (c *Controller) Settle() {
	if c.phase == phaseNone {
		return
	}
	key := c.pending
	it := c.engine.Item(key)
	if it == nil || !it.Expanded {
		c.phase = phaseNone
		return
	}

	switch c.phase {
	case phaseMeasure:
		c.engine.SetMeasured(key, c.surface.MeasurePayload(key))
		c.phase = phaseScroll

	case phaseScroll:
		c.phase = phaseNone
		top := c.surface.ItemTop(key)
		height := c.surface.ItemHeight(key)
		scrollY := c.surface.ScrollY()
		viewH := c.surface.ViewportHeight()

		if top >= scrollY+c.Margin && top+height <= scrollY+viewH-c.Margin {
			c.state = Expanded
			return
		}

		target := top - c.Bias
		maxY := c.surface.DocHeight() - viewH
		if maxY < 0 {
			maxY = 0
		}
		if target < 0 {
			target = 0
		}
		if target > maxY {
			target = maxY
		}

		err := c.lock.ForceScrollTo(target, key, c.now(), c.surface.StartLockedScroll, func() {
			if c.state == Expanding {
				c.state = Expanded
			}
		})
		if err != nil {
			// Another forced scroll is somehow in flight; settle in place.
			c.state = Expanded
		}
	}
}

// collapse clears the expanded flag, recomputes the natural span, and either
// keeps the session open (pointer moved to a sibling in the same grid) or
// restores the origin scroll offset and closes the session.
func (c *Controller) collapse(key ItemKey, related *ItemKey) {
	if c.phase != phaseNone && c.pending == key {
		c.phase = phaseNone
	}
	c.engine.SetExpanded(key, false)
	c.engine.SetMeasured(key, c.surface.MeasurePayload(key))

	if related != nil && related.Grid == key.Grid {
		c.state = Idle
		return
	}
	if c.session.originSet {
		c.surface.RestoreScroll(c.session.originY)
	}
	c.session = Session{}
	c.state = Idle
}
