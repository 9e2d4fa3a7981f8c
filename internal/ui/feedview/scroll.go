package feedview

import (
	"time"
)

// scrollAnim eases the viewport between two vertical offsets. Offsets are
// in layout units (pixels), matching the gallery engine; the view converts
// to terminal rows only when rendering.
type scrollAnim struct {
	active   bool
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

func (a *scrollAnim) startTo(from, to float64, now time.Time, d time.Duration) {
	if d <= 0 {
		d = time.Millisecond
	}
	a.active = true
	a.from = from
	a.to = to
	a.start = now
	a.duration = d
}

// at returns the eased offset for the given time. done reports whether the
// animation has reached its target.
func (a *scrollAnim) at(now time.Time) (offset float64, done bool) {
	if !a.active {
		return a.to, true
	}
	t := float64(now.Sub(a.start)) / float64(a.duration)
	if t >= 1 {
		a.active = false
		return a.to, true
	}
	if t < 0 {
		t = 0
	}
	return a.from + (a.to-a.from)*easeInOutCubic(t), false
}

func (a *scrollAnim) stop() {
	a.active = false
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// clampScroll keeps an offset within the scrollable range of the document.
func clampScroll(y, docHeight, viewHeight float64) float64 {
	max := docHeight - viewHeight
	if max < 0 {
		max = 0
	}
	if y < 0 {
		return 0
	}
	if y > max {
		return max
	}
	return y
}
