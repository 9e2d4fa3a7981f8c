package gallery

// Progress maps a scroll offset to a normalized reading-progress value in
// [0,1]. A document no taller than the viewport has nothing to scroll and
// reads as 0.
func Progress(scrollY, docHeight, viewportHeight float64) float64 {
	overflow := docHeight - viewportHeight
	if overflow <= 0 {
		return 0
	}
	p := scrollY / overflow
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
