package gallery

// ImageDims holds an image's natural pixel dimensions, zero until decoded.
type ImageDims struct {
	Width  int
	Height int
}

// CoverStrategy picks which of a post's images is featured as its cover.
// It receives the images' natural dimensions in post order and returns the
// chosen index.
type CoverStrategy func(dims []ImageDims) int

// FirstImageCover always picks the first image, regardless of shape. It is
// the fallback while no dimensions are known yet.
func FirstImageCover(dims []ImageDims) int { return 0 }

// WidestImageCover picks the image with the largest width/height ratio
// among those with known dimensions, falling back to the first image when
// nothing has decoded.
func WidestImageCover(dims []ImageDims) int {
	best := 0
	bestRatio := 0.0
	for i, d := range dims {
		if d.Width <= 0 || d.Height <= 0 {
			continue
		}
		r := float64(d.Width) / float64(d.Height)
		if r > bestRatio {
			bestRatio = r
			best = i
		}
	}
	return best
}
