// Package accent derives a terminal accent color from an image, used to
// tint a post's border and lightbox chrome to match its photos.
package accent

import (
	"image"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Luminance clamp for readable borders on a dark background.
const (
	minLightness = 0.45
	maxLightness = 0.80
)

// sampleStride keeps color averaging cheap on large photos.
const sampleStride = 8

// Default is the accent used before any image has decoded.
var Default = lipgloss.Color("#a78bfa")

// FromImage averages the image's pixels in Lab space and clamps the
// lightness into a terminal-friendly band. Returns Default for an empty
// image.
func FromImage(img image.Image) lipgloss.Color {
	if img == nil {
		return Default
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return Default
	}

	var l, a, b float64
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += sampleStride {
		for x := bounds.Min.X; x < bounds.Max.X; x += sampleStride {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue // fully transparent pixel
			}
			cl, ca, cb := c.Lab()
			l += cl
			a += ca
			b += cb
			n++
		}
	}
	if n == 0 {
		return Default
	}

	l /= float64(n)
	a /= float64(n)
	b /= float64(n)
	if l < minLightness {
		l = minLightness
	}
	if l > maxLightness {
		l = maxLightness
	}

	return lipgloss.Color(colorful.Lab(l, a, b).Clamped().Hex())
}
