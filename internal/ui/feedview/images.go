package feedview

import (
	"image"
	_ "image/gif"  // GIF decoder for post images
	_ "image/jpeg" // JPEG decoder for post images
	_ "image/png"  // PNG decoder for post images
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbatteau/gazette/internal/gallery"
)

// ImageDecodedMsg carries the result of a background image decode. Err is
// set when the file could not be read or decoded; the item then keeps its
// fallback container size.
type ImageDecodedMsg struct {
	Slug  string
	Index int
	Src   string
	Img   image.Image
	Dims  gallery.ImageDims
	Err   error
}

// decodeImageCmd loads and decodes one post image off the Update loop.
func decodeImageCmd(dir, slug string, index int, src string) tea.Cmd {
	return func() tea.Msg {
		msg := ImageDecodedMsg{Slug: slug, Index: index, Src: src}

		path := src
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, src)
		}
		f, err := os.Open(path)
		if err != nil {
			msg.Err = err
			return msg
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			msg.Err = err
			return msg
		}

		b := img.Bounds()
		msg.Img = img
		msg.Dims = gallery.ImageDims{Width: b.Dx(), Height: b.Dy()}
		return msg
	}
}

// payloadHeight is the rendered pixel height of an image drawn at the given
// cell width, preserving its aspect ratio.
func payloadHeight(dims gallery.ImageDims, widthCells int) float64 {
	if dims.Width <= 0 || dims.Height <= 0 || widthCells <= 0 {
		return 0
	}
	wpx := float64(widthCells * cellWidthPx)
	return wpx * float64(dims.Height) / float64(dims.Width)
}
