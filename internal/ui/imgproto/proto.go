// Package imgproto renders post images in the terminal via the Kitty
// graphics protocol, with a plain placeholder fallback for terminals
// without image support.
package imgproto

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"
)

// Kitty protocol requires chunked transmission for large images.
const chunkSize = 4096

// Transmit sends an image to the terminal and returns the escape sequence.
// The image is transmitted but not displayed (a=t); Place shows it later.
func Transmit(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())

	// a=t: transmit only, f=100: PNG, i=ID, q=2: suppress responses
	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		moreChunks := 0
		if end < len(encoded) {
			moreChunks = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, moreChunks)
		} else {
			fmt.Fprintf(&sb, "m=%d;", moreChunks)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}

	return sb.String(), nil
}

// Place returns the escape sequence displaying a previously transmitted
// image. row and col are 1-based terminal coordinates; width and height are
// in cells. Each image reuses placement ID 1 so repositioning replaces the
// previous placement instead of leaving ghosts behind.
func Place(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	// Save cursor, move to position, place image, restore cursor
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// Delete returns the escape sequence removing a transmitted image and all
// its placements.
func Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

// Placeholder returns a blank block for the image area so lipgloss never
// tries to measure raw image escapes.
func Placeholder(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
