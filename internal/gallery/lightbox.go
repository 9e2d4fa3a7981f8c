package gallery

import "errors"

// ErrNoImages is returned when opening the lightbox for a post without
// images.
var ErrNoImages = errors.New("gallery: post has no images to open")

// Lightbox is the modal image viewer's session. Navigation always wraps, so
// Next and Prev are total for any post with at least one image. The view
// layer routes Escape/ArrowLeft/ArrowRight to the lightbox only while it is
// open; nothing here leaks listeners when closed.
type Lightbox struct {
	open       bool
	postIndex  int
	imageIndex int
	count      int
}

// Open starts a session on post postIndex, which has count images, at the
// clicked image's position. A post with no images is rejected and the
// session stays closed.
func (l *Lightbox) Open(postIndex, count, imageIndex int) error {
	if count <= 0 {
		return ErrNoImages
	}
	if imageIndex < 0 || imageIndex >= count {
		imageIndex = 0
	}
	l.open = true
	l.postIndex = postIndex
	l.imageIndex = imageIndex
	l.count = count
	return nil
}

// Close ends the session. The caller restores normal page scrolling.
func (l *Lightbox) Close() {
	*l = Lightbox{}
}

// IsOpen reports whether a session is active.
func (l *Lightbox) IsOpen() bool { return l.open }

// PostIndex returns the open post's index. Only meaningful while open.
func (l *Lightbox) PostIndex() int { return l.postIndex }

// ImageIndex returns the current image index. Only meaningful while open.
func (l *Lightbox) ImageIndex() int { return l.imageIndex }

// Count returns the open post's image count. Only meaningful while open.
func (l *Lightbox) Count() int { return l.count }

// Next advances to the following image, wrapping past the end.
func (l *Lightbox) Next() {
	if !l.open {
		return
	}
	l.imageIndex = (l.imageIndex + 1) % l.count
}

// Prev steps back to the previous image, wrapping past the start.
func (l *Lightbox) Prev() {
	if !l.open {
		return
	}
	l.imageIndex = (l.imageIndex - 1 + l.count) % l.count
}
