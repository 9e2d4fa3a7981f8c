// Package icons provides the glyph set used in post headers and the status
// line, selectable between nerd-font, plain unicode, and none.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Calendar string
	Image    string
	Link     string
	Camera   string
}

var (
	nerdIcons = Icons{
		Calendar: " ", // nf-fa-calendar
		Image:    " ", // nf-fa-image
		Link:     " ", // nf-fa-link
		Camera:   " ", // nf-fa-camera
	}

	unicodeIcons = Icons{
		Calendar: "📅 ",
		Image:    "🖼 ",
		Link:     "🔗 ",
		Camera:   "📷 ",
	}

	noneIcons = Icons{}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatDate prefixes a date label with the calendar icon.
func FormatDate(label string) string {
	return current.Calendar + label
}

// FormatCaption prefixes an image caption with the image icon.
func FormatCaption(caption string) string {
	return current.Image + caption
}

// Link returns the link icon.
func Link() string {
	return current.Link
}

// Camera returns the camera icon.
func Camera() string {
	return current.Camera
}
