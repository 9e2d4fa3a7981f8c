package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "feed", "lightbox"
}

// All contains all key bindings, used for dispatch and help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},
	{[]string{"y"}, ActionCopyLink, "Copy link to current post", "global"},

	// Feed
	{[]string{"j", "down"}, ActionScrollDown, "Scroll down", "feed"},
	{[]string{"k", "up"}, ActionScrollUp, "Scroll up", "feed"},
	{[]string{"g", "home"}, ActionJumpStart, "Jump to newest post", "feed"},
	{[]string{"G", "end"}, ActionJumpEnd, "Jump to oldest post", "feed"},
	{[]string{"ctrl+d", "pgdown"}, ActionPageDown, "Half page down", "feed"},
	{[]string{"ctrl+u", "pgup"}, ActionPageUp, "Half page up", "feed"},
	{[]string{"enter"}, ActionOpenImages, "Open current post's images", "feed"},

	// Lightbox
	{[]string{"esc"}, ActionLightboxClose, "Close viewer", "lightbox"},
	{[]string{"right", "l"}, ActionLightboxNext, "Next image", "lightbox"},
	{[]string{"left", "h"}, ActionLightboxPrev, "Previous image", "lightbox"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
