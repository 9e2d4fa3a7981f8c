// Package keymap defines key bindings and action dispatch for the
// application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit     Action = "quit"
	ActionHelp     Action = "help"
	ActionCopyLink Action = "copy_link"

	// Feed navigation
	ActionScrollDown Action = "scroll_down"
	ActionScrollUp   Action = "scroll_up"
	ActionJumpStart  Action = "jump_start"
	ActionJumpEnd    Action = "jump_end"
	ActionPageDown   Action = "page_down"
	ActionPageUp     Action = "page_up"
	ActionOpenImages Action = "open_images"

	// Lightbox
	ActionLightboxClose Action = "lightbox_close"
	ActionLightboxNext  Action = "lightbox_next"
	ActionLightboxPrev  Action = "lightbox_prev"
)
