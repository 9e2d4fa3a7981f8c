package imgproto

import (
	"os"
	"strings"
)

// Supported reports whether the terminal understands the Kitty graphics
// protocol. The GAZETTE_IMAGES environment variable overrides detection:
// "kitty" forces it on, "none" disables image display.
func Supported() bool {
	switch os.Getenv("GAZETTE_IMAGES") {
	case "kitty":
		return true
	case "none":
		return false
	}

	// Contour sets CONTOUR_PROFILE but doesn't support the Kitty protocol.
	// Check early because parent terminal env vars can leak into Contour
	// when launched from a Kitty-capable terminal.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM") == "xterm-kitty" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	// Konsole 22.04+ supports Kitty graphics; KONSOLE_VERSION is "220401"
	// for 22.04.01.
	if version := os.Getenv("KONSOLE_VERSION"); version != "" {
		if len(version) >= 4 && version[:4] >= "2204" {
			return true
		}
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}
