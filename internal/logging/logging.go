// Package logging configures the process-wide logger. The TUI owns stdout
// and stderr, so log output goes to a file under the XDG state directory.
package logging

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/lbatteau/gazette/internal/stderr"
)

// Setup directs the default logger to the state file and returns a close
// function. GAZETTE_DEBUG=1 lowers the level to debug.
func Setup() (func(), error) {
	path := filepath.Join(xdg.StateHome, "gazette", "gazette.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(f)
	log.SetReportTimestamp(true)
	log.SetTimeFormat("15:04:05.00")
	if os.Getenv("GAZETTE_DEBUG") == "1" {
		log.SetLevel(log.DebugLevel)
	}

	// Captured fd-2 lines from helper processes end up in the same file.
	go func() {
		for line := range stderr.Messages {
			log.Warn("stderr", "line", line)
		}
	}()

	return func() { f.Close() }, nil
}
