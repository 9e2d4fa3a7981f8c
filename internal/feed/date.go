package feed

import (
	"time"

	"github.com/dustin/go-humanize"
)

// recentWindow is how far back a post still gets a relative date label.
const recentWindow = 30 * 24 * time.Hour

// DateLabel formats a publication time for display: relative ("3 days ago")
// while recent, the full date otherwise.
func DateLabel(t, now time.Time) string {
	if now.Sub(t) < recentWindow {
		return humanize.RelTime(t, now, "ago", "from now")
	}
	return t.Format("January 2, 2006")
}
