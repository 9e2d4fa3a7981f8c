package app

// CopyLinkResultMsg reports the outcome of copying a post link to the
// clipboard.
type CopyLinkResultMsg struct {
	Link string
	Err  error
}

// StatusExpiredMsg clears the transient status line.
type StatusExpiredMsg struct{}
