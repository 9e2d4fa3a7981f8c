//go:build !windows

// Package stderr captures writes to file descriptor 2 while the TUI owns
// the terminal. Clipboard helpers (xclip, xsel, wl-copy) are spawned with
// inherited descriptors and print warnings straight to fd 2, which would
// corrupt the rendered frame.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages receives captured stderr lines. The app drains this channel
// into the log file.
var Messages = make(chan string, 100)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start begins capturing stderr output. Must be called early in main(),
// before the program spawns any helper processes. The program can continue
// without capture on error; lines then go to the original stderr.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go func() {
		scanner := bufio.NewScanner(pipeRead)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case Messages <- line:
			default:
				// Channel full, drop the line rather than block the reader.
			}
		}
	}()

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Used for fatal errors that must be visible even while the TUI is up.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
	}
}

// Stop restores the original stderr. Called on program exit.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	pipeRead.Close()

	close(Messages)
	started = false
}
