package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	// DefaultTerminalWidth is used when w is not a terminal.
	DefaultTerminalWidth = 80
	MinTerminalWidth     = 60
	MaxTerminalWidth     = 200
)

// Width returns the column count of the terminal behind w, clamped to
// [MinTerminalWidth, MaxTerminalWidth].
func Width(w io.Writer) int {
	fd, ok := terminalFd(w)
	if !ok {
		return DefaultTerminalWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return min(max(width, MinTerminalWidth), MaxTerminalWidth)
}

// GetTerminalWidth is the width of standard output.
func GetTerminalWidth() int {
	return Width(os.Stdout)
}

// IsWriterTerminal returns true if w is backed by a terminal file descriptor.
func IsWriterTerminal(w io.Writer) bool {
	_, ok := terminalFd(w)
	return ok
}

func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
