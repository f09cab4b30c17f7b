// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"

	"golang.org/x/term"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

var isTerminal = term.IsTerminal

// IsTerminalWriter reports whether w writes to a terminal. Writers that are
// not backed by a file descriptor, such as buffers, never are.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isTerminal(int(f.Fd()))
}
