package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
