package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

const defaultBarWidth = 40

// isTerminal is a variable to allow forcing plain output in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func barWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultBarWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < 20 {
		return defaultBarWidth
	}
	return min(width-10, 80)
}
