package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// colorize wraps s in an ANSI color when w is a terminal.
func colorize(w io.Writer, color, s string) string {
	f, ok := w.(*os.File)
	if !ok {
		return s
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return s
	}
	return color + s + ansiReset
}

func printResult(w io.Writer, s string) {
	fmt.Fprintln(w, colorize(w, ansiGreen, s))
}

func printNote(w io.Writer, s string) {
	fmt.Fprintln(w, colorize(w, ansiYellow, s))
}
