// Package report renders diagnostic results for the terminal and for
// machine consumption.
package report

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Options configures text rendering.
type Options struct {
	// Color enables ANSI colors. Use ColorEnabled to derive it from the
	// output stream.
	Color bool

	// Recommendations prints the recommendation list under every gap.
	Recommendations bool
}

// ColorEnabled reports whether colored output should be written to w:
// w must be a terminal, noColor must be false and NO_COLOR must be unset.
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
