package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// useColor decides whether to emit ANSI escapes for w. Color is used only
// when w is an interactive terminal and NO_COLOR is unset.
func useColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Fprint renders errors one per line. User diagnostics get an "error:"
// prefix, invariant violations an "internal error:" prefix; both are
// colorized when w is a terminal.
func Fprint(w io.Writer, errs ...error) {
	color := useColor(w)
	for _, err := range errs {
		if err == nil {
			continue
		}
		if IsInternal(err) {
			// InternalError labels itself; just tint it.
			if color {
				fmt.Fprintf(w, "%s%s%s\n", ansiYellow, err.Error(), ansiReset)
			} else {
				fmt.Fprintln(w, err.Error())
			}
			continue
		}
		if color {
			fmt.Fprintf(w, "%serror:%s %s\n", ansiRed, ansiReset, err.Error())
		} else {
			fmt.Fprintf(w, "error: %s\n", err.Error())
		}
	}
}
