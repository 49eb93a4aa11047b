// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrPrintedAndExitOK is returned by ParseArgs for --examples. The app
// prints the examples and exits 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Example is one quickstart command line. Note is optional.
type Example struct {
	Cmd  string
	Note string
}

// PrintExamples writes the --examples page: a one-line summary, the commands
// with their notes aligned, and pointers to --help and --schema.
func PrintExamples(out io.Writer, name, summary string, examples []Example) {
	if out == nil {
		return
	}
	width := 0
	for _, ex := range examples {
		width = max(width, len(ex.Cmd))
	}
	_, _ = fmt.Fprintf(out, "%s: quickstart\n\n%s\n\nExamples:\n", name, summary)
	for _, ex := range examples {
		if ex.Note == "" {
			_, _ = fmt.Fprintf(out, "  %s\n", ex.Cmd)
			continue
		}
		_, _ = fmt.Fprintf(out, "  %s%s  # %s\n", ex.Cmd, strings.Repeat(" ", width-len(ex.Cmd)), ex.Note)
	}
	_, _ = fmt.Fprintln(out, "\nRun with --help for all flags, --schema for the json/jsonl layout.")
}
