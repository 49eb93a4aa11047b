// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"dnarle/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, tool flags).
func UsageCommon(fs *flag.FlagSet, name, tagline, formats string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – %s\n\n", name, tagline)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nFiles:")
		fmt.Fprintln(out, "  -s, --sequences file          FASTA or plain-text file(s) (repeatable), '-' for STDIN, .gz ok")
		fmt.Fprintln(out, "                                Positional arguments are files too (globs expanded)")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string           Output: %s [%s]\n", formats, def("output"))
		fmt.Fprintf(out, "      --pretty                  Human-readable blocks (text) [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --color string            Color pretty blocks: auto | always | never [%s]\n", def("color"))
		fmt.Fprintf(out, "      --no-header               Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-output-exit-code int Exit code when nothing was written [%s]\n", def("no-output-exit-code"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int             Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --skip-invalid            Warn about and skip invalid inputs [%s]\n", def("skip-invalid"))
		fmt.Fprintf(out, "  -q, --quiet                   Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --config file             TOML defaults (also $DNARLE_CONFIG)")
		fmt.Fprintln(out, "      --examples                Show quickstart examples and exit")
		fmt.Fprintln(out, "      --schema                  Print the JSON Schema of json/jsonl output and exit")
		fmt.Fprintln(out, "  -v, --version                 Print version and exit")
		fmt.Fprintln(out, "  -h, --help                    Show this help and exit")

		fmt.Fprintln(out, "\nExit codes: 0 ok, 1 no output, 2 usage or invalid input, 3 I/O error, 130 interrupted")
	}
}
