// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"dnarle/internal/cliutil"
	"dnarle/internal/cmdutil"
	"dnarle/internal/config"
)

// Getenv is consulted for $DNARLE_CONFIG; tests may replace it.
var Getenv = os.Getenv

// Common holds CLI fields shared by dnarle and dnarle-decode.
type Common struct {
	// Input
	SeqFiles []string

	// Output
	Output           string
	Header           bool
	Pretty           bool
	Color            string
	NoOutputExitCode int

	// Performance
	Threads int

	// Misc
	SkipInvalid bool
	Quiet       bool
	Config      string
	Version     bool
	Schema      bool
}

// sliceValue appends each value to a *[]string (for repeatable flags).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// StringSlice registers a repeatable string flag under every name.
func StringSlice(fs *flag.FlagSet, dst *[]string, usage string, names ...string) {
	v := &sliceValue{dst: dst}
	for _, n := range names {
		fs.Var(v, n, usage)
	}
}

// LoadConfig finds --config in argv (or $DNARLE_CONFIG) before flags are
// registered, so the file can supply flag defaults.
func LoadConfig(argv []string) (config.File, string, error) {
	path, _ := cliutil.LookupFlag(argv, "config")
	return config.Resolve(path, Getenv)
}

// Register wires shared flags onto fs using cfg for defaults, and returns a
// pointer to the "no-header" bool; AfterParse turns it into Common.Header.
func Register(fs *flag.FlagSet, c *Common, cfg config.File) *bool {
	// Inputs
	StringSlice(fs, &c.SeqFiles, "FASTA or plain-text file(s) (repeatable) or '-'", "sequences", "s")

	// Output
	fs.StringVar(&c.Output, "output", cfg.Output, "output format")
	fs.StringVar(&c.Output, "o", cfg.Output, "alias of --output")
	fs.BoolVar(&c.Pretty, "pretty", cfg.Pretty, "human-readable blocks instead of TSV (text)")
	fs.StringVar(&c.Color, "color", cfg.Color, "color pretty output: auto | always | never")
	noHeader := cfg.NoHeader
	fs.BoolVar(&noHeader, "no-header", cfg.NoHeader, "suppress header line")
	exit := 1
	if cfg.NoOutputExitCode != nil {
		exit = *cfg.NoOutputExitCode
	}
	fs.IntVar(&c.NoOutputExitCode, "no-output-exit-code", exit, "exit code when nothing was written")

	// Performance
	fs.IntVar(&c.Threads, "threads", cfg.Threads, "worker threads (0=all CPUs)")
	fs.IntVar(&c.Threads, "t", cfg.Threads, "alias of --threads")

	// Misc
	fs.BoolVar(&c.SkipInvalid, "skip-invalid", cfg.SkipInvalid, "warn about and skip invalid inputs")
	fs.BoolVar(&c.Quiet, "quiet", cfg.Quiet, "suppress non-essential warnings")
	fs.BoolVar(&c.Quiet, "q", cfg.Quiet, "alias of --quiet")
	fs.StringVar(&c.Config, "config", "", "TOML file with default settings")
	fs.BoolVar(&c.Version, "v", false, "print version and exit")
	fs.BoolVar(&c.Version, "version", false, "print version and exit")
	fs.BoolVar(&c.Schema, "schema", false, "print the JSON Schema of json/jsonl output and exit")

	return &noHeader
}

// AfterParse finalizes header and expands positionals, then runs shared validation.
func AfterParse(c *Common, noHeader *bool, posArgs []string, formats []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	return Validate(c, formats)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common, formats []string) error {
	if !slices.Contains(formats, c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(formats, " | "))
	}
	if !slices.Contains(cmdutil.ColorModes, c.Color) {
		return fmt.Errorf("invalid --color %q (want %s)", c.Color, strings.Join(cmdutil.ColorModes, " | "))
	}
	if c.NoOutputExitCode < 0 || c.NoOutputExitCode > 255 {
		return errors.New("--no-output-exit-code must be between 0 and 255")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	stdin := 0
	for _, f := range c.SeqFiles {
		if f == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("stdin ('-') may be given only once")
	}
	return nil
}
