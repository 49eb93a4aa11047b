package decodecli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"dnarle/internal/clibase"
	"dnarle/internal/cliutil"
	"dnarle/internal/output"
)

type Options struct {
	clibase.Common

	// Decode-specific
	Tokens     []string // inline token streams
	MaxLength  int
	ShowTokens bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "decode run-length encoded DNA", "text | json | jsonl | yaml | fasta",
		func(out io.Writer, def func(string) string) {
			_, _ = fmt.Fprintln(out, "Usage:")
			_, _ = fmt.Fprintf(out, "  %s [options] -k TOKENS [-k TOKENS ...] [file ...]\n", name)

			_, _ = fmt.Fprintln(out, "\nInput:")
			_, _ = fmt.Fprintln(out, "  -k, --tokens string           Token stream to decode, e.g. A11T1 (repeatable)")

			_, _ = fmt.Fprintln(out, "\nDecoding:")
			_, _ = fmt.Fprintf(out, "      --max-length int          Reject streams decoding to more bases (0=unlimited) [%s]\n", def("max-length"))
			_, _ = fmt.Fprintf(out, "      --show-tokens             Include the token stream in structured output [%s]\n", def("show-tokens"))
		})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for dnarle-decode.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "dnarle-decode", "Expand base+count token streams back into sequences.",
		[]clibase.Example{
			{Cmd: "dnarle-decode -k A11T1", Note: "AAAAAAAAAAAT"},
			{Cmd: "dnarle -o fasta reads.fa | dnarle-decode -o fasta -", Note: "round trip"},
			{Cmd: "dnarle-decode --max-length 1000000 -o jsonl big.rle"},
		})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	cfg, _, err := clibase.LoadConfig(argv)
	if err != nil {
		return o, err
	}

	var c clibase.Common
	noHeader := clibase.Register(fs, &c, cfg)

	// Decode flags
	clibase.StringSlice(fs, &o.Tokens, "token stream to decode (repeatable)", "tokens", "k")
	fs.IntVar(&o.MaxLength, "max-length", cfg.Decode.MaxLength, "max decoded length (0=unlimited)")
	fs.BoolVar(&o.ShowTokens, "show-tokens", false, "include the token stream in structured output")

	fs.BoolVar(&help, "h", false, "show this help")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version || c.Schema {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(&c, noHeader, posArgs, output.DecodedFormats); err != nil {
		return o, err
	}
	if o.MaxLength < 0 {
		return o, errors.New("--max-length must be ≥ 0")
	}
	if len(o.Tokens) == 0 && len(c.SeqFiles) == 0 {
		return o, errors.New("provide --tokens or at least one file")
	}

	o.Common = c
	return o, nil
}
