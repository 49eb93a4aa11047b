package encodecli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"dnarle/internal/clibase"
	"dnarle/internal/cliutil"
	"dnarle/internal/output"
)

// Samples are built-in example sequences selectable with --sample.
var Samples = []string{
	"AAAATTTTGGGGCCCC",           // high repetition
	"ATCGATCGATCG",               // low repetition
	"AAAAAAAAATTTTTGGGGGGCCCCCC", // very high repetition
}

type Options struct {
	clibase.Common

	// Encode-specific
	Sequences []string // inline sequences
	Samples   []int    // 1-based indexes into Samples
	Verify    bool
	ShowInput bool
}

// sampleList collects repeatable --sample N values.
type sampleList struct{ dst *[]int }

func (s *sampleList) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sampleList) Set(v string) error {
	var n int
	if _, err := fmt.Sscan(v, &n); err != nil {
		return fmt.Errorf("bad sample %q", v)
	}
	*s.dst = append(*s.dst, n)
	return nil
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "run-length encoding for DNA sequences", "text | json | jsonl | yaml | msgpack | fasta",
		func(out io.Writer, def func(string) string) {
			_, _ = fmt.Fprintln(out, "Usage:")
			_, _ = fmt.Fprintf(out, "  %s [options] -S SEQUENCE [-S SEQUENCE ...] [file ...]\n", name)

			_, _ = fmt.Fprintln(out, "\nInput:")
			_, _ = fmt.Fprintln(out, "  -S, --sequence string         Sequence to encode (repeatable; case and spaces ignored)")
			_, _ = fmt.Fprintf(out, "      --sample int              Encode built-in sample 1..%d (repeatable)\n", len(Samples))

			_, _ = fmt.Fprintln(out, "\nEncoding:")
			_, _ = fmt.Fprintf(out, "      --verify                  Decode each result and check it matches the input [%s]\n", def("verify"))
			_, _ = fmt.Fprintf(out, "      --show-input              Include the input sequence in the output [%s]\n", def("show-input"))
		})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for dnarle.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "dnarle", "Encode sequences as base+count runs and report compression efficiency.",
		[]clibase.Example{
			{Cmd: "dnarle -S AAAAAAAAAAAT", Note: "A11T1"},
			{Cmd: "dnarle --pretty --sample 1", Note: "built-in high-repetition sample"},
			{Cmd: "dnarle -t 8 -o fasta reads.fa.gz > reads.rle", Note: "token streams as FASTA"},
			{Cmd: "dnarle-decode reads.rle"},
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

	// Shared flags via clibase
	var c clibase.Common
	noHeader := clibase.Register(fs, &c, cfg)

	// Encode flags
	clibase.StringSlice(fs, &o.Sequences, "sequence to encode (repeatable)", "sequence", "S")
	fs.Var(&sampleList{dst: &o.Samples}, "sample", "encode built-in sample N (repeatable)")
	fs.BoolVar(&o.Verify, "verify", cfg.Encode.Verify, "decode and compare every result")
	fs.BoolVar(&o.ShowInput, "show-input", cfg.Encode.ShowInput, "include the input sequence in the output")

	// Help / examples
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

	if err := clibase.AfterParse(&c, noHeader, posArgs, output.ReportFormats); err != nil {
		return o, err
	}
	for _, n := range o.Samples {
		if n < 1 || n > len(Samples) {
			return o, fmt.Errorf("--sample must be between 1 and %d", len(Samples))
		}
	}
	if len(o.Sequences) == 0 && len(o.Samples) == 0 && len(c.SeqFiles) == 0 {
		return o, errors.New("provide --sequence, --sample, or at least one file")
	}

	o.Common = c
	return o, nil
}
