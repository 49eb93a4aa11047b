// internal/decodeapp/app.go
package decodeapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"dnarle-core/nucleotide"
	"dnarle-core/rle"
	"dnarle/internal/appcore"
	"dnarle/internal/clibase"
	"dnarle/internal/cmdutil"
	"dnarle/internal/decodecli"
	"dnarle/internal/output"
	"dnarle/internal/pipeline"
	"dnarle/internal/version"
	"dnarle/internal/writers"
	"dnarle/pkg/api"
)

const name = "dnarle-decode"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	stderr = cmdutil.SyncWriter(stderr)
	outw := bufio.NewWriter(stdout)
	flush := func(code int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return code
	}

	fs := decodecli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := decodecli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			decodecli.PrintExamples(outw)
			return flush(0)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(0)
	}
	if opts.Schema {
		_, _ = outw.Write(api.DecodedV1Schema)
		return flush(0)
	}

	coreOpts := appcore.Options{
		Inputs:           pipeline.Config{Literals: pipeline.Inline("tokens", opts.Tokens), Files: opts.SeqFiles, Threads: opts.Threads},
		SkipInvalid:      opts.SkipInvalid,
		Quiet:            opts.Quiet,
		NoOutputExitCode: opts.NoOutputExitCode,
	}
	color, profile := cmdutil.ResolveColor(opts.Color, stdout, os.Environ())
	writer := appcore.NewDecodedWriterFactory(opts.Output, writers.Options{
		Header:  opts.Header,
		Pretty:  opts.Pretty,
		Color:   color,
		Profile: profile,
	})
	return appcore.Run[api.DecodedV1](parent, stdout, stderr, coreOpts, Visitor(opts), writer)
}

// Visitor decodes one token stream. Case and whitespace are normalized
// first; malformed streams surface as *pipeline.InputError.
func Visitor(opts decodecli.Options) appcore.VisitorFunc[api.DecodedV1] {
	dec := rle.Decoder{MaxLength: opts.MaxLength}
	return func(in pipeline.Input) (bool, api.DecodedV1, error) {
		tokens := nucleotide.Normalize(in.Raw)
		runs, err := dec.ParseRuns(tokens)
		if err != nil {
			return false, api.DecodedV1{}, &pipeline.InputError{ID: in.ID, Source: in.Source, Err: err}
		}
		seq := rle.Expand(runs)
		return true, output.ToAPIDecoded(in.ID, seq, len(runs), tokens, in.Source, opts.ShowTokens), nil
	}
}
