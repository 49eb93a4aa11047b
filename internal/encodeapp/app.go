// internal/encodeapp/app.go
package encodeapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"dnarle-core/analysis"
	"dnarle/internal/appcore"
	"dnarle/internal/clibase"
	"dnarle/internal/cmdutil"
	"dnarle/internal/encodecli"
	"dnarle/internal/output"
	"dnarle/internal/pipeline"
	"dnarle/internal/version"
	"dnarle/internal/writers"
	"dnarle/pkg/api"
)

const name = "dnarle"

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

	fs := encodecli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := encodecli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			encodecli.PrintExamples(outw)
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
		_, _ = outw.Write(api.ReportV1Schema)
		return flush(0)
	}

	literals := pipeline.Inline("seq", opts.Sequences)
	for _, n := range opts.Samples {
		literals = append(literals, pipeline.Input{ID: fmt.Sprintf("sample%d", n), Raw: encodecli.Samples[n-1]})
	}

	coreOpts := appcore.Options{
		Inputs:           pipeline.Config{Literals: literals, Files: opts.SeqFiles, Threads: opts.Threads},
		SkipInvalid:      opts.SkipInvalid,
		Quiet:            opts.Quiet,
		NoOutputExitCode: opts.NoOutputExitCode,
	}
	color, profile := cmdutil.ResolveColor(opts.Color, stdout, os.Environ())
	writer := appcore.NewReportWriterFactory(opts.Output, writers.Options{
		Header:  opts.Header,
		Pretty:  opts.Pretty,
		Color:   color,
		Profile: profile,
	})
	return appcore.Run[api.ReportV1](parent, stdout, stderr, coreOpts, Visitor(opts, stderr), writer)
}

// Visitor analyzes one input. Invalid bases surface as *pipeline.InputError.
func Visitor(opts encodecli.Options, stderr io.Writer) appcore.VisitorFunc[api.ReportV1] {
	return func(in pipeline.Input) (bool, api.ReportV1, error) {
		res, err := analysis.AnalyzeRaw(in.ID, in.Raw)
		if err != nil {
			return false, api.ReportV1{}, &pipeline.InputError{ID: in.ID, Source: in.Source, Err: err}
		}
		if res.Sequence.Len() == 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "%s: empty sequence, ratio undefined", in.ID)
		}
		if opts.Verify {
			if err := res.Verify(); err != nil {
				return false, api.ReportV1{}, err
			}
		}
		return true, output.ToAPIReport(res, in.Source, opts.ShowInput), nil
	}
}
