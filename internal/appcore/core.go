// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"dnarle/internal/cmdutil"
	"dnarle/internal/pipeline"
	"dnarle/internal/writers"
)

type Options struct {
	Inputs pipeline.Config

	SkipInvalid      bool
	Quiet            bool
	NoOutputExitCode int
}

// VisitorFunc turns one input into an output. With Inputs.Threads > 1 it is
// called from several goroutines at once.
type VisitorFunc[T any] func(pipeline.Input) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run drives inputs through visit into the writer and maps the outcome to an
// exit code: 0 ok, 2 invalid input, 3 I/O or internal failure, 130 cancelled,
// and o.NoOutputExitCode when nothing was written.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	inCh, writeErr := wf.Start(outw, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	skipped := 0
	total, perr := cmdutil.RunStream[T](
		ctx,
		o.Inputs,
		visit,
		func(_ pipeline.Input, err error) error {
			var ie *pipeline.InputError
			if o.SkipInvalid && errors.As(err, &ie) {
				cmdutil.Warnf(stderr, o.Quiet, "skipping %v", ie)
				skipped++
				return nil
			}
			return err
		},
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if skipped > 0 {
		cmdutil.Warnf(stderr, o.Quiet, "skipped %d invalid input(s)", skipped)
	}
	if perr != nil {
		var ie *pipeline.InputError
		switch {
		case errors.Is(perr, context.Canceled):
			return 130
		case errors.As(perr, &ie):
			cmdutil.Errorf(stderr, "%v", ie)
			return 2
		}
		cmdutil.Errorf(stderr, "%v", perr)
		return 3
	}
	if total == 0 {
		return o.NoOutputExitCode
	}
	return 0
}
