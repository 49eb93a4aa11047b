// internal/pipeline/input.go
package pipeline

import (
	"context"
	"fmt"

	"dnarle-core/fasta"
)

// Input is one raw string to process, either given inline or read from a file.
type Input struct {
	ID     string
	Raw    string
	Source string // file path; empty for inline values
}

// Config lists where inputs come from. Literals are emitted first, then every
// record of every file in order.
type Config struct {
	Literals []Input
	Files    []string
	Threads  int // workers for ForEachResult (0 = all CPUs)
}

// Inline names values prefix1, prefix2, ... in order.
func Inline(prefix string, values []string) []Input {
	out := make([]Input, 0, len(values))
	for i, v := range values {
		out = append(out, Input{ID: fmt.Sprintf("%s%d", prefix, i+1), Raw: v})
	}
	return out
}

// InputError marks a failure caused by the content of one input, as opposed
// to I/O or internal failures.
type InputError struct {
	ID     string
	Source string
	Err    error
}

func (e *InputError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s (%s): %v", e.ID, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.ID, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ForEachInput calls emit for every input in order, stopping at the first
// error. Cancellation via ctx is checked between inputs.
func ForEachInput(ctx context.Context, cfg Config, emit func(Input) error) error {
	for _, in := range cfg.Literals {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(in); err != nil {
			return err
		}
	}
	for _, path := range cfg.Files {
		err := fasta.StreamPathCtx(ctx, path, func(r fasta.Record) error {
			return emit(Input{ID: r.ID, Raw: string(r.Seq), Source: path})
		})
		if err != nil {
			return err
		}
	}
	return nil
}
