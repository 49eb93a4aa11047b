// Package analysis bundles the encode path: a validated sequence, its token
// stream, base frequencies and the efficiency verdict.
package analysis

import (
	"fmt"

	"dnarle-core/nucleotide"
	"dnarle-core/rle"
	"dnarle-core/stats"
)

// Result is everything derived from one input sequence.
type Result struct {
	ID          string
	Sequence    nucleotide.Sequence
	Tokens      rle.TokenStream
	Runs        int
	LongestRun  rle.Run
	Frequencies stats.FrequencyTable
	Efficiency  stats.EfficiencyReport
}

// Analyze encodes seq and derives its statistics.
func Analyze(id string, seq nucleotide.Sequence) Result {
	runs := rle.Runs(seq)
	tokens := rle.EncodeRuns(runs)
	res := Result{
		ID:          id,
		Sequence:    seq,
		Tokens:      tokens,
		Frequencies: stats.Count(seq),
		Efficiency:  stats.Classify(seq.Len(), tokens.Len()),
	}
	for _, r := range runs {
		res.Runs++
		if r.Count > res.LongestRun.Count {
			res.LongestRun = r
		}
	}
	return res
}

// AnalyzeRaw normalizes and validates raw before analyzing it.
func AnalyzeRaw(id, raw string) (Result, error) {
	seq, err := nucleotide.Parse(raw)
	if err != nil {
		return Result{}, err
	}
	return Analyze(id, seq), nil
}

// Verify decodes the token stream and checks it reproduces the sequence.
// Decoding stops as soon as the output would outgrow the input.
func (r Result) Verify() error {
	got, err := rle.Decoder{MaxLength: max(r.Sequence.Len(), 1)}.Decode(string(r.Tokens))
	if err != nil {
		return fmt.Errorf("verify %s: %w", r.ID, err)
	}
	if got != r.Sequence {
		return fmt.Errorf("verify %s: decoded length %d does not reproduce input of length %d", r.ID, got.Len(), r.Sequence.Len())
	}
	return nil
}
