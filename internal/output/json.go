// internal/output/json.go
package output

import (
	"io"

	"dnarle-core/analysis"
	"dnarle-core/nucleotide"
	"dnarle/internal/jsonutil"
	"dnarle/pkg/api"
)

// ToAPIReport converts an analysis result to the stable wire schema (v1).
// The input sequence is attached only when withSeq is set.
func ToAPIReport(r analysis.Result, source string, withSeq bool) api.ReportV1 {
	f := r.Frequencies
	v := api.ReportV1{
		ID:             r.ID,
		Encoded:        r.Tokens.String(),
		OriginalLength: r.Efficiency.OriginalLength,
		EncodedLength:  r.Efficiency.EncodedLength,
		Efficient:      r.Efficiency.Efficient(),
		Verdict:        r.Efficiency.Verdict.String(),
		Frequencies: api.FrequenciesV1{
			A: f.Get(nucleotide.A),
			T: f.Get(nucleotide.T),
			C: f.Get(nucleotide.C),
			G: f.Get(nucleotide.G),
		},
		Runs:       r.Runs,
		Entropy:    f.Entropy(),
		SourceFile: source,
	}
	if ratio, ok := r.Efficiency.RoundedRatio(); ok {
		v.Ratio = &ratio
	}
	if r.Runs > 0 {
		v.LongestRun = &api.RunV1{Base: r.LongestRun.Symbol.String(), Count: r.LongestRun.Count}
	}
	if gc, ok := f.GCContent(); ok {
		v.GCContent = &gc
	}
	if withSeq {
		v.Sequence = string(r.Sequence)
	}
	return v
}

// ToAPIDecoded converts a decoded sequence to the stable wire schema (v1).
func ToAPIDecoded(id string, seq nucleotide.Sequence, runs int, tokens, source string, withTokens bool) api.DecodedV1 {
	v := api.DecodedV1{
		ID:         id,
		Sequence:   string(seq),
		Length:     seq.Len(),
		Runs:       runs,
		SourceFile: source,
	}
	if withTokens {
		v.Tokens = tokens
	}
	return v
}

// WriteReportsJSON writes a JSON array; an empty list is "[]", never null.
func WriteReportsJSON(w io.Writer, list []api.ReportV1) error {
	return jsonutil.EncodeList(w, list)
}

func WriteDecodedJSON(w io.Writer, list []api.DecodedV1) error {
	return jsonutil.EncodeList(w, list)
}
