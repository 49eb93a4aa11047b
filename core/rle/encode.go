// Package rle is a run-length codec for nucleotide sequences.
//
// A token stream is the concatenation of every maximal run of a sequence
// written as the base followed by its decimal count, with no separators:
//
//	AAAAAAAAAAAT  ->  A11T1
//	ATCG          ->  A1T1C1G1
//
// Counts never carry leading zeros, so the format is canonical: each sequence
// has exactly one token stream.
package rle

import (
	"strconv"

	"dnarle-core/nucleotide"
)

// TokenStream is the serialized form produced by Encode.
type TokenStream string

func (t TokenStream) String() string { return string(t) }

// Len returns the encoded length in characters.
func (t TokenStream) Len() int { return len(t) }

// Run is a maximal block of one repeated base.
type Run struct {
	Symbol nucleotide.Symbol
	Count  int
}

// Runs partitions seq into its maximal runs, left to right.
func Runs(seq nucleotide.Sequence) []Run {
	if len(seq) == 0 {
		return nil
	}
	var out []Run
	cur := Run{Symbol: seq.At(0), Count: 1}
	for i := 1; i < len(seq); i++ {
		if s := seq.At(i); s == cur.Symbol {
			cur.Count++
		} else {
			out = append(out, cur)
			cur = Run{Symbol: s, Count: 1}
		}
	}
	return append(out, cur)
}

// Encode returns the token stream for seq. The empty sequence encodes to the
// empty stream.
func Encode(seq nucleotide.Sequence) TokenStream {
	return EncodeRuns(Runs(seq))
}

// EncodeRuns serializes an explicit run list. Runs need not be maximal.
func EncodeRuns(runs []Run) TokenStream {
	size := 0
	for _, r := range runs {
		size += 1 + countDigits(r.Count)
	}
	buf := make([]byte, 0, size)
	for _, r := range runs {
		buf = appendRun(buf, byte(r.Symbol), r.Count)
	}
	return TokenStream(buf)
}

func appendRun(buf []byte, sym byte, n int) []byte {
	buf = append(buf, sym)
	return strconv.AppendInt(buf, int64(n), 10)
}

func countDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
