// core/stats/frequency.go
package stats

import (
	"math"

	"dnarle-core/nucleotide"
)

// FrequencyTable holds per-base counts indexed in nucleotide.Alphabet order
// (A, T, C, G). All four entries are always present.
type FrequencyTable [4]int

// Count tallies each base of seq in one pass.
func Count(seq nucleotide.Sequence) FrequencyTable {
	var f FrequencyTable
	for i := 0; i < len(seq); i++ {
		if k := seq.At(i).Index(); k >= 0 {
			f[k]++
		}
	}
	return f
}

// Get returns the count for s, or 0 for a non-base.
func (f FrequencyTable) Get(s nucleotide.Symbol) int {
	if k := s.Index(); k >= 0 {
		return f[k]
	}
	return 0
}

// Total is the sum of all counts, i.e. the sequence length.
func (f FrequencyTable) Total() int {
	return f[0] + f[1] + f[2] + f[3]
}

// Each visits the bases in canonical order.
func (f FrequencyTable) Each(fn func(nucleotide.Symbol, int)) {
	for i, s := range nucleotide.Alphabet {
		fn(s, f[i])
	}
}

// GCContent returns the fraction of G and C bases; ok is false for an empty table.
func (f FrequencyTable) GCContent() (gc float64, ok bool) {
	total := f.Total()
	if total == 0 {
		return 0, false
	}
	return float64(f.Get(nucleotide.G)+f.Get(nucleotide.C)) / float64(total), true
}

// Entropy returns the Shannon entropy of the base distribution in bits
// (0 for empty or single-base sequences, 2 at most).
func (f FrequencyTable) Entropy() float64 {
	total := float64(f.Total())
	if total == 0 {
		return 0
	}
	var h float64
	for _, n := range f {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		h -= p * math.Log2(p)
	}
	return h
}
