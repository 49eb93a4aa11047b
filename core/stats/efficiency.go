package stats

import (
	"math"
	"strconv"
)

// Verdict says whether encoding paid off.
type Verdict int

const (
	Efficient Verdict = iota
	NotEfficient
)

func (v Verdict) String() string {
	if v == NotEfficient {
		return "not efficient"
	}
	return "efficient"
}

// EfficiencyReport compares a sequence length with its encoded length.
type EfficiencyReport struct {
	OriginalLength int
	EncodedLength  int
	// Ratio is EncodedLength/OriginalLength, or NaN when OriginalLength is 0.
	Ratio   float64
	Verdict Verdict
}

// Classify builds a report for the given lengths. Ties count as efficient,
// and an empty original is efficient with an undefined ratio.
func Classify(originalLength, encodedLength int) EfficiencyReport {
	r := EfficiencyReport{
		OriginalLength: originalLength,
		EncodedLength:  encodedLength,
		Ratio:          math.NaN(),
		Verdict:        Efficient,
	}
	if originalLength > 0 {
		r.Ratio = float64(encodedLength) / float64(originalLength)
	}
	// Compare the integer lengths, not the rounded ratio.
	if encodedLength > originalLength {
		r.Verdict = NotEfficient
	}
	return r
}

func (r EfficiencyReport) Efficient() bool { return r.Verdict == Efficient }

// RatioDefined is false only for an empty original.
func (r EfficiencyReport) RatioDefined() bool { return !math.IsNaN(r.Ratio) }

// RoundedRatio is the ratio rounded to two decimals, for display. Rounding
// works on the exact binary value and ties go to even, so 2/16 = 0.125 gives
// 0.12.
func (r EfficiencyReport) RoundedRatio() (float64, bool) {
	if !r.RatioDefined() {
		return 0, false
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(r.Ratio, 'f', 2, 64), 64)
	return v, err == nil
}
