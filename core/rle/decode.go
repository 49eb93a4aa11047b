package rle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"dnarle-core/nucleotide"
)

// ErrMalformed matches every *MalformedTokenStreamError via errors.Is.
var ErrMalformed = errors.New("malformed token stream")

// Reason classifies a malformed token stream.
type Reason int

const (
	ReasonLeadingDigit  Reason = iota + 1 // stream starts with a count
	ReasonMissingCount                    // base not followed by digits
	ReasonInvalidSymbol                   // character outside A/T/C/G and 0-9
	ReasonBadCount                        // zero, leading zero, or overflow
	ReasonTooLong                         // decoded length exceeds Decoder.MaxLength
)

func (r Reason) String() string {
	switch r {
	case ReasonLeadingDigit:
		return "leading digit"
	case ReasonMissingCount:
		return "missing count"
	case ReasonInvalidSymbol:
		return "invalid symbol"
	case ReasonBadCount:
		return "bad count"
	case ReasonTooLong:
		return "too long"
	default:
		return "unknown"
	}
}

// MalformedTokenStreamError describes where and why decoding stopped.
type MalformedTokenStreamError struct {
	Reason Reason
	Pos    int  // byte offset into the token stream
	Char   rune // offending character, 0 at end of input
	Detail string
}

func (e *MalformedTokenStreamError) Error() string {
	var b strings.Builder
	b.WriteString("malformed token stream: ")
	b.WriteString(e.Reason.String())
	if e.Char != 0 {
		fmt.Fprintf(&b, " %q", e.Char)
	}
	fmt.Fprintf(&b, " at offset %d", e.Pos)
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	return b.String()
}

func (e *MalformedTokenStreamError) Is(target error) bool { return target == ErrMalformed }

// DefaultMaxLength bounds Decode and ParseRuns: 1 GiB of bases. A count is
// only a few digits, so without a bound a short stream can ask for more
// memory than the process has.
const DefaultMaxLength = 1 << 30

// expandChunk caps the up-front reservation in Expand.
const expandChunk = 1 << 20

// Decoder turns token streams back into sequences.
type Decoder struct {
	// MaxLength bounds the decoded sequence length. 0 means unlimited.
	MaxLength int
}

// Decode decodes tokens with a DefaultMaxLength limit.
func Decode(tokens string) (nucleotide.Sequence, error) {
	return Decoder{MaxLength: DefaultMaxLength}.Decode(tokens)
}

// ParseRuns parses tokens into runs without expanding them, with a
// DefaultMaxLength limit.
func ParseRuns(tokens string) ([]Run, error) {
	return Decoder{MaxLength: DefaultMaxLength}.ParseRuns(tokens)
}

// Decode expands tokens into the sequence they describe. The empty stream
// decodes to the empty sequence.
func (d Decoder) Decode(tokens string) (nucleotide.Sequence, error) {
	runs, err := d.ParseRuns(tokens)
	if err != nil {
		return "", err
	}
	return Expand(runs), nil
}

// Expand writes out each run in order. At most expandChunk bytes are
// reserved up front; past that the buffer grows as bases are written.
func Expand(runs []Run) nucleotide.Sequence {
	total := 0
	for _, r := range runs {
		total += r.Count
	}
	var b strings.Builder
	b.Grow(min(total, expandChunk))
	for _, r := range runs {
		for i := 0; i < r.Count; i++ {
			b.WriteByte(byte(r.Symbol))
		}
	}
	return nucleotide.Sequence(b.String())
}

// ParseRuns scans tokens left to right. Each base must be followed by one or
// more digits, which are read greedily as a single count.
func (d Decoder) ParseRuns(tokens string) ([]Run, error) {
	var (
		runs  []Run
		total int
	)
	for i := 0; i < len(tokens); {
		c := tokens[i]
		switch {
		case isDigit(c):
			// Counts are consumed with their base, so a digit here is only
			// reachable at offset 0.
			return nil, &MalformedTokenStreamError{Reason: ReasonLeadingDigit, Pos: i, Char: rune(c)}
		case !nucleotide.IsSymbol(c):
			r, _ := utf8.DecodeRuneInString(tokens[i:])
			return nil, &MalformedTokenStreamError{Reason: ReasonInvalidSymbol, Pos: i, Char: r}
		}

		j := i + 1
		for j < len(tokens) && isDigit(tokens[j]) {
			j++
		}
		if j == i+1 {
			return nil, &MalformedTokenStreamError{Reason: ReasonMissingCount, Pos: i, Char: rune(c)}
		}
		n, err := parseCount(tokens[i+1 : j])
		if err != nil {
			return nil, &MalformedTokenStreamError{Reason: ReasonBadCount, Pos: i + 1, Detail: err.Error()}
		}
		limit := d.MaxLength
		if limit <= 0 {
			limit = math.MaxInt
		}
		if n > limit-total {
			return nil, &MalformedTokenStreamError{
				Reason: ReasonTooLong,
				Pos:    i,
				Detail: fmt.Sprintf("limit %d", limit),
			}
		}
		total += n
		runs = append(runs, Run{Symbol: nucleotide.Symbol(c), Count: n})
		i = j
	}
	return runs, nil
}

func parseCount(digits string) (int, error) {
	if digits[0] == '0' {
		if len(digits) == 1 {
			return 0, errors.New("zero count")
		}
		return 0, fmt.Errorf("leading zero in %q", digits)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("count %q out of range", digits)
	}
	return n, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
