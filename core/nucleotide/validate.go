// core/nucleotide/validate.go
package nucleotide

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Symbol is one base of the four-letter DNA alphabet.
type Symbol byte

const (
	A Symbol = 'A'
	T Symbol = 'T'
	C Symbol = 'C'
	G Symbol = 'G'
)

// Alphabet lists the valid symbols in canonical order.
var Alphabet = [4]Symbol{A, T, C, G}

// index maps a byte to its position in Alphabet, or -1.
var index [256]int8

func init() {
	for i := range index {
		index[i] = -1
	}
	for i, s := range Alphabet {
		index[s] = int8(i)
	}
}

// Index returns the position of s in Alphabet, or -1 if s is not a base.
func (s Symbol) Index() int { return int(index[s]) }

func (s Symbol) String() string { return string(rune(s)) }

// IsSymbol reports whether b is one of A, T, C, G (uppercase only).
func IsSymbol(b byte) bool { return index[b] >= 0 }

// Sequence is a validated run of bases. The zero value is the empty sequence.
type Sequence string

func (s Sequence) Len() int { return len(s) }

// At returns the i-th base.
func (s Sequence) At(i int) Symbol { return Symbol(s[i]) }

// ErrInvalidSymbol matches every *InvalidSymbolError via errors.Is.
var ErrInvalidSymbol = errors.New("invalid nucleotide symbol")

// InvalidSymbolError reports the first character outside the alphabet.
type InvalidSymbolError struct {
	Char rune
	Pos  int // 0-based character position
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid base %q at position %d; allowed: A T C G", e.Char, e.Pos)
}

func (e *InvalidSymbolError) Is(target error) bool { return target == ErrInvalidSymbol }

// Normalize removes whitespace and uppercases bases.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate checks that raw contains only A, T, C and G. The input is expected
// to be normalized already; lowercase or whitespace characters are rejected.
// The empty string is a valid, empty Sequence.
func Validate(raw string) (Sequence, error) {
	pos := 0
	for _, r := range raw {
		if r >= 0x80 || !IsSymbol(byte(r)) {
			return "", &InvalidSymbolError{Char: r, Pos: pos}
		}
		pos++
	}
	return Sequence(raw), nil
}

// Parse normalizes raw and validates the result.
func Parse(raw string) (Sequence, error) {
	return Validate(Normalize(raw))
}
