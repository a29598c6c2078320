// SPDX-License-Identifier: MIT

package radix

import "strings"

// Base limits and the symbol table the alphabets are cut from.
const (
	MinBase     = 2
	MaxBase     = 16
	DefaultBase = 10

	symbols = "0123456789ABCDEF"
)

// Notation pairs a base with its digit alphabet, symbols[:base].
//
// The zero value has base 0 and is rejected by Convert with ErrInvalidBase;
// construct with NewNotation or DefaultNotation.
// A *Notation may be shared read-only across goroutines; SetBase is the only
// mutator and must not race with readers.
type Notation struct {
	base     int
	alphabet string
}

// NewNotation returns a notation for base, or ErrInvalidBase when base is
// outside [MinBase, MaxBase].
func NewNotation(base int) (*Notation, error) {
	n := &Notation{}
	if err := n.SetBase(base); err != nil {
		return nil, err
	}

	return n, nil
}

// DefaultNotation returns the decimal notation.
func DefaultNotation() *Notation {
	return &Notation{base: DefaultBase, alphabet: symbols[:DefaultBase]}
}

// Base returns the notation's base. A nil notation has base 0.
func (n *Notation) Base() int {
	if n == nil {
		return 0
	}

	return n.base
}

// Alphabet returns the digit symbols of the base, lowest value first.
// A nil notation has an empty alphabet.
func (n *Notation) Alphabet() string {
	if n == nil {
		return ""
	}

	return n.alphabet
}

// SetBase switches the notation to base and regenerates the alphabet.
// On error the notation is left unchanged.
func (n *Notation) SetBase(base int) error {
	if base < MinBase || base > MaxBase {
		return baseErrorf(base)
	}
	n.base = base
	n.alphabet = symbols[:base]

	return nil
}

// Digit returns the value of symbol r in this notation. Lookup is exact:
// lower-case letters are not digits here; Convert upper-cases its input first.
func (n *Notation) Digit(r rune) (int, bool) {
	i := strings.IndexRune(n.Alphabet(), r)

	return i, i >= 0
}
