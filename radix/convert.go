// SPDX-License-Identifier: MIT

package radix

import (
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToInt64 interprets source as a non-negative number written in base and
// returns its value.
//
// Implementation:
//   - Stage 1: build the Notation (ErrInvalidBase).
//   - Stage 2: delegate to Convert.
//
// Example:
//
//	v, err := radix.ToInt64("1ACB67", 16) // 1756007
func ToInt64(source string, base int) (int64, error) {
	n, err := NewNotation(base)
	if err != nil {
		return 0, fmt.Errorf("radix.ToInt64(%q): %w", source, err)
	}

	return Convert(source, n)
}

// Convert interprets source in notation n.
//
// Implementation:
//   - Stage 1: reject nil notation (ErrNilNotation), a notation whose base is
//     outside [MinBase, MaxBase] (ErrInvalidBase) and empty source (ErrInvalidInput).
//   - Stage 2: upper-case each rune on its own so "1aef" and "1AEF" read the same.
//     A rune whose upper case is not exactly one rune ("ß", "ﬀ") is not a digit.
//   - Stage 3: fold digits left to right, acc = acc*base + digit, failing with
//     ErrInvalidSymbol on an unknown rune and ErrOverflow past math.MaxInt64.
//
// Symbol errors report the rune as written in source and its rune position.
//
// Complexity:
//   - Time O(len(source)), Space O(1).
func Convert(source string, n *Notation) (int64, error) {
	if n == nil {
		return 0, ErrNilNotation
	}
	if n.base < MinBase || n.base > MaxBase {
		return 0, baseErrorf(n.base)
	}
	if source == "" {
		return 0, ErrInvalidInput
	}

	caser := cases.Upper(language.Und)
	base := int64(n.base)

	var acc int64
	pos := 0
	for _, r := range source {
		d, ok := digitOf(caser, n, r)
		if !ok {
			return 0, symbolErrorf(r, pos, n.base)
		}
		next, ok := mulAdd(acc, base, int64(d))
		if !ok {
			return 0, fmt.Errorf("radix.Convert(%q, base %d): %w", source, n.base, ErrOverflow)
		}
		acc = next
		pos++
	}

	return acc, nil
}

// mulAdd calculates x*y + d for non-negative operands and checks overflow.
func mulAdd(x, y, d int64) (z int64, ok bool) {
	if x > (math.MaxInt64-d)/y {
		return 0, false
	}

	return x*y + d, true
}

// digitOf upper-cases r alone and looks it up in n. Upper-case forms longer
// than one rune never match.
func digitOf(caser cases.Caser, n *Notation, r rune) (int, bool) {
	upper := caser.String(string(r))
	u, size := utf8.DecodeRuneInString(upper)
	if size != len(upper) || u == utf8.RuneError {
		return 0, false
	}

	return n.Digit(u)
}
