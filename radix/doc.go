// Package radix converts digit strings written in bases 2..16 to int64.
//
// A Notation pairs a base with its alphabet, the first base symbols of
// "0123456789ABCDEF". Input is upper-cased before lookup, so "1AeF101" in
// base 16 reads as 0x1AEF101.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvpoly/radix"
//
//	v, err := radix.ToInt64("764241", 8) // 256161
//	if errors.Is(err, radix.ErrInvalidSymbol) {
//	  // a character outside the base's alphabet
//	}
//
// Errors:
//   - ErrInvalidBase   — base outside [2,16].
//   - ErrInvalidInput  — empty source.
//   - ErrInvalidSymbol — character not in the alphabet (sign characters included).
//   - ErrOverflow      — value does not fit in int64.
//   - ErrNilNotation   — Convert called with a nil *Notation.
package radix
