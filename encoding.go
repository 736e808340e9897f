package charscan

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Unit is the constraint for code unit types: narrow (byte), wide (uint16),
// or quad (rune) storage elements of an encoded string.
type Unit interface {
	~byte | ~uint16 | ~rune
}

// An Encoding describes how code points are stored in a buffer of U code
// units. Implementations must be stateless; the values shipped with this
// package are safe for concurrent use.
//
// The decode contract, which every scanning loop in this package relies on:
//   - An empty buffer decodes as (0, 0).
//   - A nonempty buffer always consumes at least one unit.
//   - Malformed input decodes as (utf8.RuneError, 1).
//   - No multi-unit character contains a zero unit, so the first zero unit
//     in a buffer is always the terminator character U+0000.
type Encoding[U Unit] interface {
	// DecodeRune returns the first code point in s and the number of units
	// it occupies.
	DecodeRune(s []U) (c rune, size int)

	// AppendRune appends the encoded form of c to dst and returns the
	// extended buffer. Code points the encoding cannot represent are
	// replaced (see the individual encodings for the replacement used).
	AppendRune(dst []U, c rune) []U
}

// Encodings shipped with this package.
var (
	UTF8   Encoding[byte]   = utf8Enc{}   // variable-width byte units
	Latin1 Encoding[byte]   = latin1Enc{} // one byte per code point, 0x00-0xFF
	UTF16  Encoding[uint16] = utf16Enc{}  // wide units, surrogate pairs
	UTF32  Encoding[rune]   = utf32Enc{}  // one quad unit per code point
)

// NextRune decodes the logical character at unit offset i of s, returning
// the code point and the offset just past it. At the logical end of the
// string (a terminator, or the end of the slice) it returns (0, i): the
// cursor never advances past a terminator.
//
// NextRune is the single stepping primitive every operation in this package
// is built on. Callers writing their own scans should use it rather than
// calling [Encoding.DecodeRune] directly, so terminator handling stays
// uniform.
func NextRune[U Unit](e Encoding[U], s []U, i int) (c rune, next int) {
	if i >= len(s) {
		return 0, i
	}
	c, size := e.DecodeRune(s[i:])
	if c == 0 {
		return 0, i
	}
	return c, i + size
}

type utf8Enc struct{}

func (utf8Enc) DecodeRune(s []byte) (rune, int) {
	if len(s) == 0 {
		return 0, 0
	}
	return utf8.DecodeRune(s)
}

func (utf8Enc) AppendRune(dst []byte, c rune) []byte {
	return utf8.AppendRune(dst, c)
}

type latin1Enc struct{}

func (latin1Enc) DecodeRune(s []byte) (rune, int) {
	if len(s) == 0 {
		return 0, 0
	}
	return rune(s[0]), 1
}

// AppendRune appends c as a single byte. Code points above 0xFF are not
// representable and append '?'.
func (latin1Enc) AppendRune(dst []byte, c rune) []byte {
	if c < 0 || c > 0xFF {
		return append(dst, '?')
	}
	return append(dst, byte(c))
}

type utf16Enc struct{}

func (utf16Enc) DecodeRune(s []uint16) (rune, int) {
	if len(s) == 0 {
		return 0, 0
	}
	u := s[0]
	switch {
	case u < surr1 || u >= surr3:
		return rune(u), 1
	case u < surr2 && len(s) > 1 && s[1] >= surr2 && s[1] < surr3:
		return utf16.DecodeRune(rune(u), rune(s[1])), 2
	default:
		// Unpaired surrogate.
		return utf8.RuneError, 1
	}
}

func (utf16Enc) AppendRune(dst []uint16, c rune) []uint16 {
	return utf16.AppendRune(dst, c)
}

// Unicode surrogate ranges, as in unicode/utf16.
const (
	surr1 = 0xd800 // high surrogates start
	surr2 = 0xdc00 // low surrogates start
	surr3 = 0xe000 // past the surrogate block
)

type utf32Enc struct{}

func (utf32Enc) DecodeRune(s []rune) (rune, int) {
	if len(s) == 0 {
		return 0, 0
	}
	if c := s[0]; utf8.ValidRune(c) {
		return c, 1
	}
	return utf8.RuneError, 1
}

// AppendRune appends c as one unit. Invalid code points (surrogates, or
// values outside the Unicode range) append utf8.RuneError.
func (utf32Enc) AppendRune(dst []rune, c rune) []rune {
	if !utf8.ValidRune(c) {
		return append(dst, utf8.RuneError)
	}
	return append(dst, c)
}
