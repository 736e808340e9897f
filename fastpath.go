package charscan

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"
)

// Native scan capabilities. An encoding that can locate characters without
// decoding implements one or more of these. The exported search functions
// discover them by type assertion, the way io.Copy discovers
// io.ReaderFrom, and use them whenever no explicit length bounds the call.
//
// A capability reports ok == false when it cannot answer for the given
// arguments (the generic decode loop then runs instead). When ok is true,
// off must be exactly what the generic loop would have returned. The
// randomized differential tests hold every implementation to that.
type (
	runeIndexer[U Unit] interface {
		indexRune(s []U, c rune) (off int, ok bool)
	}
	anyIndexer[U Unit] interface {
		indexAny(s, set []U) (off int, ok bool)
	}
	subIndexer[U Unit] interface {
		indexSub(s, sub []U) (off int, ok bool)
	}
)

// clipTerm restricts s to the units before its first terminator, the extent
// a C string routine would observe. No multi-unit character contains a zero
// unit, so every match the generic loop could report lies inside the
// clipped window, and a search inside it can never match the terminator.
func clipTerm[U Unit](s []U) []U {
	for i, u := range s {
		if u == 0 {
			return s[:i]
		}
	}
	return s
}

// clipTermBytes is clipTerm for byte units, over bytes.IndexByte.
func clipTermBytes(s []byte) []byte {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// runeErrorBytes is the UTF-8 encoding of U+FFFD.
var runeErrorBytes = []byte(string(utf8.RuneError))

// Latin-1: every unit is a code point, so all three scans are direct unit
// comparisons (bytes.IndexByte and bytes.Index are the native forms).

func (latin1Enc) indexRune(s []byte, c rune) (int, bool) {
	if c < 0 || c > 0xFF {
		return -1, true
	}
	return bytes.IndexByte(clipTermBytes(s), byte(c)), true
}

func (latin1Enc) indexAny(s, set []byte) (int, bool) {
	s, set = clipTermBytes(s), clipTermBytes(set)
	for i, u := range s {
		for _, v := range set {
			if u == v {
				return i, true
			}
		}
	}
	return -1, true
}

func (latin1Enc) indexSub(s, sub []byte) (int, bool) {
	return bytes.Index(clipTermBytes(s), clipTermBytes(sub)), true
}

// UTF-8 is self-synchronizing: a valid encoded sequence found at any byte
// offset decodes to the same characters regardless of what surrounds it,
// and distinct characters never share an encoding. Byte-level search is
// therefore exact, except around U+FFFD: malformed input also decodes to
// U+FFFD, and only the decode loop can tell the two apart.

func (utf8Enc) indexRune(s []byte, c rune) (int, bool) {
	if !utf8.ValidRune(c) {
		return -1, true
	}
	if c < utf8.RuneSelf {
		return bytes.IndexByte(clipTermBytes(s), byte(c)), true
	}
	if c == utf8.RuneError {
		return 0, false
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], c)
	return bytes.Index(clipTermBytes(s), enc[:n]), true
}

func (utf8Enc) indexAny(s, set []byte) (int, bool) {
	set = clipTermBytes(set)
	for _, v := range set {
		if v >= utf8.RuneSelf {
			return 0, false
		}
	}
	// All-ASCII set: no unit of a multi-byte or malformed sequence is below
	// utf8.RuneSelf, so byte membership is character membership.
	s = clipTermBytes(s)
	for i, u := range s {
		for _, v := range set {
			if u == v {
				return i, true
			}
		}
	}
	return -1, true
}

func (utf8Enc) indexSub(s, sub []byte) (int, bool) {
	sub = clipTermBytes(sub)
	if !utf8.Valid(sub) || bytes.Contains(sub, runeErrorBytes) {
		return 0, false
	}
	return bytes.Index(clipTermBytes(s), sub), true
}

// UTF-16 shares the self-synchronization property at the unit level: high
// and low surrogates occupy disjoint ranges, so a valid unit sequence
// matches the same characters at any offset. The same U+FFFD caveat as
// UTF-8 applies, with unpaired surrogates playing the malformed role.

func (utf16Enc) indexRune(s []uint16, c rune) (int, bool) {
	if !utf8.ValidRune(c) {
		return -1, true
	}
	if c == utf8.RuneError {
		return 0, false
	}
	s = clipTerm(s)
	if c <= 0xFFFF {
		u := uint16(c)
		for i, v := range s {
			if v == u {
				return i, true
			}
		}
		return -1, true
	}
	hi, lo := utf16.EncodeRune(c)
	h, l := uint16(hi), uint16(lo)
	for i := 0; i+1 < len(s); i++ {
		if s[i] == h && s[i+1] == l {
			return i, true
		}
	}
	return -1, true
}

func (utf16Enc) indexAny(s, set []uint16) (int, bool) {
	set = clipTerm(set)
	for _, v := range set {
		if (v >= surr1 && v < surr3) || v == 0xFFFD {
			return 0, false
		}
	}
	// BMP-only set: surrogate units in s never equal a BMP unit, and a
	// supplementary character cannot be a member of a BMP-only set.
	s = clipTerm(s)
	for i, u := range s {
		for _, v := range set {
			if u == v {
				return i, true
			}
		}
	}
	return -1, true
}

func (utf16Enc) indexSub(s, sub []uint16) (int, bool) {
	sub = clipTerm(sub)
	for i := 0; i < len(sub); i++ {
		u := sub[i]
		if u == 0xFFFD {
			return 0, false
		}
		if u >= surr1 && u < surr3 {
			if u >= surr2 || i+1 >= len(sub) || sub[i+1] < surr2 || sub[i+1] >= surr3 {
				// Unpaired surrogate in the needle.
				return 0, false
			}
			i++
		}
	}
	s = clipTerm(s)
	for i := 0; i+len(sub) <= len(s); i++ {
		j := 0
		for j < len(sub) && s[i+j] == sub[j] {
			j++
		}
		if j == len(sub) {
			return i, true
		}
	}
	return -1, true
}

// UTF-32: units are code points, so scans are direct unit comparisons.
// Invalid units decode as U+FFFD, so needles and sets involving U+FFFD or
// invalid scalars defer to the decode loop.

func (utf32Enc) indexRune(s []rune, c rune) (int, bool) {
	if !utf8.ValidRune(c) {
		return -1, true
	}
	if c == utf8.RuneError {
		return 0, false
	}
	for i, u := range clipTerm(s) {
		if u == c {
			return i, true
		}
	}
	return -1, true
}

func (utf32Enc) indexAny(s, set []rune) (int, bool) {
	set = clipTerm(set)
	for _, v := range set {
		if !utf8.ValidRune(v) || v == utf8.RuneError {
			return 0, false
		}
	}
	for i, u := range clipTerm(s) {
		for _, v := range set {
			if u == v {
				return i, true
			}
		}
	}
	return -1, true
}

func (utf32Enc) indexSub(s, sub []rune) (int, bool) {
	sub = clipTerm(sub)
	for _, v := range sub {
		if !utf8.ValidRune(v) || v == utf8.RuneError {
			return 0, false
		}
	}
	s = clipTerm(s)
	for i := 0; i+len(sub) <= len(s); i++ {
		j := 0
		for j < len(sub) && s[i+j] == sub[j] {
			j++
		}
		if j == len(sub) {
			return i, true
		}
	}
	return -1, true
}
