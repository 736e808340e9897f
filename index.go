package charscan

// IndexRune returns the unit offset of the first logical character of s
// whose decoded code point equals c, or -1 if there is no such character
// before the logical end of s. A non-negative n bounds the scan to the
// first n logical characters; a negative n scans to the terminator.
//
// The terminator itself is never matched: IndexRune(e, s, 0, n) is always
// -1, because scanning stops at a terminator before testing it.
//
// When n is negative and the encoding has a native scan routine, IndexRune
// delegates to it; the result is identical to the generic decode loop.
func IndexRune[U Unit](e Encoding[U], s []U, c rune, n int) int {
	if n < 0 {
		if f, ok := e.(runeIndexer[U]); ok {
			if off, ok := f.indexRune(s, c); ok {
				return off
			}
		}
	}
	off, _ := indexRuneGeneric(e, s, c, n)
	return off
}

// IndexRuneIn is IndexRune restricted to the units of s inside sp. The
// returned offset is in s's own coordinates, -1 if there is no match.
func IndexRuneIn[U Unit](e Encoding[U], s []U, sp Span, c rune) int {
	off := IndexRune(e, Slice(s, sp), c, -1)
	if off < 0 {
		return -1
	}
	return sp.Start + off
}

// IndexRuneString is IndexRune for string input and a byte-unit encoding.
func IndexRuneString(e Encoding[byte], s string, c rune, n int) int {
	return IndexRune(e, stringUnits(s), c, n)
}

// IndexAny returns the unit offset of the first logical character of s
// whose decoded code point equals any decoded code point of set, or -1 if
// the two share no character before their respective limits. A
// non-negative n bounds the scan of s, a non-negative setN bounds each
// pass over set; negative values mean "to the terminator".
//
// The set is decoded fresh on every pass, from its start, with its own
// remaining-count: there is no precomputed membership table, and the cost
// is O(len(s) * len(set)) in logical characters. Each pass over a bounded
// set examines exactly setN characters (or up to set's terminator),
// independent of how far the outer scan has advanced.
func IndexAny[U Unit](e Encoding[U], s, set []U, n, setN int) int {
	if n < 0 && setN < 0 {
		if f, ok := e.(anyIndexer[U]); ok {
			if off, ok := f.indexAny(s, set); ok {
				return off
			}
		}
	}
	return indexAnyGeneric(e, s, set, n, setN)
}

// IndexAnyString is IndexAny for string input and a byte-unit encoding.
func IndexAnyString(e Encoding[byte], s, set string, n, setN int) int {
	return IndexAny(e, stringUnits(s), stringUnits(set), n, setN)
}

// Index returns the unit offset of the first occurrence of sub in s, or -1
// if there is none. A non-negative n bounds the scan of s in logical
// characters; a non-negative subN fixes the needle's length in logical
// characters (negative = derive it from sub's terminator).
//
// An empty needle (subN == 0, or a needle whose first code point is the
// terminator) matches immediately at offset 0, even in an empty haystack.
//
// The search anchors on the needle's first character: it jumps between
// candidate positions with IndexRune, then compares the next subN
// characters at each candidate. No failure function is precomputed, so the
// worst case is O(len(s) * subN); typical needles are short. The scan
// budget n is consumed across candidate hops, measured from s's start.
func Index[U Unit](e Encoding[U], s, sub []U, n, subN int) int {
	if c0, _ := NextRune(e, sub, 0); subN == 0 || c0 == 0 {
		return 0
	}
	if n < 0 && subN < 0 {
		if f, ok := e.(subIndexer[U]); ok {
			if off, ok := f.indexSub(s, sub); ok {
				return off
			}
		}
	}
	return indexGeneric(e, s, sub, n, subN)
}

// IndexIn is Index restricted to the units of s inside sp. The returned
// offset is in s's own coordinates, -1 if there is no match.
func IndexIn[U Unit](e Encoding[U], s []U, sp Span, sub []U) int {
	off := Index(e, Slice(s, sp), sub, -1, -1)
	if off < 0 {
		return -1
	}
	return sp.Start + off
}

// IndexString is Index for string input and a byte-unit encoding.
func IndexString(e Encoding[byte], s, sub string, n, subN int) int {
	return Index(e, stringUnits(s), stringUnits(sub), n, subN)
}

// indexRuneGeneric is the decode-loop form of IndexRune. It additionally
// reports how many characters the scan stepped past without matching,
// which Index uses to account its haystack budget across candidate hops.
func indexRuneGeneric[U Unit](e Encoding[U], s []U, c rune, n int) (off, consumed int) {
	i := 0
	for n != 0 {
		r, next := NextRune(e, s, i)
		if r == 0 {
			break
		}
		if r == c {
			return i, consumed
		}
		i = next
		consumed++
		if n > 0 {
			n--
		}
	}
	return -1, consumed
}

// indexAnyGeneric is the decode-loop form of IndexAny.
func indexAnyGeneric[U Unit](e Encoding[U], s, set []U, n, setN int) int {
	for i := 0; n != 0; {
		r, next := NextRune(e, s, i)
		if r == 0 {
			break
		}
		// A fresh pass over the set, tracking its own consumed count.
		m := setN
		for j := 0; m != 0; {
			r2, next2 := NextRune(e, set, j)
			if r2 == 0 {
				break
			}
			if r2 == r {
				return i
			}
			j = next2
			if m > 0 {
				m--
			}
		}
		i = next
		if n > 0 {
			n--
		}
	}
	return -1
}

// indexGeneric is the decode-loop form of Index. Callers have already
// handled the empty needle.
func indexGeneric[U Unit](e Encoding[U], s, sub []U, n, subN int) int {
	c0, _ := NextRune(e, sub, 0)
	if subN == 0 || c0 == 0 {
		return 0
	}
	if subN < 0 {
		subN = RuneCount(e, sub)
	}
	base, budget := 0, n
	for {
		off, consumed := indexRuneGeneric(e, s[base:], c0, budget)
		if off < 0 {
			return -1
		}
		cand := base + off
		if budget > 0 {
			budget -= consumed
		}
		if Compare(e, s[cand:], sub, subN) == 0 {
			return cand
		}
		// Resume one character past the failed candidate.
		_, next := NextRune(e, s, cand)
		base = next
		if budget > 0 {
			budget--
		}
	}
}
