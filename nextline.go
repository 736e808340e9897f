package charscan

// NextLine extracts the next line of s, starting at the cursor *pos and
// advancing it, so that repeated calls enumerate every line in order. It
// returns ok == false if and only if the cursor already sits at the
// logical end of s (the terminator, or the end of the slice); every other
// starting position yields exactly one line, possibly empty.
//
// A line ends at a lone \n or at a \r\n pair; the returned span never
// includes the delimiter, and the cursor lands just past it. A \r not
// followed by \n is ordinary line content. When the logical end arrives
// before any delimiter, the line ends there and the cursor is left at the
// terminator, so the next call reports no more lines. A delimiter as the
// final character therefore does not produce a trailing empty line.
//
// The line span is in s's own coordinates; line is the zero Span when ok
// is false.
func NextLine[U Unit](e Encoding[U], s []U, pos *int) (line Span, ok bool) {
	start := *pos
	if c, _ := NextRune(e, s, start); c == 0 {
		return Span{}, false
	}
	i := start
	for {
		c, next := NextRune(e, s, i)
		if c == 0 {
			*pos = i
			return Span{Start: start, End: i}, true
		}
		if c == '\r' {
			if c2, next2 := NextRune(e, s, next); c2 == '\n' {
				*pos = next2
				return Span{Start: start, End: i}, true
			}
		} else if c == '\n' {
			*pos = next
			return Span{Start: start, End: i}, true
		}
		i = next
	}
}

// NextLineString is NextLine for string input and a byte-unit encoding.
func NextLineString(e Encoding[byte], s string, pos *int) (Span, bool) {
	return NextLine(e, stringUnits(s), pos)
}

// LineCount returns the number of lines NextLine would yield for s.
func LineCount[U Unit](e Encoding[U], s []U) int {
	var pos, count int
	for {
		if _, ok := NextLine(e, s, &pos); !ok {
			return count
		}
		count++
	}
}
