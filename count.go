package charscan

// RuneCount returns the number of logical characters in s before the
// terminator or the end of the slice, whichever comes first.
func RuneCount[U Unit](e Encoding[U], s []U) int {
	count, i := 0, 0
	for {
		c, next := NextRune(e, s, i)
		if c == 0 {
			return count
		}
		i = next
		count++
	}
}

// RuneCountString is RuneCount for string input and a byte-unit encoding.
func RuneCountString(e Encoding[byte], s string) int {
	return RuneCount(e, stringUnits(s))
}

// RuneCountIn returns the number of logical characters of s inside sp.
func RuneCountIn[U Unit](e Encoding[U], s []U, sp Span) int {
	return RuneCount(e, Slice(s, sp))
}

// RuneAt returns the i-th logical character of s, counting from zero, or 0
// when s holds fewer than i+1 characters.
func RuneAt[U Unit](e Encoding[U], s []U, i int) rune {
	off := 0
	for ; i > 0; i-- {
		c, next := NextRune(e, s, off)
		if c == 0 {
			return 0
		}
		off = next
	}
	c, _ := NextRune(e, s, off)
	return c
}
