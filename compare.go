package charscan

// Compare performs a lexicographic comparison of the first n logical
// characters of a and b, returning -1 if a orders first, +1 if b does, and
// 0 if the compared characters are equal. A negative n compares until both
// strings end. A string that ends first orders lower.
//
// Comparison is by decoded code point, not by unit. The two differ for
// UTF-16, where supplementary characters order above every BMP character
// even though their surrogate units do not.
func Compare[U Unit](e Encoding[U], a, b []U, n int) int {
	i, j := 0, 0
	for n != 0 {
		ca, ia := NextRune(e, a, i)
		cb, jb := NextRune(e, b, j)
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		if ca == 0 {
			return 0
		}
		i, j = ia, jb
		if n > 0 {
			n--
		}
	}
	return 0
}
