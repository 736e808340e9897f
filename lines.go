package charscan

// Lines is an iterator over the lines of an encoded buffer. While iterating,
// it keeps the cursor that [NextLine] would otherwise require the caller to
// hold. Lines values are not safe for concurrent use.
type Lines[U Unit] struct {
	enc Encoding[U]
	src []U
	pos int
	cur Span
}

// NewLines returns a Lines iterator over s. The iterator allocates once,
// here; iteration itself is allocation-free.
func NewLines[U Unit](e Encoding[U], s []U) *Lines[U] {
	return &Lines[U]{enc: e, src: s}
}

// Next advances to the next line. It must be called before the first use of
// [Lines.Span] or [Lines.Units], and returns false once every line has been
// returned.
func (l *Lines[U]) Next() bool {
	line, ok := NextLine(l.enc, l.src, &l.pos)
	l.cur = line
	return ok
}

// Span returns the current line as a [Span] in the buffer's coordinates.
func (l *Lines[U]) Span() Span {
	return l.cur
}

// Units returns the current line's units as a subslice of the buffer.
func (l *Lines[U]) Units() []U {
	return Slice(l.src, l.cur)
}

// Pos returns the cursor's current unit offset, which is the start of the
// next line to be returned (or the logical end after the final line).
func (l *Lines[U]) Pos() int {
	return l.pos
}

// Reset puts the iterator back on the first line.
func (l *Lines[U]) Reset() {
	l.pos = 0
	l.cur = Span{}
}
