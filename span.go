package charscan

// A Span is a half-open range [Start, End) of unit offsets into a buffer of
// code units. It does not own or copy the underlying units. An End below
// zero means the range extends to the terminator (or the end of the
// buffer).
//
// Spans are how this package expresses non-owning views: [NextLine] and
// [Lines] return the current line as a Span, and the In-suffixed search
// functions restrict their scan to one.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers no units. A span whose End is unset
// (negative) is never considered empty, since its extent depends on the
// buffer it is applied to.
func (sp Span) Empty() bool {
	return sp.End >= 0 && sp.Start >= sp.End
}

// Slice materializes sp as a subslice of s. If sp.End is unset, the result
// extends to the end of s. Offsets outside s panic, as slice expressions
// do.
func Slice[U Unit](s []U, sp Span) []U {
	if sp.End < 0 {
		return s[sp.Start:]
	}
	return s[sp.Start:sp.End]
}
