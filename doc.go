/*
Package charscan implements encoding-agnostic string scanning: character
search, character-set search, substring search, and line splitting over
buffers of narrow, wide, or quad code units.

The scanning model:
  - Strings are caller-owned slices of code units ([]byte, []uint16, []rune)
  - The logical string ends at the first NUL unit or at the end of the slice,
    whichever comes first
  - Every operation decodes one logical character (code point) at a time
    through an [Encoding] value, so a single algorithm serves every encoding
  - Fixed-width encodings additionally get fast paths backed by native scan
    routines, with results identical to the generic algorithm

# Overview

Using this package, you can:
  - Find the first occurrence of a code point ([IndexRune])
  - Find the first character that belongs to a set ([IndexAny])
  - Find the first occurrence of a substring ([Index])
  - Split a buffer into lines delimited by \n or \r\n ([NextLine], [Lines])
  - Count, fetch, and compare logical characters ([RuneCount], [RuneAt],
    [Compare])

All of it works the same way on UTF-8 bytes, Latin-1 bytes, UTF-16 units, and
UTF-32 units, without per-encoding duplication in the caller.

# Encodings

Four encodings ship with the package:
  - [UTF8] - variable-width byte units
  - [Latin1] - fixed narrow units, one byte per code point
  - [UTF16] - wide units with surrogate pairs
  - [UTF32] - quad units, one unit per code point

An [Encoding] decodes the first character of a buffer and can append the
encoded form of a character, nothing more. Malformed input decodes as U+FFFD
and consumes one unit, so scanning always terminates on arbitrary buffers.

# Terminators and Lengths

Operations accept an optional length in logical characters. A negative length
means "scan to the terminator or the end of the slice":

	charscan.IndexRune(charscan.UTF8, buf, 'x', -1) // until the terminator
	charscan.IndexRune(charscan.UTF8, buf, 'x', 5)  // at most 5 characters

A NUL unit always ends the logical string, even under an explicit length, and
no search ever matches the terminator itself. Search results are unit offsets
into the buffer, -1 when there is no match. Offsets work unchanged whether
the caller holds the buffer mutably or not.

# Splitting Lines

[NextLine] extracts one line per call, advancing a caller-owned cursor:

	var pos int
	for {
		line, ok := charscan.NextLine(charscan.UTF8, buf, &pos)
		if !ok {
			break
		}
		handle(charscan.Slice(buf, line))
	}

Lines end at \n or \r\n; the delimiter is never part of the line; a lone \r
is ordinary content. The [Lines] class wraps the same loop in an iterator.

# Fast Paths

For encodings where characters can be located without decoding, the search
functions delegate to native routines ([bytes.IndexByte], [bytes.Index], or
direct unit comparison) whenever no explicit length is given. The fast and
generic paths return identical results for every input; the package's tests
check this with randomized differential runs.
*/
package charscan
