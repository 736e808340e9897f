package charscan

import "unsafe"

// stringUnits views a string's bytes as a []byte without copying. The
// ...String entry points pass the result to functions that never write to
// their buffers, which keeps the view sound.
func stringUnits(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
