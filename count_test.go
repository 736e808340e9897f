package charscan

import "testing"

func TestRuneCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "multibyte", input: "héllo", want: 5},
		{name: "supplementary", input: "a\U0001f600b", want: 3},
		{name: "terminator mid buffer", input: "ab\x00cd", want: 2},
		{name: "leading terminator", input: "\x00abc", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuneCount(UTF8, []byte(tt.input)); got != tt.want {
				t.Errorf("RuneCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
			if got := RuneCountString(UTF8, tt.input); got != tt.want {
				t.Errorf("RuneCountString(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestRuneCountUTF16(t *testing.T) {
	s := []uint16{'a', 0xd83d, 0xde00, 'b', 0, 'c'}
	if got := RuneCount(UTF16, s); got != 3 {
		t.Errorf("RuneCount = %d, want 3", got)
	}
}

func TestRuneCountIn(t *testing.T) {
	s := []byte("héllo")
	tests := []struct {
		name string
		sp   Span
		want int
	}{
		{name: "full", sp: Span{Start: 0, End: len(s)}, want: 5},
		{name: "tail to end", sp: Span{Start: 3, End: -1}, want: 3},
		{name: "middle", sp: Span{Start: 1, End: 3}, want: 1},
		{name: "empty", sp: Span{Start: 2, End: 2}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuneCountIn(UTF8, s, tt.sp); got != tt.want {
				t.Errorf("RuneCountIn(%v) = %d, want %d", tt.sp, got, tt.want)
			}
		})
	}
}

func TestRuneAt(t *testing.T) {
	s := []byte("héllo\x00x")
	tests := []struct {
		name string
		i    int
		want rune
	}{
		{name: "first", i: 0, want: 'h'},
		{name: "multibyte", i: 1, want: 'é'},
		{name: "after multibyte", i: 2, want: 'l'},
		{name: "last", i: 4, want: 'o'},
		{name: "at terminator", i: 5, want: 0},
		{name: "past terminator", i: 6, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuneAt(UTF8, s, tt.i); got != tt.want {
				t.Errorf("RuneAt(%d) = %U, want %U", tt.i, got, tt.want)
			}
		})
	}
}
