package charscan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// The fast paths must return exactly what the decode loop returns, for
// every input. These tests feed randomized buffers through both, including
// terminators, malformed units, and U+FFFD, which is where the two paths
// are easiest to drive apart.

const (
	differentialSeed   = 42
	differentialTrials = 2000
)

type diffConfig[U Unit] struct {
	enc      Encoding[U]
	alphabet []rune // code points appended via AppendRune
	raw      []U    // units injected as-is, malformed ones included
}

var (
	utf8Diff = diffConfig[byte]{
		enc:      UTF8,
		alphabet: []rune{0, 'a', 'b', 'x', '\n', '\r', 'é', '中', '\U0001f600', '�'},
		raw:      []byte{0x80, 0xc3, 0xff},
	}
	latin1Diff = diffConfig[byte]{
		enc:      Latin1,
		alphabet: []rune{0, 'a', 'b', 'x', 0xe9, 0xff},
	}
	utf16Diff = diffConfig[uint16]{
		enc:      UTF16,
		alphabet: []rune{0, 'a', 'b', 0x4e2d, 0xffff, '\U0001f600', '�'},
		raw:      []uint16{0xd83d, 0xdc00},
	}
	utf32Diff = diffConfig[rune]{
		enc:      UTF32,
		alphabet: []rune{0, 'a', 'b', 0x4e2d, '\U0001f600', '�'},
		raw:      []rune{0xd800, 0x110000, -3},
	}
)

func (cfg diffConfig[U]) generate(r *rand.Rand, maxChars int) []U {
	var s []U
	n := r.Intn(maxChars + 1)
	for i := 0; i < n; i++ {
		if len(cfg.raw) > 0 && r.Intn(8) == 0 {
			s = append(s, cfg.raw[r.Intn(len(cfg.raw))])
			continue
		}
		s = cfg.enc.AppendRune(s, cfg.alphabet[r.Intn(len(cfg.alphabet))])
	}
	return s
}

func runDifferentialIndexRune[U Unit](t *testing.T, cfg diffConfig[U]) {
	r := rand.New(rand.NewSource(differentialSeed))
	for trial := 0; trial < differentialTrials; trial++ {
		s := cfg.generate(r, 32)
		c := cfg.alphabet[r.Intn(len(cfg.alphabet))]
		fast := IndexRune(cfg.enc, s, c, -1)
		slow, _ := indexRuneGeneric(cfg.enc, s, c, -1)
		require.Equal(t, slow, fast, "trial %d: IndexRune(%v, %U)", trial, s, c)
	}
}

func runDifferentialIndexAny[U Unit](t *testing.T, cfg diffConfig[U]) {
	r := rand.New(rand.NewSource(differentialSeed))
	for trial := 0; trial < differentialTrials; trial++ {
		s := cfg.generate(r, 32)
		set := cfg.generate(r, 4)
		fast := IndexAny(cfg.enc, s, set, -1, -1)
		slow := indexAnyGeneric(cfg.enc, s, set, -1, -1)
		require.Equal(t, slow, fast, "trial %d: IndexAny(%v, %v)", trial, s, set)
	}
}

func runDifferentialIndex[U Unit](t *testing.T, cfg diffConfig[U]) {
	r := rand.New(rand.NewSource(differentialSeed))
	for trial := 0; trial < differentialTrials; trial++ {
		s := cfg.generate(r, 32)
		var sub []U
		if r.Intn(2) == 0 && len(s) > 0 {
			// A unit window of s itself, not necessarily aligned to a
			// character boundary.
			a := r.Intn(len(s) + 1)
			sub = s[a : a+r.Intn(len(s)-a+1)]
		} else {
			sub = cfg.generate(r, 5)
		}
		fast := Index(cfg.enc, s, sub, -1, -1)
		slow := indexGeneric(cfg.enc, s, sub, -1, -1)
		require.Equal(t, slow, fast, "trial %d: Index(%v, %v)", trial, s, sub)
	}
}

func TestDifferentialIndexRune(t *testing.T) {
	t.Run("UTF8", func(t *testing.T) { runDifferentialIndexRune(t, utf8Diff) })
	t.Run("Latin1", func(t *testing.T) { runDifferentialIndexRune(t, latin1Diff) })
	t.Run("UTF16", func(t *testing.T) { runDifferentialIndexRune(t, utf16Diff) })
	t.Run("UTF32", func(t *testing.T) { runDifferentialIndexRune(t, utf32Diff) })
}

func TestDifferentialIndexAny(t *testing.T) {
	t.Run("UTF8", func(t *testing.T) { runDifferentialIndexAny(t, utf8Diff) })
	t.Run("Latin1", func(t *testing.T) { runDifferentialIndexAny(t, latin1Diff) })
	t.Run("UTF16", func(t *testing.T) { runDifferentialIndexAny(t, utf16Diff) })
	t.Run("UTF32", func(t *testing.T) { runDifferentialIndexAny(t, utf32Diff) })
}

func TestDifferentialIndex(t *testing.T) {
	t.Run("UTF8", func(t *testing.T) { runDifferentialIndex(t, utf8Diff) })
	t.Run("Latin1", func(t *testing.T) { runDifferentialIndex(t, latin1Diff) })
	t.Run("UTF16", func(t *testing.T) { runDifferentialIndex(t, utf16Diff) })
	t.Run("UTF32", func(t *testing.T) { runDifferentialIndex(t, utf32Diff) })
}

// The ...String variants must agree exactly with their slice counterparts.
func TestDifferentialStringVariants(t *testing.T) {
	r := rand.New(rand.NewSource(differentialSeed))
	for trial := 0; trial < differentialTrials; trial++ {
		b := utf8Diff.generate(r, 24)
		s := string(b)
		c := utf8Diff.alphabet[r.Intn(len(utf8Diff.alphabet))]
		require.Equal(t, IndexRune(UTF8, b, c, -1), IndexRuneString(UTF8, s, c, -1), "trial %d", trial)

		set := utf8Diff.generate(r, 3)
		require.Equal(t, IndexAny(UTF8, b, set, -1, -1), IndexAnyString(UTF8, s, string(set), -1, -1), "trial %d", trial)
		require.Equal(t, Index(UTF8, b, set, -1, -1), IndexString(UTF8, s, string(set), -1, -1), "trial %d", trial)
		require.Equal(t, RuneCount(UTF8, b), RuneCountString(UTF8, s), "trial %d", trial)

		var posB, posS int
		for {
			lineB, okB := NextLine(UTF8, b, &posB)
			lineS, okS := NextLineString(UTF8, s, &posS)
			require.Equal(t, okB, okS, "trial %d", trial)
			require.Equal(t, lineB, lineS, "trial %d", trial)
			require.Equal(t, posB, posS, "trial %d", trial)
			if !okB {
				break
			}
		}
	}
}
