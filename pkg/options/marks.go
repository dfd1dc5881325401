package options

import "strconv"

// MarkSequence names the glyph sequence footnote marks are drawn from.
type MarkSequence string

const (
	MarksNumbers MarkSequence = "numbers"
	MarksLetters MarkSequence = "letters"
	MarksSymbols MarkSequence = "symbols"
)

var symbolGlyphs = []string{"*", "†", "‡", "§"}

func (m MarkSequence) valid() bool {
	switch m {
	case MarksNumbers, MarksLetters, MarksSymbols:
		return true
	default:
		return false
	}
}

// Mark renders the glyph for the zero-based footnote position. Numbers count
// up, letters run a..z then aa, ab, ...; symbols cycle *, †, ‡, § and repeat
// the glyph once the set is exhausted (**, ††, ...).
func (m MarkSequence) Mark(i int) string {
	if i < 0 {
		return ""
	}
	switch m {
	case MarksLetters:
		return bijectiveBase26(i + 1)
	case MarksSymbols:
		glyph := symbolGlyphs[i%len(symbolGlyphs)]
		repeat := i/len(symbolGlyphs) + 1
		out := ""
		for n := 0; n < repeat; n++ {
			out += glyph
		}
		return out
	default:
		return strconv.Itoa(i + 1)
	}
}

func bijectiveBase26(n int) string {
	out := ""
	for n > 0 {
		n--
		out = string(rune('a'+n%26)) + out
		n /= 26
	}
	return out
}
