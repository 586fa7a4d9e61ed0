package rot

import (
	"iter"
	"slices"
	"strings"
)

// Charset selects the alphabet a rotation wraps within. The named selectors
// below cover the built-in alphabets; any other value is used literally as a
// custom alphabet.
type Charset string

const (
	// Latin rotates uppercase and lowercase Latin letters within their own
	// case, by the same offset.
	Latin Charset = "latin"
	// ASCII rotates within the 94 printable ASCII characters, '!' to '~'.
	ASCII Charset = "ascii"

	LatinLower Charset = "latinLower"
	LatinUpper Charset = "latinUpper"
	Digits     Charset = "digits"
)

const (
	lowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	upperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitAlphabet = "0123456789"
)

// printableAlphabet is the contiguous code point range '!' (33) through
// '~' (126), in ascending order.
var printableAlphabet = makePrintable()

func makePrintable() string {
	b := &strings.Builder{}
	b.Grow('~' - '!' + 1)
	for r := '!'; r <= '~'; r++ {
		b.WriteRune(r)
	}
	return b.String()
}

// Alphabet returns the built-in alphabet registered under name. The registry
// holds LatinLower, LatinUpper, Digits and ASCII; Latin is a per-case
// selector, not a registry entry.
func Alphabet(name Charset) (string, bool) {
	switch name {
	case LatinLower:
		return lowerAlphabet, true
	case LatinUpper:
		return upperAlphabet, true
	case Digits:
		return digitAlphabet, true
	case ASCII:
		return printableAlphabet, true
	}
	return "", false
}

// Alphabets iterates over the built-in alphabets in registration order.
func Alphabets() iter.Seq2[Charset, string] {
	return func(yield func(Charset, string) bool) {
		for _, name := range []Charset{LatinLower, LatinUpper, Digits, ASCII} {
			alphabet, _ := Alphabet(name)
			if !yield(name, alphabet) {
				return
			}
		}
	}
}

// rotateRune rotates r within alphabet by shift positions. Characters the
// alphabet does not contain pass through unchanged. Lookup uses the first
// occurrence, so alphabets with duplicate characters do not rotate
// bijectively.
func rotateRune(r rune, shift int, alphabet []rune) rune {
	i := slices.Index(alphabet, r)
	if i < 0 {
		return r
	}
	n := NormalizeShift(shift, len(alphabet))
	return alphabet[(i+n)%len(alphabet)]
}

// alphabetLength is the modulus rotate reduces shifts by for charset: 26
// for the per-case Latin alphabets, 94 for printable ASCII, a registry
// alphabet's size, or the rune count of a custom alphabet.
func alphabetLength(charset Charset) int {
	switch charset {
	case Latin:
		return 26
	case ASCII:
		return 94
	}

	if alphabet, ok := Alphabet(charset); ok {
		return len(alphabet)
	}
	return len([]rune(string(charset)))
}
