// Package rot implements character-rotation text obfuscation: substitution
// ciphers that shift characters within a fixed alphabet by a configurable
// offset, wrapping at the alphabet's end. It covers the common named
// variants (ROT13, ROT5, ROT18, ROT47) as well as arbitrary shifts over
// built-in or custom alphabets.
//
// Every operation is a pure function of its arguments: no call reads or
// writes state, no call fails. Invalid or missing inputs degrade to defined
// fallbacks instead of errors.
package rot

import (
	"strings"
)

// Option configures a single rotation.
type Option func(*request)

type request struct {
	shift   int
	charset Charset
	preset  Preset
}

// WithShift sets the rotation offset. Unset, it defaults to 13. Any integer
// is accepted; offsets are reduced modulo the alphabet length.
func WithShift(n int) Option {
	return func(r *request) {
		r.shift = n
	}
}

// WithCharset selects the alphabet to rotate within. Unset, it defaults to
// Latin. Values naming no built-in alphabet are used literally as custom
// alphabets.
func WithCharset(cs Charset) Option {
	return func(r *request) {
		r.charset = cs
	}
}

// WithPreset applies a named preset. Recognized presets override the shift
// and charset; unrecognized ones are ignored and leave both as previously
// resolved. Preset names are case-insensitive.
func WithPreset(p Preset) Option {
	return func(r *request) {
		r.preset = p
	}
}

// resolved is the effective rotation a call dispatches on, after defaults
// and preset overrides.
type resolved struct {
	shift   int
	charset Charset
	rot18   bool
}

func resolve(opts []Option) resolved {
	req := request{shift: 13, charset: Latin}
	for _, opt := range opts {
		if opt != nil {
			opt(&req)
		}
	}

	res := resolved{shift: req.shift, charset: req.charset}
	if req.preset == "" {
		return res
	}

	switch Preset(strings.ToLower(string(req.preset))) {
	case ROT13:
		res.shift, res.charset = 13, Latin
	case ROT5:
		res.shift, res.charset = 5, Digits
	case ROT47:
		res.shift, res.charset = 47, ASCII
	case ROT18:
		// ROT18 is a dual-alphabet transform and bypasses the shift and
		// charset entirely.
		res.rot18 = true
	default:
		if n, ok := presetShift(string(req.preset)); ok {
			res.shift = n
		}
	}
	return res
}

// Rotate rotates text by a configurable offset within a chosen alphabet.
// Characters outside the alphabet pass through unchanged, in place. Without
// options it applies ROT13.
//
// Rotation is a bijection on any alphabet with unique characters; alphabets
// with duplicates rotate from the first occurrence of a character and lose
// that property.
func Rotate(text string, opts ...Option) string {
	res := resolve(opts)
	if res.rot18 {
		return rot18(text)
	}
	return rotate(text, res.shift, res.charset)
}

// Func returns a rotation function bound to a fixed shift and charset.
func Func(shift int, charset Charset) func(string) string {
	return func(text string) string {
		return Rotate(text, WithShift(shift), WithCharset(charset))
	}
}

func rotate(text string, shift int, charset Charset) string {
	switch charset {
	case Latin:
		return rotateLatin(text, shift)
	case ASCII:
		return rotateASCII(text, shift)
	}

	if alphabet, ok := Alphabet(charset); ok {
		return rotateAlphabet(text, shift, alphabet)
	}
	return rotateAlphabet(text, shift, string(charset))
}

func rotateLatin(text string, shift int) string {
	n := rune(NormalizeShift(shift, 26))
	if n == 0 {
		return text
	}

	b := &strings.Builder{}
	b.Grow(len(text))

	for _, r := range text {
		if 'a' <= r && r <= 'z' {
			r = 'a' + (r-'a'+n)%26
		} else if 'A' <= r && r <= 'Z' {
			r = 'A' + (r-'A'+n)%26
		}
		b.WriteRune(r)
	}
	return b.String()
}

func rotateASCII(text string, shift int) string {
	n := rune(NormalizeShift(shift, 94))

	b := &strings.Builder{}
	b.Grow(len(text))

	for _, r := range text {
		if '!' <= r && r <= '~' {
			r = '!' + (r-'!'+n)%94
		}
		b.WriteRune(r)
	}
	return b.String()
}

func rotateAlphabet(text string, shift int, alphabet string) string {
	runes := []rune(alphabet)

	b := &strings.Builder{}
	b.Grow(len(text))

	for _, r := range text {
		b.WriteRune(rotateRune(r, shift, runes))
	}
	return b.String()
}

// rot18 applies ROT13 to Latin letters and ROT5 to digits simultaneously.
// Both halves shift by exactly half their alphabet length, so the transform
// is its own inverse.
func rot18(text string) string {
	b := &strings.Builder{}
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case 'a' <= r && r <= 'z':
			r = 'a' + (r-'a'+13)%26
		case 'A' <= r && r <= 'Z':
			r = 'A' + (r-'A'+13)%26
		case '0' <= r && r <= '9':
			r = '0' + (r-'0'+5)%10
		}
		b.WriteRune(r)
	}
	return b.String()
}
