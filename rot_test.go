package rot

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

// randText draws from letters, digits, punctuation, whitespace and a few
// characters outside every built-in alphabet.
func randText(l int) string {
	const palette = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 !#%&~çéаб日本🙂"
	runes := []rune(palette)

	s := &strings.Builder{}
	s.Grow(l)
	for range l {
		s.WriteRune(runes[rand.IntN(len(runes))])
	}
	return s.String()
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts []Option
		want string
	}{
		{"default rot13", "Hello, World! 123", nil, "Uryyb, Jbeyq! 123"},
		{"case preserved", "AbC", []Option{WithShift(1)}, "BcD"},
		{"multibyte passthrough", "héllo", []Option{WithShift(1)}, "iémmp"},
		{"latin lower wrap", "a", []Option{WithShift(27), WithCharset(LatinLower)}, "b"},
		{"latin lower negative", "a", []Option{WithShift(-1), WithCharset(LatinLower)}, "z"},
		{"latin upper only", "AZ az", []Option{WithShift(1), WithCharset(LatinUpper)}, "BA az"},
		{"digits", "0123456789", []Option{WithShift(5), WithCharset(Digits)}, "5678901234"},
		{"ascii", "A", []Option{WithShift(47), WithCharset(ASCII)}, "p"},
		{"ascii space passthrough", "a b", []Option{WithShift(47), WithCharset(ASCII)}, "2 3"},
		{"custom wraps", "xyz", []Option{WithShift(1), WithCharset("xyz")}, "yzx"},
		{"custom multibyte", "да", []Option{WithShift(1), WithCharset("абвгд")}, "аб"},
		{"empty text", "", []Option{WithShift(5)}, ""},
		{"empty custom charset", "abc", []Option{WithShift(5), WithCharset("")}, "abc"},
		{"duplicate charset first index", "a", []Option{WithShift(2), WithCharset("aba")}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if have, want := Rotate(tt.text, tt.opts...), tt.want; have != want {
				t.Fatalf("Rotated %q != %q", have, want)
			}
		})
	}
}

func TestRotateZeroShift(t *testing.T) {
	texts := []string{"", "Hello, World!", "héllo 123", "🙂"}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			if have, want := Rotate(text, WithShift(0)), text; have != want {
				t.Fatalf("Zero shift changed %q to %q", want, have)
			}
			if have, want := Rotate(text, WithShift(26)), text; have != want {
				t.Fatalf("Full wrap changed %q to %q", want, have)
			}
			if have, want := Rotate(text, WithShift(0), WithCharset(Digits)), text; have != want {
				t.Fatalf("Zero digit shift changed %q to %q", want, have)
			}
		})
	}
}

func TestRotateMinShift(t *testing.T) {
	// math.MinInt reduces to 18 mod 26 (2^63 is 8 mod 26).
	if have, want := Rotate("abc", WithShift(math.MinInt)), "stu"; have != want {
		t.Fatalf("Rotated %q != %q", have, want)
	}
	if have, want := Rotate("abc", WithShift(math.MinInt)), Rotate("abc", WithShift(18)); have != want {
		t.Fatalf("Min shift rotated %q, shift 18 rotated %q", have, want)
	}
}

func TestRotateRand(t *testing.T) {
	charsets := []Charset{Latin, LatinLower, LatinUpper, Digits, ASCII, "abcXYZ123", "абвгд"}

	for range 100 {
		text := randText(30)
		shift := rand.IntN(201) - 100
		charset := charsets[rand.IntN(len(charsets))]

		t.Run(fmt.Sprintf("%s/%d/%s", text, shift, charset), func(t *testing.T) {
			enc := Rotate(text, WithShift(shift), WithCharset(charset))
			if have, want := len([]rune(enc)), len([]rune(text)); have != want {
				t.Fatalf("Rotated length %d != %d", have, want)
			}

			dec := Rotate(enc, WithShift(-shift), WithCharset(charset))
			if have, want := dec, text; have != want {
				t.Fatalf("Inverted %q != %q", have, want)
			}
		})
	}
}

func TestFunc(t *testing.T) {
	rot1 := Func(1, LatinLower)
	if have, want := rot1("abz"), "bca"; have != want {
		t.Fatalf("Rotated %q != %q", have, want)
	}

	for range 20 {
		text := randText(20)
		shift := rand.IntN(101) - 50

		have := Func(shift, ASCII)(text)
		want := Rotate(text, WithShift(shift), WithCharset(ASCII))
		if have != want {
			t.Fatalf("Func rotated %q, Rotate %q", have, want)
		}
	}
}
