package rot

import (
	"slices"
	"testing"
)

func TestAlphabet(t *testing.T) {
	tests := []struct {
		name     Charset
		alphabet string
	}{
		{LatinLower, "abcdefghijklmnopqrstuvwxyz"},
		{LatinUpper, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{Digits, "0123456789"},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			alphabet, ok := Alphabet(tt.name)
			if !ok {
				t.Fatalf("Alphabet %q not registered", tt.name)
			}
			if have, want := alphabet, tt.alphabet; have != want {
				t.Fatalf("Alphabet %q != %q", have, want)
			}
		})
	}
}

func TestAlphabetASCII(t *testing.T) {
	alphabet, ok := Alphabet(ASCII)
	if !ok {
		t.Fatal("ASCII alphabet not registered")
	}

	if have, want := len(alphabet), 94; have != want {
		t.Fatalf("Length %d != %d", have, want)
	}

	for i, r := range []rune(alphabet) {
		if have, want := r, '!'+rune(i); have != want {
			t.Fatalf("Rune %d is %q, expected %q", i, have, want)
		}
	}
}

func TestAlphabetUnknown(t *testing.T) {
	if _, ok := Alphabet(Latin); ok {
		t.Fatal("latin is a per-case selector, not a registry entry")
	}
	if _, ok := Alphabet("klingon"); ok {
		t.Fatal("unknown name reported as registered")
	}
}

func TestAlphabets(t *testing.T) {
	var names []Charset
	for name, alphabet := range Alphabets() {
		names = append(names, name)

		registered, ok := Alphabet(name)
		if !ok {
			t.Fatalf("Alphabets yielded unregistered %q", name)
		}
		if have, want := alphabet, registered; have != want {
			t.Fatalf("Alphabets yielded %q for %q, registry has %q", have, name, want)
		}
	}

	want := []Charset{LatinLower, LatinUpper, Digits, ASCII}
	if !slices.Equal(names, want) {
		t.Fatalf("Alphabets order %v != %v", names, want)
	}
}
