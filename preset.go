package rot

import (
	"strconv"
	"strings"
)

// Preset names a fixed shift and charset combination. Besides the constants
// below, any "rot<N>" name with non-negative digits N sets the shift to N
// and keeps the charset as resolved.
type Preset string

const (
	ROT13 Preset = "rot13"
	ROT5  Preset = "rot5"
	ROT18 Preset = "rot18"
	ROT47 Preset = "rot47"
)

// presetShift parses the generic rot<N> preset pattern. The name must be
// "rot" followed by decimal digits only.
func presetShift(p string) (int, bool) {
	rest, ok := strings.CutPrefix(strings.ToLower(p), "rot")
	if !ok || rest == "" {
		return 0, false
	}

	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Rot13 rotates Latin letters by 13 positions within their case.
func Rot13(text string) string {
	return Rotate(text, WithPreset(ROT13))
}

// Rot5 rotates digits by 5 positions.
func Rot5(text string) string {
	return Rotate(text, WithPreset(ROT5))
}

// Rot18 rotates Latin letters by 13 and digits by 5 simultaneously.
func Rot18(text string) string {
	return Rotate(text, WithPreset(ROT18))
}

// Rot47 rotates printable ASCII characters by 47 positions.
func Rot47(text string) string {
	return Rotate(text, WithPreset(ROT47))
}
